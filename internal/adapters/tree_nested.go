package adapters

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"license-audit/internal/ports"
	"license-audit/internal/types"
)

// NestedTreeAdapter lists dependencies for the package managers that
// print a nested JSON tree (npm and pnpm): each node may carry a
// "version" field and a "dependencies" map of child nodes.
type NestedTreeAdapter struct {
	Runner  ports.ProcessRunnerPort
	Manager types.PackageManager
}

func NewNestedTreeAdapter(runner ports.ProcessRunnerPort, manager types.PackageManager) NestedTreeAdapter {
	return NestedTreeAdapter{Runner: runner, Manager: manager}
}

func (a NestedTreeAdapter) ListPackages(ctx context.Context, dir string, includeDev bool) (map[string]string, error) {
	name, args := a.command(includeDev)
	output, err := a.Runner.Run(ctx, dir, name, args...)
	if err != nil && len(output) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("dependency listing failed").
			WithCause(err)
	}
	if err != nil {
		// Nonzero exit with output: npm prints the tree anyway for
		// peer dependency errors.
		log.Ctx(ctx).Debug().Err(err).Str("manager", string(a.Manager)).Msg("listing exited nonzero, using partial output")
	}
	packages, err := flattenNestedTree(output)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse dependency tree output").
			WithCause(err)
	}
	return packages, nil
}

func (a NestedTreeAdapter) command(includeDev bool) (string, []string) {
	switch a.Manager {
	case types.PackageManagerPnpm:
		args := []string{"ls", "--depth", "Infinity", "--json"}
		if !includeDev {
			args = append(args, "--prod")
		}
		return "pnpm", args
	default:
		args := []string{"ls", "--all", "--json"}
		if !includeDev {
			args = append(args, "--omit=dev")
		}
		return "npm", args
	}
}

// flattenNestedTree walks the tree depth-first and records the first
// version seen for every package name. pnpm wraps the tree in a
// top-level array of project objects; both roots are accepted.
func flattenNestedTree(data []byte) (map[string]string, error) {
	var root interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	packages := map[string]string{}
	visited := map[uintptr]struct{}{}
	switch node := root.(type) {
	case map[string]interface{}:
		walkNestedNode(node, "", packages, visited)
	case []interface{}:
		for _, element := range node {
			if project, ok := element.(map[string]interface{}); ok {
				walkNestedNode(project, "", packages, visited)
			}
		}
	}
	return packages, nil
}

func walkNestedNode(node map[string]interface{}, name string, packages map[string]string, visited map[uintptr]struct{}) {
	// Decoded JSON cannot be cyclic, but the walk guards against it
	// anyway so a hand-built tree cannot loop it.
	id := reflect.ValueOf(node).Pointer()
	if _, seen := visited[id]; seen {
		return
	}
	visited[id] = struct{}{}

	if version, ok := node["version"].(string); ok && name != "" {
		if _, exists := packages[name]; !exists {
			packages[name] = version
		}
	}
	children, ok := node["dependencies"].(map[string]interface{})
	if !ok {
		return
	}
	for childName, child := range children {
		if childNode, ok := child.(map[string]interface{}); ok {
			walkNestedNode(childNode, childName, packages, visited)
		}
	}
}

var _ ports.TreeListerPort = NestedTreeAdapter{}
