package adapters

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"license-audit/internal/ports"
)

// YarnTreeAdapter lists dependencies via `yarn list --json`. Yarn emits
// one JSON object per line; only the single line of type "tree" carries
// the dependency tree.
type YarnTreeAdapter struct {
	Runner ports.ProcessRunnerPort
}

func NewYarnTreeAdapter(runner ports.ProcessRunnerPort) YarnTreeAdapter {
	return YarnTreeAdapter{Runner: runner}
}

type yarnLine struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type yarnTreeData struct {
	Trees []yarnTreeNode `json:"trees"`
}

type yarnTreeNode struct {
	Name     string         `json:"name"`
	Children []yarnTreeNode `json:"children"`
}

func (a YarnTreeAdapter) ListPackages(ctx context.Context, dir string, includeDev bool) (map[string]string, error) {
	args := []string{"list", "--json", "--no-progress"}
	if !includeDev {
		args = append(args, "--production=true")
	}
	output, err := a.Runner.Run(ctx, dir, "yarn", args...)
	if err != nil && len(output) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("dependency listing failed").
			WithCause(err)
	}
	tree, found := selectTreeLine(output)
	if !found {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("yarn output contains no tree line")
	}
	packages := map[string]string{}
	walkYarnNodes(tree.Trees, packages)
	return packages, nil
}

// selectTreeLine scans the line-delimited output for the one line whose
// object has type "tree". Lines that fail to parse are skipped; yarn
// interleaves progress and warning objects with the tree.
func selectTreeLine(output []byte) (yarnTreeData, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		var line yarnLine
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			continue
		}
		if line.Type != "tree" {
			continue
		}
		var data yarnTreeData
		if err := json.Unmarshal(line.Data, &data); err != nil {
			continue
		}
		return data, true
	}
	return yarnTreeData{}, false
}

func walkYarnNodes(nodes []yarnTreeNode, packages map[string]string) {
	for _, node := range nodes {
		name := splitYarnName(node.Name)
		if name != "" {
			// Yarn tree lines embed resolved versions, not
			// installed ones, so the version is not trusted.
			if _, exists := packages[name]; !exists {
				packages[name] = "unknown"
			}
		}
		walkYarnNodes(node.Children, packages)
	}
}

// splitYarnName extracts the bare package name from "package@version",
// splitting on the last "@" so scoped names like "@babel/core@7.22.10"
// survive. An empty result means the node carries no usable name.
func splitYarnName(value string) string {
	at := strings.LastIndex(value, "@")
	if at <= 0 {
		return ""
	}
	return value[:at]
}

var _ ports.TreeListerPort = YarnTreeAdapter{}
