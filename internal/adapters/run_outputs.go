package adapters

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"license-audit/internal/ports"
)

// RunOutputsAdapter appends key=value lines to the CI outputs file
// (the GITHUB_OUTPUT convention). An empty path disables publishing.
type RunOutputsAdapter struct {
	Path string
}

func NewRunOutputsAdapter(path string) RunOutputsAdapter {
	return RunOutputsAdapter{Path: path}
}

func (a RunOutputsAdapter) WriteOutputs(values map[string]string) error {
	if strings.TrimSpace(a.Path) == "" {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s=%s\n", key, values[key])
	}
	file, err := os.OpenFile(a.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open outputs file").
			WithCause(err)
	}
	defer file.Close()
	if _, err := file.WriteString(b.String()); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write outputs file").
			WithCause(err)
	}
	return nil
}

var _ ports.RunOutputsPort = RunOutputsAdapter{}
