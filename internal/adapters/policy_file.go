package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"license-audit/internal/ports"
	"license-audit/internal/types"
)

// PolicyFileAdapter loads allowed/blocked license tokens from a YAML
// policy file, merged by the caller with tokens supplied as flags.
type PolicyFileAdapter struct{}

func NewPolicyFileAdapter() PolicyFileAdapter {
	return PolicyFileAdapter{}
}

func (a PolicyFileAdapter) LoadPolicy(path string) (types.PolicyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PolicyFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("policy file not found").
			WithCause(err)
	}
	var policy types.PolicyFile
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return types.PolicyFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse policy yaml").
			WithCause(err)
	}
	return policy, nil
}

var _ ports.PolicySourcePort = PolicyFileAdapter{}
