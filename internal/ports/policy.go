package ports

import "license-audit/internal/types"

// PolicySourcePort loads additional policy tokens from a file.
type PolicySourcePort interface {
	LoadPolicy(path string) (types.PolicyFile, error)
}
