package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"license-audit/internal/policies"
	"license-audit/internal/shared"
	"license-audit/internal/types"
)

// ReportState accumulates classified packages. It is threaded through
// Classify calls explicitly so the classifier itself stays stateless.
// Buckets keep classification order.
type ReportState struct {
	Violations []types.ClassifiedPackage
	Allowed    []types.ClassifiedPackage
	Unknown    []types.ClassifiedPackage
}

func NewReportState() *ReportState {
	return &ReportState{}
}

type Classifier struct {
	policy policies.LicensePolicy
}

func NewClassifier(policy policies.LicensePolicy) Classifier {
	return Classifier{policy: policy}
}

// Classify appends exactly one entry to exactly one bucket of state.
func (c Classifier) Classify(ctx context.Context, state *ReportState, name string, license string) types.LicenseStatus {
	assert.NotEmpty(ctx, name, "package name must be set")

	pkg := types.ClassifiedPackage{
		Name:              name,
		License:           license,
		NormalizedLicense: shared.NormalizeLicenseToken(license),
	}
	status := c.policy.Classify(license)
	switch status {
	case types.LicenseStatusViolation:
		state.Violations = append(state.Violations, pkg)
	case types.LicenseStatusAllowed:
		state.Allowed = append(state.Allowed, pkg)
	default:
		state.Unknown = append(state.Unknown, pkg)
	}
	log.Ctx(ctx).Debug().
		Str("package", name).
		Str("license", license).
		Str("status", string(status)).
		Msg("package classified")
	return status
}
