package app

import (
	"context"

	"license-audit/internal/policies"
)

// Validate checks the configuration surface without scanning anything:
// output format, package manager token, and the merged policy sets.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	if _, err := parseReportFormat(req.OutputFormat); err != nil {
		return ValidateResult{}, err
	}
	if _, err := parsePackageManager(req.PackageManager); err != nil {
		return ValidateResult{}, err
	}
	allowed := req.AllowedLicenses
	blocked := req.BlockedLicenses
	if req.PolicyFile != "" {
		filePolicy, err := s.PolicySource.LoadPolicy(req.PolicyFile)
		if err != nil {
			return ValidateResult{}, err
		}
		allowed = append(append([]string{}, allowed...), filePolicy.Allowed...)
		blocked = append(append([]string{}, blocked...), filePolicy.Blocked...)
	}
	policy, err := policies.NewLicensePolicy(allowed, blocked)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		AllowedTokens: len(policy.Allowed),
		BlockedTokens: len(policy.Blocked),
	}, nil
}
