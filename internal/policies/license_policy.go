// Package policies implements the license matching policy. Matching is
// substring-based over normalized tokens, so an allowed entry of "MIT"
// also matches "MIT-0". This over-matching is deliberate and must not be
// tightened without an explicit exact-match mode; downstream consumers
// depend on the current behavior.
package policies

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"license-audit/internal/shared"
	"license-audit/internal/types"
)

// LicensePolicy holds the allowed and blocked token sets. Tokens are
// stored raw and normalized lazily on every comparison.
type LicensePolicy struct {
	Allowed []string
	Blocked []string
}

func NewLicensePolicy(allowed []string, blocked []string) (LicensePolicy, error) {
	policy := LicensePolicy{
		Allowed: cleanTokens(allowed),
		Blocked: cleanTokens(blocked),
	}
	if len(policy.Allowed) == 0 && len(policy.Blocked) == 0 {
		return LicensePolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one allowed or blocked license token is required")
	}
	return policy, nil
}

// Classify buckets a license string. Blocked wins over allowed when a
// license matches both sets.
func (p LicensePolicy) Classify(license string) types.LicenseStatus {
	if matchesAny(license, p.Blocked) {
		return types.LicenseStatusViolation
	}
	if matchesAny(license, p.Allowed) {
		return types.LicenseStatusAllowed
	}
	return types.LicenseStatusUnknown
}

// ParseTokens splits a comma-separated policy value into raw tokens,
// dropping empties.
func ParseTokens(value string) []string {
	return cleanTokens(strings.Split(value, ","))
}

func matchesAny(license string, tokens []string) bool {
	normalized := shared.NormalizeLicenseToken(license)
	for _, token := range tokens {
		if license == token {
			return true
		}
		normalizedToken := shared.NormalizeLicenseToken(token)
		if normalizedToken == "" || normalized == "" {
			continue
		}
		if strings.Contains(normalized, normalizedToken) {
			return true
		}
	}
	return false
}

func cleanTokens(tokens []string) []string {
	var cleaned []string
	for _, token := range tokens {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}
