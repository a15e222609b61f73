package policies

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"license-audit/internal/types"
)

func TestClassifyBlockedWinsOverAllowed(t *testing.T) {
	policy, err := NewLicensePolicy([]string{"MIT"}, []string{"MIT"})
	require.NoError(t, err)

	assert.Equal(t, types.LicenseStatusViolation, policy.Classify("MIT"))
}

func TestClassifySubstringOverMatch(t *testing.T) {
	// "MIT-0" normalizes to "MIT0", which contains "MIT". The
	// over-match is deliberate and pinned here.
	policy, err := NewLicensePolicy([]string{"MIT"}, nil)
	require.NoError(t, err)

	assert.Equal(t, types.LicenseStatusAllowed, policy.Classify("MIT-0"))
}

func TestClassifyCompoundIdentifierStillMatchesBlocked(t *testing.T) {
	policy, err := NewLicensePolicy(nil, []string{"GPL-2.0"})
	require.NoError(t, err)

	assert.Equal(t, types.LicenseStatusViolation, policy.Classify("GPL-2.0-or-later"))
}

func TestClassifyNormalizedVariants(t *testing.T) {
	policy, err := NewLicensePolicy([]string{"Apache-2.0"}, []string{"GPL-3.0"})
	require.NoError(t, err)

	tests := []struct {
		license string
		want    types.LicenseStatus
	}{
		{license: "apache 2.0", want: types.LicenseStatusAllowed},
		{license: "APACHE_2.0", want: types.LicenseStatusAllowed},
		{license: "gpl-3.0", want: types.LicenseStatusViolation},
		{license: "ISC", want: types.LicenseStatusUnknown},
		{license: types.UnknownLicense, want: types.LicenseStatusUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.license, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Classify(tt.license))
		})
	}
}

func TestClassifyEmptyLicenseMatchesNothing(t *testing.T) {
	policy, err := NewLicensePolicy([]string{"MIT"}, []string{"GPL"})
	require.NoError(t, err)

	assert.Equal(t, types.LicenseStatusUnknown, policy.Classify(""))
}

func TestNewLicensePolicyRejectsEmptySets(t *testing.T) {
	_, err := NewLicensePolicy(nil, []string{" ", ""})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestTokensStoredRaw(t *testing.T) {
	policy, err := NewLicensePolicy([]string{" MIT "}, []string{"GPL-3.0"})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"MIT"}, policy.Allowed); diff != "" {
		t.Fatalf("unexpected allowed tokens (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"GPL-3.0"}, policy.Blocked); diff != "" {
		t.Fatalf("unexpected blocked tokens (-want +got):\n%s", diff)
	}
}

func TestParseTokens(t *testing.T) {
	got := ParseTokens("MIT, Apache-2.0 ,,ISC")
	if diff := cmp.Diff([]string{"MIT", "Apache-2.0", "ISC"}, got); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
	assert.Nil(t, ParseTokens(""))
}
