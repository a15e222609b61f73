// Package shared provides common utility functions used across multiple
// packages in the license-audit codebase.
package shared

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeLicenseToken uppercases a license string and strips
// whitespace, hyphens, underscores and periods so that variants like
// "Apache 2.0", "apache-2.0" and "Apache_2.0" compare equal.
func NormalizeLicenseToken(value string) string {
	upper := strings.ToUpper(value)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '_' || r == '.' {
			return -1
		}
		return r
	}, upper)
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// HTTPStatusErrorWithBody creates a formatted error that includes the
// response body for non-2xx HTTP responses.
func HTTPStatusErrorWithBody(status int, url string, body string) error {
	return fmt.Errorf("status=%d url=%s response=%s", status, url, body)
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
