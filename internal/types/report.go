package types

// UnknownLicense is the sentinel returned when no license could be
// resolved for a package. Classification treats it like any other
// license string.
const UnknownLicense = "Unknown"

// DependencyEntry is a single flattened package from a dependency tree.
type DependencyEntry struct {
	Name    string
	Version string
}

// ClassifiedPackage is a package after policy classification. The
// normalized license is the uppercase license string with whitespace,
// hyphens, underscores and periods removed.
type ClassifiedPackage struct {
	Name              string `json:"name"`
	License           string `json:"license"`
	NormalizedLicense string `json:"normalizedLicense"`
}

// Summary holds the bucket counts of a finished classification run.
type Summary struct {
	Total      int `json:"total"`
	Violations int `json:"violations"`
	Allowed    int `json:"allowed"`
	Unknown    int `json:"unknown"`
}

// Report is the immutable result of a classification run. Buckets keep
// classification order and partition the scanned packages.
type Report struct {
	Summary    Summary
	Violations []ClassifiedPackage
	Allowed    []ClassifiedPackage
	Unknown    []ClassifiedPackage
}

// PolicyFile is the parsed form of an optional YAML policy file.
type PolicyFile struct {
	Allowed []string `yaml:"allowed"`
	Blocked []string `yaml:"blocked"`
}
