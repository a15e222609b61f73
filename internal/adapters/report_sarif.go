package adapters

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"license-audit/internal/ports"
	"license-audit/internal/types"
)

// SARIF format specification:
// https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html

const (
	sarifSchemaURI   = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	sarifVersion     = "2.1.0"
	sarifDriverName  = "license-audit"
	sarifDriverVer   = "1.0.0"
	sarifInfoURI     = "https://github.com/license-audit/license-audit"
	sarifViolationID = "license-violation"
)

type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
	FullDescription  sarifMessage `json:"fullDescription"`
	Help             sarifMessage `json:"help"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
}

// SarifReportAdapter renders violations in SARIF 2.1.0 so CI code
// scanning UIs can ingest them. The single rule is emitted only when
// violations exist; locations point at package.json:1:1 because license
// findings have no real source position.
type SarifReportAdapter struct{}

func NewSarifReportAdapter() SarifReportAdapter {
	return SarifReportAdapter{}
}

func (a SarifReportAdapter) Render(report types.Report, generatedAt time.Time) (string, error) {
	rules := []sarifRule{}
	results := []sarifResult{}
	if len(report.Violations) > 0 {
		rules = append(rules, sarifRule{
			ID:               sarifViolationID,
			ShortDescription: sarifMessage{Text: "Blocked license detected"},
			FullDescription:  sarifMessage{Text: "A dependency uses a license that the configured policy blocks."},
			Help:             sarifMessage{Text: "Replace the dependency or adjust the license policy."},
		})
		for _, pkg := range report.Violations {
			results = append(results, sarifResult{
				RuleID: sarifViolationID,
				Level:  "error",
				Message: sarifMessage{
					Text: fmt.Sprintf("Package %s uses blocked license %s", pkg.Name, pkg.License),
				},
				Locations: []sarifLocation{{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{URI: "package.json"},
						Region:           sarifRegion{StartLine: 1, StartColumn: 1},
					},
				}},
			})
		}
	}
	payload := sarifReport{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs: []sarifRun{{
			Tool:    sarifTool{Driver: sarifDriver{Name: sarifDriverName, Version: sarifDriverVer, InformationURI: sarifInfoURI, Rules: rules}},
			Results: results,
		}},
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal sarif report").
			WithCause(err)
	}
	return string(data) + "\n", nil
}

var _ ports.ReportRendererPort = SarifReportAdapter{}
