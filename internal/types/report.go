package types

import "time"

// AuditReport is the top-level structure for a complete audit run.
// It is serialized directly to JSON for the --format=json output; the
// HTML and CSV renderers emit only the result rows.
type AuditReport struct {
	// Version is the vigil version that produced this report.
	Version string `json:"version"`

	// Timestamp is when the audit started.
	Timestamp time.Time `json:"timestamp"`

	// Host describes the audited host.
	Host HostInfo `json:"host"`

	// Summary provides aggregate statistics.
	Summary AuditSummary `json:"summary"`

	// Results is the ordered list of individual check outcomes.
	Results []ControlResult `json:"results"`
}

// HostInfo describes the host that was audited.
type HostInfo struct {
	// Hostname is the system hostname.
	Hostname string `json:"hostname"`

	// OS is the operating system name.
	OS string `json:"os"`

	// OSVersion is the platform version string.
	OSVersion string `json:"os_version,omitempty"`

	// Arch is the CPU architecture.
	Arch string `json:"arch"`
}

// AuditSummary provides aggregate statistics for an audit run.
type AuditSummary struct {
	// TotalChecks is the number of results produced.
	TotalChecks int `json:"total_checks"`

	// Passed is the number of PASS results.
	Passed int `json:"passed"`

	// Failed is the number of FAIL results.
	Failed int `json:"failed"`

	// DurationMS is the total audit duration in milliseconds.
	DurationMS int64 `json:"duration_ms"`
}

// Summarize tallies a result slice into an AuditSummary.
// Duration is filled in by the caller.
func Summarize(results []ControlResult) AuditSummary {
	s := AuditSummary{TotalChecks: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			s.Passed++
		case StatusFail:
			s.Failed++
		}
	}
	return s
}
