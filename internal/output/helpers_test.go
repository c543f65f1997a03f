package output

import (
	"time"

	"github.com/ancients-collective/vigil/internal/types"
)

// newTestReport builds a report with one passing and one failing result,
// including values that exercise CSV quoting.
func newTestReport() *types.AuditReport {
	results := []types.ControlResult{
		{
			Family:           types.FamilyAccessControl,
			ControlID:        "3.1.3",
			Description:      "Built-in Guest account is disabled",
			CurrentSetting:   "Disabled",
			CompliantSetting: "Disabled",
			Status:           types.StatusPass,
		},
		{
			Family:           types.FamilyIdentification,
			ControlID:        "3.5.8",
			Description:      `Account lockout triggers after a bounded, "reasonable" number of failed logons`,
			CurrentSetting:   "Disabled",
			CompliantSetting: "10 attempts or fewer",
			Status:           types.StatusFail,
		},
	}

	return &types.AuditReport{
		Version:   "0.0.0-test",
		Timestamp: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Host: types.HostInfo{
			Hostname:  "WKS-0042",
			OS:        "Microsoft Windows 11 Pro",
			OSVersion: "10.0.22631",
			Arch:      "amd64",
		},
		Summary: types.Summarize(results),
		Results: results,
	}
}

// newUniformReport builds a report where every result has the given status.
func newUniformReport(n int, status types.Status) *types.AuditReport {
	results := make([]types.ControlResult, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, types.ControlResult{
			Family:           types.FamilyAudit,
			ControlID:        "3.3.4",
			Description:      "Security event log check",
			CurrentSetting:   "value",
			CompliantSetting: "threshold",
			Status:           status,
		})
	}
	return &types.AuditReport{
		Version:   "0.0.0-test",
		Timestamp: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Summary:   types.Summarize(results),
		Results:   results,
	}
}
