// Package types defines shared type definitions used across all vigil packages.
package types

// Status is the binary compliance verdict for one check.
type Status string

const (
	// StatusPass means the observed setting met the control's threshold.
	StatusPass Status = "PASS"
	// StatusFail means the observed setting did not meet the control's threshold.
	StatusFail Status = "FAIL"
)

// Control family names used by the fixed check catalog.
const (
	FamilyAccessControl  = "Access Control"
	FamilyIdentification = "Identification & Authentication"
	FamilyAudit          = "Audit & Accountability"
)

// Display strings for observed values that could not be read.
// Which one a check uses (and whether absence passes or fails) is part of
// that check's contract, not a global rule.
const (
	SettingNotFound      = "Not Found"
	SettingNotConfigured = "Not Configured"
	SettingLogNotFound   = "Log Not Found"
	SettingDisabled      = "Disabled"
	SettingEnabled       = "Enabled"
)

// ControlResult holds the outcome of evaluating a single control check.
// Results are immutable once produced; the engine appends them in check
// order and hands the complete slice to a renderer.
type ControlResult struct {
	// Family is the control family (e.g. "Access Control").
	Family string `json:"control_family"`

	// ControlID is the NIST SP 800-171 control identifier (e.g. "3.1.3").
	// IDs repeat across checks that test different facets of one control.
	ControlID string `json:"control_id"`

	// Description states the requirement being tested.
	Description string `json:"description"`

	// CurrentSetting is the observed value, normalized for display.
	CurrentSetting string `json:"current_setting"`

	// CompliantSetting describes the passing threshold.
	CompliantSetting string `json:"compliant_setting"`

	// Status is the verdict: PASS or FAIL.
	Status Status `json:"status"`
}

// FieldNames returns the six result field names in declared order.
// The CSV header row and the HTML table columns both follow this order.
func FieldNames() []string {
	return []string{
		"controlFamily",
		"controlID",
		"description",
		"currentSetting",
		"compliantSetting",
		"status",
	}
}

// Fields returns the result's values in the same order as FieldNames.
func (r ControlResult) Fields() []string {
	return []string{
		r.Family,
		r.ControlID,
		r.Description,
		r.CurrentSetting,
		r.CompliantSetting,
		string(r.Status),
	}
}
