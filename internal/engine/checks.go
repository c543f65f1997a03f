// Package engine runs the fixed CMMC control catalog against a
// collect.Source and produces one ControlResult per check.
package engine

import (
	"fmt"
	"strconv"

	"github.com/ancients-collective/vigil/internal/collect"
	"github.com/ancients-collective/vigil/internal/secpol"
	"github.com/ancients-collective/vigil/internal/types"
)

// Compliance thresholds, per NIST SP 800-171 and the CIS Windows baseline.
const (
	maxInactivitySeconds = 900
	minPasswordHistory   = 24
	minPasswordLength    = 14
	maxLockoutThreshold  = 10
	minLockoutMinutes    = 15
	minLogSizeBytes      = 4294967296 // 4 GiB
)

// Labels looked up in the "net accounts" dump.
const (
	labelPasswordHistory = "Length of password history maintained"
	labelMinimumLength   = "Minimum password length"
	labelLockoutCount    = "Lockout threshold"
	labelLockoutDuration = "Lockout duration (minutes)"
)

// labelComplexity is looked up in the secedit [System Access] export.
const labelComplexity = "PasswordComplexity"

// Check is one entry in the fixed audit catalog. Checks are independent:
// each observes one piece of host state, applies its threshold, and
// never depends on another check's outcome.
type Check struct {
	// Family is the control family name.
	Family string

	// ControlID is the NIST SP 800-171 control identifier. IDs repeat
	// when several checks test facets of one numbered control.
	ControlID string

	// Description states the requirement being tested.
	Description string

	// Compliant describes the passing threshold for reports.
	Compliant string

	// run observes, normalizes, and evaluates. Observation failures are
	// absorbed here: run always returns a display value and a verdict.
	run func(collect.Source) (current string, status types.Status)
}

// Catalog returns the fixed, ordered check catalog. The order is part of
// the report contract and must not change between runs.
func Catalog() []Check {
	return []Check{
		{
			Family:      types.FamilyAccessControl,
			ControlID:   "3.1.3",
			Description: "Built-in Guest account is disabled",
			Compliant:   "Disabled",
			run:         checkGuestAccount,
		},
		{
			Family:      types.FamilyAccessControl,
			ControlID:   "3.1.11",
			Description: "Session lock engages after at most 15 minutes of inactivity",
			Compliant:   "900 seconds or less",
			run:         checkInactivityTimeout,
		},
		{
			Family:      types.FamilyIdentification,
			ControlID:   "3.5.7",
			Description: "Password complexity requirements are enforced",
			Compliant:   types.SettingEnabled,
			run:         checkPasswordComplexity,
		},
		{
			Family:      types.FamilyIdentification,
			ControlID:   "3.5.7",
			Description: "Password reuse is prevented for 24 generations",
			Compliant:   "24 or more",
			run:         checkPasswordHistory,
		},
		{
			Family:      types.FamilyIdentification,
			ControlID:   "3.5.7",
			Description: "Minimum password length is 14 characters",
			Compliant:   "14 or more",
			run:         checkMinPasswordLength,
		},
		{
			Family:      types.FamilyIdentification,
			ControlID:   "3.5.8",
			Description: "Account lockout triggers after a bounded number of failed logons",
			Compliant:   "10 attempts or fewer",
			run:         checkLockoutThreshold,
		},
		{
			Family:      types.FamilyIdentification,
			ControlID:   "3.5.8",
			Description: "Account lockout lasts at least 15 minutes",
			Compliant:   "15 minutes or more",
			run:         checkLockoutDuration,
		},
		{
			Family:      types.FamilyAudit,
			ControlID:   "3.3.4",
			Description: "Security event log overwrites oldest events as needed",
			Compliant:   collect.RetentionOverwrite,
			run:         checkLogRetention,
		},
		{
			Family:      types.FamilyAudit,
			ControlID:   "3.3.4",
			Description: "Security event log maximum size is at least 4 GB",
			Compliant:   "4294967296 bytes or more",
			run:         checkLogMaxSize,
		},
	}
}

// checkGuestAccount passes when the Guest account is disabled or absent.
// Absence is compliant here: no account means nothing to log into.
func checkGuestAccount(src collect.Source) (string, types.Status) {
	state, err := src.GuestAccount()
	if err != nil || !state.Exists {
		return types.SettingNotFound, types.StatusPass
	}
	if state.Enabled {
		return types.SettingEnabled, types.StatusFail
	}
	return types.SettingDisabled, types.StatusPass
}

// checkInactivityTimeout passes when the lock timeout policy is present
// and at most 900 seconds. An unset registry value is non-compliant,
// unlike the absent Guest account above.
func checkInactivityTimeout(src collect.Source) (string, types.Status) {
	seconds, ok, err := src.InactivityTimeout()
	if err != nil || !ok {
		return types.SettingNotConfigured, types.StatusFail
	}
	current := fmt.Sprintf("%d seconds", seconds)
	if seconds <= maxInactivitySeconds {
		return current, types.StatusPass
	}
	return current, types.StatusFail
}

// checkPasswordComplexity reads PasswordComplexity from the security
// policy export. 1 means enforced.
func checkPasswordComplexity(src collect.Source) (string, types.Status) {
	text, err := src.SystemAccess()
	if err != nil {
		return types.SettingNotConfigured, types.StatusFail
	}
	n, ok := secpol.Parse(text).Number(labelComplexity)
	if !ok {
		return types.SettingNotConfigured, types.StatusFail
	}
	if n == 1 {
		return types.SettingEnabled, types.StatusPass
	}
	return types.SettingDisabled, types.StatusFail
}

func checkPasswordHistory(src collect.Source) (string, types.Status) {
	n, _, ok := accountPolicyNumber(src, labelPasswordHistory)
	if !ok {
		return types.SettingNotConfigured, types.StatusFail
	}
	if n >= minPasswordHistory {
		return strconv.Itoa(n), types.StatusPass
	}
	return strconv.Itoa(n), types.StatusFail
}

func checkMinPasswordLength(src collect.Source) (string, types.Status) {
	n, _, ok := accountPolicyNumber(src, labelMinimumLength)
	if !ok {
		return types.SettingNotConfigured, types.StatusFail
	}
	if n >= minPasswordLength {
		return strconv.Itoa(n), types.StatusPass
	}
	return strconv.Itoa(n), types.StatusFail
}

// checkLockoutThreshold passes when lockout is enabled and triggers at 10
// or fewer failed attempts. "Never" (and its numeric equivalent 0) means
// accounts never lock, which always fails — a disabled lockout is the
// opposite of a disabled Guest account even though both read "disabled".
func checkLockoutThreshold(src collect.Source) (string, types.Status) {
	n, raw, ok := accountPolicyNumber(src, labelLockoutCount)
	if !ok {
		return types.SettingNotConfigured, types.StatusFail
	}
	if secpol.Sentinel(raw) || n == 0 {
		return types.SettingDisabled, types.StatusFail
	}
	current := fmt.Sprintf("%d attempts", n)
	if n <= maxLockoutThreshold {
		return current, types.StatusPass
	}
	return current, types.StatusFail
}

func checkLockoutDuration(src collect.Source) (string, types.Status) {
	n, _, ok := accountPolicyNumber(src, labelLockoutDuration)
	if !ok {
		return types.SettingNotConfigured, types.StatusFail
	}
	current := fmt.Sprintf("%d minutes", n)
	if n >= minLockoutMinutes {
		return current, types.StatusPass
	}
	return current, types.StatusFail
}

// checkLogRetention passes when the Security log overwrites old events as
// needed. A missing log fails both this check and the size check below.
func checkLogRetention(src collect.Source) (string, types.Status) {
	info, ok, err := src.SecurityLog()
	if err != nil || !ok {
		return types.SettingLogNotFound, types.StatusFail
	}
	if info.Retention == collect.RetentionOverwrite {
		return info.Retention, types.StatusPass
	}
	return info.Retention, types.StatusFail
}

func checkLogMaxSize(src collect.Source) (string, types.Status) {
	info, ok, err := src.SecurityLog()
	if err != nil || !ok {
		return types.SettingLogNotFound, types.StatusFail
	}
	current := fmt.Sprintf("%d bytes", info.MaxSizeBytes)
	if info.MaxSizeBytes >= minLogSizeBytes {
		return current, types.StatusPass
	}
	return current, types.StatusFail
}

// accountPolicyNumber fetches and parses one numeric label from the
// "net accounts" dump. It returns the parsed number ("None"/"Never" map
// to 0), the raw value for sentinel checks, and whether the label was
// present and parseable at all.
func accountPolicyNumber(src collect.Source, label string) (n int, raw string, ok bool) {
	text, err := src.AccountPolicy()
	if err != nil {
		return 0, "", false
	}
	dump := secpol.Parse(text)
	raw, ok = dump.Value(label)
	if !ok {
		return 0, "", false
	}
	n, ok = dump.Number(label)
	return n, raw, ok
}
