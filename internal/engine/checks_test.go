package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancients-collective/vigil/internal/collect"
	"github.com/ancients-collective/vigil/internal/types"
)

// fakeSource is a configurable collect.Source for predicate tests.
type fakeSource struct {
	guest    collect.AccountState
	guestErr error

	timeout    uint64
	timeoutOK  bool
	timeoutErr error

	accounts    string
	accountsErr error

	secedit    string
	seceditErr error

	log    collect.EventLogInfo
	logOK  bool
	logErr error
}

func (f *fakeSource) GuestAccount() (collect.AccountState, error) { return f.guest, f.guestErr }
func (f *fakeSource) InactivityTimeout() (uint64, bool, error) {
	return f.timeout, f.timeoutOK, f.timeoutErr
}
func (f *fakeSource) AccountPolicy() (string, error) { return f.accounts, f.accountsErr }
func (f *fakeSource) SystemAccess() (string, error)  { return f.secedit, f.seceditErr }
func (f *fakeSource) SecurityLog() (collect.EventLogInfo, bool, error) {
	return f.log, f.logOK, f.logErr
}

// accountsText builds a "net accounts" style dump with the given values.
func accountsText(minLen, history, lockCount, lockDuration string) string {
	return fmt.Sprintf(`Force user logoff how long after time expires?:       Never
Minimum password age (days):                          1
Maximum password age (days):                          60
Minimum password length:                              %s
Length of password history maintained:                %s
Lockout threshold:                                    %s
Lockout duration (minutes):                           %s
Lockout observation window (minutes):                 15
Computer role:                                        WORKSTATION
`, minLen, history, lockCount, lockDuration)
}

// newCompliantSource returns a source where every check passes.
func newCompliantSource() *fakeSource {
	return &fakeSource{
		guest:     collect.AccountState{Exists: true, Enabled: false},
		timeout:   900,
		timeoutOK: true,
		accounts:  accountsText("14", "24", "10", "15"),
		secedit:   "[System Access]\r\nMinimumPasswordLength = 14\r\nPasswordComplexity = 1\r\nPasswordHistorySize = 24\r\n",
		log:       collect.EventLogInfo{Retention: collect.RetentionOverwrite, MaxSizeBytes: 4294967296},
		logOK:     true,
	}
}

// ─── Catalog shape ───────────────────────────────────────────────────

func TestCatalog_OrderAndMetadata(t *testing.T) {
	checks := Catalog()
	require.Len(t, checks, 9)

	wantIDs := []string{"3.1.3", "3.1.11", "3.5.7", "3.5.7", "3.5.7", "3.5.8", "3.5.8", "3.3.4", "3.3.4"}
	for i, c := range checks {
		assert.Equal(t, wantIDs[i], c.ControlID, "check %d", i)
		assert.NotEmpty(t, c.Family)
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.Compliant)
		assert.NotNil(t, c.run)
	}

	assert.Equal(t, types.FamilyAccessControl, checks[0].Family)
	assert.Equal(t, types.FamilyIdentification, checks[2].Family)
	assert.Equal(t, types.FamilyAudit, checks[8].Family)
}

// ─── Guest account (3.1.3) ───────────────────────────────────────────

func TestCheckGuestAccount(t *testing.T) {
	tests := []struct {
		name        string
		guest       collect.AccountState
		guestErr    error
		wantSetting string
		wantStatus  types.Status
	}{
		{"enabled", collect.AccountState{Exists: true, Enabled: true}, nil, types.SettingEnabled, types.StatusFail},
		{"disabled", collect.AccountState{Exists: true, Enabled: false}, nil, types.SettingDisabled, types.StatusPass},
		{"absent", collect.AccountState{Exists: false}, nil, types.SettingNotFound, types.StatusPass},
		{"query error", collect.AccountState{}, errors.New("access denied"), types.SettingNotFound, types.StatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newCompliantSource()
			src.guest = tt.guest
			src.guestErr = tt.guestErr

			current, status := checkGuestAccount(src)
			assert.Equal(t, tt.wantSetting, current)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

// ─── Inactivity timeout (3.1.11) ─────────────────────────────────────

func TestCheckInactivityTimeout(t *testing.T) {
	tests := []struct {
		name        string
		seconds     uint64
		ok          bool
		err         error
		wantSetting string
		wantStatus  types.Status
	}{
		{"exactly 900", 900, true, nil, "900 seconds", types.StatusPass},
		{"901", 901, true, nil, "901 seconds", types.StatusFail},
		{"short timeout", 300, true, nil, "300 seconds", types.StatusPass},
		{"not configured", 0, false, nil, types.SettingNotConfigured, types.StatusFail},
		{"registry error", 0, false, errors.New("access denied"), types.SettingNotConfigured, types.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newCompliantSource()
			src.timeout = tt.seconds
			src.timeoutOK = tt.ok
			src.timeoutErr = tt.err

			current, status := checkInactivityTimeout(src)
			assert.Equal(t, tt.wantSetting, current)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

// ─── Password complexity (3.5.7) ─────────────────────────────────────

func TestCheckPasswordComplexity(t *testing.T) {
	tests := []struct {
		name        string
		secedit     string
		err         error
		wantSetting string
		wantStatus  types.Status
	}{
		{"enabled", "[System Access]\r\nPasswordComplexity = 1\r\n", nil, types.SettingEnabled, types.StatusPass},
		{"disabled", "[System Access]\r\nPasswordComplexity = 0\r\n", nil, types.SettingDisabled, types.StatusFail},
		{"label missing", "[System Access]\r\nMinimumPasswordLength = 14\r\n", nil, types.SettingNotConfigured, types.StatusFail},
		{"export error", "", errors.New("secedit failed"), types.SettingNotConfigured, types.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newCompliantSource()
			src.secedit = tt.secedit
			src.seceditErr = tt.err

			current, status := checkPasswordComplexity(src)
			assert.Equal(t, tt.wantSetting, current)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

// ─── Password history and length (3.5.7) ─────────────────────────────

func TestCheckPasswordHistory_Boundaries(t *testing.T) {
	tests := []struct {
		history     string
		wantSetting string
		wantStatus  types.Status
	}{
		{"24", "24", types.StatusPass},
		{"30", "30", types.StatusPass},
		{"23", "23", types.StatusFail},
		{"None", "0", types.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.history, func(t *testing.T) {
			src := newCompliantSource()
			src.accounts = accountsText("14", tt.history, "10", "15")

			current, status := checkPasswordHistory(src)
			assert.Equal(t, tt.wantSetting, current)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestCheckMinPasswordLength_Boundaries(t *testing.T) {
	tests := []struct {
		length     string
		wantStatus types.Status
	}{
		{"14", types.StatusPass},
		{"20", types.StatusPass},
		{"13", types.StatusFail},
		{"0", types.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.length, func(t *testing.T) {
			src := newCompliantSource()
			src.accounts = accountsText(tt.length, "24", "10", "15")

			current, status := checkMinPasswordLength(src)
			assert.Equal(t, tt.length, current)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestAccountPolicyChecks_DumpUnavailable(t *testing.T) {
	src := newCompliantSource()
	src.accounts = ""
	src.accountsErr = errors.New("net accounts failed")

	for name, check := range map[string]func(collect.Source) (string, types.Status){
		"history":  checkPasswordHistory,
		"length":   checkMinPasswordLength,
		"count":    checkLockoutThreshold,
		"duration": checkLockoutDuration,
	} {
		t.Run(name, func(t *testing.T) {
			current, status := check(src)
			assert.Equal(t, types.SettingNotConfigured, current)
			assert.Equal(t, types.StatusFail, status)
		})
	}
}

// ─── Lockout (3.5.8) ─────────────────────────────────────────────────

func TestCheckLockoutThreshold_Boundaries(t *testing.T) {
	tests := []struct {
		name        string
		threshold   string
		wantSetting string
		wantStatus  types.Status
	}{
		{"exactly 10", "10", "10 attempts", types.StatusPass},
		{"11", "11", "11 attempts", types.StatusFail},
		{"strict", "3", "3 attempts", types.StatusPass},
		// A lockout that never triggers fails regardless of any numeric
		// comparison — not the same "disabled" as a disabled Guest account.
		{"never sentinel", "Never", types.SettingDisabled, types.StatusFail},
		{"zero", "0", types.SettingDisabled, types.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newCompliantSource()
			src.accounts = accountsText("14", "24", tt.threshold, "15")

			current, status := checkLockoutThreshold(src)
			assert.Equal(t, tt.wantSetting, current)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestCheckLockoutDuration_Boundaries(t *testing.T) {
	tests := []struct {
		duration    string
		wantSetting string
		wantStatus  types.Status
	}{
		{"15", "15 minutes", types.StatusPass},
		{"30", "30 minutes", types.StatusPass},
		{"14", "14 minutes", types.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			src := newCompliantSource()
			src.accounts = accountsText("14", "24", "10", tt.duration)

			current, status := checkLockoutDuration(src)
			assert.Equal(t, tt.wantSetting, current)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

// ─── Security log (3.3.4) ────────────────────────────────────────────

func TestCheckLogRetention(t *testing.T) {
	tests := []struct {
		name        string
		retention   string
		wantSetting string
		wantStatus  types.Status
	}{
		{"overwrite as needed", collect.RetentionOverwrite, collect.RetentionOverwrite, types.StatusPass},
		{"manual", collect.RetentionManual, collect.RetentionManual, types.StatusFail},
		{"archive", collect.RetentionArchive, collect.RetentionArchive, types.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newCompliantSource()
			src.log.Retention = tt.retention

			current, status := checkLogRetention(src)
			assert.Equal(t, tt.wantSetting, current)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestCheckLogMaxSize_Boundaries(t *testing.T) {
	tests := []struct {
		name       string
		size       uint64
		wantStatus types.Status
	}{
		{"exactly 4 GiB", 4294967296, types.StatusPass},
		{"one byte short", 4294967295, types.StatusFail},
		{"larger", 8589934592, types.StatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newCompliantSource()
			src.log.MaxSizeBytes = tt.size

			current, status := checkLogMaxSize(src)
			assert.Equal(t, fmt.Sprintf("%d bytes", tt.size), current)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestLogChecks_LogAbsent(t *testing.T) {
	src := newCompliantSource()
	src.log = collect.EventLogInfo{}
	src.logOK = false

	// Both derived checks fail with the same absent marker.
	for name, check := range map[string]func(collect.Source) (string, types.Status){
		"retention": checkLogRetention,
		"max size":  checkLogMaxSize,
	} {
		t.Run(name, func(t *testing.T) {
			current, status := check(src)
			assert.Equal(t, types.SettingLogNotFound, current)
			assert.Equal(t, types.StatusFail, status)
		})
	}
}
