// Package collect provides the read-only system queries the check engine
// consumes. The live implementation is Windows-only; other platforms get
// a stub whose queries fail with ErrUnsupported, which the engine
// downgrades per each check's documented absence policy.
package collect

import "errors"

// ErrUnsupported is returned by every query on non-Windows platforms.
var ErrUnsupported = errors.New("live system queries require windows")

// Normalized Security log retention modes.
const (
	RetentionOverwrite = "Overwrite as needed"
	RetentionArchive   = "Archive when full"
	RetentionManual    = "Do not overwrite"
)

// AccountState describes a named local account.
type AccountState struct {
	// Exists reports whether the account is present at all.
	Exists bool

	// Enabled reports whether the account is active. Meaningless when
	// Exists is false.
	Enabled bool
}

// EventLogInfo describes the configuration of an event log channel.
type EventLogInfo struct {
	// Retention is one of the normalized retention mode constants.
	Retention string

	// MaxSizeBytes is the configured maximum log size.
	MaxSizeBytes uint64
}

// Source provides point-in-time, read-only observations of host state.
// Implementations must never mutate system configuration. Queries are
// one-shot: there is no retry or caching layer.
type Source interface {
	// GuestAccount reports the state of the built-in Guest account.
	// An error means the account could not be queried at all; an absent
	// account is reported as Exists=false with a nil error.
	GuestAccount() (AccountState, error)

	// InactivityTimeout returns the machine inactivity lock timeout in
	// seconds. ok is false when the policy value is not configured.
	InactivityTimeout() (seconds uint64, ok bool, err error)

	// AccountPolicy returns the textual account-policy summary
	// ("net accounts" style label/value lines).
	AccountPolicy() (string, error)

	// SystemAccess returns the [System Access] security-policy export
	// ("Label = value" lines, including PasswordComplexity).
	SystemAccess() (string, error)

	// SecurityLog returns the Security event log configuration.
	// ok is false when the log does not exist.
	SecurityLog() (info EventLogInfo, ok bool, err error)
}
