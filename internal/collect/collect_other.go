//go:build !windows

package collect

// StubSource is the non-Windows source. Every query fails with
// ErrUnsupported; the engine converts each failure into that check's
// documented absent result, so an audit still completes off-platform.
type StubSource struct{}

// NewSource returns the stub source for non-Windows platforms.
func NewSource() Source {
	return &StubSource{}
}

// GuestAccount always fails on non-Windows platforms.
func (s *StubSource) GuestAccount() (AccountState, error) {
	return AccountState{}, ErrUnsupported
}

// InactivityTimeout always fails on non-Windows platforms.
func (s *StubSource) InactivityTimeout() (uint64, bool, error) {
	return 0, false, ErrUnsupported
}

// AccountPolicy always fails on non-Windows platforms.
func (s *StubSource) AccountPolicy() (string, error) {
	return "", ErrUnsupported
}

// SystemAccess always fails on non-Windows platforms.
func (s *StubSource) SystemAccess() (string, error) {
	return "", ErrUnsupported
}

// SecurityLog always fails on non-Windows platforms.
func (s *StubSource) SecurityLog() (EventLogInfo, bool, error) {
	return EventLogInfo{}, false, ErrUnsupported
}
