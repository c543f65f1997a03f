//go:build windows

package collect

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/sys/windows/registry"

	"github.com/ancients-collective/vigil/internal/secpol"
)

// inactivityKeyPath holds the machine inactivity limit policy value.
const inactivityKeyPath = `SOFTWARE\Microsoft\Windows\CurrentVersion\Policies\System`

// inactivityValueName is the DWORD holding the lock timeout in seconds.
const inactivityValueName = "InactivityTimeoutSecs"

// WindowsSource implements Source against the live host using the
// registry and the stock policy query tools (net, secedit, wevtutil).
type WindowsSource struct{}

// NewSource returns the live Windows source.
func NewSource() Source {
	return &WindowsSource{}
}

// GuestAccount queries the built-in Guest account via "net user".
// A "could not be found" failure means the account is absent, which is
// a valid observation rather than an error.
func (s *WindowsSource) GuestAccount() (AccountState, error) {
	out, err := exec.Command("net", "user", "Guest").CombinedOutput()
	text := string(out)
	if err != nil {
		if strings.Contains(text, "could not be found") {
			return AccountState{Exists: false}, nil
		}
		return AccountState{}, fmt.Errorf("net user Guest: %w", err)
	}

	// "net user" prints columnar rows, e.g. "Account active    Yes".
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[0] == "Account" && fields[1] == "active" {
			return AccountState{
				Exists:  true,
				Enabled: strings.EqualFold(fields[2], "Yes"),
			}, nil
		}
	}
	return AccountState{}, fmt.Errorf("net user Guest: no 'Account active' row in output")
}

// InactivityTimeout reads the InactivityTimeoutSecs policy DWORD.
// A missing key or value means the policy is not configured.
func (s *WindowsSource) InactivityTimeout() (uint64, bool, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, inactivityKeyPath, registry.QUERY_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("open %s: %w", inactivityKeyPath, err)
	}
	defer key.Close()

	seconds, _, err := key.GetIntegerValue(inactivityValueName)
	if err != nil {
		if err == registry.ErrNotExist {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read %s: %w", inactivityValueName, err)
	}
	return seconds, true, nil
}

// AccountPolicy returns the "net accounts" summary text.
func (s *WindowsSource) AccountPolicy() (string, error) {
	out, err := exec.Command("net", "accounts").Output()
	if err != nil {
		return "", fmt.Errorf("net accounts: %w", err)
	}
	return string(out), nil
}

// SystemAccess exports the local security policy via secedit and returns
// the export text. secedit only writes to a file, so the export goes to a
// temp path that is removed before returning.
func (s *WindowsSource) SystemAccess() (string, error) {
	cfg := filepath.Join(os.TempDir(), fmt.Sprintf("vigil-secpol-%d.inf", os.Getpid()))
	defer os.Remove(cfg)

	if out, err := exec.Command("secedit", "/export", "/cfg", cfg, "/areas", "SECURITYPOLICY", "/quiet").CombinedOutput(); err != nil {
		return "", fmt.Errorf("secedit /export: %w: %s", err, strings.TrimSpace(string(out)))
	}

	raw, err := os.ReadFile(cfg)
	if err != nil {
		return "", fmt.Errorf("read secedit export: %w", err)
	}
	return decodeUTF16(raw), nil
}

// SecurityLog queries the Security channel configuration via wevtutil.
func (s *WindowsSource) SecurityLog() (EventLogInfo, bool, error) {
	out, err := exec.Command("wevtutil", "gl", "Security").CombinedOutput()
	text := string(out)
	if err != nil {
		if strings.Contains(text, "could not be found") {
			return EventLogInfo{}, false, nil
		}
		return EventLogInfo{}, false, fmt.Errorf("wevtutil gl Security: %w", err)
	}

	dump := secpol.Parse(text)
	size, ok := dump.Value("maxSize")
	if !ok {
		return EventLogInfo{}, false, fmt.Errorf("wevtutil gl Security: no maxSize in output")
	}
	maxSize, err := strconv.ParseUint(size, 10, 64)
	if err != nil {
		return EventLogInfo{}, false, fmt.Errorf("wevtutil gl Security: bad maxSize %q", size)
	}

	retention, _ := dump.Value("retention")
	autoBackup, _ := dump.Value("autoBackup")
	return EventLogInfo{
		Retention:    retentionMode(retention == "true", autoBackup == "true"),
		MaxSizeBytes: maxSize,
	}, true, nil
}

// retentionMode maps wevtutil's retention/autoBackup flag pair to a
// normalized mode. retention=false means old events are overwritten as
// needed; with retention set, autoBackup decides archive vs. manual.
func retentionMode(retention, autoBackup bool) string {
	switch {
	case !retention:
		return RetentionOverwrite
	case autoBackup:
		return RetentionArchive
	default:
		return RetentionManual
	}
}

// decodeUTF16 converts a secedit export (UTF-16LE with BOM) to a Go
// string. Plain ASCII exports pass through unchanged.
func decodeUTF16(raw []byte) string {
	if len(raw) < 2 || len(raw)%2 != 0 {
		return string(raw)
	}
	if raw[0] != 0xFF || raw[1] != 0xFE {
		return string(raw)
	}
	units := make([]uint16, 0, (len(raw)-2)/2)
	for i := 2; i+1 < len(raw); i += 2 {
		units = append(units, uint16(raw[i])|uint16(raw[i+1])<<8)
	}
	return string(utf16.Decode(units))
}
