// Package sysinfo detects host metadata for report headers.
package sysinfo

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/ancients-collective/vigil/internal/types"
)

// Detect returns host metadata via gopsutil, falling back to the runtime
// constants when host information is unavailable. Detection is best
// effort: the audit itself never depends on these fields, they only
// annotate the report.
func Detect() types.HostInfo {
	info := types.HostInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	h, err := host.Info()
	if err != nil {
		return info
	}
	if h.Platform != "" {
		info.OS = h.Platform
	}
	info.OSVersion = h.PlatformVersion
	if info.Hostname == "" {
		info.Hostname = h.Hostname
	}
	return info
}
