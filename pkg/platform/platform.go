// Package platform detects runtime environments where file ownership
// metadata is unreliable, so that remediation can fall back to best-effort.
// The only such environment currently recognized is WSL, where chown on
// translated mounts succeeds inconsistently or not at all.
//
// Detection is performed once and handed to the engine as a plain value; no
// package in the engine path reads the environment ad hoc.
package platform

import (
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Probe reports environment quirks that change remediation behavior.
type Probe struct {
	ownershipUnreliable bool
}

// OwnershipUnreliable reports whether chown results cannot be trusted and
// ownership correction must be best-effort only.
func (p Probe) OwnershipUnreliable() bool { return p.ownershipUnreliable }

// Fixed returns a probe with a predetermined answer, for injection in tests.
func Fixed(ownershipUnreliable bool) Probe {
	return Probe{ownershipUnreliable: ownershipUnreliable}
}

// wslEnvMarkers are set by the WSL init process for every session.
var wslEnvMarkers = []string{"WSL_DISTRO_NAME", "WSL_INTEROP", "WSLENV"}

// Detect inspects the ambient environment. It never fails: an unreadable
// kernel version string simply means no quirk detected.
func Detect() Probe {
	for _, key := range wslEnvMarkers {
		if os.Getenv(key) != "" {
			return Fixed(true)
		}
	}
	if kv, err := host.KernelVersion(); err == nil && kernelLooksWSL(kv) {
		return Fixed(true)
	}
	return Fixed(false)
}

func kernelLooksWSL(version string) bool {
	v := strings.ToLower(version)
	return strings.Contains(v, "microsoft") || strings.Contains(v, "wsl")
}
