// internal/status/state.go
package status

import "github.com/obskit/mountd/internal/tfmt"

// TelescopeState is the current mount state as reported to clients.
type TelescopeState int

const (
	Disabled TelescopeState = iota
	Initializing
	Stopped
	Slewing
	Tracking
)

// Label returns a human readable string describing a state.
// Set formatted to wrap the label in terminal formatting characters.
// States arrive over the wire, so out-of-range values render UNKNOWN.
func (s TelescopeState) Label(formatted bool) string {
	label := "UNKNOWN"
	format := tfmt.Red + tfmt.Bold

	switch s {
	case Disabled:
		label, format = "DISABLED", tfmt.Red+tfmt.Bold
	case Initializing:
		label, format = "INITIALIZING", tfmt.Yellow+tfmt.Bold
	case Stopped:
		label, format = "STOPPED", tfmt.Red+tfmt.Bold
	case Slewing:
		label, format = "SLEWING", tfmt.Yellow+tfmt.Bold
	case Tracking:
		label, format = "TRACKING", tfmt.Green+tfmt.Bold
	}

	if formatted {
		return format + label + tfmt.Clear
	}
	return label
}
