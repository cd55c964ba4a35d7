// internal/status/status.go
package status

import "fmt"

// CommandStatus is a numeric command return code.
// The values form the wire contract with clients and MUST NOT change.
type CommandStatus int

// ---- GENERAL CODES ----

const (
	Succeeded CommandStatus = 0
	Failed    CommandStatus = 1
	Blocked   CommandStatus = 2

	InvalidControlIP CommandStatus = 5
)

// ---- COMMAND-SPECIFIC CODES ----

const (
	NotConnected              CommandStatus = 10
	InvalidMountConfiguration CommandStatus = 11
	NotDisconnected           CommandStatus = 14
	UnknownParkPosition       CommandStatus = 15

	OutsideHALimits  CommandStatus = 20
	OutsideDecLimits CommandStatus = 21
)

// ---- TEL CLIENT CODES ----

// Negative codes are reserved for the tel client layer and are never
// produced by the daemon itself.
const (
	TelTerminated          CommandStatus = -100
	TelCommunicationFailed CommandStatus = -101
	TelCommandUnavailable  CommandStatus = -102
)

// Message returns a human readable string describing a command status.
// Codes arrive over the wire from untrusted peers, so unknown values
// render a generic message instead of failing.
func (s CommandStatus) Message() string {
	switch s {
	case Failed:
		return "error: command failed"
	case Blocked:
		return "error: another command is already running"
	case InvalidControlIP:
		return "error: command not accepted from this IP"

	case NotConnected:
		return "error: mount has not been initialized"
	case InvalidMountConfiguration:
		return "error: mount handset is not correctly configured"
	case NotDisconnected:
		return "error: mount has already been initialized"
	case UnknownParkPosition:
		return "error: unknown park position"

	case OutsideHALimits:
		return "error: requested coordinates outside HA limits"
	case OutsideDecLimits:
		return "error: requested coordinates outside Dec limits"

	case TelTerminated:
		return "error: terminated by user"
	case TelCommunicationFailed:
		return "error: unable to communicate with telescope daemon"
	case TelCommandUnavailable:
		return "error: command not available for this telescope"
	}
	return fmt.Sprintf("error: Unknown error code %d", int(s))
}
