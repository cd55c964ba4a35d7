// internal/status/status_test.go
package status

import (
	"fmt"
	"testing"

	"github.com/obskit/mountd/internal/tfmt"
)

// ---- tests ----

func TestMessage_KnownCodes(t *testing.T) {
	cases := []struct {
		code CommandStatus
		want string
	}{
		{Failed, "error: command failed"},
		{Blocked, "error: another command is already running"},
		{InvalidControlIP, "error: command not accepted from this IP"},
		{NotConnected, "error: mount has not been initialized"},
		{InvalidMountConfiguration, "error: mount handset is not correctly configured"},
		{NotDisconnected, "error: mount has already been initialized"},
		{UnknownParkPosition, "error: unknown park position"},
		{OutsideHALimits, "error: requested coordinates outside HA limits"},
		{OutsideDecLimits, "error: requested coordinates outside Dec limits"},
		{TelTerminated, "error: terminated by user"},
		{TelCommunicationFailed, "error: unable to communicate with telescope daemon"},
		{TelCommandUnavailable, "error: command not available for this telescope"},
	}

	for _, c := range cases {
		if got := c.code.Message(); got != c.want {
			t.Fatalf("code %d: got %q, want %q", c.code, got, c.want)
		}
	}
}

func TestMessage_UnknownCodes(t *testing.T) {
	for _, code := range []CommandStatus{3, 4, 9, 99, -1, -103} {
		want := fmt.Sprintf("error: Unknown error code %d", int(code))
		if got := code.Message(); got != want {
			t.Fatalf("code %d: got %q, want %q", code, got, want)
		}
	}
}

func TestMessage_TotalOverWideRange(t *testing.T) {
	for i := -1000; i <= 1000; i++ {
		if CommandStatus(i).Message() == "" {
			t.Fatalf("code %d produced empty message", i)
		}
	}
}

func TestLabel_Plain(t *testing.T) {
	cases := []struct {
		state TelescopeState
		want  string
	}{
		{Disabled, "DISABLED"},
		{Initializing, "INITIALIZING"},
		{Stopped, "STOPPED"},
		{Slewing, "SLEWING"},
		{Tracking, "TRACKING"},
		{99, "UNKNOWN"},
		{-1, "UNKNOWN"},
	}

	for _, c := range cases {
		if got := c.state.Label(false); got != c.want {
			t.Fatalf("state %d: got %q, want %q", c.state, got, c.want)
		}
	}
}

func TestLabel_Formatted(t *testing.T) {
	cases := []struct {
		state TelescopeState
		want  string
	}{
		{Disabled, tfmt.Red + tfmt.Bold + "DISABLED" + tfmt.Clear},
		{Initializing, tfmt.Yellow + tfmt.Bold + "INITIALIZING" + tfmt.Clear},
		{Stopped, tfmt.Red + tfmt.Bold + "STOPPED" + tfmt.Clear},
		{Slewing, tfmt.Yellow + tfmt.Bold + "SLEWING" + tfmt.Clear},
		{Tracking, tfmt.Green + tfmt.Bold + "TRACKING" + tfmt.Clear},
		{99, tfmt.Red + tfmt.Bold + "UNKNOWN" + tfmt.Clear},
	}

	for _, c := range cases {
		if got := c.state.Label(true); got != c.want {
			t.Fatalf("state %d: got %q, want %q", c.state, got, c.want)
		}
	}
}

func TestLabel_TotalOverWideRange(t *testing.T) {
	for i := -100; i <= 100; i++ {
		s := TelescopeState(i)
		if s.Label(false) == "" || s.Label(true) == "" {
			t.Fatalf("state %d produced empty label", i)
		}
	}
}
