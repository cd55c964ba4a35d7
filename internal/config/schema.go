// internal/config/schema.go
package config

import (
	"fmt"

	"github.com/obskit/mountd/internal/registry"
	"github.com/obskit/mountd/internal/validation"
)

// schema is the full mount configuration schema as a static rule
// composition. Name resolution runs inside the traversal, so a bad
// daemon or machine name fails with its field path like any other
// violation.
func schema(reg *registry.Registry) validation.Rule {
	parkPosition := validation.Object{
		Fields: []validation.Field{
			{Name: "desc", Rule: validation.String()},
			{Name: "alt", Rule: validation.Range(0, 90)},
			{Name: "az", Rule: validation.Range(0, 360)},
		},
	}

	return validation.Object{
		Fields: []validation.Field{
			{Name: "daemon", Rule: validation.StringCheck(daemonName(reg))},
			{Name: "log_name", Rule: validation.String()},
			{Name: "control_machines", Rule: validation.Array(validation.StringCheck(machineName(reg)))},
			{Name: "dome_daemon", Rule: validation.StringCheck(daemonName(reg)), Optional: true},
			{Name: "serial_port", Rule: validation.String()},
			{Name: "serial_baud", Rule: validation.Min(0)},
			{Name: "serial_timeout", Rule: validation.Min(0)},
			{Name: "latitude", Rule: validation.Range(-90, 90)},
			{Name: "longitude", Rule: validation.Range(-180, 180)},
			{Name: "altitude", Rule: validation.Min(0)},
			{Name: "initialize_timeout", Rule: validation.Min(0)},
			{Name: "slew_timeout", Rule: validation.Min(0)},
			{Name: "slew_loop_delay", Rule: validation.Min(0)},
			{Name: "idle_loop_delay", Rule: validation.Min(0), Optional: true},
			{Name: "ha_soft_limits", Rule: validation.ArrayN(2, validation.Range(-180, 180))},
			{Name: "dec_soft_limits", Rule: validation.ArrayN(2, validation.Range(-90, 90))},
			{Name: "park_positions", Rule: validation.Object{Extra: parkPosition}},
		},
	}
}

// daemonName accepts strings that resolve in the daemon registry.
func daemonName(reg *registry.Registry) func(string) error {
	return func(name string) error {
		if _, ok := reg.Daemon(name); !ok {
			return fmt.Errorf("unknown daemon %q", name)
		}
		return nil
	}
}

// machineName accepts strings that resolve in the machine registry.
func machineName(reg *registry.Registry) func(string) error {
	return func(name string) error {
		if _, ok := reg.Machine(name); !ok {
			return fmt.Errorf("unknown machine %q", name)
		}
		return nil
	}
}
