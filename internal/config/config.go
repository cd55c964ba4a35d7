// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/goburrow/serial"

	"github.com/obskit/mountd/internal/registry"
)

// Config is the daemon configuration parsed from a json file.
// It is constructed fully valid or not at all, and never mutated.
type Config struct {
	Daemon     registry.Daemon
	LogName    string
	ControlIPs []registry.Machine

	// DomeDaemon is nil when the config defines no dome control.
	DomeDaemon *registry.Daemon

	SerialPort    string
	SerialBaud    int
	SerialTimeout int

	Latitude  float64
	Longitude float64
	Altitude  float64

	InitializeTimeout float64
	SlewTimeout       float64
	SlewLoopDelay     float64

	// IdleLoopDelay is nil when omitted from the config.
	// Absent and zero are distinct downstream.
	IdleLoopDelay *float64

	HASoftLimits  [2]float64
	DecSoftLimits [2]float64

	ParkPositions map[string]ParkPosition
}

// ParkPosition is a named fixed alt/az pointing target.
type ParkPosition struct {
	Desc string
	Alt  float64
	Az   float64
}

// Load reads, validates, and projects a mount configuration file.
// Either a fully valid Config is returned or an error; there is no
// partially populated result. Unreadable files, malformed json, and
// schema or name-resolution violations are all fatal.
func Load(path string, reg *registry.Registry) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if err := schema(reg).Validate("", doc); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return project(doc, reg), nil
}

// project maps a validated document into a Config.
// The schema guarantees every assertion below.
func project(doc map[string]any, reg *registry.Registry) *Config {
	cfg := &Config{
		LogName:           doc["log_name"].(string),
		SerialPort:        doc["serial_port"].(string),
		SerialBaud:        int(num(doc["serial_baud"])),
		SerialTimeout:     int(num(doc["serial_timeout"])),
		Latitude:          num(doc["latitude"]),
		Longitude:         num(doc["longitude"]),
		Altitude:          num(doc["altitude"]),
		InitializeTimeout: num(doc["initialize_timeout"]),
		SlewTimeout:       num(doc["slew_timeout"]),
		SlewLoopDelay:     num(doc["slew_loop_delay"]),
		ParkPositions:     make(map[string]ParkPosition),
	}

	cfg.Daemon, _ = reg.Daemon(doc["daemon"].(string))

	for _, name := range doc["control_machines"].([]any) {
		machine, _ := reg.Machine(name.(string))
		cfg.ControlIPs = append(cfg.ControlIPs, machine)
	}

	if name, ok := doc["dome_daemon"]; ok {
		dome, _ := reg.Daemon(name.(string))
		cfg.DomeDaemon = &dome
	}

	if v, ok := doc["idle_loop_delay"]; ok {
		delay := num(v)
		cfg.IdleLoopDelay = &delay
	}

	cfg.HASoftLimits = pair(doc["ha_soft_limits"])
	cfg.DecSoftLimits = pair(doc["dec_soft_limits"])

	for name, p := range doc["park_positions"].(map[string]any) {
		pos := p.(map[string]any)
		cfg.ParkPositions[name] = ParkPosition{
			Desc: pos["desc"].(string),
			Alt:  num(pos["alt"]),
			Az:   num(pos["az"]),
		}
	}

	return cfg
}

// SerialConfig returns the port configuration for the mount handset link.
func (c *Config) SerialConfig() serial.Config {
	return serial.Config{
		Address:  c.SerialPort,
		BaudRate: c.SerialBaud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  time.Duration(c.SerialTimeout) * time.Second,
	}
}

func num(v any) float64 {
	return v.(float64)
}

func pair(v any) [2]float64 {
	a := v.([]any)
	return [2]float64{num(a[0]), num(a[1])}
}
