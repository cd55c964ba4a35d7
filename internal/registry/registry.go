// internal/registry/registry.go
package registry

import (
	"fmt"
	"net/netip"
)

// Daemon is an addressable daemon endpoint identity.
type Daemon struct {
	Name string
	Host string
	Port int
}

// URI returns the control endpoint address.
func (d Daemon) URI() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}

// Machine is a network host permitted to issue commands.
type Machine struct {
	Name string
	Addr netip.Addr
}

// Registry maps daemon and machine names to their handles.
// It is populated once at process startup and read-only afterwards,
// so lookups are safe from any goroutine.
type Registry struct {
	daemons  map[string]Daemon
	machines map[string]Machine
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		daemons:  make(map[string]Daemon),
		machines: make(map[string]Machine),
	}
}

// AddDaemon registers a daemon endpoint under its name.
// Re-registering a name replaces the previous entry.
func (r *Registry) AddDaemon(d Daemon) {
	r.daemons[d.Name] = d
}

// AddMachine registers a control machine under its name.
func (r *Registry) AddMachine(m Machine) {
	r.machines[m.Name] = m
}

// Daemon resolves a daemon name to its endpoint handle.
func (r *Registry) Daemon(name string) (Daemon, bool) {
	d, ok := r.daemons[name]
	return d, ok
}

// Machine resolves a machine name to its network identity.
func (r *Registry) Machine(name string) (Machine, bool) {
	m, ok := r.machines[name]
	return m, ok
}
