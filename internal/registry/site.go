// internal/registry/site.go
package registry

import (
	"fmt"
	"net/netip"
	"os"

	"gopkg.in/yaml.v3"
)

// siteFile is the on-disk shape of a site definition:
// every daemon endpoint and control machine known to the installation.
type siteFile struct {
	Daemons  map[string]siteDaemon  `yaml:"daemons"`
	Machines map[string]siteMachine `yaml:"machines"`
}

type siteDaemon struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type siteMachine struct {
	IP string `yaml:"ip"`
}

// LoadSite reads a YAML site file and returns a populated registry.
// Any unreadable file, malformed document, or invalid entry is fatal.
func LoadSite(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}

	var site siteFile
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return nil, fmt.Errorf("site %s: %w", path, err)
	}

	r := New()

	for name, d := range site.Daemons {
		if d.Host == "" {
			return nil, fmt.Errorf("site %s: daemon %q: host required", path, name)
		}
		if d.Port <= 0 || d.Port > 65535 {
			return nil, fmt.Errorf("site %s: daemon %q: port %d out of range", path, name, d.Port)
		}
		r.AddDaemon(Daemon{Name: name, Host: d.Host, Port: d.Port})
	}

	for name, m := range site.Machines {
		addr, err := netip.ParseAddr(m.IP)
		if err != nil {
			return nil, fmt.Errorf("site %s: machine %q: %w", path, name, err)
		}
		r.AddMachine(Machine{Name: name, Addr: addr})
	}

	return r, nil
}
