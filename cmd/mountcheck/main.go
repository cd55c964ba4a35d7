// cmd/mountcheck/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/obskit/mountd/internal/config"
	"github.com/obskit/mountd/internal/registry"
)

var (
	verdictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("usage: mountcheck <site.yaml> <config.json>")
	}

	sitePath := os.Args[1]
	cfgPath := os.Args[2]

	// --------------------
	// Site registry
	// --------------------

	reg, err := registry.LoadSite(sitePath)
	if err != nil {
		log.Fatalf("site load failed: %v", err)
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath, reg)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	fmt.Println(verdictStyle.Render("configuration valid"))
	fmt.Println()
	printSummary(cfg)
}

func printSummary(cfg *config.Config) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)

	fmt.Fprintf(w, "daemon\t%s\t%s\n", cfg.Daemon.Name, cfg.Daemon.URI())

	if cfg.DomeDaemon != nil {
		fmt.Fprintf(w, "dome daemon\t%s\t%s\n", cfg.DomeDaemon.Name, cfg.DomeDaemon.URI())
	} else {
		fmt.Fprintf(w, "dome daemon\t-\t\n")
	}

	machines := make([]string, 0, len(cfg.ControlIPs))
	for _, m := range cfg.ControlIPs {
		machines = append(machines, fmt.Sprintf("%s (%s)", m.Name, m.Addr))
	}
	fmt.Fprintf(w, "control machines\t%s\t\n", strings.Join(machines, ", "))

	fmt.Fprintf(w, "serial\t%s\t%d baud, %ds timeout\n", cfg.SerialPort, cfg.SerialBaud, cfg.SerialTimeout)
	fmt.Fprintf(w, "site\t%.4f, %.4f\t%.0f m\n", cfg.Latitude, cfg.Longitude, cfg.Altitude)
	fmt.Fprintf(w, "HA limits\t[%g, %g]\t\n", cfg.HASoftLimits[0], cfg.HASoftLimits[1])
	fmt.Fprintf(w, "Dec limits\t[%g, %g]\t\n", cfg.DecSoftLimits[0], cfg.DecSoftLimits[1])

	if cfg.IdleLoopDelay != nil {
		fmt.Fprintf(w, "idle loop delay\t%gs\t\n", *cfg.IdleLoopDelay)
	}

	w.Flush()

	fmt.Println()
	fmt.Println(headerStyle.Render("park positions"))

	names := make([]string, 0, len(cfg.ParkPositions))
	for name := range cfg.ParkPositions {
		names = append(names, name)
	}
	sort.Strings(names)

	pw := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	for _, name := range names {
		p := cfg.ParkPositions[name]
		fmt.Fprintf(pw, "%s\t%s\talt %g\taz %g\n", name, p.Desc, p.Alt, p.Az)
	}
	pw.Flush()
}
