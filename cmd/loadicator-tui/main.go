package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmorneau/loadicator/internal/stability"
	"github.com/jmorneau/loadicator/internal/ui"
	"github.com/jmorneau/loadicator/internal/vesseldata"
)

func main() {
	hydroPath := flag.String("hydrostatics", "", "Path to a hydrostatics CSV (requires --kn-curves)")
	knPath := flag.String("kn-curves", "", "Path to a KN curves CSV (requires --hydrostatics)")
	dbPath := flag.String("db", "", "Path to a vessel library database")
	vessel := flag.String("vessel", "", "Name of a saved vessel to load from --db")
	flag.Parse()

	if (*hydroPath == "") != (*knPath == "") {
		fmt.Println("Error: --hydrostatics and --kn-curves must be given together.")
		os.Exit(1)
	}
	if *vessel != "" && *dbPath == "" {
		fmt.Println("Error: --vessel requires --db.")
		os.Exit(1)
	}

	name, store, err := loadStore(*hydroPath, *knPath, *dbPath, *vessel)
	if err != nil {
		fmt.Printf("Error loading vessel data: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(ui.NewModel(store, name), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadStore(hydroPath, knPath, dbPath, vessel string) (string, *stability.TableStore, error) {
	switch {
	case hydroPath != "":
		ts, err := vesseldata.LoadFiles(hydroPath, knPath)
		return hydroPath, ts, err
	case vessel != "":
		ts, err := vesseldata.NewRepository(dbPath).LoadVessel(vessel)
		return vessel, ts, err
	default:
		ts, err := vesseldata.EmbeddedStore()
		return vesseldata.DefaultVesselName, ts, err
	}
}
