package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/jmorneau/loadicator/internal/report"
	"github.com/jmorneau/loadicator/internal/stability"
	"github.com/jmorneau/loadicator/internal/vesseldata"
)

func main() {
	draft := flag.Float64("draft", math.NaN(), "Draft at perpendiculars in metres")
	kg := flag.Float64("kg", math.NaN(), "Vertical centre of gravity (KG) in metres")
	hydroPath := flag.String("hydrostatics", "", "Path to a hydrostatics CSV (requires --kn-curves)")
	knPath := flag.String("kn-curves", "", "Path to a KN curves CSV (requires --hydrostatics)")
	dbPath := flag.String("db", "", "Path to a vessel library database")
	vessel := flag.String("vessel", "", "Name of a saved vessel to load from --db")
	saveVessel := flag.String("save-vessel", "", "Save the loaded tables under this name in --db and exit")
	listVessels := flag.Bool("list-vessels", false, "List vessels saved in --db and exit")
	showRanges := flag.Bool("ranges", false, "Print the valid input ranges for the loaded tables and exit")
	flag.Parse()

	if (*hydroPath == "") != (*knPath == "") {
		fmt.Println("Error: --hydrostatics and --kn-curves must be given together.")
		os.Exit(1)
	}
	if *vessel != "" && *dbPath == "" {
		fmt.Println("Error: --vessel requires --db.")
		os.Exit(1)
	}

	if *listVessels {
		if *dbPath == "" {
			fmt.Println("Error: --list-vessels requires --db.")
			os.Exit(1)
		}
		names, err := vesseldata.NewRepository(*dbPath).ListVessels()
		if err != nil {
			fmt.Printf("Error listing vessels: %v\n", err)
			os.Exit(1)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	name, rows, series, err := loadTables(*hydroPath, *knPath, *dbPath, *vessel)
	if err != nil {
		fmt.Printf("Error loading vessel data: %v\n", err)
		os.Exit(1)
	}

	if *saveVessel != "" {
		if *dbPath == "" {
			fmt.Println("Error: --save-vessel requires --db.")
			os.Exit(1)
		}
		if rows == nil {
			fmt.Println("Error: --save-vessel needs a CSV or embedded source, not --vessel.")
			os.Exit(1)
		}
		if err := vesseldata.NewRepository(*dbPath).SaveVessel(*saveVessel, rows, series); err != nil {
			fmt.Printf("Error saving vessel: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %q to %s\n", *saveVessel, *dbPath)
		if math.IsNaN(*draft) && math.IsNaN(*kg) {
			return
		}
	}

	ts, err := buildStore(rows, series, *dbPath, *vessel)
	if err != nil {
		fmt.Printf("Error loading vessel data: %v\n", err)
		os.Exit(1)
	}

	if *showRanges {
		fmt.Print(report.RenderRanges(ts))
		return
	}

	if math.IsNaN(*draft) || math.IsNaN(*kg) {
		fmt.Println("Error: --draft and --kg are required.")
		fmt.Println()
		fmt.Print(report.RenderRanges(ts))
		os.Exit(1)
	}
	if *kg <= 0 {
		fmt.Printf("Error: KG must be positive (got %.2f m).\n", *kg)
		os.Exit(1)
	}

	res, err := stability.ComputeCurve(ts, stability.StabilityInput{Draft: *draft, KG: *kg})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		var rangeErr *stability.RangeError
		if errors.As(err, &rangeErr) {
			fmt.Println()
			fmt.Print(report.RenderRanges(ts))
		}
		os.Exit(1)
	}

	verdict := stability.EvaluateCompliance(res)
	fmt.Print(report.Render(name, res, verdict))
	if !verdict.AllPass {
		os.Exit(2)
	}
}

// loadTables resolves the data source. Raw rows and series are returned for
// CSV and embedded sources so they can be saved to a vessel library; a
// database source yields only a store, built later by buildStore.
func loadTables(hydroPath, knPath, dbPath, vessel string) (string, []stability.HydrostaticRow, []stability.KNSeries, error) {
	switch {
	case hydroPath != "":
		hf, err := os.Open(hydroPath)
		if err != nil {
			return "", nil, nil, err
		}
		defer hf.Close()
		rows, err := vesseldata.ParseHydrostatics(hf)
		if err != nil {
			return "", nil, nil, fmt.Errorf("%s: %w", hydroPath, err)
		}
		kf, err := os.Open(knPath)
		if err != nil {
			return "", nil, nil, err
		}
		defer kf.Close()
		series, err := vesseldata.ParseKNCurves(kf)
		if err != nil {
			return "", nil, nil, fmt.Errorf("%s: %w", knPath, err)
		}
		return hydroPath, rows, series, nil

	case vessel != "":
		return vessel, nil, nil, nil

	default:
		rows, series, err := vesseldata.Embedded()
		return vesseldata.DefaultVesselName, rows, series, err
	}
}

func buildStore(rows []stability.HydrostaticRow, series []stability.KNSeries, dbPath, vessel string) (*stability.TableStore, error) {
	if rows == nil {
		return vesseldata.NewRepository(dbPath).LoadVessel(vessel)
	}
	return stability.NewTableStore(rows, series)
}
