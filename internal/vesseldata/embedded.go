package vesseldata

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/jmorneau/loadicator/internal/stability"
)

// DefaultVesselName identifies the vessel the embedded dataset describes.
const DefaultVesselName = "MV Del Monte"

//go:embed data/hydrostatics.csv
var embeddedHydrostatics []byte

//go:embed data/kn_curves.csv
var embeddedKNCurves []byte

// Embedded returns the parsed embedded tables for the default vessel, so
// the binaries work with no data files on disk.
func Embedded() ([]stability.HydrostaticRow, []stability.KNSeries, error) {
	rows, err := ParseHydrostatics(bytes.NewReader(embeddedHydrostatics))
	if err != nil {
		return nil, nil, fmt.Errorf("embedded dataset: %w", err)
	}
	series, err := ParseKNCurves(bytes.NewReader(embeddedKNCurves))
	if err != nil {
		return nil, nil, fmt.Errorf("embedded dataset: %w", err)
	}
	return rows, series, nil
}

// EmbeddedStore builds a validated TableStore from the embedded dataset.
func EmbeddedStore() (*stability.TableStore, error) {
	rows, series, err := Embedded()
	if err != nil {
		return nil, err
	}
	return stability.NewTableStore(rows, series)
}
