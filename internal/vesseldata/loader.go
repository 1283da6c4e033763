// Package vesseldata loads vessel stability tables from CSV files, from the
// embedded default dataset, or from a SQLite vessel library, and hands the
// parsed sequences to the stability package for validation.
//
// Two file formats are accepted. Hydrostatics:
//
//	draft,displacement,tpc,mtc,lcb,lcf,kb,tkm
//	2.00,10490.0,57.21,606.0,111.60,108.80,1.040,32.734
//
// Cross curves, long form, one sample per line:
//
//	heel_angle,displacement,kn
//	5,8000,3.811
package vesseldata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/jmorneau/loadicator/internal/stability"
)

// hydroHeader is the required hydrostatics column order.
var hydroHeader = []string{"draft", "displacement", "tpc", "mtc", "lcb", "lcf", "kb", "tkm"}

// knHeader is the required cross-curve column order.
var knHeader = []string{"heel_angle", "displacement", "kn"}

// ParseHydrostatics reads the hydrostatic table from CSV. Rows are sorted by
// draft; duplicate drafts and other structural problems are left to
// stability.NewTableStore, which performs the authoritative validation.
func ParseHydrostatics(r io.Reader) ([]stability.HydrostaticRow, error) {
	records, err := readCSV(r, hydroHeader)
	if err != nil {
		return nil, fmt.Errorf("hydrostatics: %w", err)
	}

	rows := make([]stability.HydrostaticRow, 0, len(records))
	for i, rec := range records {
		vals, err := parseFloats(rec)
		if err != nil {
			return nil, fmt.Errorf("hydrostatics: line %d: %w", i+2, err)
		}
		rows = append(rows, stability.HydrostaticRow{
			Draft:        vals[0],
			Displacement: vals[1],
			TPC:          vals[2],
			MTC:          vals[3],
			LCB:          vals[4],
			LCF:          vals[5],
			KB:           vals[6],
			TKM:          vals[7],
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Draft < rows[j].Draft })
	return rows, nil
}

// ParseKNCurves reads the cross-curve table from long-form CSV, grouping
// samples into one series per heel angle. Series are sorted by angle and
// each series by displacement.
func ParseKNCurves(r io.Reader) ([]stability.KNSeries, error) {
	records, err := readCSV(r, knHeader)
	if err != nil {
		return nil, fmt.Errorf("kn curves: %w", err)
	}

	byAngle := make(map[float64][]stability.KNPoint)
	for i, rec := range records {
		vals, err := parseFloats(rec)
		if err != nil {
			return nil, fmt.Errorf("kn curves: line %d: %w", i+2, err)
		}
		angle := vals[0]
		byAngle[angle] = append(byAngle[angle], stability.KNPoint{
			Displacement: vals[1],
			KN:           vals[2],
		})
	}

	series := make([]stability.KNSeries, 0, len(byAngle))
	for angle, points := range byAngle {
		sort.Slice(points, func(i, j int) bool { return points[i].Displacement < points[j].Displacement })
		series = append(series, stability.KNSeries{Angle: angle, Points: points})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Angle < series[j].Angle })
	return series, nil
}

// LoadFiles parses both tables from disk and builds a validated TableStore.
func LoadFiles(hydroPath, knPath string) (*stability.TableStore, error) {
	hf, err := os.Open(hydroPath)
	if err != nil {
		return nil, fmt.Errorf("opening hydrostatics file: %w", err)
	}
	defer hf.Close()

	rows, err := ParseHydrostatics(hf)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", hydroPath, err)
	}

	kf, err := os.Open(knPath)
	if err != nil {
		return nil, fmt.Errorf("opening kn curves file: %w", err)
	}
	defer kf.Close()

	series, err := ParseKNCurves(kf)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", knPath, err)
	}

	return stability.NewTableStore(rows, series)
}

// readCSV reads all records, verifying the header matches the expected
// column set exactly.
func readCSV(r io.Reader, header []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	got, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(got) != len(header) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(header), len(got))
	}
	for i, name := range header {
		if got[i] != name {
			return nil, fmt.Errorf("expected column %d to be %q, got %q", i+1, name, got[i])
		}
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return records, nil
}

func parseFloats(rec []string) ([]float64, error) {
	vals := make([]float64, len(rec))
	for i, s := range rec {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: invalid number %q", i+1, s)
		}
		vals[i] = v
	}
	return vals, nil
}
