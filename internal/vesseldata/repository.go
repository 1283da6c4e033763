package vesseldata

import (
	"database/sql"
	"fmt"

	"github.com/jmorneau/loadicator/internal/stability"
	_ "modernc.org/sqlite"
)

// Repository persists named vessel datasets (hydrostatic rows plus KN
// points) in a SQLite file, so operators can keep a library of vessels
// instead of carrying CSV files around. Calculation results are never
// stored; this is reference data only.
type Repository struct {
	path string
}

// NewRepository creates a repository backed by the SQLite file at path. The
// file and schema are created on first use.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

func (r *Repository) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", r.path)
	if err != nil {
		return nil, fmt.Errorf("opening vessel database: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// ensureSchema creates the vessel tables if they do not exist. Safe to call
// repeatedly.
func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS vessels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS hydrostatic_rows (
			vessel_id INTEGER NOT NULL REFERENCES vessels(id) ON DELETE CASCADE,
			draft REAL NOT NULL,
			displacement REAL NOT NULL,
			tpc REAL NOT NULL,
			mtc REAL NOT NULL,
			lcb REAL NOT NULL,
			lcf REAL NOT NULL,
			kb REAL NOT NULL,
			tkm REAL NOT NULL
		);
		CREATE TABLE IF NOT EXISTS kn_points (
			vessel_id INTEGER NOT NULL REFERENCES vessels(id) ON DELETE CASCADE,
			heel_angle REAL NOT NULL,
			displacement REAL NOT NULL,
			kn REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_hydrostatic_rows_vessel ON hydrostatic_rows(vessel_id);
		CREATE INDEX IF NOT EXISTS idx_kn_points_vessel ON kn_points(vessel_id);
	`)
	if err != nil {
		return fmt.Errorf("creating vessel schema: %w", err)
	}
	return nil
}

// SaveVessel stores (or replaces) a named vessel dataset.
func (r *Repository) SaveVessel(name string, rows []stability.HydrostaticRow, series []stability.KNSeries) error {
	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	// Replace any existing dataset for this name.
	var vesselID int64
	err = tx.QueryRow("SELECT id FROM vessels WHERE name = ?", name).Scan(&vesselID)
	switch {
	case err == sql.ErrNoRows:
		res, err := tx.Exec("INSERT INTO vessels (name) VALUES (?)", name)
		if err != nil {
			return fmt.Errorf("inserting vessel: %w", err)
		}
		vesselID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting vessel id: %w", err)
		}
	case err != nil:
		return fmt.Errorf("looking up vessel: %w", err)
	default:
		if _, err := tx.Exec("DELETE FROM hydrostatic_rows WHERE vessel_id = ?", vesselID); err != nil {
			return fmt.Errorf("clearing hydrostatic rows: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM kn_points WHERE vessel_id = ?", vesselID); err != nil {
			return fmt.Errorf("clearing kn points: %w", err)
		}
	}

	for _, row := range rows {
		_, err := tx.Exec(`
			INSERT INTO hydrostatic_rows (vessel_id, draft, displacement, tpc, mtc, lcb, lcf, kb, tkm)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			vesselID, row.Draft, row.Displacement, row.TPC, row.MTC, row.LCB, row.LCF, row.KB, row.TKM,
		)
		if err != nil {
			return fmt.Errorf("inserting hydrostatic row: %w", err)
		}
	}

	for _, s := range series {
		for _, p := range s.Points {
			_, err := tx.Exec(
				"INSERT INTO kn_points (vessel_id, heel_angle, displacement, kn) VALUES (?, ?, ?, ?)",
				vesselID, s.Angle, p.Displacement, p.KN,
			)
			if err != nil {
				return fmt.Errorf("inserting kn point: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing vessel %q: %w", name, err)
	}
	return nil
}

// LoadVessel reads a named vessel dataset and builds a validated TableStore.
func (r *Repository) LoadVessel(name string) (*stability.TableStore, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var vesselID int64
	err = db.QueryRow("SELECT id FROM vessels WHERE name = ?", name).Scan(&vesselID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vessel %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up vessel: %w", err)
	}

	hydroRows, err := db.Query(`
		SELECT draft, displacement, tpc, mtc, lcb, lcf, kb, tkm
		FROM hydrostatic_rows WHERE vessel_id = ? ORDER BY draft`, vesselID)
	if err != nil {
		return nil, fmt.Errorf("querying hydrostatic rows: %w", err)
	}
	defer hydroRows.Close()

	var rows []stability.HydrostaticRow
	for hydroRows.Next() {
		var row stability.HydrostaticRow
		if err := hydroRows.Scan(&row.Draft, &row.Displacement, &row.TPC, &row.MTC,
			&row.LCB, &row.LCF, &row.KB, &row.TKM); err != nil {
			return nil, fmt.Errorf("scanning hydrostatic row: %w", err)
		}
		rows = append(rows, row)
	}
	if err := hydroRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hydrostatic rows: %w", err)
	}

	knRows, err := db.Query(`
		SELECT heel_angle, displacement, kn
		FROM kn_points WHERE vessel_id = ? ORDER BY heel_angle, displacement`, vesselID)
	if err != nil {
		return nil, fmt.Errorf("querying kn points: %w", err)
	}
	defer knRows.Close()

	var series []stability.KNSeries
	for knRows.Next() {
		var angle float64
		var p stability.KNPoint
		if err := knRows.Scan(&angle, &p.Displacement, &p.KN); err != nil {
			return nil, fmt.Errorf("scanning kn point: %w", err)
		}
		if len(series) == 0 || series[len(series)-1].Angle != angle {
			series = append(series, stability.KNSeries{Angle: angle})
		}
		last := len(series) - 1
		series[last].Points = append(series[last].Points, p)
	}
	if err := knRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating kn points: %w", err)
	}

	return stability.NewTableStore(rows, series)
}

// ListVessels returns the names of all stored vessels, alphabetically.
func (r *Repository) ListVessels() ([]string, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT name FROM vessels ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying vessels: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning vessel name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteVessel removes a vessel and its tables by name.
func (r *Repository) DeleteVessel(name string) error {
	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := db.Exec("DELETE FROM vessels WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting vessel: %w", err)
	}
	return nil
}
