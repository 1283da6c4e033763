package vesseldata

import (
	"path/filepath"
	"testing"

	"github.com/jmorneau/loadicator/internal/stability"
)

func testRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "vessels.db"))
}

func TestRepository_SaveAndLoad(t *testing.T) {
	repo := testRepository(t)

	rows, series, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error = %v", err)
	}

	if err := repo.SaveVessel(DefaultVesselName, rows, series); err != nil {
		t.Fatalf("SaveVessel() error = %v", err)
	}

	ts, err := repo.LoadVessel(DefaultVesselName)
	if err != nil {
		t.Fatalf("LoadVessel() error = %v", err)
	}

	minDraft, maxDraft := ts.DraftRange()
	if minDraft != 2.00 || maxDraft != 13.02 {
		t.Errorf("draft range = [%v, %v], want [2.00, 13.02]", minDraft, maxDraft)
	}
	if got := len(ts.Angles()); got != 13 {
		t.Errorf("got %d angles, want 13", got)
	}

	// Round-trip preserves interpolation inputs.
	disp, err := ts.Hydrostatic(stability.ColDisplacement, 10.0)
	if err != nil {
		t.Fatalf("Hydrostatic() error = %v", err)
	}
	if disp != 58171 {
		t.Errorf("displacement at 10.0 m = %v, want 58171", disp)
	}
}

func TestRepository_SaveReplacesExisting(t *testing.T) {
	repo := testRepository(t)

	rows, series, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error = %v", err)
	}

	if err := repo.SaveVessel("Test Vessel", rows, series); err != nil {
		t.Fatalf("first SaveVessel() error = %v", err)
	}

	// Save again with a truncated dataset; the old rows must not linger.
	if err := repo.SaveVessel("Test Vessel", rows[:4], series); err != nil {
		t.Fatalf("second SaveVessel() error = %v", err)
	}

	ts, err := repo.LoadVessel("Test Vessel")
	if err != nil {
		t.Fatalf("LoadVessel() error = %v", err)
	}
	_, maxDraft := ts.DraftRange()
	if maxDraft != rows[3].Draft {
		t.Errorf("max draft = %v, want %v after replacement", maxDraft, rows[3].Draft)
	}
}

func TestRepository_ListVessels(t *testing.T) {
	repo := testRepository(t)

	rows, series, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error = %v", err)
	}

	for _, name := range []string{"Zeta", "Alpha"} {
		if err := repo.SaveVessel(name, rows, series); err != nil {
			t.Fatalf("SaveVessel(%q) error = %v", name, err)
		}
	}

	names, err := repo.ListVessels()
	if err != nil {
		t.Fatalf("ListVessels() error = %v", err)
	}
	if len(names) != 2 || names[0] != "Alpha" || names[1] != "Zeta" {
		t.Errorf("ListVessels() = %v, want [Alpha Zeta]", names)
	}
}

func TestRepository_LoadMissingVessel(t *testing.T) {
	repo := testRepository(t)

	if _, err := repo.LoadVessel("No Such Ship"); err == nil {
		t.Error("LoadVessel() expected error for missing vessel")
	}
}

func TestRepository_DeleteVessel(t *testing.T) {
	repo := testRepository(t)

	rows, series, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error = %v", err)
	}
	if err := repo.SaveVessel("Ephemeral", rows, series); err != nil {
		t.Fatalf("SaveVessel() error = %v", err)
	}

	if err := repo.DeleteVessel("Ephemeral"); err != nil {
		t.Fatalf("DeleteVessel() error = %v", err)
	}

	names, err := repo.ListVessels()
	if err != nil {
		t.Fatalf("ListVessels() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("ListVessels() = %v, want empty after delete", names)
	}
}
