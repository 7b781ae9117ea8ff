package seed

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/louisbranch/petclinic/internal/services/web/storage/sqlite"
)

func openTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("sqlite.Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("store.Close() error = %v", err)
		}
	})
	return store
}

func TestSeedLoadsSampleOwners(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := Seed(ctx, store); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	_, total, err := store.FindOwnersByLastName(ctx, "", 1, 5)
	if err != nil {
		t.Fatalf("FindOwnersByLastName() error = %v", err)
	}
	if total != 10 {
		t.Fatalf("total owners = %d, want 10", total)
	}

	owners, total, err := store.FindOwnersByLastName(ctx, "Davis", 1, 5)
	if err != nil {
		t.Fatalf("FindOwnersByLastName(Davis) error = %v", err)
	}
	if total != 2 {
		t.Fatalf("Davis matches = %d, want 2", total)
	}
	if len(owners) != 2 {
		t.Fatalf("len(owners) = %d, want 2", len(owners))
	}

	betty, err := store.FindOwnerByID(ctx, owners[0].ID)
	if err != nil {
		t.Fatalf("FindOwnerByID() error = %v", err)
	}
	if len(betty.Pets) != 1 {
		t.Fatalf("len(betty.Pets) = %d, want 1", len(betty.Pets))
	}
	if betty.Pets[0].Name != "Basil" {
		t.Fatalf("pet name = %q, want %q", betty.Pets[0].Name, "Basil")
	}
}

func TestSeedSkipsPopulatedStore(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := Seed(ctx, store); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if err := Seed(ctx, store); err != nil {
		t.Fatalf("Seed() rerun error = %v", err)
	}

	_, total, err := store.FindOwnersByLastName(ctx, "", 1, 1)
	if err != nil {
		t.Fatalf("FindOwnersByLastName() error = %v", err)
	}
	if total != 10 {
		t.Fatalf("total owners after rerun = %d, want 10", total)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.DBPath != "petclinic.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "petclinic.db")
	}
}

func TestParseConfigFlagOverride(t *testing.T) {
	cfg, err := ParseConfig(flagSet(), []string{"-db-path", "/tmp/clinic.db"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.DBPath != "/tmp/clinic.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "/tmp/clinic.db")
	}
}

func flagSet() *flag.FlagSet {
	return flag.NewFlagSet("seed", flag.ContinueOnError)
}
