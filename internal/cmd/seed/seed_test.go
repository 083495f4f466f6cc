package seed

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/storage/sqlite"
)

func TestRunSeedsDemoData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskgate.db")
	if err := Run(context.Background(), Config{StoragePath: path}); err != nil {
		t.Fatalf("seed run: %v", err)
	}

	store, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	users, err := store.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("expected 4 demo users, got %d", len(users))
	}

	tiers := map[string]access.Tier{}
	for _, user := range users {
		tiers[user.Username] = user.Tier
	}
	if tiers["admin"] != access.TierAdmin || tiers["guest"] != access.TierUnauthenticated {
		t.Fatalf("unexpected tiers: %v", tiers)
	}

	_, ok, err := store.FindByCredentials(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if !ok {
		t.Fatal("expected seeded admin credentials to verify")
	}

	tasks, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 4 {
		t.Fatalf("expected 4 demo tasks, got %d", len(tasks))
	}
}

func TestRunIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskgate.db")
	for range 2 {
		if err := Run(context.Background(), Config{StoragePath: path}); err != nil {
			t.Fatalf("seed run: %v", err)
		}
	}

	store, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	count, err := store.CountUsers(context.Background())
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected second run to be a no-op, got %d users", count)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.StoragePath != "taskgate.db" {
		t.Fatalf("StoragePath = %q, want default", cfg.StoragePath)
	}
}

func TestParseConfigFlagOverride(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-storage-path", "/tmp/seed.db"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.StoragePath != "/tmp/seed.db" {
		t.Fatalf("StoragePath = %q, want flag override", cfg.StoragePath)
	}
}
