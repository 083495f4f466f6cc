package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.StoragePath != "taskgate.db" {
		t.Fatalf("StoragePath = %q, want %q", cfg.StoragePath, "taskgate.db")
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("TASKGATE_WEB_HTTP_ADDR", "127.0.0.1:9090")
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9090" {
		t.Fatalf("HTTPAddr = %q, want env override", cfg.HTTPAddr)
	}
}

func TestParseConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("TASKGATE_WEB_HTTP_ADDR", "127.0.0.1:9090")
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:7000"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:7000" {
		t.Fatalf("HTTPAddr = %q, want flag override", cfg.HTTPAddr)
	}
}

func TestParseConfigStoragePathFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-storage-path", "/tmp/alt.db"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.StoragePath != "/tmp/alt.db" {
		t.Fatalf("StoragePath = %q, want flag override", cfg.StoragePath)
	}
}
