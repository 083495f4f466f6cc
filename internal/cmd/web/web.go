// Package web wires configuration and storage for the web command.
package web

import (
	"context"
	"flag"
	"fmt"

	platformcmd "github.com/taskgate/taskgate/internal/platform/cmd"
	"github.com/taskgate/taskgate/internal/storage/sqlite"
	"github.com/taskgate/taskgate/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr    string `env:"TASKGATE_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	StoragePath string `env:"TASKGATE_STORAGE_PATH" envDefault:"taskgate.db"`
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "SQLite database path")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens storage and serves the web surface until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.StoragePath)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer func() { _ = store.Close() }()

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Users:    store,
			Tasks:    store,
			Sessions: store,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
