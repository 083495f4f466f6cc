// Package seed populates a storage database with demo accounts and tasks.
package seed

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/taskgate/taskgate/internal/access"
	platformcmd "github.com/taskgate/taskgate/internal/platform/cmd"
	"github.com/taskgate/taskgate/internal/storage/sqlite"
)

// Config holds the seed command configuration.
type Config struct {
	StoragePath string `env:"TASKGATE_STORAGE_PATH" envDefault:"taskgate.db"`
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "SQLite database path")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type seedUser struct {
	username string
	password string
	tier     access.Tier
	tasks    []seedTask
}

type seedTask struct {
	title       string
	description string
	completed   bool
}

var demoUsers = []seedUser{
	{
		username: "admin",
		password: "admin123",
		tier:     access.TierAdmin,
		tasks: []seedTask{
			{title: "Review account tiers", description: "Check the demo roster"},
		},
	},
	{
		username: "premium",
		password: "password",
		tier:     access.TierPremiumUser,
		tasks: []seedTask{
			{title: "Write report", description: "Quarterly numbers"},
		},
	},
	{
		username: "free",
		password: "password",
		tier:     access.TierFreeUser,
		tasks: []seedTask{
			{title: "Buy groceries", description: "Milk, eggs, bread"},
			{title: "Walk the dog", completed: true},
		},
	},
	{
		username: "guest",
		password: "password",
		tier:     access.TierUnauthenticated,
	},
}

// Run seeds demo users and tasks. A database that already has users is left
// untouched so repeated runs stay safe.
func Run(ctx context.Context, cfg Config) error {
	store, err := sqlite.Open(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	count, err := store.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		log.Printf("seed: %d users already present, skipping", count)
		return nil
	}

	for _, user := range demoUsers {
		userID, err := store.CreateUser(ctx, user.username, user.password, user.tier)
		if err != nil {
			return fmt.Errorf("create user %s: %w", user.username, err)
		}
		for _, task := range user.tasks {
			taskID, err := store.Create(ctx, userID, task.title, task.description)
			if err != nil {
				return fmt.Errorf("create task for %s: %w", user.username, err)
			}
			if task.completed {
				if _, err := store.SetCompleted(ctx, taskID, true); err != nil {
					return fmt.Errorf("complete task for %s: %w", user.username, err)
				}
			}
		}
		log.Printf("seed: created %s (%s)", user.username, user.tier)
	}
	return nil
}
