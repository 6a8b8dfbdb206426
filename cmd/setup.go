package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
	"github.com/urfave/cli/v3"
)

// Setup creates the configuration file and initializes the local store.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	r.logger.Info("initializing store", "path", config.Database.Path)

	// Open applies pending migrations before returning.
	st, err := store.Open(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	st.Configure(config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	r.logger.Infof("setup complete for store: %v", config.Database.Path)
	return nil
}
