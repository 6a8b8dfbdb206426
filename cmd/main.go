package main

import (
	"context"
	"errors"
	"os"

	"github.com/Jimmyu2foru18/Music-Website/internal/auth"
	"github.com/Jimmyu2foru18/Music-Website/internal/library"
	"github.com/Jimmyu2foru18/Music-Website/internal/services"
	"github.com/Jimmyu2foru18/Music-Website/internal/session"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
	"github.com/urfave/cli/v3"
)

func main() {
	shared.LoadDotenv()
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	st, err := store.Open(config.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	st.Configure(config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	sess, err := session.New(st)
	if err != nil {
		logger.Fatalf("failed to restore session: %v", err)
	}

	lib := library.New(st, sess, logger)
	creds := auth.NewManager(st, config.Credentials.Spotify.ClientID, config.Credentials.Spotify.RedirectURI, logger)
	youtubeService := services.NewYouTubeService(config.Credentials.YouTube.APIKey)
	spotifyService := services.NewSpotifyService(creds, logger)
	catalog := services.NewAggregator(youtubeService, spotifyService, logger)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Store:   st,
		Library: lib,
		Creds:   creds,
		Spotify: spotifyService,
		Catalog: catalog,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "melodyview",
		Usage:    "Discover, collect, and review music across YouTube & Spotify",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
