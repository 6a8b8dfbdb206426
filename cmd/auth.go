package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Jimmyu2foru18/Music-Website/internal/server"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/urfave/cli/v3"
)

// SpotifyConnect runs the implicit-grant authorization flow.
//
// Starts a local HTTP server, opens the browser for user authorization, and
// stores the delegated access token relayed back by the callback page.
func (r *Runner) SpotifyConnect(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if config == nil {
		var err error
		if _, statErr := os.Stat(configPath); statErr == nil {
			config, err = shared.LoadConfig(configPath)
			if err != nil {
				r.logger.Warnf("failed to load config, using defaults %v", err)
				config = shared.DefaultConfig()
			}
		} else {
			config = shared.DefaultConfig()
		}
	}

	if r.creds == nil {
		return fmt.Errorf("%w: credential manager not initialized", shared.ErrServiceUnavailable)
	}
	if !r.creds.Configured() {
		return fmt.Errorf("%w: Spotify client_id must be set in config.toml or SPOTIFY_CLIENT_ID", shared.ErrInvalidArgument)
	}

	if err := r.doConnect(config); err != nil {
		return err
	}

	r.writePlainln("✓ Spotify connected")
	r.writePlain("You can now use: melodyview search <query>\n")

	return nil
}

// SpotifyStatus reports whether a Spotify credential is stored.
func (r *Runner) SpotifyStatus(ctx context.Context, cmd *cli.Command) error {
	if r.creds == nil {
		return fmt.Errorf("%w: credential manager not initialized", shared.ErrServiceUnavailable)
	}

	if r.creds.Connected() {
		r.writePlainln("✓ Connected: a valid Spotify credential is stored")
	} else {
		r.writePlainln("✗ Not connected")
		r.writePlain("Run: melodyview spotify connect\n")
	}
	return nil
}

// SpotifyDisconnect discards the stored Spotify credential.
func (r *Runner) SpotifyDisconnect(ctx context.Context, cmd *cli.Command) error {
	if r.creds == nil {
		return fmt.Errorf("%w: credential manager not initialized", shared.ErrServiceUnavailable)
	}

	if err := r.creds.Disconnect(); err != nil {
		return fmt.Errorf("failed to discard credential: %w", err)
	}

	r.writePlainln("✓ Spotify disconnected")
	return nil
}

// doConnect executes the implicit-grant flow with a local HTTP server.
func (r *Runner) doConnect(config *shared.Config) error {
	authURL := r.creds.AuthorizeURL()
	callbackHandler := server.NewCallbackHandler(r.creds)
	router := server.NewBasicRouter()
	router.Use(server.Logging(r.logger))
	router.Handler(callbackHandler)

	serverAddr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for Spotify authorization...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.CallbackResult

	select {
	case result = <-callbackHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return fmt.Errorf("authorization failed: %w", result.Error())
	}

	return nil
}
