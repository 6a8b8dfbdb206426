// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// accountCommand handles account registration and session operations
func accountCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "account",
		Aliases: []string{"acc"},
		Usage:   "Manage the local account and session",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Register a new account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Display name for the new account",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password",
						Required: true,
					},
				},
				Action: r.AccountRegister,
			},
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password",
						Required: true,
					},
				},
				Action: r.AccountLogin,
			},
			{
				Name:   "logout",
				Usage:  "Sign out of the current session",
				Action: r.AccountLogout,
			},
			{
				Name:    "whoami",
				Aliases: []string{"status"},
				Usage:   "Show the signed-in account",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.AccountWhoami,
			},
			{
				Name:  "update",
				Usage: "Update profile fields on the signed-in account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "username",
						Usage: "New display name",
					},
					&cli.StringFlag{
						Name:  "bio",
						Usage: "New profile bio",
					},
					&cli.StringFlag{
						Name:  "avatar",
						Usage: "New avatar image URL",
					},
				},
				Action: r.AccountUpdate,
			},
		},
	}
}

// adminCommand handles administrator-only user management
func adminCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "Administrator operations",
		Commands: []*cli.Command{
			{
				Name:  "users",
				Usage: "List all registered accounts",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.AdminUsers,
			},
			{
				Name:  "delete",
				Usage: "Delete an account by ID",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.AdminDeleteUser,
			},
		},
	}
}

// searchCommand searches both catalogs at once
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search YouTube and Spotify for tracks",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Search,
	}
}

// playlistCommand handles playlist CRUD and exports
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Manage playlists",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.PlaylistList,
			},
			{
				Name:  "show",
				Usage: "Show a playlist by ID or (fuzzy) name",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.PlaylistShow,
			},
			{
				Name:  "create",
				Usage: "Create an empty playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "cover",
						Usage: "Cover image URL",
					},
				},
				Action: r.PlaylistCreate,
			},
			{
				Name:  "delete",
				Usage: "Delete a playlist by ID or (fuzzy) name",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Action: r.PlaylistDelete,
			},
			{
				Name:  "add",
				Usage: "Search for a track and add the top result",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Track search query",
						Required: true,
					},
				},
				Action: r.PlaylistAddSong,
			},
			{
				Name:  "remove",
				Usage: "Remove a song from a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "song",
						Usage:    "Song ID to remove",
						Required: true,
					},
				},
				Action: r.PlaylistRemoveSong,
			},
			{
				Name:  "export",
				Usage: "Export a playlist to csv, markdown, or text",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, markdown, text, or json",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (or directory for markdown)",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Export every playlist concurrently",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent export workers for --all",
						Value: 5,
					},
				},
				Action: r.PlaylistExport,
			},
		},
	}
}

// reviewCommand handles song reviews
func reviewCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "review",
		Usage: "Read and post song reviews",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List reviews, newest first",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ReviewList,
			},
			{
				Name:  "add",
				Usage: "Search for a track and review the top result",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "rating",
						Aliases:  []string{"r"},
						Usage:    "Rating from 1 to 5",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "comment",
						Aliases:  []string{"c"},
						Usage:    "Review text",
						Required: true,
					},
				},
				Action: r.ReviewAdd,
			},
		},
	}
}

// sotdCommand shows the song of the day
func sotdCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sotd",
		Usage: "Show the song of the day",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "history",
				Usage: "Include past picks",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.SongOfTheDay,
	}
}

// spotifyCommand handles the delegated Spotify credential
func spotifyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "spotify",
		Aliases: []string{"spot"},
		Usage:   "Manage the Spotify connection",
		Commands: []*cli.Command{
			{
				Name:  "connect",
				Usage: "Authorize with Spotify in the browser",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SpotifyConnect,
			},
			{
				Name:   "status",
				Usage:  "Show whether a Spotify credential is stored",
				Action: r.SpotifyStatus,
			},
			{
				Name:   "disconnect",
				Usage:  "Discard the stored Spotify credential",
				Action: r.SpotifyDisconnect,
			},
		},
	}
}

// setupCommand creates the configuration file and initializes the local store.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create config.toml and initialize the local store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// tuiCommand returns the top-level TUI command for interactive search.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"browse", "ui"},
		Usage:   "Launch the interactive search and playlist browser",
		Action:  r.TUI,
	}
}
