// Package library implements the application's persisted catalog: user
// accounts, playlists, reviews, and the song-of-the-day rotation.
//
// Each collection lives under a single store key and is read and written
// whole. Collections seed themselves with fixed fallback data on first
// access, so a fresh database behaves like a populated one. Sign-in state
// changes are routed through the [session.Session] passed at construction.
package library
