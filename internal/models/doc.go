// Package models defines the domain entities for the Melody View music discovery service.
//
// All entities are JSON-serializable records persisted by the store package as
// whole collections under fixed keys:
//   - [User] : accounts with a role ("user" or "admin"); passwords are stored in plaintext by documented design
//   - [Song] : a value object embedded inside playlists, reviews, and day picks; equality is by ID
//   - [Playlist] : an ordered song sequence with a derived platform tag
//   - [Review] : an immutable post snapshotting its author at submission time
//   - [DayPick] : the song of the day for one calendar date
//
// The platform tag derivation rule lives here ([DerivePlatform]) so every
// mutation path shares a single implementation.
package models
