// Package store implements the local key-value persistence layer.
//
// Every entity collection is one JSON blob under one fixed key ([KeyUsers],
// [KeyPlaylists], ...), so every read deserializes the whole collection and
// every write re-serializes it. The blobs live in a single SQLite table,
// created by embedded migrations run at open time.
//
// There is no record-level indexing, no pagination, and no schema version on
// the blobs themselves; two processes sharing one database file race with
// last-writer-wins semantics. Those are accepted limitations of the design,
// not bugs in this package.
package store
