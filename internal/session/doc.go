// Package session tracks the currently signed-in user.
//
// A [Session] is the sole writer of the persisted current-user record. All
// sign-in, sign-out, and profile updates flow through it, and interested
// components can subscribe to be notified whenever the user changes.
package session
