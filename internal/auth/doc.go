// Package auth manages the delegated Spotify credential.
//
// The credential arrives via the implicit grant flow: the user is sent to
// Spotify's authorize endpoint and comes back with an access token and a
// lifetime in the redirect URL's fragment. [Manager] persists the token with
// an absolute expiry and treats an expired token exactly like a missing one.
// There is no refresh: once expired, the user reconnects.
package auth
