// Package server provides HTTP routing, middleware, and the Spotify
// implicit-grant callback used by the CLI connect flow.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Implicit-Grant Callback
//
// The implicit grant returns the access token in the redirect URL's
// fragment, which browsers never send to the server. [CallbackHandler]
// therefore serves a small relay page at the redirect URI: a script reads
// the fragment client-side and forwards it to the /token endpoint as a
// query string, where it is parsed and persisted. The handler processes one
// token delivery and reports completion through a channel.
//
// # Current Usage
//
// When the user runs the connect command, a temporary HTTP server starts on
// the configured host and port, handles the relay, and shuts down after the
// credential is stored.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
