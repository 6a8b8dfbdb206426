package server

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/Jimmyu2foru18/Music-Website/internal/auth"
)

// CallbackResult reports the outcome of an implicit-grant callback.
type CallbackResult struct {
	err error
}

func (c *CallbackResult) Error() error {
	return c.err
}

// CallbackHandler receives the Spotify implicit-grant redirect.
// Implements the Handler interface for registration with a Router.
//
// The access token arrives in the URL fragment, which the browser keeps
// client-side. The root route serves a relay page whose script forwards the
// fragment to /token as an ordinary query string; /token parses and stores
// the credential.
type CallbackHandler struct {
	creds      *auth.Manager
	resultChan chan CallbackResult
	once       sync.Once
	tokenHit   bool
	mu         sync.Mutex
}

// NewCallbackHandler creates a callback handler storing into the given
// credential manager.
func NewCallbackHandler(creds *auth.Manager) *CallbackHandler {
	return &CallbackHandler{
		creds:      creds,
		resultChan: make(chan CallbackResult, 1),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *CallbackHandler) Routes() []string {
	return []string{"/", "/token"}
}

// ServeHTTP serves the relay page and the token endpoint.
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/token":
		h.handleToken(w, r)
	default:
		h.serveRelayPage(w)
	}
}

// handleToken consumes the relayed fragment. Only the first delivery is
// processed.
func (h *CallbackHandler) handleToken(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if h.tokenHit {
		h.mu.Unlock()
		http.Error(w, "Token already processed", http.StatusBadRequest)
		return
	}
	h.tokenHit = true
	h.mu.Unlock()

	if err := h.creds.HandleCallbackFragment(r.URL.RawQuery); err != nil {
		h.Send(CallbackResult{err: err})
		http.Error(w, "Authorization failed", http.StatusBadRequest)
		return
	}

	h.Send(CallbackResult{})
	w.WriteHeader(http.StatusNoContent)
}

func (h *CallbackHandler) serveRelayPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `
<!DOCTYPE html>
<html>
<head>
    <title>Connecting Spotify</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #f5f5f5; }
        .container { text-align: center; background: white; padding: 2rem;
                     border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #1DB954; margin: 0 0 1rem 0; }
        p { color: #666; margin: 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1 id="status">Connecting…</h1>
        <p id="detail">Forwarding the authorization result.</p>
    </div>
    <script>
        const fragment = window.location.hash.substring(1);
        const status = document.getElementById('status');
        const detail = document.getElementById('detail');
        if (!fragment) {
            status.textContent = 'Nothing to do';
            detail.textContent = 'No authorization result found in the URL.';
        } else {
            fetch('/token?' + fragment).then((res) => {
                if (res.ok) {
                    status.textContent = '✓ Spotify Connected';
                    detail.textContent = 'You can close this window and return to the terminal.';
                } else {
                    status.textContent = 'Authorization Failed';
                    detail.textContent = 'Return to the terminal for details.';
                }
                window.location.hash = '';
            });
        }
    </script>
</body>
</html>
`)
}

// Send sends the callback result through the channel (only once).
func (h *CallbackHandler) Send(result CallbackResult) {
	h.once.Do(func() {
		h.resultChan <- result
		close(h.resultChan)
	})
}

// Result returns the result channel for receiving flow completion.
//
// Channel will receive exactly one result and then be closed.
func (h *CallbackHandler) Result() <-chan CallbackResult {
	return h.resultChan
}
