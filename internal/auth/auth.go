package auth

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
)

const (
	authorizeEndpoint = "https://accounts.spotify.com/authorize"
	authorizeScopes   = "user-read-private user-read-email"
)

// Manager holds the delegated Spotify credential and its expiry.
type Manager struct {
	store       *store.Store
	clientID    string
	redirectURI string
	logger      *log.Logger

	now func() time.Time
}

// NewManager creates a credential manager. The redirect URI is normalized to
// carry a trailing slash because the authorize endpoint requires an exact
// match with the value registered in the app dashboard.
func NewManager(st *store.Store, clientID, redirectURI string, logger *log.Logger) *Manager {
	return &Manager{
		store:       st,
		clientID:    clientID,
		redirectURI: NormalizeRedirectURI(redirectURI),
		logger:      logger,
		now:         time.Now,
	}
}

// NormalizeRedirectURI appends a trailing slash when the URI lacks one.
func NormalizeRedirectURI(uri string) string {
	if uri == "" || strings.HasSuffix(uri, "/") {
		return uri
	}
	return uri + "/"
}

// Configured reports whether a client ID is available for the authorize flow.
func (m *Manager) Configured() bool {
	return m.clientID != "" && !strings.HasPrefix(m.clientID, "YOUR_")
}

// AuthorizeURL builds the implicit-grant authorize URL the user visits to
// delegate access. It is a pure function of the configuration.
func (m *Manager) AuthorizeURL() string {
	params := url.Values{}
	params.Set("client_id", m.clientID)
	params.Set("redirect_uri", m.redirectURI)
	params.Set("scope", authorizeScopes)
	params.Set("response_type", "token")
	params.Set("show_dialog", "true")
	return authorizeEndpoint + "?" + params.Encode()
}

// HandleCallbackFragment consumes the URL fragment Spotify appends to the
// redirect, e.g. "access_token=...&token_type=Bearer&expires_in=3600". On
// success the token is persisted with an absolute expiry.
func (m *Manager) HandleCallbackFragment(fragment string) error {
	params, err := url.ParseQuery(strings.TrimPrefix(fragment, "#"))
	if err != nil {
		return fmt.Errorf("%w: malformed callback fragment", shared.ErrInvalidInput)
	}

	if errCode := params.Get("error"); errCode != "" {
		return fmt.Errorf("%w: authorization refused: %s", shared.ErrAPIRequest, errCode)
	}

	token := params.Get("access_token")
	expiresIn, convErr := strconv.Atoi(params.Get("expires_in"))
	if token == "" || convErr != nil || expiresIn <= 0 {
		return fmt.Errorf("%w: callback fragment missing token or expiry", shared.ErrInvalidInput)
	}

	expiry := m.now().Add(time.Duration(expiresIn) * time.Second).UnixMilli()
	if err := m.store.Put(store.KeySpotifyToken, []byte(token)); err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	if err := m.store.Put(store.KeyTokenExpiry, []byte(strconv.FormatInt(expiry, 10))); err != nil {
		return fmt.Errorf("failed to save token expiry: %w", err)
	}

	m.logger.Info("stored delegated credential", "expires_in", expiresIn)
	return nil
}

// Token returns the stored access token if one exists and has not expired.
func (m *Manager) Token() (string, bool) {
	token, ok, err := m.store.Get(store.KeySpotifyToken)
	if err != nil || !ok || len(token) == 0 {
		return "", false
	}

	raw, ok, err := m.store.Get(store.KeyTokenExpiry)
	if err != nil || !ok {
		return "", false
	}
	expiry, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || m.now().UnixMilli() >= expiry {
		return "", false
	}

	return string(token), true
}

// Connected reports whether a usable credential is stored.
func (m *Manager) Connected() bool {
	_, ok := m.Token()
	return ok
}

// Disconnect discards the stored credential. It is safe to call when no
// credential exists.
func (m *Manager) Disconnect() error {
	if err := m.store.Delete(store.KeySpotifyToken); err != nil {
		return fmt.Errorf("failed to discard access token: %w", err)
	}
	if err := m.store.Delete(store.KeyTokenExpiry); err != nil {
		return fmt.Errorf("failed to discard token expiry: %w", err)
	}
	return nil
}
