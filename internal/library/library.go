package library

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Jimmyu2foru18/Music-Website/internal/session"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
)

// Library provides access to the persisted collections. All methods load the
// affected collection, mutate it in memory, and write it back whole.
type Library struct {
	store   *store.Store
	session *session.Session
	logger  *log.Logger

	// Injection points for deterministic tests.
	now  func() time.Time
	pick func(n int) int
}

// New creates a library over the given store and session.
func New(st *store.Store, sess *session.Session, logger *log.Logger) *Library {
	return &Library{
		store:   st,
		session: sess,
		logger:  logger,
		now:     time.Now,
		pick:    rand.Intn,
	}
}

// today renders the current calendar date the way pick records store it.
func (l *Library) today() string {
	return l.now().Format("2006-01-02")
}
