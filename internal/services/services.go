// package services implements the external music catalog clients
//
// YouTube Data API (keyed), Spotify Web API (delegated bearer token)
package services

import (
	"context"

	"github.com/Jimmyu2foru18/Music-Website/internal/models"
)

// Catalog is a searchable music source. Implementations map their native
// result shapes onto [models.Song].
type Catalog interface {
	// Search looks up tracks matching the query. The result order is the
	// catalog's relevance order.
	Search(ctx context.Context, query string) ([]models.Song, error)

	// Name returns the catalog name for logging.
	Name() string
}
