package library

import (
	"fmt"

	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
)

func (l *Library) loadReviews() ([]models.Review, error) {
	var reviews []models.Review
	ok, err := l.store.ReadJSON(store.KeyReviews, &reviews)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	if !ok {
		reviews = seedReviews()
		if err := l.store.WriteJSON(store.KeyReviews, reviews); err != nil {
			return nil, fmt.Errorf("failed to seed reviews: %w", err)
		}
		l.logger.Debug("seeded review collection", "count", len(reviews))
	}
	return reviews, nil
}

// ListReviews returns every stored review, most recent first.
func (l *Library) ListReviews() ([]models.Review, error) {
	return l.loadReviews()
}

// AddReview validates and stores a review authored by the signed-in user.
// The author's name and avatar are snapshotted into the record.
func (l *Library) AddReview(song models.Song, rating int, content string) (models.Review, error) {
	current := l.session.Current()
	if current == nil {
		return models.Review{}, shared.ErrNotAuthenticated
	}

	review := models.Review{
		ID:         shared.GenerateID(),
		UserID:     current.ID,
		Username:   current.Username,
		UserAvatar: current.AvatarURL,
		Song:       song,
		Rating:     rating,
		Content:    content,
		Date:       l.today(),
	}
	if err := review.Validate(); err != nil {
		return models.Review{}, err
	}

	reviews, err := l.loadReviews()
	if err != nil {
		return models.Review{}, err
	}
	reviews = append([]models.Review{review}, reviews...)
	if err := l.store.WriteJSON(store.KeyReviews, reviews); err != nil {
		return models.Review{}, fmt.Errorf("failed to save reviews: %w", err)
	}
	return review, nil
}
