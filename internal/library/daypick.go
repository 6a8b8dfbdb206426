package library

import (
	"fmt"

	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
)

const historyLimit = 30

// SongOfTheDay returns today's pick and the archive of past picks, newest
// first. The very first call pins the first featured song to today's date;
// afterwards the stored pick is reused until the calendar date changes, at
// which point it is archived and a random featured song takes its place.
func (l *Library) SongOfTheDay() (models.DayPick, []models.DayPick, error) {
	today := l.today()

	var history []models.DayPick
	if _, err := l.store.ReadJSON(store.KeySOTDHistory, &history); err != nil {
		return models.DayPick{}, nil, fmt.Errorf("failed to load pick history: %w", err)
	}

	var pick models.DayPick
	ok, err := l.store.ReadJSON(store.KeySOTD, &pick)
	if err != nil {
		return models.DayPick{}, nil, fmt.Errorf("failed to load today's pick: %w", err)
	}

	pool := models.FeaturedSongs()

	switch {
	case !ok:
		pick = models.DayPick{Date: today, Song: pool[0]}
		if err := l.store.WriteJSON(store.KeySOTD, pick); err != nil {
			return models.DayPick{}, nil, fmt.Errorf("failed to save today's pick: %w", err)
		}

	case pick.Date != today:
		history = append([]models.DayPick{pick}, history...)
		if len(history) > historyLimit {
			history = history[:historyLimit]
		}
		if err := l.store.WriteJSON(store.KeySOTDHistory, history); err != nil {
			return models.DayPick{}, nil, fmt.Errorf("failed to save pick history: %w", err)
		}

		pick = models.DayPick{Date: today, Song: pool[l.pick(len(pool))]}
		if err := l.store.WriteJSON(store.KeySOTD, pick); err != nil {
			return models.DayPick{}, nil, fmt.Errorf("failed to save today's pick: %w", err)
		}
		l.logger.Debug("rotated song of the day", "song", pick.Song.Title)
	}

	return pick, history, nil
}
