package library

import "github.com/Jimmyu2foru18/Music-Website/internal/models"

// Fallback records written on the first read of each collection.

func seedUsers() []models.User {
	return []models.User{
		{
			ID:        "u1",
			Username:  "MelodyFan99",
			Email:     "user@example.com",
			Password:  "password123",
			AvatarURL: "https://picsum.photos/200/200?random=1",
			Bio:       "Music enthusiast. Lover of rock and electronic beats. Building the ultimate playlist collection.",
			Role:      models.RoleUser,
		},
		{
			ID:        "admin1",
			Username:  "Admin",
			Email:     "admin@melodyview.com",
			Password:  "admin123",
			AvatarURL: "https://ui-avatars.com/api/?name=Admin&background=dc2626&color=fff",
			Bio:       "Platform Administrator",
			Role:      models.RoleAdmin,
		},
	}
}

func seedPlaylists() []models.Playlist {
	pool := models.FeaturedSongs()
	return []models.Playlist{
		{
			ID:        "p1",
			Name:      "Gym Hype",
			CreatorID: "u1",
			Songs:     []models.Song{pool[2]},
			CoverURL:  "https://picsum.photos/300/300?random=10",
			Platform:  models.PlatformSpotify,
		},
		{
			ID:        "p2",
			Name:      "Chill Sunday",
			CreatorID: "u1",
			Songs:     []models.Song{pool[0]},
			CoverURL:  "https://picsum.photos/300/300?random=11",
			Platform:  models.PlatformMixed,
		},
		{
			ID:        "p3",
			Name:      "Code Focus",
			CreatorID: "u1",
			Songs:     []models.Song{pool[1]},
			CoverURL:  "https://picsum.photos/300/300?random=12",
			Platform:  models.PlatformYouTube,
		},
	}
}

func seedReviews() []models.Review {
	pool := models.FeaturedSongs()
	return []models.Review{
		{
			ID:         "r1",
			UserID:     "u2",
			Username:   "RockStar",
			UserAvatar: "https://picsum.photos/100/100?random=20",
			Song:       pool[3],
			Rating:     5,
			Content:    "An absolute masterpiece. The guitar solo at the end is timeless.",
			Date:       "2023-10-25",
		},
		{
			ID:         "r2",
			UserID:     "u3",
			Username:   "PopQueen",
			UserAvatar: "https://picsum.photos/100/100?random=21",
			Song: models.Song{
				ID:         "s_espresso",
				Title:      "Espresso",
				Artist:     "Sabrina Carpenter",
				AlbumCover: "https://i.scdn.co/image/ab67616d0000b273659cd4673230913b3918e0d5",
				Platform:   models.PlatformSpotify,
				Duration:   "2:55",
			},
			Rating:  4,
			Content: "Super catchy, but gets stuck in your head a bit too easily!",
			Date:    "2023-10-24",
		},
	}
}
