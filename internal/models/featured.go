package models

// featuredSongs is the fixed pool the home page, the song-of-the-day rotation,
// and the offline search substitute all draw from.
var featuredSongs = []Song{
	{
		ID:         "s1",
		Title:      "Midnight City",
		Artist:     "M83",
		AlbumCover: "https://i.scdn.co/image/ab67616d0000b273297a7a505b22591a457c7c35",
		Platform:   PlatformSpotify,
		Duration:   "4:03",
		URI:        "spotify:track:1eyzqe2QqGZUmfcPZtrIyt",
	},
	{
		ID:         "s2",
		Title:      "Bohemian Rhapsody",
		Artist:     "Queen",
		AlbumCover: "https://i.ytimg.com/vi/fJ9rUzIMcZQ/maxresdefault.jpg",
		Platform:   PlatformYouTube,
		Duration:   "5:55",
		URI:        "fJ9rUzIMcZQ",
	},
	{
		ID:         "s3",
		Title:      "Blinding Lights",
		Artist:     "The Weeknd",
		AlbumCover: "https://i.scdn.co/image/ab67616d0000b2738863bc11d2aa12b54f5aeb36",
		Platform:   PlatformSpotify,
		Duration:   "3:20",
		URI:        "spotify:track:0VjIjW4GlUZAMYd2vXMi3b",
	},
	{
		ID:         "s4",
		Title:      "Hotel California",
		Artist:     "Eagles",
		AlbumCover: "https://i.scdn.co/image/ab67616d0000b273e35798a7263598f822187a53",
		Platform:   PlatformSpotify,
		Duration:   "6:30",
		URI:        "spotify:track:40riOy7x9W7GXjyGp4pjAv",
	},
	{
		ID:         "s5",
		Title:      "Shape of You",
		Artist:     "Ed Sheeran",
		AlbumCover: "https://i.scdn.co/image/ab67616d0000b273ba5db46f4b838ef6027e6f96",
		Platform:   PlatformSpotify,
		Duration:   "3:53",
		URI:        "spotify:track:7qiZfU4dY1lWllzX7mPBI3",
	},
	{
		ID:         "s6",
		Title:      "Levitating",
		Artist:     "Dua Lipa",
		AlbumCover: "https://i.scdn.co/image/ab67616d0000b273bd26ede1ae69327010d49946",
		Platform:   PlatformSpotify,
		Duration:   "3:23",
		URI:        "spotify:track:5nujrmhLynf4yMoMtj8AQF",
	},
	{
		ID:         "s7",
		Title:      "Despacito",
		Artist:     "Luis Fonsi",
		AlbumCover: "https://i.scdn.co/image/ab67616d0000b2735447209353e4b3c4349479b4",
		Platform:   PlatformSpotify,
		Duration:   "3:48",
		URI:        "spotify:track:6habFhsOp2NvshLv26DqMb",
	},
	{
		ID:         "s8",
		Title:      "Cruel Summer",
		Artist:     "Taylor Swift",
		AlbumCover: "https://i.scdn.co/image/ab67616d0000b273e787cffec20aa2a396a61647",
		Platform:   PlatformSpotify,
		Duration:   "2:58",
		URI:        "spotify:track:1BxfuPKGuaTgP7aM0BzxDQ",
	},
}

// FeaturedSongs returns a copy of the featured song pool so callers can
// mutate their slice freely.
func FeaturedSongs() []Song {
	pool := make([]Song, len(featuredSongs))
	copy(pool, featuredSongs)
	return pool
}
