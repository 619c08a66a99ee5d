package models

// Song is one row of the seeded catalog. The catalog is read-only after
// startup; songs are never created or mutated by requests.
type Song struct {
	ID          int64  `json:"song_id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Mood        string `json:"mood"`
	CoverURL    string `json:"cover_url"`
	YoutubeLink string `json:"youtube_link"`
}
