package store

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"moodtunes/models"
)

// CatalogStore reads the seeded song catalog. The catalog never changes
// after Seed, so everything here is a plain read.
type CatalogStore struct {
	pool *pgxpool.Pool
}

func NewCatalogStore(pool *pgxpool.Pool) *CatalogStore {
	return &CatalogStore{pool: pool}
}

// Seed loads the built-in catalog if the songs table is empty, otherwise
// does nothing. The count check and inserts share a transaction so a
// partial seed can never be observed.
func (s *CatalogStore) Seed(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM songs`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([][]interface{}, 0, len(seedSongs))
	for _, song := range seedSongs {
		rows = append(rows, []interface{}{song.Title, song.Artist, song.Mood, song.CoverURL, song.YoutubeLink})
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"songs"},
		[]string{"title", "artist", "mood", "cover_url", "youtube_link"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// SongsByMood returns up to 10 songs whose mood exactly equals the input,
// in random order. Unknown moods yield an empty slice, not an error.
func (s *CatalogStore) SongsByMood(ctx context.Context, mood string) ([]models.Song, error) {
	query := `SELECT song_id, title, artist, mood, cover_url, youtube_link
	          FROM songs WHERE mood = $1 ORDER BY random() LIMIT 10`
	rows, err := s.pool.Query(ctx, query, mood)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := make([]models.Song, 0, 10)
	for rows.Next() {
		var song models.Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.Mood, &song.CoverURL, &song.YoutubeLink); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}
