package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/tinselworks/noel/internal/model"
)

type SongRepository interface {
	List() ([]*model.Song, error)
	IncrementPlayCount(id int64) (int, error)
}

type songRepository struct {
	db *sqlx.DB
}

func NewSongRepository(db *sqlx.DB) SongRepository {
	return &songRepository{db: db}
}

func (r *songRepository) List() ([]*model.Song, error) {
	var songs []*model.Song
	query := `SELECT * FROM songs ORDER BY sort_order ASC, id ASC`

	err := r.db.Select(&songs, query)
	return songs, err
}

// IncrementPlayCount bumps the counter atomically in the store and returns
// the new value; concurrent plays never lose an increment.
func (r *songRepository) IncrementPlayCount(id int64) (int, error) {
	var count int
	query := `UPDATE songs SET play_count = play_count + 1 WHERE id = $1 RETURNING play_count`

	err := r.db.Get(&count, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrSongNotFound
	}

	return count, err
}
