package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/tinselworks/noel/internal/model"
)

type WishRepository interface {
	Create(wish *model.Wish) error
	List(category string, limit, offset int) ([]*model.Wish, error)
	Count(category string) (int, error)
}

type wishRepository struct {
	db *sqlx.DB
}

func NewWishRepository(db *sqlx.DB) WishRepository {
	return &wishRepository{db: db}
}

func (r *wishRepository) Create(wish *model.Wish) error {
	query := `INSERT INTO wishes (user_id, name, content, category, is_anonymous, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	return r.db.Get(&wish.ID, query,
		wish.UserID,
		wish.Name,
		wish.Content,
		wish.Category,
		wish.IsAnonymous,
		wish.CreatedAt,
	)
}

func (r *wishRepository) List(category string, limit, offset int) ([]*model.Wish, error) {
	var wishes []*model.Wish

	if category != "" {
		query := `SELECT * FROM wishes WHERE category = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		err := r.db.Select(&wishes, query, category, limit, offset)
		return wishes, err
	}

	query := `SELECT * FROM wishes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	err := r.db.Select(&wishes, query, limit, offset)
	return wishes, err
}

func (r *wishRepository) Count(category string) (int, error) {
	var count int
	if category != "" {
		err := r.db.Get(&count, `SELECT COUNT(*) FROM wishes WHERE category = $1`, category)
		return count, err
	}
	err := r.db.Get(&count, `SELECT COUNT(*) FROM wishes`)
	return count, err
}
