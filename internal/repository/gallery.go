package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/tinselworks/noel/internal/model"
)

type GalleryRepository interface {
	Create(image *model.GalleryImage) error
	ByID(id int64) (*model.GalleryImage, error)
	List(category string, limit, offset int) ([]*model.GalleryImage, error)
	Count(category string) (int, error)
	Delete(id int64) error
}

type galleryRepository struct {
	db *sqlx.DB
}

func NewGalleryRepository(db *sqlx.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(image *model.GalleryImage) error {
	query := `INSERT INTO gallery_images (user_id, image_url, thumbnail_url, label, description, category, storage_path, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	return r.db.Get(&image.ID, query,
		image.UserID,
		image.ImageURL,
		image.ThumbnailURL,
		image.Label,
		image.Description,
		image.Category,
		image.StoragePath,
		image.CreatedAt,
	)
}

func (r *galleryRepository) ByID(id int64) (*model.GalleryImage, error) {
	image := &model.GalleryImage{}
	query := `SELECT * FROM gallery_images WHERE id = $1`

	err := r.db.Get(image, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImageNotFound
	}

	return image, err
}

func (r *galleryRepository) List(category string, limit, offset int) ([]*model.GalleryImage, error) {
	var images []*model.GalleryImage

	if category != "" {
		query := `SELECT * FROM gallery_images WHERE category = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		err := r.db.Select(&images, query, category, limit, offset)
		return images, err
	}

	query := `SELECT * FROM gallery_images ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	err := r.db.Select(&images, query, limit, offset)
	return images, err
}

func (r *galleryRepository) Count(category string) (int, error) {
	var count int
	if category != "" {
		err := r.db.Get(&count, `SELECT COUNT(*) FROM gallery_images WHERE category = $1`, category)
		return count, err
	}
	err := r.db.Get(&count, `SELECT COUNT(*) FROM gallery_images`)
	return count, err
}

func (r *galleryRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrImageNotFound
	}

	return nil
}
