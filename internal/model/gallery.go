package model

import (
	"time"
)

// GalleryCategoryDefault is applied when an upload names no category.
const GalleryCategoryDefault = "general"

type GalleryImage struct {
	ID           int64     `db:"id"`
	UserID       *int64    `db:"user_id"`
	ImageURL     string    `db:"image_url"`
	ThumbnailURL *string   `db:"thumbnail_url"`
	Label        *string   `db:"label"`
	Description  *string   `db:"description"`
	Category     string    `db:"category"`
	StoragePath  string    `db:"storage_path"`
	CreatedAt    time.Time `db:"created_at"`
}
