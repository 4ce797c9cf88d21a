package model

import (
	"time"
)

// Wish categories form a closed set; unknown input is corrected to the
// default at shaping time rather than rejected.
const (
	WishCategoryNice    = "nice"
	WishCategoryNaughty = "naughty"
)

// WishCategories lists the allowed categories in declaration order.
var WishCategories = []string{WishCategoryNice, WishCategoryNaughty}

// Wish is immutable after creation. UserID is nil for anonymous wishes.
type Wish struct {
	ID          int64     `db:"id"`
	UserID      *int64    `db:"user_id"`
	Name        string    `db:"name"`
	Content     string    `db:"content"`
	Category    string    `db:"category"`
	IsAnonymous bool      `db:"is_anonymous"`
	CreatedAt   time.Time `db:"created_at"`
}
