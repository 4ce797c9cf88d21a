package model

type Song struct {
	ID              int64   `db:"id"`
	Title           string  `db:"title"`
	Artist          *string `db:"artist"`
	Tag             *string `db:"tag"`
	URL             *string `db:"url"`
	DurationSeconds *int    `db:"duration_seconds"`
	PlayCount       int     `db:"play_count"`
	SortOrder       int     `db:"sort_order"`
}
