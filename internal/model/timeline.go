package model

// TimelineEvent is read-only through the API. Rows are synced from the
// markdown content directory at startup, keyed by slug.
type TimelineEvent struct {
	ID          int64   `db:"id"`
	Slug        string  `db:"slug"`
	Title       string  `db:"title"`
	EventDate   string  `db:"event_date"` // display string, not a timestamp
	Meta        *string `db:"meta"`
	Description *string `db:"description"`
	SortOrder   int     `db:"sort_order"`
}
