package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/tinselworks/noel/internal/model"
)

type TimelineRepository interface {
	Upsert(event *model.TimelineEvent) error
	List() ([]*model.TimelineEvent, error)
}

type timelineRepository struct {
	db *sqlx.DB
}

func NewTimelineRepository(db *sqlx.DB) TimelineRepository {
	return &timelineRepository{db: db}
}

// Upsert inserts or refreshes an event by its content slug, so re-syncing
// the content directory is idempotent.
func (r *timelineRepository) Upsert(event *model.TimelineEvent) error {
	query := `INSERT INTO timeline_events (slug, title, event_date, meta, description, sort_order)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT(slug) DO UPDATE SET
	              title = excluded.title,
	              event_date = excluded.event_date,
	              meta = excluded.meta,
	              description = excluded.description,
	              sort_order = excluded.sort_order`

	_, err := r.db.Exec(query,
		event.Slug,
		event.Title,
		event.EventDate,
		event.Meta,
		event.Description,
		event.SortOrder,
	)

	return err
}

func (r *timelineRepository) List() ([]*model.TimelineEvent, error) {
	var events []*model.TimelineEvent
	query := `SELECT * FROM timeline_events ORDER BY sort_order ASC, id ASC`

	err := r.db.Select(&events, query)
	return events, err
}
