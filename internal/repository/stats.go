package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/tinselworks/noel/internal/model"
)

// Columns the daily-stat upsert may touch. The increment query interpolates
// only values from this map, never caller input.
var statColumns = map[string]string{
	"visits": "visit_count",
	"users":  "active_users",
	"wishes": "wishes_count",
	"todos":  "todos_count",
}

type StatsRepository interface {
	Increment(date, field string) error
	ByDate(date string) (*model.DailyStat, error)
	Totals() (*model.StatTotals, error)
}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

// Increment bumps one counter for the given day, creating the row on first
// touch. Conflict resolution happens in the store, so concurrent requests
// against the same day cannot lose updates.
func (r *statsRepository) Increment(date, field string) error {
	column, ok := statColumns[field]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownStatField, field)
	}

	query := fmt.Sprintf(`INSERT INTO daily_stats (date, %s) VALUES ($1, 1)
	          ON CONFLICT(date) DO UPDATE SET %s = %s + 1`, column, column, column)

	_, err := r.db.Exec(query, date)
	return err
}

func (r *statsRepository) ByDate(date string) (*model.DailyStat, error) {
	stat := &model.DailyStat{}
	query := `SELECT * FROM daily_stats WHERE date = $1`

	err := r.db.Get(stat, query, date)
	if errors.Is(err, sql.ErrNoRows) {
		// No traffic yet today; an empty row is a valid snapshot.
		return &model.DailyStat{Date: date}, nil
	}

	return stat, err
}

func (r *statsRepository) Totals() (*model.StatTotals, error) {
	totals := &model.StatTotals{}
	query := `SELECT
	              COALESCE(SUM(visit_count), 0) AS visits,
	              COALESCE(SUM(active_users), 0) AS users,
	              COALESCE(SUM(wishes_count), 0) AS wishes,
	              COALESCE(SUM(todos_count), 0) AS todos
	          FROM daily_stats`

	err := r.db.Get(totals, query)
	return totals, err
}
