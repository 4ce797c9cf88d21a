package model

// DailyStat holds one row per calendar day (date formatted YYYY-MM-DD).
// Counters are bumped with increment-on-conflict upserts, so concurrent
// requests resolve at the store rather than in the application.
type DailyStat struct {
	Date        string `db:"date"`
	VisitCount  int    `db:"visit_count"`
	ActiveUsers int    `db:"active_users"`
	WishesCount int    `db:"wishes_count"`
	TodosCount  int    `db:"todos_count"`
}

// StatTotals aggregates lifetime counters for the stats snapshot.
type StatTotals struct {
	Visits int `db:"visits"`
	Users  int `db:"users"`
	Wishes int `db:"wishes"`
	Todos  int `db:"todos"`
}
