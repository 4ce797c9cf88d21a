package model

import (
	"time"
)

const (
	TodoPriorityLow    = "low"
	TodoPriorityMedium = "medium"
	TodoPriorityHigh   = "high"
)

// TodoPriorities lists the allowed priorities in declaration order.
var TodoPriorities = []string{TodoPriorityLow, TodoPriorityMedium, TodoPriorityHigh}

// Todo is mutable and deletable only by its owning user.
type Todo struct {
	ID          int64      `db:"id"`
	UserID      int64      `db:"user_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Completed   bool       `db:"completed"`
	Priority    string     `db:"priority"`
	DueDate     *time.Time `db:"due_date"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
