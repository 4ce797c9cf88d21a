package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/transform"
)

// TodoFilter narrows todo listings. Nil/empty fields match everything.
type TodoFilter struct {
	Completed *bool
	Priority  string
}

type TodoRepository interface {
	Create(todo *model.Todo) error
	ByID(id int64) (*model.Todo, error)
	List(userID int64, filter TodoFilter, limit, offset int) ([]*model.Todo, error)
	Count(userID int64, filter TodoFilter) (int, error)
	Update(id int64, patch transform.TodoPatch) error
	Delete(id int64) error
}

type todoRepository struct {
	db *sqlx.DB
}

func NewTodoRepository(db *sqlx.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(todo *model.Todo) error {
	query := `INSERT INTO todos (user_id, title, description, completed, priority, due_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	return r.db.Get(&todo.ID, query,
		todo.UserID,
		todo.Title,
		todo.Description,
		todo.Completed,
		todo.Priority,
		todo.DueDate,
		todo.CreatedAt,
		todo.UpdatedAt,
	)
}

func (r *todoRepository) ByID(id int64) (*model.Todo, error) {
	todo := &model.Todo{}
	query := `SELECT * FROM todos WHERE id = $1`

	err := r.db.Get(todo, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTodoNotFound
	}

	return todo, err
}

// filterClauses builds WHERE fragments for the filter with ?-placeholders.
func filterClauses(userID int64, filter TodoFilter) (string, []any) {
	clauses := []string{"user_id = ?"}
	args := []any{userID}

	if filter.Completed != nil {
		clauses = append(clauses, "completed = ?")
		args = append(args, *filter.Completed)
	}
	if filter.Priority != "" {
		clauses = append(clauses, "priority = ?")
		args = append(args, filter.Priority)
	}

	return strings.Join(clauses, " AND "), args
}

func (r *todoRepository) List(userID int64, filter TodoFilter, limit, offset int) ([]*model.Todo, error) {
	where, args := filterClauses(userID, filter)
	query := r.db.Rebind(fmt.Sprintf(
		`SELECT * FROM todos WHERE %s ORDER BY created_at DESC LIMIT ? OFFSET ?`, where))
	args = append(args, limit, offset)

	var todos []*model.Todo
	err := r.db.Select(&todos, query, args...)
	return todos, err
}

func (r *todoRepository) Count(userID int64, filter TodoFilter) (int, error) {
	where, args := filterClauses(userID, filter)
	query := r.db.Rebind(fmt.Sprintf(`SELECT COUNT(*) FROM todos WHERE %s`, where))

	var count int
	err := r.db.Get(&count, query, args...)
	return count, err
}

// Update applies a sparse patch, touching only columns the patch carries.
// Column names are fixed here, never taken from input.
func (r *todoRepository) Update(id int64, patch transform.TodoPatch) error {
	set := []string{}
	args := []any{}

	if patch.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Completed != nil {
		set = append(set, "completed = ?")
		args = append(args, *patch.Completed)
	}
	if patch.Priority != nil {
		set = append(set, "priority = ?")
		args = append(args, *patch.Priority)
	}
	if patch.DueDateSet {
		set = append(set, "due_date = ?")
		args = append(args, patch.DueDate)
	}

	if len(set) == 0 {
		return nil
	}

	set = append(set, "updated_at = ?")
	args = append(args, time.Now(), id)

	query := r.db.Rebind(fmt.Sprintf(`UPDATE todos SET %s WHERE id = ?`, strings.Join(set, ", ")))
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTodoNotFound
	}

	return nil
}

func (r *todoRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTodoNotFound
	}

	return nil
}
