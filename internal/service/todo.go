package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/repository"
	"github.com/tinselworks/noel/internal/transform"
)

type TodoService struct {
	todoRepository repository.TodoRepository
	statsService   *StatsService
}

func NewTodoService(todoRepository repository.TodoRepository, statsService *StatsService) *TodoService {
	return &TodoService{
		todoRepository: todoRepository,
		statsService:   statsService,
	}
}

func (s *TodoService) Create(userID int64, rec transform.TodoRecord) (*model.Todo, error) {
	now := time.Now()
	todo := &model.Todo{
		UserID:      userID,
		Title:       rec.Title,
		Description: rec.Description,
		Completed:   rec.Completed,
		Priority:    rec.Priority,
		DueDate:     rec.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.todoRepository.Create(todo)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	s.statsService.RecordTodo()

	return todo, nil
}

func (s *TodoService) List(userID int64, filter repository.TodoFilter, page transform.Page) ([]*model.Todo, int, error) {
	todos, err := s.todoRepository.List(userID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list todos: %w", err)
	}

	total, err := s.todoRepository.Count(userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count todos: %w", err)
	}

	return todos, total, nil
}

// owned loads a todo and checks it belongs to userID. Absent and not-owned
// are indistinguishable to the caller so existence cannot be probed.
func (s *TodoService) owned(userID, todoID int64) (*model.Todo, error) {
	todo, err := s.todoRepository.ByID(todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, apperr.NotFound("todo")
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}
	if todo.UserID != userID {
		return nil, apperr.NotFound("todo")
	}
	return todo, nil
}

// Patch applies a sparse update to an owned todo and returns the fresh row.
// An empty patch is rejected before any write.
func (s *TodoService) Patch(userID, todoID int64, patch transform.TodoPatch) (*model.Todo, error) {
	if patch.Empty() {
		return nil, apperr.Validation("body", "nothing to update")
	}

	_, err := s.owned(userID, todoID)
	if err != nil {
		return nil, err
	}

	err = s.todoRepository.Update(todoID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, apperr.NotFound("todo")
		}
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return s.todoRepository.ByID(todoID)
}

func (s *TodoService) Delete(userID, todoID int64) error {
	_, err := s.owned(userID, todoID)
	if err != nil {
		return err
	}

	err = s.todoRepository.Delete(todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return apperr.NotFound("todo")
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}
