package service

import (
	"errors"
	"testing"

	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/repository"
	"github.com/tinselworks/noel/internal/transform"
)

type stubTodoRepository struct {
	repository.TodoRepository

	byID    *model.Todo
	byIDErr error
	updated bool
	deleted bool
}

func (s *stubTodoRepository) ByID(id int64) (*model.Todo, error) {
	return s.byID, s.byIDErr
}

func (s *stubTodoRepository) Update(id int64, patch transform.TodoPatch) error {
	s.updated = true
	return nil
}

func (s *stubTodoRepository) Delete(id int64) error {
	s.deleted = true
	return nil
}

type stubStatsRepository struct {
	increments []string
}

func (s *stubStatsRepository) Increment(date, field string) error {
	s.increments = append(s.increments, field)
	return nil
}

func (s *stubStatsRepository) ByDate(date string) (*model.DailyStat, error) {
	return &model.DailyStat{Date: date}, nil
}

func (s *stubStatsRepository) Totals() (*model.StatTotals, error) {
	return &model.StatTotals{}, nil
}

func newTodoServiceForTest(repo repository.TodoRepository) *TodoService {
	return NewTodoService(repo, NewStatsService(&stubStatsRepository{}))
}

func TestTodoPatchForeignRecordIsNotFound(t *testing.T) {
	repo := &stubTodoRepository{byID: &model.Todo{ID: 5, UserID: 99}}
	svc := newTodoServiceForTest(repo)

	completed := true
	_, err := svc.Patch(1, 5, transform.TodoPatch{Completed: &completed})

	var notFoundErr *apperr.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("foreign record should read as not found, got %v", err)
	}
	if repo.updated {
		t.Error("no write may happen on a foreign record")
	}
}

func TestTodoPatchAbsentRecord(t *testing.T) {
	repo := &stubTodoRepository{byIDErr: repository.ErrTodoNotFound}
	svc := newTodoServiceForTest(repo)

	completed := true
	_, err := svc.Patch(1, 5, transform.TodoPatch{Completed: &completed})

	var notFoundErr *apperr.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestTodoPatchEmptyRejectedBeforeLoad(t *testing.T) {
	repo := &stubTodoRepository{byIDErr: errors.New("repo must not be touched")}
	svc := newTodoServiceForTest(repo)

	_, err := svc.Patch(1, 5, transform.TodoPatch{})

	var validationErr *apperr.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("empty patch should fail validation, got %v", err)
	}
}

func TestTodoDeleteOwned(t *testing.T) {
	repo := &stubTodoRepository{byID: &model.Todo{ID: 5, UserID: 1}}
	svc := newTodoServiceForTest(repo)

	err := svc.Delete(1, 5)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !repo.deleted {
		t.Error("owned record should be deleted")
	}
}

func TestTodoDeleteForeign(t *testing.T) {
	repo := &stubTodoRepository{byID: &model.Todo{ID: 5, UserID: 99}}
	svc := newTodoServiceForTest(repo)

	err := svc.Delete(1, 5)
	var notFoundErr *apperr.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("want not found, got %v", err)
	}
	if repo.deleted {
		t.Error("no delete may happen on a foreign record")
	}
}

func TestTodoCreateRecordsStat(t *testing.T) {
	stats := &stubStatsRepository{}
	repo := &stubTodoRepository{}
	svc := NewTodoService(&createOKTodoRepo{stubTodoRepository: repo}, NewStatsService(stats))

	_, err := svc.Create(1, transform.TodoRecord{Title: "Wrap presents", Priority: "medium"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(stats.increments) != 1 || stats.increments[0] != "todos" {
		t.Errorf("increments = %v, want one todos bump", stats.increments)
	}
}

type createOKTodoRepo struct {
	*stubTodoRepository
}

func (c *createOKTodoRepo) Create(todo *model.Todo) error {
	todo.ID = 1
	return nil
}
