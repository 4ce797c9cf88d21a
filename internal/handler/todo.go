package handler

import (
	"net/http"

	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/ctxkeys"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/repository"
	"github.com/tinselworks/noel/internal/transform"
	"github.com/tinselworks/noel/internal/validation"
)

type TodoService interface {
	Create(userID int64, rec transform.TodoRecord) (*model.Todo, error)
	List(userID int64, filter repository.TodoFilter, page transform.Page) ([]*model.Todo, int, error)
	Patch(userID, todoID int64, patch transform.TodoPatch) (*model.Todo, error)
	Delete(userID, todoID int64) error
}

type TodoHandler struct {
	responder
	todos    TodoService
	maxLimit int
}

func NewTodoHandler(todos TodoService, maxLimit int, verbose bool) *TodoHandler {
	return &TodoHandler{responder: responder{verbose: verbose}, todos: todos, maxLimit: maxLimit}
}

// identity is safe to call on gated routes only.
func (h *TodoHandler) identity(r *http.Request) int64 {
	return ctxkeys.Identity(r.Context()).ID
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter repository.TodoFilter
	if v := q.Get("completed"); v != "" {
		completed := transform.ToBool(v)
		filter.Completed = &completed
	}
	filter.Priority = transform.CoerceEnum(q.Get("priority"), model.TodoPriorities, "")

	page := transform.NormalizePage(q.Get("page"), q.Get("limit"), h.maxLimit)

	todos, total, err := h.todos.List(h.identity(r), filter, page)
	if err != nil {
		h.err(w, err)
		return
	}

	h.list(w, transform.Collection(todos, transform.NewTodoView), transform.PageMeta(page.Page, page.Limit, total))
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(w, r)
	if err != nil {
		h.err(w, err)
		return
	}

	rec := transform.Todo(raw)

	if err := validation.Required(rec.Title, "title"); err != nil {
		h.err(w, err)
		return
	}

	todo, err := h.todos.Create(h.identity(r), rec)
	if err != nil {
		h.err(w, err)
		return
	}
	h.message(w, http.StatusCreated, transform.NewTodoView(todo), "todo created")
}

// Update applies a sparse patch. Unlike creation, a priority sent here must be
// a member of the set; there is no silent fallback on explicit updates.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.err(w, err)
		return
	}

	raw, err := decodeBody(w, r)
	if err != nil {
		h.err(w, err)
		return
	}

	patch := transform.TodoUpdate(raw)
	if patch.Title != nil {
		if err := validation.Required(*patch.Title, "title"); err != nil {
			h.err(w, err)
			return
		}
	}
	if patch.Priority != nil {
		if err := validation.Enum(*patch.Priority, model.TodoPriorities, "priority"); err != nil {
			h.err(w, err)
			return
		}
	}
	if patch.Empty() {
		h.err(w, apperr.Validation("body", "nothing to update"))
		return
	}

	todo, err := h.todos.Patch(h.identity(r), id, patch)
	if err != nil {
		h.err(w, err)
		return
	}
	h.message(w, http.StatusOK, transform.NewTodoView(todo), "todo updated")
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.err(w, err)
		return
	}

	err = h.todos.Delete(h.identity(r), id)
	if err != nil {
		h.err(w, err)
		return
	}
	h.message(w, http.StatusOK, nil, "todo deleted")
}
