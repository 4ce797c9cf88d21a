package transform

import (
	"strings"
	"testing"
)

func TestWishShaping(t *testing.T) {
	rec := Wish(map[string]any{
		"name":         "  Marie  ",
		"content":      "A sled\x00 please",
		"category":     "santa-only",
		"is_anonymous": "yes",
	})

	if rec.Name != "Marie" {
		t.Errorf("name = %q", rec.Name)
	}
	if rec.Content != "A sled please" {
		t.Errorf("content = %q", rec.Content)
	}
	if rec.Category != "nice" {
		t.Errorf("unknown category should default to nice, got %q", rec.Category)
	}
	if !rec.IsAnonymous {
		t.Error("is_anonymous = false, want true")
	}
}

func TestWishTruncation(t *testing.T) {
	rec := Wish(map[string]any{
		"name":    strings.Repeat("a", 150),
		"content": strings.Repeat("b", 2000),
	})
	if len(rec.Name) != 100 {
		t.Errorf("name length = %d, want 100", len(rec.Name))
	}
	if len(rec.Content) != 1000 {
		t.Errorf("content length = %d, want 1000", len(rec.Content))
	}
}

func TestTodoShaping(t *testing.T) {
	rec := Todo(map[string]any{
		"title":    "Wrap presents",
		"priority": "whenever",
		"due_date": "2025-12-24",
	})

	if rec.Title != "Wrap presents" {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.Priority != "medium" {
		t.Errorf("unknown priority should default to medium, got %q", rec.Priority)
	}
	if rec.DueDate == nil {
		t.Fatal("due_date should parse")
	}
	if rec.Completed {
		t.Error("completed should default to false")
	}
	if rec.Description != nil {
		t.Error("absent description should be nil")
	}
}

func TestTodoUpdateSparse(t *testing.T) {
	patch := TodoUpdate(map[string]any{"completed": true})

	if patch.Completed == nil || !*patch.Completed {
		t.Error("completed should be set to true")
	}
	if patch.Title != nil || patch.Description != nil || patch.Priority != nil {
		t.Error("absent keys must stay nil")
	}
	if patch.DueDateSet {
		t.Error("due date was not in the body")
	}
	if patch.Empty() {
		t.Error("patch with completed is not empty")
	}
}

func TestTodoUpdateClearsDueDate(t *testing.T) {
	patch := TodoUpdate(map[string]any{"due_date": nil})
	if !patch.DueDateSet {
		t.Error("explicit null due_date should mark the field as set")
	}
	if patch.DueDate != nil {
		t.Error("explicit null due_date should carry a nil time")
	}
}

func TestTodoUpdateEmpty(t *testing.T) {
	if !TodoUpdate(map[string]any{}).Empty() {
		t.Error("empty body should yield an empty patch")
	}
	if !TodoUpdate(map[string]any{"unknown": "x"}).Empty() {
		t.Error("unknown keys alone should yield an empty patch")
	}
}

func TestRegistrationShaping(t *testing.T) {
	rec := Registration(map[string]any{
		"username": "  Nick  ",
		"email":    "Nick@NorthPole.DEV",
		"password": "  s3cret  ",
	})

	if rec.Username != "Nick" {
		t.Errorf("username = %q", rec.Username)
	}
	if rec.Email != "nick@northpole.dev" {
		t.Errorf("email should be lowercased, got %q", rec.Email)
	}
	if rec.Password != "  s3cret  " {
		t.Errorf("password must pass through untouched, got %q", rec.Password)
	}
}

func TestGalleryShaping(t *testing.T) {
	rec := Gallery(map[string]any{"label": "", "category": ""})
	if rec.Label != nil {
		t.Error("empty label should be nil")
	}
	if rec.Category != "general" {
		t.Errorf("empty category should default, got %q", rec.Category)
	}

	rec = Gallery(map[string]any{"category": "tree"})
	if rec.Category != "tree" {
		t.Errorf("category = %q", rec.Category)
	}
}
