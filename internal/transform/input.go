package transform

import (
	"strings"
	"time"

	"github.com/tinselworks/noel/internal/model"
)

// Input shapers map raw request bodies (decoded to map[string]any) to
// sanitized, typed records ready for persistence. Validators run before
// shaping; shapers themselves never fail.

// WishRecord is the shaped form of a wish submission.
type WishRecord struct {
	Name        string
	Content     string
	Category    string
	IsAnonymous bool
}

// Wish truncates name and content, silently corrects an out-of-set category
// to "nice", and coerces the anonymous flag.
func Wish(raw map[string]any) WishRecord {
	return WishRecord{
		Name:        Truncate(raw["name"], 100),
		Content:     Truncate(raw["content"], 1000),
		Category:    CoerceEnum(raw["category"], model.WishCategories, model.WishCategoryNice),
		IsAnonymous: ToBool(raw["is_anonymous"]),
	}
}

// TodoRecord is the shaped form of a todo creation.
type TodoRecord struct {
	Title       string
	Description *string
	Completed   bool
	Priority    string
	DueDate     *time.Time
}

// Todo shapes a todo creation body. Priority follows the silent-default
// policy here; the PATCH path asserts it instead.
func Todo(raw map[string]any) TodoRecord {
	return TodoRecord{
		Title:       Truncate(raw["title"], 255),
		Description: optionalText(raw["description"], 1000),
		Completed:   ToBool(raw["completed"]),
		Priority:    CoerceEnum(raw["priority"], model.TodoPriorities, model.TodoPriorityMedium),
		DueDate:     ToTime(raw["due_date"]),
	}
}

// TodoPatch carries only the fields present in a partial update. Nil pointer
// means "not provided"; DueDateSet distinguishes clearing the due date from
// omitting it.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	DueDate     *time.Time
	DueDateSet  bool
}

// Empty reports whether the patch carries nothing to update.
func (p TodoPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil &&
		p.Priority == nil && !p.DueDateSet
}

// TodoUpdate shapes a sparse todo patch, including only keys present in the
// raw body so absent fields are left untouched by the update.
func TodoUpdate(raw map[string]any) TodoPatch {
	var patch TodoPatch
	if v, ok := raw["title"]; ok {
		s := Truncate(v, 255)
		patch.Title = &s
	}
	if v, ok := raw["description"]; ok {
		s := Truncate(v, 1000)
		patch.Description = &s
	}
	if v, ok := raw["completed"]; ok {
		b := ToBool(v)
		patch.Completed = &b
	}
	if v, ok := raw["priority"]; ok {
		s := SanitizeString(v)
		patch.Priority = &s
	}
	if v, ok := raw["due_date"]; ok {
		patch.DueDate = ToTime(v)
		patch.DueDateSet = true
	}
	return patch
}

// RegistrationRecord is the shaped form of an account registration. The
// password passes through untouched; hashing belongs to the credential layer.
type RegistrationRecord struct {
	Username string
	Email    string
	Password string
	Avatar   *string
}

// Registration truncates the username, lowercases and truncates the email,
// and leaves the password unmodified.
func Registration(raw map[string]any) RegistrationRecord {
	password, _ := raw["password"].(string)
	return RegistrationRecord{
		Username: Truncate(raw["username"], 50),
		Email:    strings.ToLower(Truncate(raw["email"], 100)),
		Password: password,
		Avatar:   optionalText(raw["avatar"], 255),
	}
}

// GalleryRecord is the shaped form of a gallery upload's form fields.
type GalleryRecord struct {
	Label       *string
	Description *string
	Category    string
}

// Gallery shapes the multipart form values of an image upload. An empty
// category falls back to the default rather than failing.
func Gallery(raw map[string]any) GalleryRecord {
	category := Truncate(raw["category"], 50)
	if category == "" {
		category = model.GalleryCategoryDefault
	}
	return GalleryRecord{
		Label:       optionalText(raw["label"], 100),
		Description: optionalText(raw["description"], 500),
		Category:    category,
	}
}

// optionalText truncates v, mapping the empty result to nil.
func optionalText(v any, max int) *string {
	s := Truncate(v, max)
	if s == "" {
		return nil
	}
	return &s
}
