package transform

import (
	"github.com/tinselworks/noel/internal/model"
)

// Output shapers map persisted records to their public JSON form: secrets
// dropped, dates through ToISO, missing optional fields as null.

type UserView struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Avatar    *string `json:"avatar"`
	CreatedAt *string `json:"created_at"`
}

// User never includes the password hash.
func NewUserView(u *model.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: ToISO(u.CreatedAt),
	}
}

type WishView struct {
	ID          int64   `json:"id"`
	UserID      *int64  `json:"user_id"`
	Name        string  `json:"name"`
	Content     string  `json:"content"`
	Category    string  `json:"category"`
	IsAnonymous bool    `json:"is_anonymous"`
	CreatedAt   *string `json:"created_at"`
}

// NewWishView hides the author's name on wishes submitted anonymously.
func NewWishView(w *model.Wish) WishView {
	view := WishView{
		ID:          w.ID,
		UserID:      w.UserID,
		Name:        w.Name,
		Content:     w.Content,
		Category:    w.Category,
		IsAnonymous: ToBool(w.IsAnonymous),
		CreatedAt:   ToISO(w.CreatedAt),
	}
	if view.IsAnonymous {
		view.Name = "Anonymous"
		view.UserID = nil
	}
	return view
}

type TodoView struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

func NewTodoView(t *model.Todo) TodoView {
	return TodoView{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   ToBool(t.Completed),
		Priority:    t.Priority,
		DueDate:     ToISO(t.DueDate),
		CreatedAt:   ToISO(t.CreatedAt),
		UpdatedAt:   ToISO(t.UpdatedAt),
	}
}

type TimelineView struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	EventDate   string  `json:"event_date"`
	Meta        *string `json:"meta"`
	Description *string `json:"description"`
	SortOrder   int     `json:"sort_order"`
}

func NewTimelineView(e *model.TimelineEvent) TimelineView {
	return TimelineView{
		ID:          e.ID,
		Title:       e.Title,
		EventDate:   e.EventDate,
		Meta:        e.Meta,
		Description: e.Description,
		SortOrder:   e.SortOrder,
	}
}

type GalleryView struct {
	ID           int64   `json:"id"`
	UserID       *int64  `json:"user_id"`
	ImageURL     string  `json:"image_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Label        *string `json:"label"`
	Description  *string `json:"description"`
	Category     string  `json:"category"`
	CreatedAt    *string `json:"created_at"`
}

func NewGalleryView(g *model.GalleryImage) GalleryView {
	view := GalleryView{
		ID:           g.ID,
		UserID:       g.UserID,
		ImageURL:     g.ImageURL,
		ThumbnailURL: g.ThumbnailURL,
		Label:        g.Label,
		Description:  g.Description,
		Category:     g.Category,
		CreatedAt:    ToISO(g.CreatedAt),
	}
	if view.ThumbnailURL == nil {
		view.ThumbnailURL = &g.ImageURL
	}
	return view
}

type SongView struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Artist          *string `json:"artist"`
	Tag             *string `json:"tag"`
	URL             *string `json:"url"`
	DurationSeconds *int    `json:"duration_seconds"`
	PlayCount       int     `json:"play_count"`
	SortOrder       int     `json:"sort_order"`
}

func NewSongView(s *model.Song) SongView {
	return SongView{
		ID:              s.ID,
		Title:           s.Title,
		Artist:          s.Artist,
		Tag:             s.Tag,
		URL:             s.URL,
		DurationSeconds: s.DurationSeconds,
		PlayCount:       s.PlayCount,
		SortOrder:       s.SortOrder,
	}
}

type DailyStatView struct {
	Date        string `json:"date"`
	VisitCount  int    `json:"visit_count"`
	ActiveUsers int    `json:"active_users"`
	WishesCount int    `json:"wishes_count"`
	TodosCount  int    `json:"todos_count"`
}

func NewDailyStatView(s *model.DailyStat) DailyStatView {
	return DailyStatView{
		Date:        s.Date,
		VisitCount:  s.VisitCount,
		ActiveUsers: s.ActiveUsers,
		WishesCount: s.WishesCount,
		TodosCount:  s.TodosCount,
	}
}

// Collection maps items through a shaper, yielding an empty (never nil)
// slice for empty input so lists always encode as [].
func Collection[T any, V any](items []T, shape func(T) V) []V {
	views := make([]V, 0, len(items))
	for _, item := range items {
		views = append(views, shape(item))
	}
	return views
}
