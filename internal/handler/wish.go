package handler

import (
	"net/http"

	"github.com/tinselworks/noel/internal/ctxkeys"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/transform"
	"github.com/tinselworks/noel/internal/validation"
)

type WishService interface {
	Create(userID *int64, rec transform.WishRecord) (*model.Wish, error)
	List(category string, page transform.Page) ([]*model.Wish, int, error)
}

type WishHandler struct {
	responder
	wishes   WishService
	maxLimit int
}

func NewWishHandler(wishes WishService, maxLimit int, verbose bool) *WishHandler {
	return &WishHandler{responder: responder{verbose: verbose}, wishes: wishes, maxLimit: maxLimit}
}

func (h *WishHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// An unknown category filter matches nothing sensible, so it is dropped
	// rather than rejected.
	category := transform.CoerceEnum(q.Get("category"), model.WishCategories, "")
	page := transform.NormalizePage(q.Get("page"), q.Get("limit"), h.maxLimit)

	wishes, total, err := h.wishes.List(category, page)
	if err != nil {
		h.err(w, err)
		return
	}

	h.list(w, transform.Collection(wishes, transform.NewWishView), transform.PageMeta(page.Page, page.Limit, total))
}

// Create accepts wishes from guests and signed-in visitors alike; the gate is
// optional here, so the identity may be nil.
func (h *WishHandler) Create(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(w, r)
	if err != nil {
		h.err(w, err)
		return
	}

	rec := transform.Wish(raw)

	for _, err := range []error{
		validation.Required(rec.Name, "name"),
		validation.Required(rec.Content, "content"),
	} {
		if err != nil {
			h.err(w, err)
			return
		}
	}

	var userID *int64
	if identity := ctxkeys.Identity(r.Context()); identity != nil {
		userID = &identity.ID
	}

	wish, err := h.wishes.Create(userID, rec)
	if err != nil {
		h.err(w, err)
		return
	}
	h.message(w, http.StatusCreated, transform.NewWishView(wish), "wish created")
}
