package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/tinselworks/noel/internal/apperr"
	"github.com/tinselworks/noel/internal/ctxkeys"
	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/transform"
	"github.com/tinselworks/noel/internal/validation"
)

type GalleryService interface {
	Upload(userID int64, file multipart.File, header *multipart.FileHeader, rec transform.GalleryRecord) (*model.GalleryImage, error)
	List(category string, page transform.Page) ([]*model.GalleryImage, int, error)
	Delete(userID, imageID int64) error
}

type GalleryHandler struct {
	responder
	gallery  GalleryService
	maxLimit int
}

func NewGalleryHandler(gallery GalleryService, maxLimit int, verbose bool) *GalleryHandler {
	return &GalleryHandler{responder: responder{verbose: verbose}, gallery: gallery, maxLimit: maxLimit}
}

// maxUploadBytes bounds the whole multipart request, a little above the
// per-image limit to leave room for the form fields.
const maxUploadBytes = 6 << 20

func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	category := transform.SanitizeString(q.Get("category"))
	page := transform.NormalizePage(q.Get("page"), q.Get("limit"), h.maxLimit)

	images, total, err := h.gallery.List(category, page)
	if err != nil {
		h.err(w, err)
		return
	}

	h.list(w, transform.Collection(images, transform.NewGalleryView), transform.PageMeta(page.Page, page.Limit, total))
}

func (h *GalleryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		h.err(w, apperr.Validation("body", "invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.err(w, apperr.Validation("image", "image file is required"))
		return
	}
	defer file.Close()

	if err := validation.Image(header); err != nil {
		h.err(w, err)
		return
	}

	rec := transform.Gallery(map[string]any{
		"label":       r.FormValue("label"),
		"description": r.FormValue("description"),
		"category":    r.FormValue("category"),
	})

	image, err := h.gallery.Upload(ctxkeys.Identity(r.Context()).ID, file, header, rec)
	if err != nil {
		h.err(w, err)
		return
	}
	h.message(w, http.StatusCreated, transform.NewGalleryView(image), "image uploaded")
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.err(w, err)
		return
	}

	err = h.gallery.Delete(ctxkeys.Identity(r.Context()).ID, id)
	if err != nil {
		h.err(w, err)
		return
	}
	h.message(w, http.StatusOK, nil, "image deleted")
}
