package handler

import (
	"net/http"

	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/transform"
)

type TimelineService interface {
	List() ([]*model.TimelineEvent, error)
}

type TimelineHandler struct {
	responder
	timeline TimelineService
}

func NewTimelineHandler(timeline TimelineService, verbose bool) *TimelineHandler {
	return &TimelineHandler{responder: responder{verbose: verbose}, timeline: timeline}
}

func (h *TimelineHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.timeline.List()
	if err != nil {
		h.err(w, err)
		return
	}
	h.data(w, http.StatusOK, transform.Collection(events, transform.NewTimelineView))
}
