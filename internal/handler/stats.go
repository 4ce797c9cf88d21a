package handler

import (
	"net/http"

	"github.com/tinselworks/noel/internal/model"
	"github.com/tinselworks/noel/internal/transform"
)

type StatsService interface {
	RecordVisit() error
	Snapshot() (*model.DailyStat, *model.StatTotals, error)
}

type StatsHandler struct {
	responder
	stats StatsService
}

func NewStatsHandler(stats StatsService, verbose bool) *StatsHandler {
	return &StatsHandler{responder: responder{verbose: verbose}, stats: stats}
}

func (h *StatsHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	todayStat, totals, err := h.stats.Snapshot()
	if err != nil {
		h.err(w, err)
		return
	}
	h.data(w, http.StatusOK, map[string]any{
		"today": transform.NewDailyStatView(todayStat),
		"totals": map[string]int{
			"visits": totals.Visits,
			"users":  totals.Users,
			"wishes": totals.Wishes,
			"todos":  totals.Todos,
		},
	})
}

func (h *StatsHandler) Visit(w http.ResponseWriter, r *http.Request) {
	err := h.stats.RecordVisit()
	if err != nil {
		h.err(w, err)
		return
	}
	h.message(w, http.StatusOK, nil, "visit recorded")
}
