package handler

import (
	"net/http"

	"github.com/jmoiron/sqlx"
)

type HealthHandler struct {
	responder
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB, verbose bool) *HealthHandler {
	return &HealthHandler{responder: responder{verbose: verbose}, db: db}
}

// Check reports liveness plus a store ping.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	err := h.db.PingContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, envelope{Success: false, Error: "database unavailable"})
		return
	}
	h.data(w, http.StatusOK, map[string]string{"status": "ok"})
}
