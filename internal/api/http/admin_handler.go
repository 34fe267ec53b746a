package http

import (
	"database/sql"
	"net/http"

	"rentfit-reservations/internal/jobs"
)

// AdminHandler exposes the operational endpoints: manual sweep trigger
// and health.
type AdminHandler struct {
	jobRunner *jobs.JobRunner
	db        *sql.DB
}

func NewAdminHandler(jobRunner *jobs.JobRunner, db *sql.DB) *AdminHandler {
	return &AdminHandler{jobRunner: jobRunner, db: db}
}

type sweepResponse struct {
	ProcessedCount int     `json:"processedCount"`
	FailedIDs      []int64 `json:"failedIds"`
}

func (h *AdminHandler) TriggerSweep(w http.ResponseWriter, r *http.Request) {
	processed, failed, err := h.jobRunner.RunSweep(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if failed == nil {
		failed = []int64{}
	}
	writeJSON(w, http.StatusOK, sweepResponse{ProcessedCount: processed, FailedIDs: failed})
}

func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
