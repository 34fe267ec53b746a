package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"rentfit-reservations/internal/service"
	"rentfit-reservations/internal/utils"
)

// AvailabilityHandler serves the advisory read API used to disable
// booked dates in calendars.
type AvailabilityHandler struct {
	availability service.AvailabilityService
}

func NewAvailabilityHandler(availability service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

type dateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (h *AvailabilityHandler) UnavailableDates(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(mux.Vars(r)["itemId"], 10, 64)
	if err != nil {
		writeBadRequest(w, "item id must be an integer")
		return
	}

	var from, to *time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := utils.ParseDate(v)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		from = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := utils.ParseDate(v)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		to = &t
	}

	intervals, err := h.availability.UnavailableRanges(r.Context(), itemID, from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]dateRange, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, dateRange{
			Start: utils.FormatDate(iv.Start),
			End:   utils.FormatDate(iv.End),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
