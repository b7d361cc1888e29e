package http

import (
	"net/http"
	"strconv"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
)

// ListEvents handles GET /api/v1/events requests.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := contracts.EventFilter{
		EventType:   query.Get("event_type"),
		AggregateID: query.Get("aggregate_id"),
		Status:      query.Get("status"),
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	events, err := h.deps.ListEvents.Execute(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response := ListEventsResponse{Events: make([]Event, 0, len(events))}
	for _, e := range events {
		response.Events = append(response.Events, toEvent(e))
	}
	response.TotalCount = int64(len(response.Events))

	writeJSON(w, http.StatusOK, response)
}
