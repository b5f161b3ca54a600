// Package handlers implements the notification server's HTTP endpoints.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"billscan/internal/api/middleware"
	"billscan/internal/dispatch"
	"billscan/internal/store"
)

// EventsHandler receives storage-creation notification batches and hands
// them to the dispatcher.
type EventsHandler struct {
	dispatcher *dispatch.Dispatcher
	log        zerolog.Logger
}

// NewEventsHandler creates a handler around the dispatcher.
func NewEventsHandler(d *dispatch.Dispatcher, log zerolog.Logger) *EventsHandler {
	return &EventsHandler{dispatcher: d, log: log}
}

// HandleEvent processes POST /events. The response is always the
// dispatcher's fixed acknowledgment; per-record failures are logged and
// never surfaced to the caller.
func (h *EventsHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	var event dispatch.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid event payload")
		return
	}

	h.log.Info().Int("records", len(event.Records)).Msg("Received notification batch")

	ack := h.dispatcher.HandleEvent(r.Context(), event)
	middleware.WriteJSON(w, ack.StatusCode, ack)
}

// BillsHandler serves processed bill records.
type BillsHandler struct {
	bills store.BillRepository
	log   zerolog.Logger
}

// NewBillsHandler creates a handler around the bill repository.
func NewBillsHandler(bills store.BillRepository, log zerolog.Logger) *BillsHandler {
	return &BillsHandler{bills: bills, log: log}
}

// ListBills processes GET /api/bills?limit=N.
func (h *BillsHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			middleware.WriteError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = n
	}

	records, err := h.bills.ListRecent(r.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list bills")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list bills")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"bills": records,
		"count": len(records),
	})
}
