package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"planio/internal/reminder"
)

// JobsHandler exposes the reminder dispatch job over HTTP so an external
// scheduler can trigger it. The response is the run summary.
type JobsHandler struct {
	Dispatcher *reminder.Dispatcher
	// Token, when non-empty, must match the request's bearer token.
	Token string
}

func (h *JobsHandler) SendReminders(w http.ResponseWriter, r *http.Request) {
	if h.Token != "" {
		got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if got != h.Token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	sum, err := h.Dispatcher.Run(r.Context(), time.Now())
	if err != nil {
		// Selection-stage failure: the whole run aborted.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sum)
}
