package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"planio/internal/auth"
	"planio/internal/task"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TaskHandler struct {
	Svc *task.Service
}

type saveTaskReq struct {
	ProjectID   string  `json:"project_id"`
	CategoryID  *string `json:"category_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"` // RFC3339 optional

	ReminderEnabled bool   `json:"reminder_enabled"`
	ReminderOffset  string `json:"reminder_offset"` // 1_day | 1_hour | at_time
}

func (req *saveTaskReq) toInput() (task.SaveTaskInput, error) {
	in := task.SaveTaskInput{
		Title:           req.Title,
		Description:     req.Description,
		Status:          req.Status,
		Priority:        req.Priority,
		ReminderEnabled: req.ReminderEnabled,
		ReminderOffset:  req.ReminderOffset,
	}

	pid, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return in, errors.New("invalid project_id")
	}
	in.ProjectID = pid

	if req.CategoryID != nil && strings.TrimSpace(*req.CategoryID) != "" {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return in, errors.New("invalid category_id")
		}
		in.CategoryID = &cid
	}

	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
		t, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			return in, errors.New("invalid due_date (RFC3339)")
		}
		in.DueDate = &t
	}

	return in, nil
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req saveTaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	in, err := req.toInput()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.Svc.Create(r.Context(), uid, in)
	if err != nil {
		writeTaskErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req saveTaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	in, err := req.toInput()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.Svc.Update(r.Context(), uid, id, in)
	if err != nil {
		writeTaskErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

type completeReq struct {
	Completed bool `json:"completed"`
}

func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req completeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	if err := h.Svc.SetCompleted(r.Context(), uid, id, req.Completed); err != nil {
		writeTaskErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	pid, err := uuid.Parse(strings.TrimSpace(r.URL.Query().Get("project_id")))
	if err != nil {
		http.Error(w, "invalid project_id", http.StatusBadRequest)
		return
	}

	tasks, err := h.Svc.ListByProject(r.Context(), uid, pid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tasks)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.Svc.Delete(r.Context(), uid, id); err != nil {
		writeTaskErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeTaskErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, task.ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}
