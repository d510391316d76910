package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planio/internal/mail"
	"planio/internal/reminder"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	due    []reminder.DueTask
	dueErr error
	marked []uuid.UUID
}

func (s *stubStore) DueReminders(context.Context, time.Time) ([]reminder.DueTask, error) {
	return s.due, s.dueErr
}

func (s *stubStore) MarkReminderSent(_ context.Context, id uuid.UUID) error {
	s.marked = append(s.marked, id)
	return nil
}

type stubSender struct {
	sent []mail.Message
	err  error
}

func (s *stubSender) Send(_ context.Context, msg mail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func newJobsHandler(store *stubStore, sender *stubSender, token string) *JobsHandler {
	return &JobsHandler{
		Dispatcher: &reminder.Dispatcher{Store: store, Sender: sender, Concurrency: 2, Log: zerolog.Nop()},
		Token:      token,
	}
}

func TestSendReminders_Summary(t *testing.T) {
	store := &stubStore{due: []reminder.DueTask{
		{ID: uuid.New(), Title: "Pay rent", Priority: "high", Email: "o@example.com"},
	}}
	sender := &stubSender{}
	h := newJobsHandler(store, sender, "")

	req := httptest.NewRequest(http.MethodPost, "/jobs/send-reminders", nil)
	rec := httptest.NewRecorder()
	h.SendReminders(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var sum reminder.Summary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sum))
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 1, sum.Successful)
	assert.Equal(t, 0, sum.Failed)
	require.Len(t, sum.Results, 1)
	assert.True(t, sum.Results[0].Success)
	assert.Len(t, store.marked, 1)
}

func TestSendReminders_NoEligibleTasks(t *testing.T) {
	store := &stubStore{}
	sender := &stubSender{}
	h := newJobsHandler(store, sender, "")

	rec := httptest.NewRecorder()
	h.SendReminders(rec, httptest.NewRequest(http.MethodPost, "/jobs/send-reminders", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var sum reminder.Summary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sum))
	assert.Equal(t, "No reminders to send", sum.Message)
	assert.Empty(t, sender.sent)
}

func TestSendReminders_SelectionFailureIs500(t *testing.T) {
	store := &stubStore{dueErr: errors.New("db down")}
	h := newJobsHandler(store, &stubSender{}, "")

	rec := httptest.NewRecorder()
	h.SendReminders(rec, httptest.NewRequest(http.MethodPost, "/jobs/send-reminders", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body["error"], "db down")
}

func TestSendReminders_TokenGate(t *testing.T) {
	store := &stubStore{}
	h := newJobsHandler(store, &stubSender{}, "cron-secret")

	rec := httptest.NewRecorder()
	h.SendReminders(rec, httptest.NewRequest(http.MethodPost, "/jobs/send-reminders", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/jobs/send-reminders", nil)
	req.Header.Set("Authorization", "Bearer cron-secret")
	rec = httptest.NewRecorder()
	h.SendReminders(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
