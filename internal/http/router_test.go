package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"planio/internal/auth"
	"planio/internal/config"
	"planio/internal/mail"
	"planio/internal/reminder"
	"planio/internal/task"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type noopSender struct{}

func (noopSender) Send(context.Context, mail.Message) error { return nil }

func testRouter(t *testing.T, cfg config.Config) http.Handler {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&auth.Profile{}, &task.Project{}, &task.Category{}, &task.Task{}))

	dispatcher := &reminder.Dispatcher{
		Store:  &reminder.GormStore{DB: gdb},
		Sender: noopSender{},
		Log:    zerolog.Nop(),
	}
	return NewRouter(cfg, gdb, auth.NewJWT("test-secret"), dispatcher)
}

func TestHealth(t *testing.T) {
	r := testRouter(t, config.Config{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflightEchoesOrigin(t *testing.T) {
	r := testRouter(t, config.Config{
		CORSAllowedOrigins: []string{"https://app.example.com"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/jobs/send-reminders", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r := testRouter(t, config.Config{})

	for _, path := range []string{"/tasks/", "/projects/", "/categories/", "/me"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}
