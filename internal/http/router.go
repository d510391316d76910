package http

import (
	"net/http"

	"planio/internal/auth"
	"planio/internal/config"
	"planio/internal/http/handler"
	mw "planio/internal/http/middleware"
	"planio/internal/reminder"
	"planio/internal/task"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, dispatcher *reminder.Dispatcher) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{DB: db}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	taskH := &handler.TaskHandler{Svc: &task.Service{DB: db}}
	catalogH := &handler.CatalogHandler{Svc: &task.CatalogService{DB: db}}

	r.Route("/tasks", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", taskH.Create)
		r.Get("/", taskH.List)
		r.Put("/{id}", taskH.Update)
		r.Patch("/{id}/complete", taskH.Complete)
		r.Delete("/{id}", taskH.Delete)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", catalogH.CreateProject)
		r.Get("/", catalogH.ListProjects)
		r.Put("/{id}", catalogH.UpdateProject)
		r.Delete("/{id}", catalogH.DeleteProject)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", catalogH.CreateCategory)
		r.Get("/", catalogH.ListCategories)
		r.Delete("/{id}", catalogH.DeleteCategory)
	})

	jobsH := &handler.JobsHandler{Dispatcher: dispatcher, Token: cfg.JobToken}
	r.Post("/jobs/send-reminders", jobsH.SendReminders)

	return r
}
