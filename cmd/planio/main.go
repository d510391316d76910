package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planio/internal/auth"
	"planio/internal/config"
	"planio/internal/db"
	httpx "planio/internal/http"
	"planio/internal/mail"
	"planio/internal/reminder"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)

	dispatcher := &reminder.Dispatcher{
		Store:       &reminder.GormStore{DB: gdb},
		Sender:      mail.NewResendSender(cfg.ResendAPIKey, cfg.MailFrom),
		Concurrency: cfg.ReminderConcurrency,
		Log:         log,
	}

	r := httpx.NewRouter(cfg, gdb, jwtSvc, dispatcher)

	// in-process reminder schedule
	var sched *cron.Cron
	if cfg.ReminderCron != "" {
		sched = cron.New()
		if _, err := sched.AddFunc(cfg.ReminderCron, func() {
			runCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if _, err := dispatcher.Run(runCtx, time.Now()); err != nil {
				log.Error().Err(err).Msg("scheduled reminder run failed")
			}
		}); err != nil {
			log.Fatal().Err(err).Str("spec", cfg.ReminderCron).Msg("bad REMINDER_CRON")
		}
		sched.Start()
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	if sched != nil {
		<-sched.Stop().Done()
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
