package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret string

	ResendAPIKey string
	MailFrom     string

	// ReminderCron is a robfig/cron spec for the in-process dispatch schedule.
	// Empty disables the scheduler (the HTTP job endpoint still works).
	ReminderCron        string
	ReminderConcurrency int

	// JobToken, when set, is required as a bearer token on /jobs endpoints.
	JobToken string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          mustGetenv("DATABASE_URL"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.JWTSecret = mustGetenv("JWT_SECRET")

	cfg.ResendAPIKey = mustGetenv("RESEND_API_KEY")
	cfg.MailFrom = getenv("MAIL_FROM", "PLANIO <onboarding@resend.dev>")

	cfg.ReminderCron = getenv("REMINDER_CRON", "*/5 * * * *")
	cfg.ReminderConcurrency = getenvInt("REMINDER_CONCURRENCY", 4)

	cfg.JobToken = getenv("JOB_TOKEN", "")

	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
