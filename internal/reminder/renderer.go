package reminder

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"planio/internal/mail"
	"planio/internal/task"
)

var priorityLabels = map[string]string{
	task.PriorityLow:    "Baja",
	task.PriorityMedium: "Media",
	task.PriorityHigh:   "Alta",
}

// PriorityLabel maps a priority to its display label. Unknown values pass
// through unchanged so rendering never fails on bad data.
func PriorityLabel(p string) string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return p
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDueDate renders a long es-ES date/time, e.g.
// "28 de febrero de 2025, 01:00".
func FormatDueDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d, %02d:%02d",
		t.Day(), spanishMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

var emailTmpl = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; border-radius: 10px 10px 0 0; }
      .content { background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; }
      .task-title { font-size: 24px; font-weight: bold; margin-bottom: 10px; }
      .task-info { background: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0; }
      .info-row { margin: 10px 0; }
      .label { font-weight: 600; color: #4b5563; }
      .priority-high { color: #dc2626; font-weight: bold; }
      .priority-medium { color: #ea580c; font-weight: bold; }
      .priority-low { color: #65a30d; font-weight: bold; }
      .footer { text-align: center; color: #6b7280; margin-top: 30px; font-size: 14px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>🔔 Recordatorio de Tarea</h1>
        <p>Hola {{.Name}},</p>
      </div>
      <div class="content">
        <div class="task-title">{{.Title}}</div>
        {{if .Description}}<p>{{.Description}}</p>{{end}}

        <div class="task-info">
          {{if .DueDate}}<div class="info-row">
            <span class="label">📅 Fecha límite:</span>
            <span>{{.DueDate}}</span>
          </div>{{end}}
          <div class="info-row">
            <span class="label">⚡ Prioridad:</span>
            <span class="priority-{{.Priority}}">{{.PriorityLabel}}</span>
          </div>
        </div>

        <p>No olvides completar esta tarea a tiempo. ¡Tú puedes! 💪</p>

        <div class="footer">
          <p>Este es un recordatorio automático de PLANIO</p>
          <p>Organiza tu día, alcanza tus metas 🎯</p>
        </div>
      </div>
    </div>
  </body>
</html>
`))

type emailData struct {
	Name          string
	Title         string
	Description   string
	DueDate       string
	Priority      string
	PriorityLabel string
}

// Render builds the recipient-addressed message for one due task. Optional
// fields degrade to omitted sections; it never returns an error.
func Render(t DueTask) mail.Message {
	data := emailData{
		Name:          "Usuario",
		Title:         t.Title,
		Priority:      t.Priority,
		PriorityLabel: PriorityLabel(t.Priority),
	}
	if t.FullName != nil && strings.TrimSpace(*t.FullName) != "" {
		data.Name = strings.TrimSpace(*t.FullName)
	}
	if t.Description != nil {
		data.Description = *t.Description
	}
	if t.DueDate != nil {
		data.DueDate = FormatDueDate(*t.DueDate)
	}

	var body strings.Builder
	_ = emailTmpl.Execute(&body, data)

	return mail.Message{
		To:      t.Email,
		Subject: "🔔 Recordatorio: " + t.Title,
		HTML:    body.String(),
	}
}
