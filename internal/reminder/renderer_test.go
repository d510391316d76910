package reminder

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "Baja", PriorityLabel("low"))
	assert.Equal(t, "Media", PriorityLabel("medium"))
	assert.Equal(t, "Alta", PriorityLabel("high"))
	// unknown values pass through rather than breaking rendering
	assert.Equal(t, "urgent", PriorityLabel("urgent"))
}

func TestFormatDueDate(t *testing.T) {
	d := time.Date(2025, 2, 28, 1, 5, 0, 0, time.UTC)
	assert.Equal(t, "28 de febrero de 2025, 01:05", FormatDueDate(d))

	d = time.Date(2024, 12, 3, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "3 de diciembre de 2024, 18:30", FormatDueDate(d))
}

func TestRender_FullTask(t *testing.T) {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	msg := Render(DueTask{
		ID:          uuid.New(),
		Title:       "Pay rent",
		Description: strPtr("transfer before noon"),
		DueDate:     &due,
		Priority:    "high",
		Email:       "owner@example.com",
		FullName:    strPtr("Ana García"),
	})

	assert.Equal(t, "owner@example.com", msg.To)
	assert.Equal(t, "🔔 Recordatorio: Pay rent", msg.Subject)
	assert.Contains(t, msg.HTML, "Hola Ana García")
	assert.Contains(t, msg.HTML, "Pay rent")
	assert.Contains(t, msg.HTML, "transfer before noon")
	assert.Contains(t, msg.HTML, "1 de marzo de 2025, 00:00")
	assert.Contains(t, msg.HTML, "Alta")
	assert.Contains(t, msg.HTML, "priority-high")
}

func TestRender_MissingOptionalFields(t *testing.T) {
	msg := Render(DueTask{
		ID:       uuid.New(),
		Title:    "Sin detalles",
		Priority: "medium",
		Email:    "someone@example.com",
	})

	// nil full_name falls back to a generic greeting, nil description and
	// due date simply drop their sections
	assert.Contains(t, msg.HTML, "Hola Usuario")
	assert.NotContains(t, msg.HTML, "Fecha límite")
	assert.Contains(t, msg.HTML, "Media")
}

func TestRender_EscapesHTML(t *testing.T) {
	msg := Render(DueTask{
		ID:       uuid.New(),
		Title:    "<script>alert(1)</script>",
		Priority: "low",
		Email:    "x@example.com",
	})
	assert.NotContains(t, msg.HTML, "<script>")
}
