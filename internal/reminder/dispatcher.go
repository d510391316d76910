package reminder

import (
	"context"
	"time"

	"planio/internal/mail"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one task in a run.
type Result struct {
	TaskID  string `json:"taskId"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Summary is the sole externally observable result of one invocation.
type Summary struct {
	Message    string   `json:"message"`
	Total      int      `json:"total"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Results    []Result `json:"results,omitempty"`
}

// Dispatcher is the stateless reminder job: select due tasks, render and
// send one email each, mark them sent. Store and Sender are injected so
// tests can substitute fakes.
type Dispatcher struct {
	Store  Store
	Sender mail.Sender
	// Concurrency caps in-flight sends; <=0 means unbounded.
	Concurrency int
	Log         zerolog.Logger
}

// Run executes one invocation. Only a selection failure returns an error;
// per-task send or mark failures are isolated into Results.
func (d *Dispatcher) Run(ctx context.Context, now time.Time) (*Summary, error) {
	tasks, err := d.Store.DueReminders(ctx, now)
	if err != nil {
		d.Log.Error().Err(err).Msg("reminder selection failed")
		return nil, err
	}

	if len(tasks) == 0 {
		return &Summary{Message: "No reminders to send"}, nil
	}

	d.Log.Info().Int("count", len(tasks)).Msg("dispatching reminders")

	results := make([]Result, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	if d.Concurrency > 0 {
		g.SetLimit(d.Concurrency)
	}
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			results[i] = d.process(gctx, t)
			return nil
		})
	}
	// Workers never return errors; failures live in results.
	_ = g.Wait()

	sum := &Summary{
		Message: "Reminders processing completed",
		Total:   len(tasks),
		Results: results,
	}
	for _, r := range results {
		if r.Success {
			sum.Successful++
		} else {
			sum.Failed++
		}
	}

	d.Log.Info().
		Int("total", sum.Total).
		Int("successful", sum.Successful).
		Int("failed", sum.Failed).
		Msg("reminder run finished")

	return sum, nil
}

// process handles one task: render, send, then mark sent. The mark happens
// only after the channel accepted the send, so a crash in between leaves the
// row eligible for the next run (at-least-once) instead of silently dropped.
func (d *Dispatcher) process(ctx context.Context, t DueTask) Result {
	msg := Render(t)

	if err := d.Sender.Send(ctx, msg); err != nil {
		d.Log.Error().Err(err).Str("task_id", t.ID.String()).Msg("reminder send failed")
		return Result{TaskID: t.ID.String(), Error: err.Error()}
	}

	if err := d.Store.MarkReminderSent(ctx, t.ID); err != nil {
		// The email went out but the flag did not stick; the next run may
		// send a duplicate. Accepted trade-off, surfaced in the result.
		d.Log.Error().Err(err).Str("task_id", t.ID.String()).Msg("reminder sent but not marked")
		return Result{TaskID: t.ID.String(), Error: err.Error()}
	}

	d.Log.Info().Str("task_id", t.ID.String()).Str("to", t.Email).Msg("reminder sent")
	return Result{TaskID: t.ID.String(), Success: true}
}
