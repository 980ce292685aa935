package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/anvika-estates/crm-backend/internal/usecase"
)

// ReminderScanWorker periodically looks for appointments starting within
// the reminder window that have not been reminded yet and puts one
// message each on the queue. Marking reminder_sent happens in the
// consumer after the email goes out, so a crashed consumer retries.
type ReminderScanWorker struct {
	Appointments usecase.AppointmentRepository
	Producer     usecase.ReminderProducer
	Log          *zap.SugaredLogger

	window       time.Duration
	tickInterval time.Duration
}

func NewReminderScanWorker(appts usecase.AppointmentRepository, producer usecase.ReminderProducer, log *zap.SugaredLogger) *ReminderScanWorker {
	return &ReminderScanWorker{
		Appointments: appts,
		Producer:     producer,
		Log:          log,
		window:       24 * time.Hour,
		tickInterval: 5 * time.Minute,
	}
}

func (w *ReminderScanWorker) Start(ctx context.Context) {
	w.Log.Infow("reminder scan worker running", "window", w.window.String())

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			w.Log.Info("reminder scan worker stopped")
			return
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *ReminderScanWorker) scan(ctx context.Context) {
	appts, err := w.Appointments.ListDueForReminder(ctx, w.window)
	if err != nil {
		w.Log.Errorw("reminder scan failed", "err", err)
		return
	}

	for _, a := range appts {
		payload := usecase.ReminderPayload{
			AppointmentID: a.ID,
			LeadID:        a.LeadID,
			Title:         a.Title,
			Location:      a.Location,
			StartsAt:      a.AppointmentDate,
		}
		if err := w.Producer.PublishReminder(ctx, payload); err != nil {
			w.Log.Errorw("publishing reminder failed", "appointment", a.ID, "err", err)
			continue
		}
		w.Log.Infow("reminder queued", "appointment", a.ID, "starts_at", a.AppointmentDate)
	}
}
