package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/anvika-estates/crm-backend/internal/infra/http/middleware"
	"github.com/anvika-estates/crm-backend/internal/usecase"
)

// ReminderConsumer drains the reminder queue: resolve the lead, send the
// email, flag the appointment. A lead that was deleted or has no email is
// acked and skipped; broken messages go to the DLQ.
type ReminderConsumer struct {
	Channel      *amqp.Channel
	Leads        usecase.LeadRepository
	Appointments usecase.AppointmentRepository
	Mailer       usecase.ReminderMailer
	Log          *zap.SugaredLogger
}

func NewReminderConsumer(ch *amqp.Channel, leads usecase.LeadRepository, appts usecase.AppointmentRepository, mailer usecase.ReminderMailer, log *zap.SugaredLogger) *ReminderConsumer {
	return &ReminderConsumer{
		Channel:      ch,
		Leads:        leads,
		Appointments: appts,
		Mailer:       mailer,
		Log:          log,
	}
}

func (c *ReminderConsumer) Start(queueName string) {
	msgs, err := c.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		c.Log.Fatalw("registering reminder consumer failed", "err", err)
	}

	c.Log.Infow("reminder consumer running", "queue", queueName)

	for d := range msgs {
		var payload usecase.ReminderPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			c.Log.Warnw("malformed reminder message, sending to DLQ", "err", err)
			d.Nack(false, false)
			continue
		}

		if err := c.process(context.Background(), payload); err != nil {
			c.Log.Errorw("reminder delivery failed", "appointment", payload.AppointmentID, "err", err)
			middleware.RecordReminderSent("failed")
			d.Nack(false, false)
			continue
		}
		d.Ack(false)
	}
}

func (c *ReminderConsumer) process(ctx context.Context, payload usecase.ReminderPayload) error {
	lead, err := c.Leads.FindByID(ctx, payload.LeadID)
	if err != nil {
		return err
	}
	if lead == nil || lead.Email == "" {
		// Orphaned appointment or no contact address. Nothing to send.
		c.Log.Infow("skipping reminder without reachable lead", "appointment", payload.AppointmentID)
		middleware.RecordReminderSent("skipped")
		return c.Appointments.MarkReminderSent(ctx, payload.AppointmentID)
	}

	if err := c.Mailer.SendAppointmentReminder(lead.Email, lead.FullName(), payload.Title, payload.Location, payload.StartsAt); err != nil {
		return err
	}

	middleware.RecordReminderSent("sent")
	return c.Appointments.MarkReminderSent(ctx, payload.AppointmentID)
}
