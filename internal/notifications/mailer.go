package notifications

import (
	"context"
	"log/slog"

	"nvlaw-backend/internal/models"
)

// Mailer is the delivery boundary. Real delivery belongs to an external
// collaborator; this service only defines the contract and ships a
// development implementation that logs instead of sending.
type Mailer interface {
	SendContactNotification(ctx context.Context, contact models.Contact) error
	SendAppointmentAcknowledgment(ctx context.Context, appointment models.Appointment) error
}

type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendContactNotification(ctx context.Context, contact models.Contact) error {
	m.log.Info("mail: contact notification",
		slog.String("contact_id", contact.ID),
		slog.String("email", contact.Email),
		slog.String("subject", contact.Subject),
	)
	return nil
}

func (m *LogMailer) SendAppointmentAcknowledgment(ctx context.Context, appointment models.Appointment) error {
	m.log.Info("mail: appointment acknowledgment",
		slog.String("appointment_id", appointment.ID),
		slog.String("email", appointment.Email),
		slog.String("preferred_date", appointment.PreferredDate),
		slog.String("preferred_time", appointment.PreferredTime),
	)
	return nil
}
