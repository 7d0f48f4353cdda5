package notifier

import (
	"context"
	"log/slog"

	"bounce-booking/internal/domain/booking"
)

// Notifier routes each channel to its sender. A nil sender means the channel
// is not configured and the call is skipped.
type Notifier struct {
	email    *EmailSender
	sms      *SMSSender
	calendar *CalendarWriter
	logger   *slog.Logger
}

func NewNotifier(email *EmailSender, sms *SMSSender, cal *CalendarWriter, logger *slog.Logger) *Notifier {
	return &Notifier{email: email, sms: sms, calendar: cal, logger: logger}
}

func (n *Notifier) SendBookingConfirmation(ctx context.Context, b *booking.Booking) error {
	if n.email == nil {
		n.logger.Debug("email channel disabled", "booking_id", b.ID().String())
		return nil
	}
	return n.email.SendBookingConfirmation(ctx, b)
}

func (n *Notifier) SendSMS(ctx context.Context, to, text string) error {
	if n.sms == nil {
		n.logger.Debug("sms channel disabled")
		return nil
	}
	return n.sms.SendSMS(ctx, to, text)
}

func (n *Notifier) CreateCalendarEvent(ctx context.Context, b *booking.Booking) error {
	if n.calendar == nil {
		n.logger.Debug("calendar channel disabled", "booking_id", b.ID().String())
		return nil
	}
	return n.calendar.CreateCalendarEvent(ctx, b)
}
