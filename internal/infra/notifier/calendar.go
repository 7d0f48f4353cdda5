package notifier

import (
	"context"
	"fmt"
	"os"
	"strings"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarWriter adds confirmed rentals to the operator's delivery calendar
// using a service account.
type CalendarWriter struct {
	svc        *calendar.Service
	calendarID string
}

func NewCalendarWriter(ctx context.Context, cfg config.NotifyConfig) (*CalendarWriter, error) {
	creds, err := os.ReadFile(cfg.CalendarKeyFile)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read calendar credentials")
	}
	conf, err := google.JWTConfigFromJSON(creds, calendar.CalendarEventsScope)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse calendar credentials")
	}
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create calendar service")
	}
	return &CalendarWriter{svc: svc, calendarID: cfg.CalendarID}, nil
}

func (w *CalendarWriter) CreateCalendarEvent(ctx context.Context, b *booking.Booking) error {
	if _, err := w.svc.Events.Insert(w.calendarID, calendarEvent(b)).Context(ctx).Do(); err != nil {
		return errs.Wrapf(err, "failed to create calendar event for booking %s", b.ID())
	}
	return nil
}

// calendarEvent is an all-day entry on the event date.
func calendarEvent(b *booking.Booking) *calendar.Event {
	p := b.Pricing()
	e := b.Event()
	c := b.Customer()

	var desc strings.Builder
	fmt.Fprintf(&desc, "Booking %s\n", b.ID())
	fmt.Fprintf(&desc, "Customer: %s <%s>", c.Name, c.Email)
	if c.Phone != "" {
		fmt.Fprintf(&desc, " %s", c.Phone)
	}
	desc.WriteString("\n")
	if e.StartTime != nil {
		fmt.Fprintf(&desc, "Start: %s\n", *e.StartTime)
	}
	if e.GuestsCount != nil {
		fmt.Fprintf(&desc, "Guests: %d\n", *e.GuestsCount)
	}
	for _, it := range p.AddOns {
		fmt.Fprintf(&desc, "Add-on: %s x%d\n", it.Name, it.Quantity)
	}
	if e.SpecialRequests != nil && *e.SpecialRequests != "" {
		fmt.Fprintf(&desc, "Notes: %s\n", *e.SpecialRequests)
	}
	fmt.Fprintf(&desc, "Total %s, deposit %s, balance %s", p.TotalAmount, p.DepositAmount, p.BalanceDue())

	return &calendar.Event{
		Summary:     fmt.Sprintf("%s rental: %s", p.RentalType.Label(), c.Name),
		Location:    e.Address,
		Description: desc.String(),
		Start:       &calendar.EventDateTime{Date: e.Date.String()},
		End:         &calendar.EventDateTime{Date: e.Date.AddDays(1).String()},
	}
}
