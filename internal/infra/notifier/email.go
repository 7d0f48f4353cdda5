package notifier

import (
	"context"
	"fmt"
	"strings"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

type EmailSender struct {
	client   *mail.Client
	from     string
	business string
}

func NewEmailSender(cfg config.NotifyConfig) (*EmailSender, error) {
	c, err := mail.NewClient(
		cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUsername),
		mail.WithPassword(cfg.SMTPPassword),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize smtp client")
	}
	return &EmailSender{client: c, from: cfg.MailFrom, business: cfg.BusinessName}, nil
}

func (s *EmailSender) SendBookingConfirmation(ctx context.Context, b *booking.Booking) error {
	msg, err := confirmationMessage(s.from, s.business, b)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrapf(err, "failed to send confirmation for booking %s", b.ID())
	}
	return nil
}

func confirmationMessage(from, business string, b *booking.Booking) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(business, from); err != nil {
		return nil, errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(b.Customer().Email); err != nil {
		return nil, errs.Wrap(err, "invalid customer address")
	}
	msg.Subject(confirmationSubject(business, b))
	msg.SetBodyString(mail.TypeTextPlain, confirmationBody(business, b))
	return msg, nil
}

func confirmationSubject(business string, b *booking.Booking) string {
	return fmt.Sprintf("%s: booking confirmed for %s", business, b.Event().Date)
}

func confirmationBody(business string, b *booking.Booking) string {
	p := b.Pricing()
	e := b.Event()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", b.Customer().Name)
	fmt.Fprintf(&sb, "Your %s rental on %s is confirmed.\n\n", strings.ToLower(p.RentalType.Label()), e.Date)
	fmt.Fprintf(&sb, "Booking reference: %s\n", b.ID())
	fmt.Fprintf(&sb, "Delivery address: %s\n", e.Address)
	if e.StartTime != nil {
		fmt.Fprintf(&sb, "Start time: %s\n", *e.StartTime)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Rental: %s\n", p.BasePrice)
	fmt.Fprintf(&sb, "Delivery: %s\n", p.DeliveryFee)
	for _, it := range p.AddOns {
		fmt.Fprintf(&sb, "%s x%d: %s\n", it.Name, it.Quantity, it.Subtotal)
	}
	if p.DiscountAmount > 0 {
		code := ""
		if p.PromoCode != nil {
			code = " (" + *p.PromoCode + ")"
		}
		fmt.Fprintf(&sb, "Discount%s: -%s\n", code, p.DiscountAmount)
	}
	fmt.Fprintf(&sb, "Total: %s\n", p.TotalAmount)
	fmt.Fprintf(&sb, "Deposit paid: %s\n", p.DepositAmount)
	fmt.Fprintf(&sb, "Balance due on delivery: %s\n\n", p.BalanceDue())
	fmt.Fprintf(&sb, "Thanks for booking with %s!\n", business)
	return sb.String()
}
