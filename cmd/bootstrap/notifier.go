package bootstrap

import (
	"context"
	"log/slog"

	"bounce-booking/internal/infra/notifier"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier enables each channel that has configuration. A channel that
// fails to initialise is logged and left off; notifications never block startup.
func NewNotifier(cfg config.Config, logger *slog.Logger) commands.Notifier {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Notify.Timeout)
	defer cancel()

	var email *notifier.EmailSender
	if cfg.Notify.SMTPHost != "" && cfg.Notify.MailFrom != "" {
		sender, err := notifier.NewEmailSender(cfg.Notify)
		if err != nil {
			logger.Error("email notifications disabled", "error", err)
		} else {
			email = sender
		}
	}

	var sms *notifier.SMSSender
	if cfg.Notify.SMSEnabled {
		sender, err := notifier.NewSMSSender(ctx, cfg.Notify)
		if err != nil {
			logger.Error("sms notifications disabled", "error", err)
		} else {
			sms = sender
		}
	}

	var cal *notifier.CalendarWriter
	if cfg.Notify.CalendarID != "" && cfg.Notify.CalendarKeyFile != "" {
		writer, err := notifier.NewCalendarWriter(ctx, cfg.Notify)
		if err != nil {
			logger.Error("calendar sync disabled", "error", err)
		} else {
			cal = writer
		}
	}

	return notifier.NewNotifier(email, sms, cal, logger)
}
