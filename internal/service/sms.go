package service

import (
	"context"
	"errors"
	"log/slog"

	"sauti.app/api/common/logger"
	"sauti.app/api/internal/intake"
	"sauti.app/api/internal/model"
	"sauti.app/api/internal/sms"
)

const (
	smsAckText          = "Thank you. Your report has been received and will be reviewed. A confirmation will follow."
	smsStoreFailureText = "We could not record your report right now. Please try again shortly."
)

// SmsService handles one inbound SMS and returns the plain-text reply the
// gateway relays to the sender.
type SmsService interface {
	HandleMessage(ctx context.Context, from, body string) string
}

type smsService struct {
	intake IntakeService
	logger *slog.Logger
}

func NewSmsService(intake IntakeService, logger *slog.Logger) SmsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &smsService{intake: intake, logger: logger}
}

func (s *smsService) HandleMessage(ctx context.Context, from, body string) string {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Channel: logger.Ptr(string(model.PlatformSMS)),
	})

	cmd, err := sms.Parse(body)
	if err != nil {
		// Usage failure: nothing is persisted, the sender gets the help text.
		return sms.Help
	}

	contact := from
	_, err = s.intake.Submit(ctx, intake.RawReport{
		Category:    cmd.Category,
		Urgency:     cmd.Urgency,
		Description: cmd.Description,
		Location:    cmd.Location,
		Contact:     &contact,
		IsAnonymous: true,
	}, model.PlatformSMS)
	if err != nil {
		if errors.Is(err, intake.ErrMissingDescription) {
			return sms.Help
		}
		s.logger.ErrorContext(ctx, "sms submission failed", "error", err)
		return smsStoreFailureText
	}

	return smsAckText
}
