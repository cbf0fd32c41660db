package service

import (
	"context"
	"errors"
	"log/slog"

	"sauti.app/api/common/logger"
	"sauti.app/api/internal/intake"
	"sauti.app/api/internal/model"
	"sauti.app/api/internal/ussd"
)

const ussdStoreFailureText = ussd.EndPrefix + "We could not record your report. Please try again later."

// UssdService evaluates one resent USSD path and returns the gateway response
// body. Dialogue state lives entirely in the path, so any instance can serve
// any request of a session.
type UssdService interface {
	HandleInput(ctx context.Context, sessionID, phoneNumber, text string) string
}

type ussdService struct {
	intake IntakeService
	logger *slog.Logger
}

func NewUssdService(intake IntakeService, logger *slog.Logger) UssdService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ussdService{intake: intake, logger: logger}
}

func (s *ussdService) HandleInput(ctx context.Context, sessionID, phoneNumber, text string) string {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SessionID: logger.Ptr(sessionID),
		Channel:   logger.Ptr(string(model.PlatformUSSD)),
	})

	outcome := ussd.Walk(text)
	if outcome.Submission == nil {
		return outcome.Text
	}

	sub := outcome.Submission
	contact := phoneNumber
	_, err := s.intake.Submit(ctx, intake.RawReport{
		Category:    sub.Category,
		Urgency:     sub.Urgency,
		Description: sub.Description,
		Location:    sub.Location,
		Contact:     &contact,
		IsAnonymous: true,
	}, model.PlatformUSSD)
	if err != nil {
		if errors.Is(err, intake.ErrMissingDescription) {
			return ussd.EndPrefix + "Your report was not recorded: a description is required. Please dial again."
		}
		s.logger.ErrorContext(ctx, "ussd submission failed",
			"error", err,
			"session_id", sessionID,
		)
		return ussdStoreFailureText
	}

	return outcome.Text
}
