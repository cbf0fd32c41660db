package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sauti.app/api/common/logger"
	"sauti.app/api/internal/intake"
	"sauti.app/api/internal/model"
	"sauti.app/api/internal/queue"
	"sauti.app/api/internal/store"
)

// ErrStoreUnavailable wraps persistence failures after normalization
// succeeded. Callers surface it as a retryable failure; intake never reports
// success when the append failed.
var ErrStoreUnavailable = errors.New("report store unavailable")

// IntakeService normalizes a channel payload, appends the report, and decides
// whether a confirmation notification is owed.
type IntakeService interface {
	Submit(ctx context.Context, raw intake.RawReport, platform model.Platform) (*model.Report, error)
}

type intakeService struct {
	reports       store.ReportStore
	confirmations queue.Producer
	logger        *slog.Logger
}

func NewIntakeService(reports store.ReportStore, confirmations queue.Producer, logger *slog.Logger) IntakeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &intakeService{
		reports:       reports,
		confirmations: confirmations,
		logger:        logger,
	}
}

func (s *intakeService) Submit(ctx context.Context, raw intake.RawReport, platform model.Platform) (*model.Report, error) {
	report, err := intake.Normalize(raw, platform)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ReportID: logger.Ptr(report.ID),
		Category: logger.Ptr(string(report.Category)),
	})

	if err := s.reports.Create(ctx, report); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist report",
			"error", err,
			"channel", platform,
			"category", report.Category,
		)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.logger.InfoContext(ctx, "report received",
		"report_id", report.ID,
		"channel", platform,
		"category", report.Category,
		"urgency", report.Urgency,
		"flagged", report.Flagged,
	)

	s.notify(ctx, report)

	return report, nil
}

// notify enqueues a confirmation when the reporter left a contact. The report
// is already persisted at this point, so a queue failure is logged and
// swallowed rather than turned into a submission failure.
func (s *intakeService) notify(ctx context.Context, report *model.Report) {
	if s.confirmations == nil || report.ReporterContact == nil {
		return
	}

	err := s.confirmations.Enqueue(ctx, queue.ConfirmationMessage{
		ReportID:  report.ID,
		Channel:   report.Platform,
		Recipient: *report.ReporterContact,
		Category:  report.Category,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to enqueue confirmation",
			"error", err,
			"report_id", report.ID,
		)
	}
}
