package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sauti.app/api/internal/model"
	"sauti.app/api/internal/store"
)

var (
	ErrReportNotFound = errors.New("report not found")
	// ErrInvalidTransition marks a lifecycle change the forward-only rules
	// forbid (backward moves, or any transition out of resolved).
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ReportService serves case-worker reads and the status lifecycle.
type ReportService interface {
	GetByID(ctx context.Context, id int64) (*model.Report, error)
	ListRecent(ctx context.Context, limit int32) ([]model.Report, error)
	UpdateStatus(ctx context.Context, id int64, next model.Status) (*model.Report, error)
}

type reportService struct {
	reports store.ReportStore
	tx      TxRunner
	logger  *slog.Logger
}

func NewReportService(reports store.ReportStore, tx TxRunner, logger *slog.Logger) ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &reportService{reports: reports, tx: tx, logger: logger}
}

func (s *reportService) GetByID(ctx context.Context, id int64) (*model.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("getting report: %w", err)
	}
	return report, nil
}

func (s *reportService) ListRecent(ctx context.Context, limit int32) ([]model.Report, error) {
	reports, err := s.reports.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	return reports, nil
}

// UpdateStatus applies a forward-only lifecycle change. The read and write
// share one transaction so concurrent reviewers cannot race past the rules.
func (s *reportService) UpdateStatus(ctx context.Context, id int64, next model.Status) (*model.Report, error) {
	var updated *model.Report

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		reports := stores.Reports()

		current, err := reports.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrReportNotFound
			}
			return fmt.Errorf("getting report: %w", err)
		}

		if !current.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
		}

		updated, err = reports.UpdateStatus(ctx, id, next)
		if err != nil {
			return fmt.Errorf("updating status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "report status changed",
		"report_id", updated.ID,
		"status", updated.Status,
	)

	return updated, nil
}
