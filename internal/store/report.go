package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"sauti.app/api/core/db/sqlc"
	"sauti.app/api/internal/model"
)

type reportStore struct {
	queries *sqlc.Queries
}

func newReportStore(queries *sqlc.Queries) ReportStore {
	return &reportStore{queries: queries}
}

func (s *reportStore) Create(ctx context.Context, report *model.Report) error {
	extensions, err := marshalExtensions(report.Extensions)
	if err != nil {
		return fmt.Errorf("encoding extensions: %w", err)
	}

	row, err := s.queries.CreateReport(ctx, sqlc.CreateReportParams{
		ID:              report.ID,
		Category:        string(report.Category),
		Urgency:         string(report.Urgency),
		Description:     report.Description,
		Region:          report.Region,
		Platform:        string(report.Platform),
		IsAnonymous:     report.IsAnonymous,
		ReporterContact: report.ReporterContact,
		Status:          string(report.Status),
		Flagged:         report.Flagged,
		RawCategory:     report.RawCategory,
		RawUrgency:      report.RawUrgency,
		Extensions:      extensions,
		SubmittedAt:     pgtype.Timestamptz{Time: report.SubmittedAt, Valid: true},
	})
	if err != nil {
		return err
	}
	*report = *toReportModel(row)
	return nil
}

func (s *reportStore) GetByID(ctx context.Context, id int64) (*model.Report, error) {
	row, err := s.queries.GetReport(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toReportModel(row), nil
}

func (s *reportStore) ListRecent(ctx context.Context, limit int32) ([]model.Report, error) {
	rows, err := s.queries.ListRecentReports(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toReportModels(rows), nil
}

func (s *reportStore) ListSince(ctx context.Context, since time.Time) ([]model.Report, error) {
	rows, err := s.queries.ListReportsSince(ctx, pgtype.Timestamptz{Time: since, Valid: true})
	if err != nil {
		return nil, err
	}
	return toReportModels(rows), nil
}

func (s *reportStore) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Report, error) {
	row, err := s.queries.UpdateReportStatus(ctx, sqlc.UpdateReportStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toReportModel(row), nil
}

func toReportModel(row sqlc.Report) *model.Report {
	report := &model.Report{
		ID:              row.ID,
		Category:        model.Category(row.Category),
		Urgency:         model.Urgency(row.Urgency),
		Description:     row.Description,
		Region:          row.Region,
		Platform:        model.Platform(row.Platform),
		IsAnonymous:     row.IsAnonymous,
		ReporterContact: row.ReporterContact,
		Status:          model.Status(row.Status),
		Flagged:         row.Flagged,
		RawCategory:     row.RawCategory,
		RawUrgency:      row.RawUrgency,
		SubmittedAt:     row.SubmittedAt.Time,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
	if len(row.Extensions) > 0 {
		// Rows written by this service always hold a valid JSON object here;
		// a decode failure means manual edits, so fail soft and keep the rest.
		_ = json.Unmarshal(row.Extensions, &report.Extensions)
	}
	return report
}

func toReportModels(rows []sqlc.Report) []model.Report {
	result := make([]model.Report, len(rows))
	for i, row := range rows {
		result[i] = *toReportModel(row)
	}
	return result
}

func marshalExtensions(ext map[string]string) ([]byte, error) {
	if len(ext) == 0 {
		return nil, nil
	}
	return json.Marshal(ext)
}
