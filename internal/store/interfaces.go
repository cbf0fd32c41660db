package store

import (
	"context"
	"errors"
	"time"

	"sauti.app/api/internal/model"
)

var ErrNotFound = errors.New("not found")

// ReportStore is the append-and-read gateway over persisted reports.
// Create is append-only; lifecycle changes go through UpdateStatus.
type ReportStore interface {
	Create(ctx context.Context, report *model.Report) error
	GetByID(ctx context.Context, id int64) (*model.Report, error)
	ListRecent(ctx context.Context, limit int32) ([]model.Report, error)
	ListSince(ctx context.Context, since time.Time) ([]model.Report, error)
	UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Report, error)
}
