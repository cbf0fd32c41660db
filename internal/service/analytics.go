package service

import (
	"context"
	"fmt"
	"time"

	"sauti.app/api/internal/analytics"
	"sauti.app/api/internal/store"
)

// AnalyticsService computes the aggregated dashboard view on demand. It only
// reads; concurrent intakes at worst show up in the next query (read skew is
// acceptable, dashboards are advisory).
type AnalyticsService interface {
	Aggregate(ctx context.Context, window analytics.Window) (analytics.Metrics, error)
}

type analyticsService struct {
	reports store.ReportStore
	now     func() time.Time
}

func NewAnalyticsService(reports store.ReportStore) AnalyticsService {
	return &analyticsService{reports: reports, now: time.Now}
}

func (s *analyticsService) Aggregate(ctx context.Context, window analytics.Window) (analytics.Metrics, error) {
	now := s.now().UTC()

	reports, err := s.reports.ListSince(ctx, now.Add(-window.Duration()))
	if err != nil {
		return analytics.Metrics{}, fmt.Errorf("listing reports for window %s: %w", window, err)
	}

	return analytics.Aggregate(reports, window, now), nil
}
