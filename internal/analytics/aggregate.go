// Package analytics computes windowed, per-sector metrics over stored
// reports. Aggregate is a pure function: dashboards call it per request and
// two calls over the same report set return identical output.
package analytics

import (
	"errors"
	"sort"
	"time"

	"sauti.app/api/internal/model"
)

// Window is a rolling time range scoping an analytics query.
type Window string

const (
	Window24h Window = "24h"
	Window7d  Window = "7d"
	Window30d Window = "30d"
	Window90d Window = "90d"
)

// trendDays is the fixed length of the daily trend series.
const trendDays = 7

var ErrUnknownWindow = errors.New("unknown analytics window")

// ParseWindow validates a caller-supplied window value.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case Window24h, Window7d, Window30d, Window90d:
		return Window(s), nil
	}
	return "", ErrUnknownWindow
}

// Duration returns the window's rolling range.
func (w Window) Duration() time.Duration {
	switch w {
	case Window24h:
		return 24 * time.Hour
	case Window7d:
		return 7 * 24 * time.Hour
	case Window30d:
		return 30 * 24 * time.Hour
	case Window90d:
		return 90 * 24 * time.Hour
	}
	return 0
}

type CategoryCount struct {
	Category model.Category `json:"category"`
	Count    int            `json:"count"`
}

// SectorMetrics is the per-sector breakdown. Categories is the sector's
// histogram sorted descending by count, for "top categories" consumers.
type SectorMetrics struct {
	Sector     model.Sector    `json:"sector"`
	Count      int             `json:"count"`
	Urgent     int             `json:"urgent"`
	Anonymous  int             `json:"anonymous"`
	Categories []CategoryCount `json:"categories"`
}

// TrendPoint is one calendar day of the trend series.
type TrendPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD, UTC
	Count int    `json:"count"`
}

// Metrics is the derived, read-only analytics view.
type Metrics struct {
	Window    Window          `json:"window"`
	Total     int             `json:"total"`
	Urgent    int             `json:"urgent"`
	Anonymous int             `json:"anonymous"`
	Recent    int             `json:"recent"`    // within the last 24h, regardless of window
	FollowUp  int             `json:"follow_up"` // status new or urgency high
	Sectors   []SectorMetrics `json:"sectors"`
	Trend     []TrendPoint    `json:"trend"` // last 7 calendar days, oldest first, zero-filled
}

// Aggregate filters reports to the window ending at now and computes the full
// metrics view. All calendar arithmetic is UTC.
func Aggregate(reports []model.Report, w Window, now time.Time) Metrics {
	now = now.UTC()
	cutoff := now.Add(-w.Duration())
	recentCutoff := now.Add(-24 * time.Hour)

	m := Metrics{Window: w}

	type sectorAcc struct {
		count, urgent, anonymous int
		categories               map[model.Category]int
	}
	sectors := make(map[model.Sector]*sectorAcc, len(model.Sectors()))
	for _, s := range model.Sectors() {
		sectors[s] = &sectorAcc{categories: make(map[model.Category]int)}
	}

	trendStart := now.Truncate(24 * time.Hour).AddDate(0, 0, -(trendDays - 1))
	trendCounts := make([]int, trendDays)

	for _, r := range reports {
		at := r.SubmittedAt.UTC()
		if at.Before(cutoff) || at.After(now) {
			continue
		}

		m.Total++
		if r.Urgency.IsUrgent() {
			m.Urgent++
		}
		if r.IsAnonymous {
			m.Anonymous++
		}
		if !at.Before(recentCutoff) {
			m.Recent++
		}
		if r.Status == model.StatusNew || r.Urgency == model.UrgencyHigh {
			m.FollowUp++
		}

		acc := sectors[r.Category.Sector()]
		acc.count++
		if r.Urgency.IsUrgent() {
			acc.urgent++
		}
		if r.IsAnonymous {
			acc.anonymous++
		}
		acc.categories[r.Category]++

		if day := int(at.Truncate(24 * time.Hour).Sub(trendStart).Hours() / 24); day >= 0 && day < trendDays {
			trendCounts[day]++
		}
	}

	for _, s := range model.Sectors() {
		acc := sectors[s]
		m.Sectors = append(m.Sectors, SectorMetrics{
			Sector:     s,
			Count:      acc.count,
			Urgent:     acc.urgent,
			Anonymous:  acc.anonymous,
			Categories: sortedHistogram(acc.categories),
		})
	}

	for i := 0; i < trendDays; i++ {
		m.Trend = append(m.Trend, TrendPoint{
			Date:  trendStart.AddDate(0, 0, i).Format("2006-01-02"),
			Count: trendCounts[i],
		})
	}

	return m
}

// sortedHistogram orders a category histogram by descending count, breaking
// ties on category value so output is deterministic.
func sortedHistogram(counts map[model.Category]int) []CategoryCount {
	if len(counts) == 0 {
		return nil
	}
	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}
