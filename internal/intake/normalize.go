// Package intake normalizes channel-specific report payloads into the
// canonical model.Report record.
//
// Two validation policies share the same field mapping: the web channel is
// strict (unknown enumeration values are rejected, the form should have
// constrained them), while SMS and USSD are lenient (unmapped tokens degrade
// to the Unknown sentinel and flag the report for review, because senders on
// those channels cannot cheaply be asked to retry).
package intake

import (
	"errors"
	"strings"
	"time"

	"sauti.app/api/common/id"
	"sauti.app/api/internal/model"
)

var (
	ErrMissingDescription = errors.New("description is required")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownUrgency     = errors.New("unknown urgency")
)

// RawReport is the channel-agnostic payload handed to the normalizer.
// Category and Urgency are verbatim channel tokens; Platform is supplied by
// the adapter, never by the caller.
type RawReport struct {
	Category    string
	Urgency     string
	Description string
	Location    string
	Contact     *string
	IsAnonymous bool
	Extensions  map[string]string
}

// Normalize maps a raw payload onto the canonical schema, assigns the report
// ID and submission timestamp, and applies the platform's validation policy.
// It has no side effects; persistence belongs to the store.
func Normalize(raw RawReport, platform model.Platform) (*model.Report, error) {
	desc := strings.TrimSpace(raw.Description)
	if desc == "" {
		return nil, ErrMissingDescription
	}

	strict := platform == model.PlatformWeb

	report := &model.Report{
		ID:          id.New(),
		Description: desc,
		Platform:    platform,
		IsAnonymous: raw.IsAnonymous,
		Status:      model.StatusNew,
		SubmittedAt: time.Now().UTC(),
	}

	category, ok := model.ParseCategory(raw.Category)
	if !ok {
		if strict {
			return nil, ErrUnknownCategory
		}
		report.Flagged = true
		if token := strings.TrimSpace(raw.Category); token != "" {
			report.RawCategory = &token
		}
	}
	report.Category = category

	urgency, ok := model.ParseUrgency(raw.Urgency)
	if !ok {
		if strict {
			return nil, ErrUnknownUrgency
		}
		report.Flagged = true
		if token := strings.TrimSpace(raw.Urgency); token != "" {
			report.RawUrgency = &token
		}
	}
	report.Urgency = urgency

	if region := strings.TrimSpace(raw.Location); region != "" {
		report.Region = &region
	}
	if raw.Contact != nil && strings.TrimSpace(*raw.Contact) != "" {
		contact := strings.TrimSpace(*raw.Contact)
		report.ReporterContact = &contact
	}
	if len(raw.Extensions) > 0 {
		report.Extensions = make(map[string]string, len(raw.Extensions))
		for k, v := range raw.Extensions {
			if v = strings.TrimSpace(v); v != "" {
				report.Extensions[k] = v
			}
		}
	}

	return report, nil
}
