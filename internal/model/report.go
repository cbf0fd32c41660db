package model

import "time"

type Category string

type Urgency string

type Platform string

type (
	Status string
	Sector string
)

const (
	CategoryGBV             Category = "gender-based-violence"
	CategoryChildProtection Category = "child-protection"
	CategoryFoodInsecurity  Category = "food-insecurity"
	CategoryWaterSanitation Category = "water-sanitation"
	CategoryShelter         Category = "shelter"
	CategoryHealth          Category = "health"
	CategoryEducation       Category = "education"

	// CategoryUnknown is the sentinel for channel input that could not be
	// mapped onto the closed vocabulary. Reports carrying it are flagged.
	CategoryUnknown Category = "unknown"
)

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"

	UrgencyUnknown Urgency = "unknown"
)

const (
	PlatformWeb   Platform = "web"
	PlatformSMS   Platform = "sms"
	PlatformUSSD  Platform = "ussd"
	PlatformEmail Platform = "email"
)

const (
	StatusNew         Status = "new"
	StatusUnderReview Status = "under-review"
	StatusResolved    Status = "resolved"
)

const (
	SectorGBV       Sector = "gbv"
	SectorEducation Sector = "education"
	SectorWater     Sector = "water"
	SectorOther     Sector = "other"
)

// CanTransitionTo reports whether a status change is legal. The lifecycle only
// moves forward: new -> under-review -> resolved, and nothing leaves resolved.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusNew:
		return next == StatusUnderReview || next == StatusResolved
	case StatusUnderReview:
		return next == StatusResolved
	default:
		return false
	}
}

// IsUrgent reports whether this urgency level warrants immediate attention.
func (u Urgency) IsUrgent() bool {
	return u == UrgencyHigh || u == UrgencyCritical
}

// Report is the canonical record every intake channel normalizes into.
// ID and SubmittedAt are assigned at normalization time and never change.
type Report struct {
	ID          int64    `json:"id"`
	Category    Category `json:"category"`
	Urgency     Urgency  `json:"urgency"`
	Description string   `json:"description"`
	Region      *string  `json:"region,omitempty"`
	Platform    Platform `json:"platform"`
	IsAnonymous bool     `json:"is_anonymous"`

	// ReporterContact is carried internally for confirmation delivery and is
	// never exposed to consumers while IsAnonymous is set.
	ReporterContact *string `json:"reporter_contact,omitempty"`

	Status  Status `json:"status"`
	Flagged bool   `json:"flagged"`

	// RawCategory/RawUrgency preserve the verbatim channel token whenever the
	// enumeration lookup degraded to a sentinel, so reviewers can triage.
	RawCategory *string `json:"raw_category,omitempty"`
	RawUrgency  *string `json:"raw_urgency,omitempty"`

	// Extensions holds channel-specific attributes (school name, stakeholder,
	// infrastructure type, ...) outside the invariant-bearing schema.
	Extensions map[string]string `json:"extensions,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
