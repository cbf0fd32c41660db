package model

import "strings"

// The menu orders below are part of the USSD wire contract: menu numbers map
// 1-based onto these slices. Append only; never reorder between deployments.

var categoryMenu = []Category{
	CategoryGBV,
	CategoryChildProtection,
	CategoryFoodInsecurity,
	CategoryWaterSanitation,
	CategoryShelter,
	CategoryHealth,
	CategoryEducation,
}

var urgencyMenu = []Urgency{
	UrgencyLow,
	UrgencyMedium,
	UrgencyHigh,
	UrgencyCritical,
}

var categoryLabels = map[Category]string{
	CategoryGBV:             "Gender-based violence",
	CategoryChildProtection: "Child protection",
	CategoryFoodInsecurity:  "Food insecurity",
	CategoryWaterSanitation: "Water & sanitation",
	CategoryShelter:         "Shelter",
	CategoryHealth:          "Health",
	CategoryEducation:       "Education",
	CategoryUnknown:         "Unknown",
}

// categoryAliases maps the shorthand tokens senders actually type over SMS
// onto canonical categories. Keys are lowercased.
var categoryAliases = map[string]Category{
	"gbv":        CategoryGBV,
	"violence":   CategoryGBV,
	"cp":         CategoryChildProtection,
	"child":      CategoryChildProtection,
	"food":       CategoryFoodInsecurity,
	"hunger":     CategoryFoodInsecurity,
	"water":      CategoryWaterSanitation,
	"wash":       CategoryWaterSanitation,
	"sanitation": CategoryWaterSanitation,
	"shelter":    CategoryShelter,
	"housing":    CategoryShelter,
	"health":     CategoryHealth,
	"medical":    CategoryHealth,
	"education":  CategoryEducation,
	"school":     CategoryEducation,
}

var urgencyAliases = map[string]Urgency{
	"low":       UrgencyLow,
	"medium":    UrgencyMedium,
	"med":       UrgencyMedium,
	"normal":    UrgencyMedium,
	"high":      UrgencyHigh,
	"urgent":    UrgencyHigh,
	"critical":  UrgencyCritical,
	"emergency": UrgencyCritical,
}

var sectorOf = map[Category]Sector{
	CategoryGBV:             SectorGBV,
	CategoryChildProtection: SectorGBV,
	CategoryEducation:       SectorEducation,
	CategoryWaterSanitation: SectorWater,
}

// Categories returns the closed category vocabulary in menu order, excluding
// the Unknown sentinel.
func Categories() []Category {
	out := make([]Category, len(categoryMenu))
	copy(out, categoryMenu)
	return out
}

// Urgencies returns the ordered urgency scale in menu order, excluding the
// Unknown sentinel.
func Urgencies() []Urgency {
	out := make([]Urgency, len(urgencyMenu))
	copy(out, urgencyMenu)
	return out
}

// Sectors returns all top-level sectors in reporting order.
func Sectors() []Sector {
	return []Sector{SectorGBV, SectorEducation, SectorWater, SectorOther}
}

// Label returns the human-readable menu label for a category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Sector classifies a category into its top-level sector.
func (c Category) Sector() Sector {
	if s, ok := sectorOf[c]; ok {
		return s
	}
	return SectorOther
}

// CategoryByIndex resolves a 1-based USSD menu number. ok is false when the
// index is outside the menu.
func CategoryByIndex(i int) (Category, bool) {
	if i < 1 || i > len(categoryMenu) {
		return CategoryUnknown, false
	}
	return categoryMenu[i-1], true
}

// UrgencyByIndex resolves a 1-based USSD menu number.
func UrgencyByIndex(i int) (Urgency, bool) {
	if i < 1 || i > len(urgencyMenu) {
		return UrgencyUnknown, false
	}
	return urgencyMenu[i-1], true
}

// ParseCategory maps a channel-supplied token onto the closed vocabulary.
// Matching is case-insensitive and accepts canonical values and common
// shorthands. ok is false when nothing matched.
func ParseCategory(token string) (Category, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return CategoryUnknown, false
	}
	for _, c := range categoryMenu {
		if t == string(c) {
			return c, true
		}
	}
	if c, ok := categoryAliases[t]; ok {
		return c, true
	}
	return CategoryUnknown, false
}

// ParseUrgency maps a channel-supplied token onto the urgency scale.
func ParseUrgency(token string) (Urgency, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return UrgencyUnknown, false
	}
	for _, u := range urgencyMenu {
		if t == string(u) {
			return u, true
		}
	}
	if u, ok := urgencyAliases[t]; ok {
		return u, true
	}
	return UrgencyUnknown, false
}

// ParseStatus validates a caller-supplied lifecycle value.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusNew:
		return StatusNew, true
	case StatusUnderReview:
		return StatusUnderReview, true
	case StatusResolved:
		return StatusResolved, true
	}
	return "", false
}
