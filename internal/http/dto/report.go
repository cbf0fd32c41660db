package dto

import (
	"time"

	"sauti.app/api/internal/model"
)

// CreateReportRequest is the structured web-intake payload. The web form
// constrains category and urgency, so these are validated strictly; the
// free-text body may arrive in either description or message.
type CreateReportRequest struct {
	Category    string  `json:"category" binding:"required"`
	Urgency     string  `json:"urgency" binding:"required"`
	Description *string `json:"description,omitempty"`
	Message     *string `json:"message,omitempty"`
	Location    *string `json:"location,omitempty"`
	Anonymous   bool    `json:"anonymous"`
	Contact     *string `json:"contact,omitempty"`

	// Sector-specific optional fields, stored as extension attributes.
	Stakeholder        *string `json:"stakeholder,omitempty"`
	InstitutionName    *string `json:"institution_name,omitempty"`
	InfrastructureType *string `json:"infrastructure_type,omitempty"`
}

// DescriptionText returns the free-text body, preferring description over
// the legacy message field.
func (r *CreateReportRequest) DescriptionText() string {
	if r.Description != nil && *r.Description != "" {
		return *r.Description
	}
	if r.Message != nil {
		return *r.Message
	}
	return ""
}

// Extensions collects the sector-specific optional fields.
func (r *CreateReportRequest) Extensions() map[string]string {
	ext := make(map[string]string)
	if r.Stakeholder != nil {
		ext["stakeholder"] = *r.Stakeholder
	}
	if r.InstitutionName != nil {
		ext["institution_name"] = *r.InstitutionName
	}
	if r.InfrastructureType != nil {
		ext["infrastructure_type"] = *r.InfrastructureType
	}
	if len(ext) == 0 {
		return nil
	}
	return ext
}

type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReportResponse struct {
	SubmittedAt     time.Time         `json:"submitted_at"`
	Category        model.Category    `json:"category"`
	Urgency         model.Urgency     `json:"urgency"`
	Description     string            `json:"description"`
	Region          *string           `json:"region,omitempty"`
	Platform        model.Platform    `json:"platform"`
	Status          model.Status      `json:"status"`
	ReporterContact *string           `json:"reporter_contact,omitempty"`
	Extensions      map[string]string `json:"extensions,omitempty"`
	ID              int64             `json:"id,string"`
	IsAnonymous     bool              `json:"is_anonymous"`
	Flagged         bool              `json:"flagged"`
}

// ToReportResponse maps a report for API consumers. The reporter contact is
// suppressed whenever the report is anonymous.
func ToReportResponse(report *model.Report) *ReportResponse {
	resp := &ReportResponse{
		ID:          report.ID,
		Category:    report.Category,
		Urgency:     report.Urgency,
		Description: report.Description,
		Region:      report.Region,
		Platform:    report.Platform,
		IsAnonymous: report.IsAnonymous,
		Status:      report.Status,
		Flagged:     report.Flagged,
		Extensions:  report.Extensions,
		SubmittedAt: report.SubmittedAt,
	}
	if !report.IsAnonymous {
		resp.ReporterContact = report.ReporterContact
	}
	return resp
}

func ToReportResponses(reports []model.Report) []ReportResponse {
	result := make([]ReportResponse, len(reports))
	for i := range reports {
		result[i] = *ToReportResponse(&reports[i])
	}
	return result
}
