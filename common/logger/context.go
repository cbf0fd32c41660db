package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Intake handlers enrich the context once and every log statement
// below them carries the report/channel identifiers for free.
type LogFields struct {
	ReportID  *int64  // canonical report ID, once assigned
	SessionID *string // USSD gateway session identifier
	Channel   *string // originating platform (web, sms, ussd, email)
	Category  *string // report category, once mapped
	Component string  // component name, e.g. "sauti.intake"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.ReportID != nil {
		result.ReportID = next.ReportID
	}
	if next.SessionID != nil {
		result.SessionID = next.SessionID
	}
	if next.Channel != nil {
		result.Channel = next.Channel
	}
	if next.Category != nil {
		result.Category = next.Category
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value, for setting LogFields
// inline: logger.WithLogFields(ctx, logger.LogFields{ReportID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
