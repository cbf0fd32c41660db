// Package ussd implements the stateless menu-navigation protocol.
//
// USSD gateways resend the entire accumulated input path ("1*2*Maiduguri*...")
// on every request, so the dialogue is a pure function of that path: the
// number of selections picks the state, the selections themselves carry the
// data. There is no server-side session table and no expiry to manage.
package ussd

import (
	"strconv"
	"strings"

	"sauti.app/api/internal/model"
)

// PathDelimiter joins accumulated selections on the wire.
const PathDelimiter = "*"

const (
	// ContinuePrefix asks the gateway to keep the session open.
	ContinuePrefix = "CON "
	// EndPrefix closes the session and displays the trailing text.
	EndPrefix = "END "
)

const invalidInputText = EndPrefix + "Invalid input. Please dial again to start a new report."

// Submission carries the data assembled on the terminal step. Category and
// Urgency are tokens for the normalizer: canonical values when the menu index
// was in range, the verbatim digits otherwise (which the lenient policy maps
// to the Unknown sentinel and flags).
type Submission struct {
	Category    string
	Urgency     string
	Location    string
	Description string
}

// Outcome is the deterministic response for one resent path.
type Outcome struct {
	// Text is the full response body, including the CON/END prefix.
	Text string
	// Submission is non-nil only on the terminal step, where the caller is
	// expected to normalize and persist it before relaying Text.
	Submission *Submission
}

// Walk evaluates the resent selection path and returns the next prompt, a
// completed submission, or the fixed invalid-input response. It never fails:
// every reachable step count has exactly one response.
func Walk(text string) Outcome {
	steps := splitPath(text)

	switch len(steps) {
	case 1:
		return Outcome{Text: categoryPrompt()}
	case 2:
		return Outcome{Text: urgencyPrompt()}
	case 3:
		return Outcome{Text: ContinuePrefix + "Where did this happen? Enter a location:"}
	case 4:
		return Outcome{Text: ContinuePrefix + "Describe what happened:"}
	case 5:
		return Outcome{
			Text: EndPrefix + "Thank you. Your report has been received and will be reviewed.",
			Submission: &Submission{
				Category:    resolveCategory(steps[1]),
				Urgency:     resolveUrgency(steps[2]),
				Location:    strings.TrimSpace(steps[3]),
				Description: strings.TrimSpace(steps[4]),
			},
		}
	default:
		return Outcome{Text: invalidInputText}
	}
}

func splitPath(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, PathDelimiter)
}

func categoryPrompt() string {
	var b strings.Builder
	b.WriteString(ContinuePrefix + "What are you reporting?")
	for i, c := range model.Categories() {
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(c.Label())
	}
	return b.String()
}

func urgencyPrompt() string {
	var b strings.Builder
	b.WriteString(ContinuePrefix + "How urgent is it?")
	for i, u := range model.Urgencies() {
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(strings.ToUpper(string(u)[:1]) + string(u)[1:])
	}
	return b.String()
}

// resolveCategory maps a 1-based menu selection to its canonical token.
// Out-of-range or non-numeric selections pass through verbatim so the lenient
// normalization policy can flag the report instead of killing the session.
func resolveCategory(sel string) string {
	sel = strings.TrimSpace(sel)
	if i, err := strconv.Atoi(sel); err == nil {
		if c, ok := model.CategoryByIndex(i); ok {
			return string(c)
		}
	}
	return sel
}

func resolveUrgency(sel string) string {
	sel = strings.TrimSpace(sel)
	if i, err := strconv.Atoi(sel); err == nil {
		if u, ok := model.UrgencyByIndex(i); ok {
			return string(u)
		}
	}
	return sel
}
