// Package template substitutes WhatsApp template placeholder tokens
// with lead data. It is pure: no network, no database.
package template

import (
	"strings"
	"time"
)

// DateLayout is the format used for the {{Date}} default value.
const DateLayout = "02 Jan 2006"

// LeadView is the subset of lead fields the renderer can substitute.
type LeadView struct {
	FirstName        string
	Phone            string
	Email            string
	Source           string
	CourseInterested string
}

// Supported placeholder keys. Tokens outside this closed set pass
// through unchanged so that unknown placeholders stay visible in the
// rendered output instead of silently disappearing.
const (
	KeyFirstName        = "FirstName"
	KeyPhone            = "Phone"
	KeyEmail            = "Email"
	KeySource           = "Source"
	KeyCourseInterested = "CourseInterested"
	KeyFeedbackLink     = "FeedbackLink"
	KeyAmount           = "Amount"
	KeyDate             = "Date"
)

// Render resolves each parameter of the form {{Key}} in order:
// lead field value if non-empty, then the fallback map, then a
// hardcoded default ("User" for FirstName, "N/A" for Email, the current
// date for Date, "" otherwise).
func Render(params []string, lead LeadView, fallbacks map[string]string) []string {
	return RenderAt(params, lead, fallbacks, time.Now())
}

// RenderAt is Render with an explicit clock, for tests.
func RenderAt(params []string, lead LeadView, fallbacks map[string]string, now time.Time) []string {
	out := make([]string, len(params))
	for i, param := range params {
		out[i] = renderToken(param, lead, fallbacks, now)
	}
	return out
}

func renderToken(token string, lead LeadView, fallbacks map[string]string, now time.Time) string {
	trimmed := strings.TrimSpace(token)
	if !strings.HasPrefix(trimmed, "{{") || !strings.HasSuffix(trimmed, "}}") {
		return token
	}
	key := strings.TrimSpace(trimmed[2 : len(trimmed)-2])

	var leadValue, defaultValue string
	switch key {
	case KeyFirstName:
		leadValue, defaultValue = lead.FirstName, "User"
	case KeyPhone:
		leadValue, defaultValue = lead.Phone, ""
	case KeyEmail:
		leadValue, defaultValue = lead.Email, "N/A"
	case KeySource:
		leadValue, defaultValue = lead.Source, ""
	case KeyCourseInterested:
		leadValue, defaultValue = lead.CourseInterested, ""
	case KeyFeedbackLink:
		leadValue, defaultValue = "", ""
	case KeyAmount:
		leadValue, defaultValue = "", ""
	case KeyDate:
		leadValue, defaultValue = "", now.Format(DateLayout)
	default:
		// Unknown token: fail open.
		return token
	}

	if leadValue != "" {
		return leadValue
	}
	if fb, ok := fallbacks[key]; ok && fb != "" {
		return fb
	}
	return defaultValue
}
