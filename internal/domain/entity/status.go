package entity

import "strings"

// Status is the closed set of lifecycle values the backend reports across entities.
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusSuspended  Status = "suspended"
	StatusBlocked    Status = "blocked"
	StatusPaid       Status = "paid"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
	StatusProcessing Status = "processing"
	StatusScheduled  Status = "scheduled"
	StatusDelivered  Status = "delivered"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusPublished  Status = "published"
	StatusDraft      Status = "draft"
	StatusUnknown    Status = "unknown"
)

// Severity is a presentation-neutral category for a status.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityWarning  Severity = "warning"
	SeverityNegative Severity = "negative"
	SeverityNeutral  Severity = "neutral"
)

var statusSeverity = map[Status]Severity{
	StatusActive:     SeverityPositive,
	StatusApproved:   SeverityPositive,
	StatusPaid:       SeverityPositive,
	StatusDelivered:  SeverityPositive,
	StatusCompleted:  SeverityPositive,
	StatusPublished:  SeverityPositive,
	StatusPending:    SeverityWarning,
	StatusProcessing: SeverityWarning,
	StatusScheduled:  SeverityWarning,
	StatusDraft:      SeverityWarning,
	StatusInactive:   SeverityNegative,
	StatusRejected:   SeverityNegative,
	StatusSuspended:  SeverityNegative,
	StatusBlocked:    SeverityNegative,
	StatusFailed:     SeverityNegative,
	StatusCancelled:  SeverityNegative,
	StatusRefunded:   SeverityNeutral,
}

// ParseStatus maps a backend string onto the enumeration. "canceled" is accepted as "cancelled".
func ParseStatus(raw string) Status {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "canceled" {
		s = StatusCancelled
	}
	if _, ok := statusSeverity[s]; ok {
		return s
	}

	return StatusUnknown
}

// Severity returns the category for the status; unknown values are neutral.
func (s Status) Severity() Severity {
	if sev, ok := statusSeverity[ParseStatus(string(s))]; ok {
		return sev
	}

	return SeverityNeutral
}

// Matches compares against a filter value, where "all" matches everything.
func (s Status) Matches(filter string) bool {
	if filter == "" || strings.EqualFold(filter, StatusAll) {
		return true
	}

	return ParseStatus(string(s)) == ParseStatus(filter)
}
