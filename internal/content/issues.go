package content

import (
	"fmt"

	"go.uber.org/zap"
)

// Severity of a content issue.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue describes a data quality problem found while normalizing content.
// Issues never stop a page from rendering.
type Issue struct {
	Locale   Locale   `json:"locale"`
	Domain   string   `json:"domain"`
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s %s.%s: %s", i.Severity, i.Locale, i.Domain, i.Field, i.Message)
}

// Fields returns the issue as zap fields.
func (i Issue) Fields() []zap.Field {
	return []zap.Field{
		zap.String("locale", string(i.Locale)),
		zap.String("domain", i.Domain),
		zap.String("field", i.Field),
		zap.String("severity", string(i.Severity)),
	}
}

// HasErrors reports whether any issue is error severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
