package domain

import (
	"fmt"
	"strings"
	"time"
)

type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// ParseSeverity matches case-insensitively. Anything unknown falls back to Low.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	default:
		return SeverityLow
	}
}

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentDesign      Department = "Design"
	DepartmentOperations  Department = "Operations"
	DepartmentFinance     Department = "Finance"
)

var departments = []Department{
	DepartmentEngineering,
	DepartmentDesign,
	DepartmentOperations,
	DepartmentFinance,
}

func Departments() []Department {
	return append([]Department(nil), departments...)
}

// ParseDepartment returns the canonical department for a case-insensitive name.
func ParseDepartment(s string) (Department, bool) {
	s = strings.TrimSpace(s)
	for _, d := range departments {
		if strings.EqualFold(string(d), s) {
			return d, true
		}
	}

	return "", false
}

type ExtractedNotice struct {
	Title        string       `json:"title"`
	Insights     string       `json:"insights"`
	Deadline     *string      `json:"deadline"`
	Severity     Severity     `json:"severity"`
	AuthorizedBy *string      `json:"authorizedBy"`
	Departments  []Department `json:"departments"`
}

var (
	errTitleRequired       = fmt.Errorf("%w: title is required", ErrInvalidNotice)
	errDepartmentsRequired = fmt.Errorf("%w: at least one department is required", ErrInvalidNotice)
)

func (n *ExtractedNotice) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return errTitleRequired
	}

	if len(n.Departments) == 0 {
		return errDepartmentsRequired
	}

	return nil
}

var deadlineLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"02/01/2006",
	"2006/01/02",
	"January 2, 2006",
	"2 January 2006",
	"Jan 2, 2006",
}

// NormalizeDeadline converts recognizable dates to YYYY-MM-DD. Empty input
// yields nil, unrecognized input is kept as written.
func NormalizeDeadline(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := t.Format(time.DateOnly)
			return &d
		}
	}

	return &s
}

func (d Department) String() string {
	return string(d)
}

func (s Severity) String() string {
	return string(s)
}

func (n *ExtractedNotice) String() string {
	return fmt.Sprintf("%q (%s, %d departments)", n.Title, n.Severity, len(n.Departments))
}
