package domain

import "time"

// NoticeEvent announces a notice that reached at least one department.
type NoticeEvent struct {
	Title        string       `json:"title"`
	Severity     Severity     `json:"severity"`
	Uploader     string       `json:"uploader"`
	Departments  []Department `json:"departments"`
	DocumentPath *string      `json:"documentPath,omitempty"`
	PublishedAt  time.Time    `json:"publishedAt"`
}
