package domain

import "time"

// Status is where an inbox file is in its life cycle:
// pending -> processing -> done | error.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

// Claimable reports whether the scanner may hand the file out again.
// Files never seen before have an empty status.
func (s Status) Claimable() bool {
	return s == "" || s == StatusPending
}

// IntakeFile tracks a file picked up from the inbox directory.
type IntakeFile struct {
	Name         string         `db:"name"`
	Status       Status         `db:"status"`
	Lane         ProcessingLane `db:"lane"`
	Notice       []byte         `db:"notice"`
	ErrorMessage string         `db:"error_message"`
	ProcessedAt  *time.Time     `db:"processed_at"`
}

// IntakeResult is what the inbox processor hands over to the recorder.
type IntakeResult struct {
	Path    string
	Outcome *Outcome // filled in case of a success
	Error   error    // filled in case of an error
}
