package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedFormat     = errors.New("unsupported format")
	ErrInvalidFormat         = errors.New("invalid format")
	ErrConversionFailure     = errors.New("conversion failed")
	ErrConversionTimeout     = errors.New("conversion timed out")
	ErrCompressionExhausted  = errors.New("compression budget not met")
	ErrTooManyPages          = errors.New("too many pages")
	ErrModelCallFailure      = errors.New("model call failed")
	ErrExtractionTimeout     = errors.New("extraction timed out")
	ErrEmptyModelResponse    = errors.New("model returned no text")
	ErrUnparsableModelOutput = errors.New("model returned invalid JSON")
	ErrPartialFanoutFailure  = errors.New("some department writes failed")
	ErrFileTooLarge          = errors.New("file too large")
	ErrInvalidNotice         = errors.New("invalid notice")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrDocumentNotFound      = errors.New("document not found")
)

// StageError keeps the stage where a staging run failed next to the cause.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ModelDiagnostics describes the shape of a model reply that carried no text.
type ModelDiagnostics struct {
	CandidatesLength  int      `json:"candidatesLength"`
	FinishReasons     []string `json:"finishReasons,omitempty"`
	BlockReason       string   `json:"blockReason,omitempty"`
	PartsPerCandidate []int    `json:"partsPerCandidate,omitempty"`
	FullResponse      string   `json:"fullResponse,omitempty"`
}

type EmptyModelResponseError struct {
	Diagnostics ModelDiagnostics
}

func (e *EmptyModelResponseError) Error() string {
	msg := ErrEmptyModelResponse.Error()
	if e.Diagnostics.BlockReason != "" {
		msg += " (blocked: " + e.Diagnostics.BlockReason + ")"
	} else if len(e.Diagnostics.FinishReasons) > 0 {
		msg += " (finish reasons: " + strings.Join(e.Diagnostics.FinishReasons, ", ") + ")"
	}

	return msg
}

func (e *EmptyModelResponseError) Is(target error) bool {
	return target == ErrEmptyModelResponse
}

// UnparsableOutputError carries the model text that could not be decoded.
type UnparsableOutputError struct {
	RawText      string
	OriginalText string
	Err          error
}

func (e *UnparsableOutputError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUnparsableModelOutput, e.Err)
}

func (e *UnparsableOutputError) Is(target error) bool {
	return target == ErrUnparsableModelOutput
}

func (e *UnparsableOutputError) Unwrap() error {
	return e.Err
}

// CompressionExhaustedError is returned when no attempt met the budget.
// Result holds the smallest output seen.
type CompressionExhaustedError struct {
	Result *CompressionResult
}

func (e *CompressionExhaustedError) Error() string {
	return fmt.Sprintf("%v: best attempt %d bytes, original %d bytes",
		ErrCompressionExhausted, e.Result.ResultSize, e.Result.OriginalSize)
}

func (e *CompressionExhaustedError) Is(target error) bool {
	return target == ErrCompressionExhausted
}

// DepartmentError is a failed write for one department.
type DepartmentError struct {
	Department Department
	Table      string
	Err        error
}

func (e *DepartmentError) Error() string {
	return fmt.Sprintf("department %s (%s): %v", e.Department, e.Table, e.Err)
}

func (e *DepartmentError) Unwrap() error {
	return e.Err
}

type PartialFanoutError struct {
	Failed []*DepartmentError
}

func (e *PartialFanoutError) Error() string {
	parts := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		parts = append(parts, f.Error())
	}

	return fmt.Sprintf("%v: %s", ErrPartialFanoutFailure, strings.Join(parts, "; "))
}

func (e *PartialFanoutError) Is(target error) bool {
	return target == ErrPartialFanoutFailure
}

func (e *PartialFanoutError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, f := range e.Failed {
		errs = append(errs, f)
	}

	return errs
}
