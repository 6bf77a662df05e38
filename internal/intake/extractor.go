package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

var fencePattern = regexp.MustCompile("(?i)```(?:json)?\\s*")

// NoticeExtractor asks a generative model for a notice and validates the
// answer. It never makes up a notice: silent or unparsable replies come
// back as errors carrying what the model said.
type NoticeExtractor struct {
	log     *slog.Logger
	client  ModelClient
	timeout time.Duration
}

func NewNoticeExtractor(log *slog.Logger, client ModelClient, timeout time.Duration) *NoticeExtractor {
	return &NoticeExtractor{
		log:     log,
		client:  client,
		timeout: timeout,
	}
}

func (e *NoticeExtractor) ExtractFromFile(ctx context.Context, file *domain.UploadedFile) (*domain.ExtractedNotice, error) {
	attachment := &domain.UploadedFile{
		Name:        file.Name,
		ContentType: ContentType(file.Name, file.ContentType),
		Data:        file.Data,
	}

	return e.extract(ctx, filePrompt, attachment)
}

func (e *NoticeExtractor) ExtractFromText(ctx context.Context, text string) (*domain.ExtractedNotice, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: no text to extract from", domain.ErrInvalidFormat)
	}

	return e.extract(ctx, textPrompt+text, nil)
}

func (e *NoticeExtractor) extract(
	ctx context.Context,
	prompt string,
	attachment *domain.UploadedFile,
) (*domain.ExtractedNotice, error) {
	callCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	started := time.Now()

	reply, err := e.client.Generate(callCtx, prompt, attachment)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: no reply within %s", domain.ErrExtractionTimeout, e.timeout)
		}

		return nil, fmt.Errorf("%w: %w", domain.ErrModelCallFailure, err)
	}

	e.log.DebugContext(ctx, "model replied",
		slog.Int("text_length", len(reply.Text)),
		slog.Duration("took", time.Since(started)),
	)

	if strings.TrimSpace(reply.Text) == "" {
		return nil, &domain.EmptyModelResponseError{Diagnostics: reply.Diagnostics}
	}

	notice, err := ParseNotice(reply.Text)
	if err != nil {
		return nil, err
	}

	return notice, nil
}

type rawNotice struct {
	Title              string   `json:"title"`
	Insights           string   `json:"insights"`
	ActionableInsights string   `json:"actionable_insights"`
	Deadline           *string  `json:"deadline"`
	Severity           string   `json:"severity"`
	AuthorizedBy       *string  `json:"authorizedBy"`
	AuthorizedBySnake  *string  `json:"authorized_by"`
	Departments        []string `json:"departments"`
}

type rawEnvelope struct {
	Success         *bool      `json:"success"`
	ExtractedNotice *rawNotice `json:"extractedNotice"`
	rawNotice
}

// StripFences removes Markdown code fences wrapped around model output.
func StripFences(text string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}

// ParseNotice decodes model output into a notice. Both the wrapped
// {"success":..,"extractedNotice":{..}} form and a bare notice object are
// accepted.
func ParseNotice(text string) (*domain.ExtractedNotice, error) {
	cleaned := StripFences(text)

	var envelope rawEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, &domain.UnparsableOutputError{RawText: cleaned, OriginalText: text, Err: err}
	}

	raw := envelope.rawNotice
	if envelope.ExtractedNotice != nil {
		raw = *envelope.ExtractedNotice
	}

	notice := normalize(raw)
	if notice.Title == "" {
		return nil, &domain.UnparsableOutputError{
			RawText:      cleaned,
			OriginalText: text,
			Err:          errors.New("reply holds no notice title"),
		}
	}

	return notice, nil
}

func normalize(raw rawNotice) *domain.ExtractedNotice {
	notice := &domain.ExtractedNotice{
		Title:       strings.TrimSpace(raw.Title),
		Insights:    strings.TrimSpace(raw.Insights),
		Severity:    domain.ParseSeverity(raw.Severity),
		Departments: make([]domain.Department, 0, len(raw.Departments)),
	}

	if notice.Insights == "" {
		notice.Insights = strings.TrimSpace(raw.ActionableInsights)
	}

	if raw.Deadline != nil {
		notice.Deadline = domain.NormalizeDeadline(*raw.Deadline)
	}

	authorizedBy := raw.AuthorizedBy
	if authorizedBy == nil {
		authorizedBy = raw.AuthorizedBySnake
	}
	if authorizedBy != nil {
		if s := strings.TrimSpace(*authorizedBy); s != "" && !strings.EqualFold(s, "null") {
			notice.AuthorizedBy = &s
		}
	}

	seen := make(map[domain.Department]bool, len(raw.Departments))
	for _, name := range raw.Departments {
		dept, ok := domain.ParseDepartment(name)
		if !ok || seen[dept] {
			continue
		}

		seen[dept] = true
		notice.Departments = append(notice.Departments, dept)
	}

	return notice
}
