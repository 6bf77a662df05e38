package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/notice_pipeline/internal/domain"
	"golang.org/x/sync/errgroup"
)

type FanoutRequest struct {
	Notice     *domain.ExtractedNotice
	Uploader   *domain.Profile
	Attachment *domain.UploadedFile
	IsDocument bool
}

type DepartmentResult struct {
	Department  domain.Department `json:"department"`
	Table       string            `json:"table,omitempty"`
	DocumentRow bool              `json:"documentRow"`
	NoticeRow   bool              `json:"noticeRow"`
	Skipped     bool              `json:"skipped,omitempty"`
	Error       string            `json:"error,omitempty"`
}

type FanoutResult struct {
	DocumentPath *string                    `json:"documentPath,omitempty"`
	Departments  []DepartmentResult         `json:"departments"`
	RowsWritten  int                        `json:"rowsWritten"`
	Skipped      []domain.Department        `json:"skipped,omitempty"`
	Partial      *domain.PartialFanoutError `json:"-"`
}

// Annotation summarizes skipped and failed departments. It is empty when
// every department was written.
func (r *FanoutResult) Annotation() string {
	var parts []string

	if len(r.Skipped) > 0 {
		names := make([]string, len(r.Skipped))
		for i, d := range r.Skipped {
			names[i] = string(d)
		}
		parts = append(parts, "skipped unknown departments: "+strings.Join(names, ", "))
	}

	if r.Partial != nil {
		parts = append(parts, r.Partial.Error())
	}

	return strings.Join(parts, "; ")
}

// Fanout writes one notice into every department it names. Departments are
// independent: a failed write is reported and never rolled back.
type Fanout struct {
	log     *slog.Logger
	budget  Budget
	storage ObjectStorage
	writer  NoticeWriter
	events  EventPublisher
	now     func() time.Time
}

func NewFanout(
	log *slog.Logger,
	budget Budget,
	storage ObjectStorage,
	writer NoticeWriter,
	events EventPublisher,
) *Fanout {
	return &Fanout{
		log:     log,
		budget:  budget,
		storage: storage,
		writer:  writer,
		events:  events,
		now:     time.Now,
	}
}

// Publish succeeds when at least one row was written. Failed departments
// are listed in FanoutResult.Partial. When nothing was written the result
// is returned together with a *domain.PartialFanoutError.
func (f *Fanout) Publish(ctx context.Context, req FanoutRequest) (*FanoutResult, error) {
	if req.Uploader == nil {
		return nil, domain.ErrProfileNotFound
	}

	if req.Notice == nil {
		return nil, fmt.Errorf("%w: no notice given", domain.ErrInvalidNotice)
	}

	if err := req.Notice.Validate(); err != nil {
		return nil, err
	}

	log := f.log.With(
		slog.String("title", req.Notice.Title),
		slog.String("uploader", req.Uploader.ID),
		slog.Bool("is_document", req.IsDocument),
	)

	documentPath, err := f.storeAttachment(ctx, req)
	if err != nil {
		return nil, err
	}

	base := domain.NewNoticeRow(req.Notice, req.Uploader, f.now())
	results := make([]DepartmentResult, len(req.Notice.Departments))

	var erg errgroup.Group
	for i, dept := range req.Notice.Departments {
		erg.Go(func() error {
			results[i] = f.writeDepartment(ctx, log, dept, base, documentPath, req.IsDocument)
			return nil
		})
	}
	_ = erg.Wait()

	result := &FanoutResult{
		DocumentPath: documentPath,
		Departments:  results,
	}

	var (
		failed  []*domain.DepartmentError
		reached []domain.Department
	)
	for _, r := range results {
		if r.Skipped {
			result.Skipped = append(result.Skipped, r.Department)
		}
		if r.DocumentRow {
			result.RowsWritten++
		}
		if r.NoticeRow {
			result.RowsWritten++
			reached = append(reached, r.Department)
		}
		if r.Error != "" {
			failed = append(failed, &domain.DepartmentError{Department: r.Department, Table: r.Table, Err: errors.New(r.Error)})
		}
	}

	if len(failed) > 0 {
		result.Partial = &domain.PartialFanoutError{Failed: failed}
	}

	if result.RowsWritten == 0 {
		if result.Partial != nil {
			return result, result.Partial
		}
		return result, fmt.Errorf("%w: none of the departments has a notice table", domain.ErrInvalidNotice)
	}

	log.InfoContext(ctx, "notice published",
		slog.Int("rows_written", result.RowsWritten),
		slog.Int("departments_failed", len(failed)),
		slog.Int("departments_skipped", len(result.Skipped)),
	)

	f.announce(ctx, log, req, reached, documentPath)

	return result, nil
}

func (f *Fanout) storeAttachment(ctx context.Context, req FanoutRequest) (*string, error) {
	att := req.Attachment
	if att == nil || att.Size() == 0 {
		return nil, nil
	}

	if att.Size() > f.budget.Attachment {
		return nil, fmt.Errorf("%w: %d bytes, at most %d allowed", domain.ErrFileTooLarge, att.Size(), f.budget.Attachment)
	}

	key := fmt.Sprintf("%s/%s%s", req.Uploader.ID, uuid.NewString(), strings.ToLower(filepath.Ext(att.Name)))

	if err := f.storage.Save(ctx, key, ContentType(att.Name, att.ContentType), att.Data); err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	return &key, nil
}

func (f *Fanout) writeDepartment(
	ctx context.Context,
	log *slog.Logger,
	dept domain.Department,
	base domain.NoticeRow,
	documentPath *string,
	isDocument bool,
) DepartmentResult {
	result := DepartmentResult{Department: dept}

	var errs []string

	if isDocument {
		doc := &domain.DocumentRow{NoticeRow: base, DepartmentTo: dept, IsNotice: true}
		doc.DocumentPath = documentPath

		if err := f.writer.SaveDocumentRow(ctx, doc); err != nil {
			log.ErrorContext(ctx, "failed to write document row",
				slog.String("department", string(dept)),
				slog.String("err", err.Error()),
			)
			errs = append(errs, fmt.Sprintf("%s: %v", domain.TableDocuments, err))
		} else {
			result.DocumentRow = true
		}
	}

	table, ok := domain.NoticeTable(dept)
	if !ok {
		log.WarnContext(ctx, "no notice table for department, skipping", slog.String("department", string(dept)))
		result.Skipped = true
		result.Error = strings.Join(errs, "; ")
		return result
	}
	result.Table = table

	row := base
	if isDocument {
		row.DocumentPath = documentPath
	}

	if err := f.writer.SaveNoticeRow(ctx, table, &row); err != nil {
		log.ErrorContext(ctx, "failed to write notice row",
			slog.String("table", table),
			slog.String("err", err.Error()),
		)
		errs = append(errs, fmt.Sprintf("%s: %v", table, err))
	} else {
		result.NoticeRow = true
	}

	result.Error = strings.Join(errs, "; ")

	return result
}

func (f *Fanout) announce(
	ctx context.Context,
	log *slog.Logger,
	req FanoutRequest,
	departments []domain.Department,
	documentPath *string,
) {
	if f.events == nil || len(departments) == 0 {
		return
	}

	err := f.events.PublishNotice(ctx, domain.NoticeEvent{
		Title:        req.Notice.Title,
		Severity:     req.Notice.Severity,
		Uploader:     req.Uploader.ID,
		Departments:  departments,
		DocumentPath: documentPath,
		PublishedAt:  f.now(),
	})
	if err != nil {
		log.WarnContext(ctx, "failed to publish notice event", slog.String("err", err.Error()))
	}
}
