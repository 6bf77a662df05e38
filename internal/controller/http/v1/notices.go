package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/notice_pipeline/internal/domain"
	"github.com/kurochkinivan/notice_pipeline/internal/intake"
)

const UserIDHeader = "X-User-ID"

type Publisher interface {
	Publish(ctx context.Context, req intake.FanoutRequest) (*intake.FanoutResult, error)
}

type ProfilesRepository interface {
	ProfileByID(ctx context.Context, id string) (*domain.Profile, error)
}

type NoticesRepository interface {
	NoticesByDepartment(ctx context.Context, dept domain.Department, limit, offset uint64) ([]*domain.NoticeRow, int, error)
	ExportNotices(ctx context.Context, dept domain.Department) ([]*domain.NoticeRow, error)
}

type NoticesHandler struct {
	log                *slog.Logger
	maxUploadSize      int64
	publisher          Publisher
	profilesRepository ProfilesRepository
	noticesRepository  NoticesRepository
}

func NewNoticesHandler(
	log *slog.Logger,
	maxUploadSize int64,
	publisher Publisher,
	profilesRepository ProfilesRepository,
	noticesRepository NoticesRepository,
) *NoticesHandler {
	return &NoticesHandler{
		log:                log,
		maxUploadSize:      maxUploadSize,
		publisher:          publisher,
		profilesRepository: profilesRepository,
		noticesRepository:  noticesRepository,
	}
}

type PublishNoticeResponse struct {
	Success      bool                      `json:"success"`
	DocumentPath *string                   `json:"documentPath,omitempty"`
	Message      string                    `json:"message,omitempty"`
	RowsWritten  int                       `json:"rowsWritten"`
	Departments  []intake.DepartmentResult `json:"departments"`
}

func (h *NoticesHandler) PublishNotice(w http.ResponseWriter, r *http.Request) {
	uploaderID := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if uploaderID == "" {
		writeError(w, r, h.log, badRequest("%s header is required", UserIDHeader))
		return
	}

	if err := parseForm(w, r, h.maxUploadSize); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	notice, err := noticeFromForm(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	isDocument, err := formBool(r, "is_document")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	attachment, err := formFile(r, h.maxUploadSize)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	uploader, err := h.profilesRepository.ProfileByID(r.Context(), uploaderID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	result, err := h.publisher.Publish(r.Context(), intake.FanoutRequest{
		Notice:     notice,
		Uploader:   uploader,
		Attachment: attachment,
		IsDocument: isDocument,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := PublishNoticeResponse{
		Success:      true,
		DocumentPath: result.DocumentPath,
		Message:      result.Annotation(),
		RowsWritten:  result.RowsWritten,
		Departments:  result.Departments,
	}

	writeJSON(w, http.StatusOK, resp)
}

// noticeFromForm keeps unknown department names so that the fan-out can
// report them as skipped.
func noticeFromForm(r *http.Request) (*domain.ExtractedNotice, error) {
	notice := &domain.ExtractedNotice{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Insights: strings.TrimSpace(r.FormValue("actionable_insights")),
		Severity: domain.ParseSeverity(r.FormValue("severity")),
		Deadline: domain.NormalizeDeadline(r.FormValue("deadline")),
	}

	if by := strings.TrimSpace(r.FormValue("authorized_by")); by != "" {
		notice.AuthorizedBy = &by
	}

	names, err := departmentNames(r.FormValue("departments"))
	if err != nil {
		return nil, err
	}

	seen := make(map[domain.Department]bool, len(names))
	for _, name := range names {
		dept, ok := domain.ParseDepartment(name)
		if !ok {
			dept = domain.Department(strings.TrimSpace(name))
		}
		if dept == "" || seen[dept] {
			continue
		}

		seen[dept] = true
		notice.Departments = append(notice.Departments, dept)
	}

	return notice, nil
}

// departmentNames accepts a JSON array or a comma separated list.
func departmentNames(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if strings.HasPrefix(raw, "[") {
		var names []string
		if err := json.Unmarshal([]byte(raw), &names); err != nil {
			return nil, badRequest("departments must be a JSON array of strings: %v", err)
		}
		return names, nil
	}

	return strings.Split(raw, ","), nil
}

func formBool(r *http.Request, key string) (bool, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, badRequest("%s must be a boolean", key)
	}

	return b, nil
}

type Pagination struct {
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

func newPagination(page, limit uint64, total int) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int(limit) - 1) / int(limit),
	}
}

type GetNoticesResponse struct {
	Notices    []*domain.NoticeRow `json:"notices"`
	Pagination Pagination          `json:"pagination"`
}

func (h *NoticesHandler) GetNoticesByDepartment(w http.ResponseWriter, r *http.Request) {
	dept, err := departmentParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, r, h.log, badRequest("%v", err))
		return
	}

	offset := (page - 1) * limit

	notices, total, err := h.noticesRepository.NoticesByDepartment(r.Context(), dept, limit, offset)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, GetNoticesResponse{
		Notices:    notices,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *NoticesHandler) ExportNotices(w http.ResponseWriter, r *http.Request) {
	dept, err := departmentParam(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	notices, err := h.noticesRepository.ExportNotices(r.Context(), dept)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	data, err := csvutil.Marshal(notices)
	if err != nil {
		writeError(w, r, h.log, fmt.Errorf("failed to encode csv: %w", err))
		return
	}

	table, _ := domain.NoticeTable(dept)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", table+".csv"))
	w.Write(data)
}

func departmentParam(r *http.Request) (domain.Department, error) {
	raw := chi.URLParam(r, "department")

	dept, ok := domain.ParseDepartment(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", errUnknownDepartment, raw)
	}

	return dept, nil
}

func parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}
