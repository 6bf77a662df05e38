package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind"`
	Stage   string `json:"stage,omitempty"`
	Details any    `json:"details,omitempty"`
	RawText string `json:"rawText,omitempty"`
}

type errorKind struct {
	err    error
	kind   string
	status int
}

// Order matters: the first match wins.
var errorKinds = []errorKind{
	{errBadRequest, "bad_request", http.StatusBadRequest},
	{errUnknownDepartment, "department_not_found", http.StatusNotFound},
	{domain.ErrFileTooLarge, "file_too_large", http.StatusRequestEntityTooLarge},
	{domain.ErrCompressionExhausted, "compression_exhausted", http.StatusRequestEntityTooLarge},
	{domain.ErrUnsupportedFormat, "unsupported_format", http.StatusUnsupportedMediaType},
	{domain.ErrInvalidFormat, "invalid_format", http.StatusUnprocessableEntity},
	{domain.ErrTooManyPages, "too_many_pages", http.StatusUnprocessableEntity},
	{domain.ErrInvalidNotice, "invalid_notice", http.StatusBadRequest},
	{domain.ErrProfileNotFound, "profile_not_found", http.StatusNotFound},
	{domain.ErrDocumentNotFound, "document_not_found", http.StatusNotFound},
	{domain.ErrConversionTimeout, "conversion_timeout", http.StatusGatewayTimeout},
	{domain.ErrConversionFailure, "conversion_failure", http.StatusBadGateway},
	{domain.ErrExtractionTimeout, "extraction_timeout", http.StatusGatewayTimeout},
	{domain.ErrEmptyModelResponse, "empty_model_response", http.StatusBadGateway},
	{domain.ErrUnparsableModelOutput, "unparsable_model_output", http.StatusBadGateway},
	{domain.ErrModelCallFailure, "model_call_failure", http.StatusBadGateway},
	{domain.ErrPartialFanoutFailure, "partial_fanout_failure", http.StatusInternalServerError},
}

func classifyError(err error) (kind string, status int) {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return "file_too_large", http.StatusRequestEntityTooLarge
	}

	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind, k.status
		}
	}

	return "internal", http.StatusInternalServerError
}

func errorResponse(err error) (ErrorResponse, int) {
	kind, status := classifyError(err)

	resp := ErrorResponse{
		Error: err.Error(),
		Kind:  kind,
	}

	var stageErr *domain.StageError
	if errors.As(err, &stageErr) {
		resp.Stage = string(stageErr.Stage)
	}

	var emptyErr *domain.EmptyModelResponseError
	if errors.As(err, &emptyErr) {
		resp.Details = emptyErr.Diagnostics
	}

	var parseErr *domain.UnparsableOutputError
	if errors.As(err, &parseErr) {
		resp.RawText = parseErr.RawText
	}

	var fanoutErr *domain.PartialFanoutError
	if errors.As(err, &fanoutErr) {
		failed := make([]string, 0, len(fanoutErr.Failed))
		for _, f := range fanoutErr.Failed {
			failed = append(failed, f.Error())
		}
		resp.Details = failed
	}

	return resp, status
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	resp, status := errorResponse(err)

	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("kind", resp.Kind),
			slog.String("err", err.Error()),
		)
	} else {
		log.InfoContext(r.Context(), "request rejected",
			slog.String("path", r.URL.Path),
			slog.String("kind", resp.Kind),
			slog.String("err", err.Error()),
		)
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
