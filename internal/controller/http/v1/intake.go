package v1

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

type Stager interface {
	Process(ctx context.Context, file *domain.UploadedFile) (*domain.Outcome, error)
	CompressAndExtract(ctx context.Context, file *domain.UploadedFile) (*domain.Outcome, error)
}

type Extractor interface {
	ExtractFromFile(ctx context.Context, file *domain.UploadedFile) (*domain.ExtractedNotice, error)
	ExtractFromText(ctx context.Context, text string) (*domain.ExtractedNotice, error)
}

type IntakeHandler struct {
	log           *slog.Logger
	maxUploadSize int64
	stager        Stager
	extractor     Extractor
}

func NewIntakeHandler(log *slog.Logger, maxUploadSize int64, stager Stager, extractor Extractor) *IntakeHandler {
	return &IntakeHandler{
		log:           log,
		maxUploadSize: maxUploadSize,
		stager:        stager,
		extractor:     extractor,
	}
}

type StagingResponse struct {
	Success bool `json:"success"`
	*domain.Outcome
}

type CompressionRejectedResponse struct {
	Success           bool                        `json:"success"`
	Error             string                      `json:"error"`
	OriginalSize      int64                       `json:"originalSize"`
	BestAttemptSize   int64                       `json:"bestAttemptSize"`
	BestAttemptBase64 string                      `json:"bestAttemptBase64,omitempty"`
	Attempts          []domain.CompressionAttempt `json:"attempts,omitempty"`
}

type ExtractionRequest struct {
	Text string `json:"text"`
}

type ExtractionResponse struct {
	Success         bool                    `json:"success"`
	ExtractedNotice *domain.ExtractedNotice `json:"extractedNotice,omitempty"`
	Message         string                  `json:"message,omitempty"`
	Kind            string                  `json:"kind,omitempty"`
	RawText         string                  `json:"rawText,omitempty"`
	Debug           any                     `json:"debug,omitempty"`
}

func (h *IntakeHandler) Stage(w http.ResponseWriter, r *http.Request) {
	file, err := readUpload(w, r, h.maxUploadSize)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	outcome, err := h.stager.Process(r.Context(), file)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, StagingResponse{Success: true, Outcome: outcome})
}

func (h *IntakeHandler) Compress(w http.ResponseWriter, r *http.Request) {
	file, err := readUpload(w, r, h.maxUploadSize)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	outcome, err := h.stager.CompressAndExtract(r.Context(), file)

	var exhausted *domain.CompressionExhaustedError
	switch {
	case errors.As(err, &exhausted):
		writeJSON(w, http.StatusRequestEntityTooLarge, compressionRejected(exhausted))
	case err != nil:
		writeError(w, r, h.log, err)
	default:
		writeJSON(w, http.StatusOK, StagingResponse{Success: true, Outcome: outcome})
	}
}

// compressionRejected only carries the best attempt when it is smaller than
// the upload.
func compressionRejected(err *domain.CompressionExhaustedError) CompressionRejectedResponse {
	resp := CompressionRejectedResponse{
		Error:           err.Error(),
		OriginalSize:    err.Result.OriginalSize,
		BestAttemptSize: err.Result.ResultSize,
		Attempts:        err.Result.Attempts,
	}

	if err.Result.ResultSize < err.Result.OriginalSize {
		resp.BestAttemptBase64 = base64.StdEncoding.EncodeToString(err.Result.Data)
	}

	return resp
}

func (h *IntakeHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var (
		notice *domain.ExtractedNotice
		err    error
	)

	if isJSON(r) {
		var req ExtractionRequest
		if decodeErr := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxUploadSize)).Decode(&req); decodeErr != nil {
			writeJSON(w, http.StatusBadRequest, ExtractionResponse{Message: "invalid JSON body: " + decodeErr.Error(), Kind: "bad_request"})
			return
		}

		notice, err = h.extractor.ExtractFromText(r.Context(), req.Text)
	} else {
		file, readErr := readUpload(w, r, h.maxUploadSize)
		if readErr != nil {
			writeError(w, r, h.log, readErr)
			return
		}

		notice, err = h.extractor.ExtractFromFile(r.Context(), file)
	}

	if err != nil {
		kind, status := classifyError(err)
		resp := ExtractionResponse{Message: err.Error(), Kind: kind}

		var parseErr *domain.UnparsableOutputError
		if errors.As(err, &parseErr) {
			resp.RawText = parseErr.RawText
		}

		var emptyErr *domain.EmptyModelResponseError
		if errors.As(err, &emptyErr) {
			resp.Debug = emptyErr.Diagnostics
		}

		h.log.WarnContext(r.Context(), "extraction failed", slog.String("kind", kind), slog.String("err", err.Error()))
		writeJSON(w, status, resp)
		return
	}

	writeJSON(w, http.StatusOK, ExtractionResponse{Success: true, ExtractedNotice: notice})
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.EqualFold(mediaType, "application/json")
}
