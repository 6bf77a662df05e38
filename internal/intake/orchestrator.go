package intake

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

// OversizePolicy decides what happens to a file that is still over budget
// after compression.
type OversizePolicy string

const (
	// PolicyForward hands the smallest result to extraction.
	PolicyForward OversizePolicy = "forward"
	// PolicyReject fails the run with the smallest result attached.
	PolicyReject OversizePolicy = "reject"
)

func ParseOversizePolicy(s string) (OversizePolicy, error) {
	switch p := OversizePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", PolicyForward:
		return PolicyForward, nil
	case PolicyReject:
		return PolicyReject, nil
	default:
		return "", fmt.Errorf("unknown oversize policy %q", s)
	}
}

// Staging routes an upload through its lane: conversion, compression and
// extraction run in order, each stage finishing before the next starts.
type Staging struct {
	log        *slog.Logger
	budget     Budget
	policy     OversizePolicy
	converter  Converter
	compressor SizeCompressor
	structured TextExtractor
	extractor  Extractor
}

func NewStaging(
	log *slog.Logger,
	budget Budget,
	policy OversizePolicy,
	converter Converter,
	compressor SizeCompressor,
	structured TextExtractor,
	extractor Extractor,
) *Staging {
	return &Staging{
		log:        log,
		budget:     budget,
		policy:     policy,
		converter:  converter,
		compressor: compressor,
		structured: structured,
		extractor:  extractor,
	}
}

// run tracks one staging invocation.
type run struct {
	log     *slog.Logger
	outcome *domain.Outcome
}

func (r *run) enter(stage domain.Stage) {
	r.outcome.Trail = append(r.outcome.Trail, stage)
	r.log.Debug("entering stage", slog.String("stage", string(stage)))
}

func (r *run) fail(stage domain.Stage, err error) error {
	r.outcome.Trail = append(r.outcome.Trail, domain.StageFailed)
	r.log.Warn("staging failed", slog.String("stage", string(stage)), slog.String("err", err.Error()))

	return &domain.StageError{Stage: stage, Err: err}
}

func (s *Staging) Process(ctx context.Context, file *domain.UploadedFile) (*domain.Outcome, error) {
	lane := Classify(file.Name)

	r := &run{
		log: s.log.With(slog.String("filename", file.Name), slog.String("lane", string(lane))),
		outcome: &domain.Outcome{
			Lane:      lane,
			Filename:  file.Name,
			SizeBytes: file.Size(),
			Trail:     []domain.Stage{domain.StageReceived, domain.StageClassified},
		},
	}

	r.log.InfoContext(ctx, "file classified", slog.Int64("size", file.Size()))

	var (
		notice *domain.ExtractedNotice
		err    error
	)

	switch {
	case lane == domain.LaneStructuredText:
		r.outcome.RoutedTo = domain.StageStructuredExtraction
		notice, err = s.processStructured(ctx, r, file)

	case lane.NeedsConversion():
		r.outcome.RoutedTo = domain.StageConversion
		r.enter(domain.StageConversion)

		converted, convErr := s.converter.Convert(ctx, file)
		if convErr != nil {
			return nil, r.fail(domain.StageConversion, convErr)
		}

		notice, err = s.processDocument(ctx, r, converted)

	default:
		r.outcome.RoutedTo = domain.StageFileExtraction
		if file.Size() > s.budget.Trigger {
			r.outcome.RoutedTo = domain.StageCompression
		}

		notice, err = s.processDocument(ctx, r, file)
	}

	if err != nil {
		return nil, err
	}

	r.outcome.Notice = notice
	r.outcome.Trail = append(r.outcome.Trail, domain.StageDone)
	r.log.InfoContext(ctx, "notice extracted", slog.String("title", notice.Title))

	return r.outcome, nil
}

// CompressAndExtract compresses files above the trigger size and refuses to
// extract from a file that stayed over budget. Smaller files go straight to
// extraction.
func (s *Staging) CompressAndExtract(ctx context.Context, file *domain.UploadedFile) (*domain.Outcome, error) {
	lane := Classify(file.Name)

	r := &run{
		log: s.log.With(slog.String("filename", file.Name), slog.String("lane", string(lane))),
		outcome: &domain.Outcome{
			Lane:      lane,
			RoutedTo:  domain.StageCompression,
			Filename:  file.Name,
			SizeBytes: file.Size(),
			Trail:     []domain.Stage{domain.StageReceived, domain.StageClassified},
		},
	}

	if !lane.Compressible() {
		return nil, r.fail(domain.StageClassified,
			fmt.Errorf("%w: only PDF and image files can be compressed", domain.ErrUnsupportedFormat))
	}

	if file.Size() > s.budget.Trigger {
		compressed, err := s.compress(ctx, r, file, PolicyReject)
		if err != nil {
			return nil, err
		}
		file = compressed
	} else {
		r.outcome.RoutedTo = domain.StageFileExtraction
	}

	notice, err := s.extractFile(ctx, r, file)
	if err != nil {
		return nil, err
	}

	r.outcome.Notice = notice
	r.outcome.Trail = append(r.outcome.Trail, domain.StageDone)

	return r.outcome, nil
}

func (s *Staging) processStructured(ctx context.Context, r *run, file *domain.UploadedFile) (*domain.ExtractedNotice, error) {
	format, err := ClassifyStructured(file.Name)
	if err != nil {
		return nil, r.fail(domain.StageClassified, err)
	}

	r.enter(domain.StageStructuredExtraction)

	text, err := s.structured.Extract(format, file.Data)
	if err != nil {
		return nil, r.fail(domain.StageStructuredExtraction, err)
	}

	r.enter(domain.StageTextExtraction)

	notice, err := s.extractor.ExtractFromText(ctx, text)
	if err != nil {
		return nil, r.fail(domain.StageTextExtraction, err)
	}

	return notice, nil
}

func (s *Staging) processDocument(ctx context.Context, r *run, file *domain.UploadedFile) (*domain.ExtractedNotice, error) {
	if file.Size() > s.budget.Trigger {
		compressed, err := s.compress(ctx, r, file, s.policy)
		if err != nil {
			return nil, err
		}
		file = compressed
	}

	return s.extractFile(ctx, r, file)
}

func (s *Staging) compress(
	ctx context.Context,
	r *run,
	file *domain.UploadedFile,
	policy OversizePolicy,
) (*domain.UploadedFile, error) {
	r.enter(domain.StageCompression)

	result, err := s.compressor.Compress(ctx, file)
	if err != nil {
		return nil, r.fail(domain.StageCompression, err)
	}

	r.outcome.Compression = result

	if !result.MetBudget {
		if policy == PolicyReject || result.Grew() {
			return nil, r.fail(domain.StageCompression, &domain.CompressionExhaustedError{Result: result})
		}

		r.log.WarnContext(ctx, "forwarding file still over budget",
			slog.Int64("original_size", result.OriginalSize),
			slog.Int64("result_size", result.ResultSize),
		)
	}

	return &domain.UploadedFile{
		Name:        result.Filename,
		ContentType: result.ContentType,
		Data:        result.Data,
	}, nil
}

func (s *Staging) extractFile(ctx context.Context, r *run, file *domain.UploadedFile) (*domain.ExtractedNotice, error) {
	r.enter(domain.StageFileExtraction)

	notice, err := s.extractor.ExtractFromFile(ctx, file)
	if err != nil {
		return nil, r.fail(domain.StageFileExtraction, err)
	}

	return notice, nil
}
