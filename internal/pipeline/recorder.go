package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
	"github.com/kurochkinivan/notice_pipeline/internal/intake"
)

// Recorder stores the final status of each inbox file and passes the
// result on to the reporter.
type Recorder struct {
	log         *slog.Logger
	results     <-chan *domain.IntakeResult
	reports     chan<- *domain.IntakeResult
	fileUpdater FileUpdater
}

func NewRecorder(
	log *slog.Logger,
	results <-chan *domain.IntakeResult,
	reports chan<- *domain.IntakeResult,
	fileUpdater FileUpdater,
) *Recorder {
	return &Recorder{
		log:         log,
		results:     results,
		reports:     reports,
		fileUpdater: fileUpdater,
	}
}

func (r *Recorder) Run(ctx context.Context) error {
	defer close(r.reports)

	for {
		select {
		case result, ok := <-r.results:
			if !ok {
				return nil
			}

			log := r.log.With(slog.String("filename", result.Path))

			log.InfoContext(ctx, "received intake result", slog.Bool("failed", result.Error != nil))

			if err := r.record(ctx, result); err != nil {
				log.ErrorContext(ctx, "failed to record intake result", slog.String("err", err.Error()))
				continue
			}

			select {
			case r.reports <- result:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Recorder) record(ctx context.Context, result *domain.IntakeResult) error {
	name := filepath.Base(result.Path)
	now := time.Now()

	file := &domain.IntakeFile{
		Name:        name,
		Status:      domain.StatusDone,
		Lane:        intake.Classify(name),
		ProcessedAt: &now,
	}

	switch {
	case result.Error != nil:
		file.Status = domain.StatusError
		file.ErrorMessage = result.Error.Error()

	case result.Outcome != nil && result.Outcome.Notice != nil:
		notice, err := json.Marshal(result.Outcome.Notice)
		if err != nil {
			return fmt.Errorf("failed to marshal notice: %w", err)
		}
		file.Notice = notice

	default:
		file.Status = domain.StatusError
		file.ErrorMessage = "staging returned no notice"
	}

	if err := r.fileUpdater.UpdateOrCreateFile(ctx, file); err != nil {
		return fmt.Errorf("failed to update file status: %w", err)
	}

	return nil
}
