package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
	"github.com/kurochkinivan/notice_pipeline/internal/intake"
)

// Processor runs every inbox file through staging, one at a time.
type Processor struct {
	log     *slog.Logger
	maxSize int64
	files   <-chan string
	results chan<- *domain.IntakeResult
	stager  Stager
}

func NewProcessor(
	log *slog.Logger,
	maxSize int64,
	files <-chan string,
	results chan<- *domain.IntakeResult,
	stager Stager,
) *Processor {
	return &Processor{
		log:     log,
		maxSize: maxSize,
		files:   files,
		results: results,
		stager:  stager,
	}
}

func (p *Processor) Run(ctx context.Context) error {
	defer close(p.results)

	for {
		select {
		case path, ok := <-p.files:
			if !ok {
				return nil
			}

			p.log.DebugContext(ctx, "received file to process", slog.String("filename", path))

			outcome, err := p.process(ctx, path)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				p.log.ErrorContext(ctx, "failed to process file",
					slog.String("filename", path),
					slog.String("err", err.Error()),
				)
			}

			select {
			case p.results <- &domain.IntakeResult{Path: path, Outcome: outcome, Error: err}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Processor) process(ctx context.Context, path string) (*domain.Outcome, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if p.maxSize > 0 && info.Size() > p.maxSize {
		return nil, fmt.Errorf("%w: %d bytes, at most %d allowed", domain.ErrFileTooLarge, info.Size(), p.maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)

	return p.stager.Process(ctx, &domain.UploadedFile{
		Name:        name,
		ContentType: intake.ContentType(name, ""),
		Data:        data,
	})
}
