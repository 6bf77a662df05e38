package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

type Reporter struct {
	log             *slog.Logger
	outputDir       string
	reports         <-chan *domain.IntakeResult
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.IntakeResult,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		reports:         reports,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.reports:
			if !ok {
				return nil
			}

			// failed files have nothing to render
			if result.Error != nil || result.Outcome == nil || result.Outcome.Notice == nil {
				continue
			}

			log := r.log.With(
				slog.String("filename", result.Path),
				slog.String("title", result.Outcome.Notice.Title),
			)

			log.InfoContext(ctx, "received intake result, generating notice sheet")

			path := ReportPath(r.outputDir, result.Path)
			if err := r.reportGenerator.GenerateNoticeSheet(path, filepath.Base(result.Path), result.Outcome); err != nil {
				log.ErrorContext(ctx, "failed to generate notice sheet", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// ReportPath names the sheet of a source file: report.docx becomes
// report.docx.notice.pdf, so sources differing only in extension do not
// collide.
func ReportPath(outputDir, source string) string {
	return filepath.Join(outputDir, strings.TrimSpace(filepath.Base(source))+".notice.pdf")
}
