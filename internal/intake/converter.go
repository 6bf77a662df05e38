package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/notice_pipeline/internal/config"
	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

// OfficeConverter turns office documents into PDF with a headless
// LibreOffice. Every call gets its own profile directory so that parallel
// conversions do not fight over the profile lock.
type OfficeConverter struct {
	log     *slog.Logger
	binary  string
	timeout time.Duration
}

func NewOfficeConverter(log *slog.Logger, cfg config.Intake) *OfficeConverter {
	return &OfficeConverter{
		log:     log,
		binary:  cfg.ConverterBinary,
		timeout: cfg.ConversionTimeout,
	}
}

func (c *OfficeConverter) Convert(ctx context.Context, file *domain.UploadedFile) (_ *domain.UploadedFile, err error) {
	dir, err := os.MkdirTemp("", "office-convert-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	defer func() { err = errors.Join(err, os.RemoveAll(dir)) }()

	input := filepath.Join(dir, "input")
	if ext := file.Ext(); ext != "" {
		input += "." + ext
	}

	if err := os.WriteFile(input, file.Data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write input file: %w", err)
	}

	outDir := filepath.Join(dir, "out")
	profile := "file://" + filepath.ToSlash(filepath.Join(dir, "profile"))

	log := c.log.With(slog.String("filename", file.Name), slog.Int64("size", file.Size()))
	log.DebugContext(ctx, "converting office document")

	started := time.Now()
	err = runCommand(ctx, c.timeout, c.binary,
		"-env:UserInstallation="+profile,
		"--headless",
		"--norestore",
		"--nolockcheck",
		"--convert-to", "pdf",
		"--outdir", outDir,
		input,
	)
	switch {
	case errors.Is(err, errCommandTimeout):
		return nil, fmt.Errorf("%w: %w", domain.ErrConversionTimeout, err)
	case errors.Is(err, context.Canceled):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("%w: %w", domain.ErrConversionFailure, err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "input.pdf"))
	if err != nil {
		return nil, fmt.Errorf("%w: engine produced no output: %w", domain.ErrConversionFailure, err)
	}

	log.InfoContext(ctx, "office document converted",
		slog.Int64("pdf_size", int64(len(data))),
		slog.Duration("took", time.Since(started)),
	)

	return file.Renamed("pdf", "application/pdf", data), nil
}
