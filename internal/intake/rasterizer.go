package intake

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/notice_pipeline/internal/config"
	"golang.org/x/sync/errgroup"
)

// PopplerRasterizer renders PDF pages to PNG files with pdftoppm, one
// process per page.
type PopplerRasterizer struct {
	log     *slog.Logger
	binary  string
	dpi     int
	workers int
	timeout time.Duration
}

func NewPopplerRasterizer(log *slog.Logger, cfg config.Intake) *PopplerRasterizer {
	return &PopplerRasterizer{
		log:     log,
		binary:  cfg.RasterizerBinary,
		dpi:     cfg.RasterDPI,
		workers: max(cfg.RasterWorkers, 1),
		timeout: cfg.RasterTimeout,
	}
}

// Rasterize returns page image paths in page order. The caller must call
// cleanup once it is done with the files.
func (r *PopplerRasterizer) Rasterize(ctx context.Context, pdf []byte, pages int) (paths []string, cleanup func(), err error) {
	dir, err := os.MkdirTemp("", "rasterize-*")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create work directory: %w", err)
	}

	cleanup = func() {
		if err := os.RemoveAll(dir); err != nil {
			r.log.Warn("failed to remove raster directory", slog.String("dir", dir), slog.String("err", err.Error()))
		}
	}

	input := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(input, pdf, 0o600); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to write input file: %w", err)
	}

	started := time.Now()
	paths = make([]string, pages)

	erg, ctx := errgroup.WithContext(ctx)
	erg.SetLimit(r.workers)

	for i := range pages {
		page := i + 1
		prefix := filepath.Join(dir, fmt.Sprintf("page-%04d", page))

		erg.Go(func() error {
			err := runCommand(ctx, r.timeout, r.binary,
				"-f", fmt.Sprint(page),
				"-l", fmt.Sprint(page),
				"-r", fmt.Sprint(r.dpi),
				"-png",
				"-singlefile",
				input,
				prefix,
			)
			if err != nil {
				return fmt.Errorf("failed to render page %d: %w", page, err)
			}

			paths[i] = prefix + ".png"
			return nil
		})
	}

	if err := erg.Wait(); err != nil {
		cleanup()
		return nil, nil, err
	}

	r.log.DebugContext(ctx, "pages rasterized",
		slog.Int("pages", pages),
		slog.Int("dpi", r.dpi),
		slog.Duration("took", time.Since(started)),
	)

	return paths, cleanup, nil
}
