package intake

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	"math"
	"os"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

const (
	MiB = 1 << 20

	// A4 at roughly 300 dpi.
	defaultMaxEdge = 2480
)

// Budget holds the byte and page limits of the pipeline.
type Budget struct {
	// Trigger is the size above which a file is compressed at all.
	Trigger int64
	// Target is the size a compressed file must not exceed.
	Target int64
	// Attachment caps files stored alongside a published notice.
	Attachment int64
	MaxPages   int
	MaxEdge    int
}

var DefaultBudget = Budget{
	Trigger:    20 * MiB,
	Target:     19 * MiB,
	Attachment: 10 * MiB,
	MaxPages:   200,
	MaxEdge:    defaultMaxEdge,
}

type Compressor struct {
	log        *slog.Logger
	budget     Budget
	workers    int
	pdf        PDFEngine
	rasterizer Rasterizer
}

func NewCompressor(log *slog.Logger, budget Budget, workers int, pdf PDFEngine, rasterizer Rasterizer) *Compressor {
	return &Compressor{
		log:        log,
		budget:     budget,
		workers:    max(workers, 1),
		pdf:        pdf,
		rasterizer: rasterizer,
	}
}

// Compress shrinks a PDF or an image until it fits the target budget. Not
// meeting the budget is not an error: the smallest result is returned with
// MetBudget unset.
func (c *Compressor) Compress(ctx context.Context, file *domain.UploadedFile) (*domain.CompressionResult, error) {
	if file.Size() <= c.budget.Target {
		return &domain.CompressionResult{
			Data:         file.Data,
			Filename:     file.Name,
			ContentType:  file.ContentType,
			OriginalSize: file.Size(),
			ResultSize:   file.Size(),
			MetBudget:    true,
			Method:       domain.MethodNone,
		}, nil
	}

	switch lane := Classify(file.Name); lane {
	case domain.LaneImage:
		return c.compressImage(ctx, file)
	case domain.LanePDF:
		return c.compressPDF(ctx, file)
	default:
		return nil, fmt.Errorf("%w: %s files cannot be compressed", domain.ErrUnsupportedFormat, lane)
	}
}

func (c *Compressor) compressImage(ctx context.Context, file *domain.UploadedFile) (*domain.CompressionResult, error) {
	img, _, err := image.Decode(bytes.NewReader(file.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %w", domain.ErrInvalidFormat, err)
	}

	flat := flatten(img)

	lr, err := descend(ctx, domain.MethodImageJPEG, ImageLadder, c.budget.Target, file.Data,
		func(_ context.Context, rung Rung) ([]byte, error) {
			return encodeJPEG(flat, rung.Quality)
		},
	)
	if err != nil {
		return nil, err
	}

	result := &domain.CompressionResult{
		Data:         lr.data,
		Filename:     file.Name,
		ContentType:  file.ContentType,
		OriginalSize: file.Size(),
		ResultSize:   int64(len(lr.data)),
		MetBudget:    lr.met,
		Method:       domain.MethodNone,
		Attempts:     lr.attempts,
	}

	if lr.rung >= 0 {
		renamed := file.Renamed("jpg", "image/jpeg", lr.data)
		result.Filename = renamed.Name
		result.ContentType = renamed.ContentType
		result.Method = domain.MethodImageJPEG
	}

	c.logResult(ctx, result)

	return result, nil
}

func (c *Compressor) compressPDF(ctx context.Context, file *domain.UploadedFile) (*domain.CompressionResult, error) {
	result := &domain.CompressionResult{
		Filename:     file.Name,
		ContentType:  "application/pdf",
		OriginalSize: file.Size(),
		Method:       domain.MethodNone,
	}

	seed := file.Data

	resave := domain.CompressionAttempt{Method: domain.MethodPDFResave, Scale: 1.0}
	resaved, err := c.pdf.Resave(file.Data)
	if err != nil {
		resave.Error = err.Error()
		c.log.WarnContext(ctx, "pdf resave failed", slog.String("filename", file.Name), slog.String("err", err.Error()))
	} else {
		resave.ResultSizeBytes = int64(len(resaved))
		if len(resaved) < len(seed) {
			seed = resaved
			result.Method = domain.MethodPDFResave
		}
	}
	result.Attempts = append(result.Attempts, resave)

	if int64(len(seed)) <= c.budget.Target {
		result.Data = seed
		result.ResultSize = int64(len(seed))
		result.MetBudget = true
		c.logResult(ctx, result)
		return result, nil
	}

	pages, err := c.pdf.PageCount(file.Data)
	if err != nil {
		return nil, err
	}

	if pages > c.budget.MaxPages {
		return nil, fmt.Errorf("%w: %d pages, at most %d can be rasterized", domain.ErrTooManyPages, pages, c.budget.MaxPages)
	}

	paths, cleanup, err := c.rasterizer.Rasterize(ctx, file.Data, pages)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize pdf: %w", err)
	}
	defer cleanup()

	lr, err := descend(ctx, domain.MethodPDFRaster, RasterLadder, c.budget.Target, seed,
		func(ctx context.Context, rung Rung) ([]byte, error) {
			images, err := c.encodePages(ctx, paths, rung)
			if err != nil {
				return nil, err
			}

			return c.pdf.Assemble(images)
		},
	)
	if err != nil {
		return nil, err
	}

	if lr.rung >= 0 {
		result.Method = domain.MethodPDFRaster
	}

	result.Data = lr.data
	result.ResultSize = int64(len(lr.data))
	result.MetBudget = lr.met
	result.Attempts = append(result.Attempts, lr.attempts...)

	c.logResult(ctx, result)

	return result, nil
}

// encodePages re-encodes rendered pages in parallel, keeping page order.
func (c *Compressor) encodePages(ctx context.Context, paths []string, rung Rung) ([][]byte, error) {
	out := make([][]byte, len(paths))

	erg, ctx := errgroup.WithContext(ctx)
	erg.SetLimit(c.workers)

	for i, path := range paths {
		erg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := encodePage(path, rung, c.budget.MaxEdge)
			if err != nil {
				return fmt.Errorf("page %d: %w", i+1, err)
			}

			out[i] = data
			return nil
		})
	}

	if err := erg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Compressor) logResult(ctx context.Context, result *domain.CompressionResult) {
	c.log.InfoContext(ctx, "compression finished",
		slog.String("filename", result.Filename),
		slog.String("method", string(result.Method)),
		slog.Int64("original_size", result.OriginalSize),
		slog.Int64("result_size", result.ResultSize),
		slog.Bool("met_budget", result.MetBudget),
		slog.Int("attempts", len(result.Attempts)),
	)
}

func encodePage(path string, rung Rung, maxEdge int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rendered page: %w", err)
	}

	return encodeJPEG(fit(img, rung.Scale, maxEdge), rung.Quality)
}

// fit scales img by scale and caps its long edge at maxEdge. It never
// upscales.
func fit(img image.Image, scale float64, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	long := max(w, h)

	target := int(math.Round(float64(long) * scale))
	if maxEdge > 0 && target > maxEdge {
		target = maxEdge
	}

	if target >= long || long == 0 {
		return img
	}

	ratio := float64(target) / float64(long)
	dst := image.NewRGBA(image.Rect(0, 0,
		max(1, int(math.Round(float64(w)*ratio))),
		max(1, int(math.Round(float64(h)*ratio))),
	))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return dst
}

// flatten draws img over a white background, JPEG having no alpha.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)

	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}

	return buf.Bytes(), nil
}
