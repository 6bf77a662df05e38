package intake

import (
	"context"
	"time"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

type ModelClient interface {
	Generate(ctx context.Context, prompt string, attachment *domain.UploadedFile) (*domain.ModelReply, error)
}

type Extractor interface {
	ExtractFromFile(ctx context.Context, file *domain.UploadedFile) (*domain.ExtractedNotice, error)
	ExtractFromText(ctx context.Context, text string) (*domain.ExtractedNotice, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type Converter interface {
	Convert(ctx context.Context, file *domain.UploadedFile) (*domain.UploadedFile, error)
}

type SizeCompressor interface {
	Compress(ctx context.Context, file *domain.UploadedFile) (*domain.CompressionResult, error)
}

type TextExtractor interface {
	Extract(format domain.StructuredFormat, data []byte) (string, error)
}

type PDFEngine interface {
	Resave(data []byte) ([]byte, error)
	PageCount(data []byte) (int, error)
	Assemble(pages [][]byte) ([]byte, error)
}

type Rasterizer interface {
	Rasterize(ctx context.Context, pdf []byte, pages int) (paths []string, cleanup func(), err error)
}

type ObjectStorage interface {
	Save(ctx context.Context, key, contentType string, data []byte) error
}

type NoticeWriter interface {
	SaveDocumentRow(ctx context.Context, row *domain.DocumentRow) error
	SaveNoticeRow(ctx context.Context, table string, row *domain.NoticeRow) error
}

type EventPublisher interface {
	PublishNotice(ctx context.Context, event domain.NoticeEvent) error
}
