package pipeline

import (
	"context"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

type FilesProvider interface {
	Files(ctx context.Context) ([]*domain.IntakeFile, error)
}

type FileUpdater interface {
	UpdateOrCreateFile(ctx context.Context, file *domain.IntakeFile) error
}

type Stager interface {
	Process(ctx context.Context, file *domain.UploadedFile) (*domain.Outcome, error)
}

type ReportGenerator interface {
	GenerateNoticeSheet(outputPath, sourceFile string, outcome *domain.Outcome) error
}
