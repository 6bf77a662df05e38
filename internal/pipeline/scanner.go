package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
	"github.com/kurochkinivan/notice_pipeline/internal/intake"
)

// Scanner hands every new file of the inbox directory to the processor,
// marking it as processing first.
type Scanner struct {
	log           *slog.Logger
	inboxDir      string
	scanInterval  time.Duration
	files         chan<- string
	filesProvider FilesProvider
	fileUpdater   FileUpdater
}

func NewScanner(
	log *slog.Logger,
	inboxDir string,
	scanInterval time.Duration,
	files chan<- string,
	filesProvider FilesProvider,
	fileUpdater FileUpdater,
) *Scanner {
	return &Scanner{
		log:           log,
		inboxDir:      inboxDir,
		scanInterval:  scanInterval,
		files:         files,
		filesProvider: filesProvider,
		fileUpdater:   fileUpdater,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanFiles(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	filesMap, err := s.extractFilesFromDB(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(s.inboxDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.inboxDir, err)
	}

	for _, entry := range entries {
		if err := s.processEntry(ctx, entry, filesMap); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			s.log.ErrorContext(ctx, "failed process entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
		}
	}

	return nil
}

func (s *Scanner) extractFilesFromDB(ctx context.Context) (map[string]domain.Status, error) {
	files, err := s.filesProvider.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get files: %w", err)
	}

	filesMap := make(map[string]domain.Status, len(files))
	for _, file := range files {
		filesMap[file.Name] = file.Status
	}

	return filesMap, nil
}

func (s *Scanner) processEntry(ctx context.Context, entry os.DirEntry, filesMap map[string]domain.Status) error {
	name := entry.Name()
	if entry.IsDir() || strings.HasPrefix(name, ".") {
		return nil
	}

	if !filesMap[name].Claimable() {
		return nil
	}

	lane := intake.Classify(name)

	err := s.fileUpdater.UpdateOrCreateFile(ctx, &domain.IntakeFile{
		Name:   name,
		Status: domain.StatusProcessing,
		Lane:   lane,
	})
	if err != nil {
		return fmt.Errorf("failed to update file status: %w", err)
	}

	s.log.DebugContext(ctx, "updated file status to processing",
		slog.String("filename", name),
		slog.String("lane", string(lane)),
	)

	select {
	case s.files <- filepath.Join(s.inboxDir, name):
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
