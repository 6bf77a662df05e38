package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/notice_pipeline/internal/config"
	v1 "github.com/kurochkinivan/notice_pipeline/internal/controller/http/v1"
	"github.com/kurochkinivan/notice_pipeline/internal/domain"
	"github.com/kurochkinivan/notice_pipeline/internal/infrastructure/cache"
	"github.com/kurochkinivan/notice_pipeline/internal/infrastructure/events"
	"github.com/kurochkinivan/notice_pipeline/internal/infrastructure/gemini"
	"github.com/kurochkinivan/notice_pipeline/internal/infrastructure/objectstore"
	"github.com/kurochkinivan/notice_pipeline/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/notice_pipeline/internal/intake"
	"github.com/kurochkinivan/notice_pipeline/internal/pipeline"
	"github.com/kurochkinivan/notice_pipeline/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer   = 100
	resultsBuffer = 50
	reportsBuffer = 100

	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

type repositories struct {
	files    *postgresql.FilesRepository
	notices  *postgresql.NoticesRepository
	profiles *postgresql.ProfilesRepository
}

func (a *App) Run(ctx context.Context) (err error) {
	a.log.InfoContext(ctx, "starting app",
		slog.String("inbox_dir", a.cfg.App.InboxDirectory),
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.Duration("scan_interval", a.cfg.App.DirectoryScanInterval),
		slog.String("oversize_policy", a.cfg.Intake.OversizePolicy),
	)

	policy, err := intake.ParseOversizePolicy(a.cfg.Intake.OversizePolicy)
	if err != nil {
		return err
	}

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	repos := repositories{
		files:    postgresql.NewFilesRepository(pool),
		notices:  postgresql.NewNoticesRepository(pool),
		profiles: postgresql.NewProfilesRepository(pool),
	}

	a.log.InfoContext(ctx, "connecting to object storage",
		slog.String("endpoint", a.cfg.Storage.Endpoint),
		slog.String("bucket", a.cfg.Storage.Bucket),
	)

	storage, err := objectstore.NewMinioStorage(ctx, a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to object storage: %w", err)
	}

	var extractor intake.Extractor = intake.NewNoticeExtractor(
		a.log.With(slog.String("component", "extractor")),
		gemini.NewClient(a.cfg.Gemini),
		a.cfg.Gemini.ExtractionTimeout,
	)

	if a.cfg.Redis.Addr != "" {
		redisCache, cacheErr := cache.NewRedisCache(ctx, a.cfg.Redis)
		if cacheErr != nil {
			return fmt.Errorf("failed to connect to redis: %w", cacheErr)
		}
		defer func() { err = errors.Join(err, redisCache.Close()) }()

		extractor = intake.NewCachedExtractor(a.log, extractor, redisCache, a.cfg.Redis.CacheTTL)
		a.log.InfoContext(ctx, "extraction cache enabled", slog.String("redis_addr", a.cfg.Redis.Addr))
	}

	var publisher intake.EventPublisher
	if len(a.cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(a.cfg.Kafka)
		defer func() { err = errors.Join(err, kafkaPublisher.Close()) }()

		publisher = kafkaPublisher
		a.log.InfoContext(ctx, "notice events enabled",
			slog.Any("brokers", a.cfg.Kafka.Brokers),
			slog.String("topic", a.cfg.Kafka.Topic),
		)
	}

	compressor := intake.NewCompressor(
		a.log.With(slog.String("component", "compressor")),
		intake.DefaultBudget,
		a.cfg.Intake.RasterWorkers,
		intake.NewPDFCPU(),
		intake.NewPopplerRasterizer(a.log, a.cfg.Intake),
	)

	staging := intake.NewStaging(
		a.log.With(slog.String("component", "staging")),
		intake.DefaultBudget,
		policy,
		intake.NewOfficeConverter(a.log, a.cfg.Intake),
		compressor,
		intake.NewStructuredExtractor(a.log),
		extractor,
	)

	fanout := intake.NewFanout(
		a.log.With(slog.String("component", "fanout")),
		intake.DefaultBudget,
		storage,
		repos.notices,
		publisher,
	)

	router := v1.NewRouter(
		v1.NewIntakeHandler(a.log, a.cfg.Intake.MaxUploadSize, staging, extractor),
		v1.NewNoticesHandler(a.log, a.cfg.Intake.MaxUploadSize, fanout, repos.profiles, repos.notices),
		v1.NewDocumentsHandler(a.log, storage),
	)

	return a.start(ctx, v1.NewServer(a.cfg.HTTP, router), staging, repos.files)
}

func (a *App) start(
	ctx context.Context,
	server *v1.Server,
	staging *intake.Staging,
	filesRepo *postgresql.FilesRepository,
) error {
	erg, ctx := errgroup.WithContext(ctx)

	if a.cfg.App.InboxDirectory != "" {
		if err := filesRepo.ResetProcessingFiles(ctx); err != nil {
			return fmt.Errorf("failed to reset processing files: %w", err)
		}

		a.startInbox(ctx, erg, staging, filesRepo)
	} else {
		a.log.InfoContext(ctx, "inbox directory not set, inbox intake disabled")
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

// startInbox runs the directory intake: scanner -> processor -> recorder -> reporter.
func (a *App) startInbox(
	ctx context.Context,
	erg *errgroup.Group,
	staging *intake.Staging,
	filesRepo *postgresql.FilesRepository,
) {
	files := make(chan string, filesBuffer)
	results := make(chan *domain.IntakeResult, resultsBuffer)
	reports := make(chan *domain.IntakeResult, reportsBuffer)

	log := a.log.With(slog.String("component", "inbox"))

	scanner := pipeline.NewScanner(
		log,
		a.cfg.App.InboxDirectory,
		a.cfg.App.DirectoryScanInterval,
		files,
		filesRepo,
		filesRepo,
	)
	processor := pipeline.NewProcessor(log, a.cfg.Intake.MaxUploadSize, files, results, staging)
	recorder := pipeline.NewRecorder(log, results, reports, filesRepo)
	reporter := pipeline.NewReporter(log, a.cfg.App.ReportsDirectory, reports, report_generator.New())

	erg.Go(func() error {
		log.InfoContext(ctx, "scanner started")
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		log.InfoContext(ctx, "processor started")
		return processor.Run(ctx)
	})

	erg.Go(func() error {
		log.InfoContext(ctx, "recorder started")
		return recorder.Run(ctx)
	})

	erg.Go(func() error {
		log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})
}
