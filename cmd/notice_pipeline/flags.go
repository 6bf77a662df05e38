package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/notice_pipeline/internal/app"
	"github.com/kurochkinivan/notice_pipeline/internal/config"
	"github.com/kurochkinivan/notice_pipeline/internal/infrastructure/gemini"
	"github.com/kurochkinivan/notice_pipeline/internal/intake"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "notice_pipeline",
		Usage:   "Notice intake service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			if cfg.App.InboxDirectory != "" && cfg.App.ReportsDirectory == "" {
				return errors.New("reports-dir is required when inbox-dir is set")
			}

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	source := func(key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(&config)))
	}

	secret := func(env, key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(cli.EnvVar(env), yaml.YAML(key, altsrc.NewStringPtrSourcer(&config)))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},

		// inbox
		&cli.StringFlag{
			Name:      "inbox-dir",
			Aliases:   []string{"i"},
			Usage:     "Set directory to pick up notice files from, empty disables the inbox",
			Sources:   source("app.inbox_dir"),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Set directory to write notice sheets to",
			Value:     "output",
			Sources:   source("app.reports_dir"),
			Validator: validateDirectory,
		},
		&cli.DurationFlag{
			Name:    "scan-interval",
			Aliases: []string{"s"},
			Value:   3 * time.Second,
			Usage:   "Set inbox scan interval",
			Sources: source("app.scan_interval"),
		},

		// intake
		&cli.StringFlag{
			Name:    "converter-bin",
			Usage:   "Set office to PDF converter binary",
			Value:   "soffice",
			Sources: source("intake.converter_bin"),
		},
		&cli.DurationFlag{
			Name:    "conversion-timeout",
			Usage:   "Set office conversion timeout",
			Value:   2 * time.Minute,
			Sources: source("intake.conversion_timeout"),
		},
		&cli.StringFlag{
			Name:    "rasterizer-bin",
			Usage:   "Set PDF page rasterizer binary",
			Value:   "pdftoppm",
			Sources: source("intake.rasterizer_bin"),
		},
		&cli.DurationFlag{
			Name:    "raster-timeout",
			Usage:   "Set PDF rasterization timeout",
			Value:   3 * time.Minute,
			Sources: source("intake.raster_timeout"),
		},
		&cli.IntFlag{
			Name:    "raster-dpi",
			Usage:   "Set resolution pages are rendered at",
			Value:   150,
			Sources: source("intake.raster_dpi"),
		},
		&cli.IntFlag{
			Name:    "raster-workers",
			Usage:   "Set number of pages encoded in parallel",
			Value:   4,
			Sources: source("intake.raster_workers"),
		},
		&cli.StringFlag{
			Name:      "oversize-policy",
			Usage:     "Set what happens to files over budget after compression: forward or reject",
			Value:     string(intake.PolicyForward),
			Sources:   source("intake.oversize_policy"),
			Validator: validateOversizePolicy,
		},
		&cli.Int64Flag{
			Name:    "max-upload-size",
			Usage:   "Set largest accepted upload in bytes",
			Value:   50 << 20,
			Sources: source("intake.max_upload_size"),
		},

		// gemini
		&cli.StringFlag{
			Name:    "gemini-api-key",
			Usage:   "Set Gemini API key",
			Sources: secret("GEMINI_API_KEY", "gemini.api_key"),
		},
		&cli.StringFlag{
			Name:    "gemini-base-url",
			Usage:   "Set Gemini API base URL",
			Value:   gemini.DefaultBaseURL,
			Sources: source("gemini.base_url"),
		},
		&cli.StringFlag{
			Name:    "gemini-model",
			Usage:   "Set Gemini model",
			Value:   gemini.DefaultModel,
			Sources: source("gemini.model"),
		},
		&cli.DurationFlag{
			Name:    "extraction-timeout",
			Usage:   "Set how long a single model call may take",
			Value:   time.Minute,
			Sources: source("gemini.extraction_timeout"),
		},

		// postgresql
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  source("postgresql.host"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  source("postgresql.port"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  secret("PG_USERNAME", "postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  secret("PG_PASSWORD", "postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "notice_pipeline",
			Sources:  source("postgresql.dbname"),
			Required: true,
		},

		// http
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: source("http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: source("http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: source("http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: source("http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   5 * time.Minute,
			Sources: source("http.write_timeout"),
		},

		// object storage
		&cli.StringFlag{
			Name:     "minio-endpoint",
			Usage:    "Set object storage endpoint",
			Value:    "localhost:9000",
			Sources:  source("storage.endpoint"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "minio-access-key",
			Usage:   "Set object storage access key",
			Sources: secret("MINIO_ACCESS_KEY", "storage.access_key"),
		},
		&cli.StringFlag{
			Name:    "minio-secret-key",
			Usage:   "Set object storage secret key",
			Sources: secret("MINIO_SECRET_KEY", "storage.secret_key"),
		},
		&cli.StringFlag{
			Name:    "minio-bucket",
			Usage:   "Set bucket notice attachments are kept in",
			Value:   "notices",
			Sources: source("storage.bucket"),
		},
		&cli.BoolFlag{
			Name:    "minio-use-ssl",
			Usage:   "Use TLS for object storage",
			Sources: source("storage.use_ssl"),
		},

		// redis
		&cli.StringFlag{
			Name:    "redis-addr",
			Usage:   "Set Redis address, empty disables the extraction cache",
			Sources: source("redis.addr"),
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Usage:   "Set Redis password",
			Sources: secret("REDIS_PASSWORD", "redis.password"),
		},
		&cli.IntFlag{
			Name:    "redis-db",
			Usage:   "Set Redis database",
			Sources: source("redis.db"),
		},
		&cli.DurationFlag{
			Name:    "redis-cache-ttl",
			Usage:   "Set how long extracted notices are cached",
			Value:   24 * time.Hour,
			Sources: source("redis.cache_ttl"),
		},

		// kafka
		&cli.StringSliceFlag{
			Name:    "kafka-brokers",
			Usage:   "Set Kafka brokers, empty disables notice events",
			Sources: source("kafka.brokers"),
		},
		&cli.StringFlag{
			Name:    "kafka-topic",
			Usage:   "Set topic published notices are announced on",
			Value:   "notice.published",
			Sources: source("kafka.topic"),
		},
	}
}

func validateDirectory(dir string) error {
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateOversizePolicy(policy string) error {
	_, err := intake.ParseOversizePolicy(policy)
	return err
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
