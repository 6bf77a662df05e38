package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Intake
	Gemini
	PostgreSQL
	HTTP
	Storage
	Redis
	Kafka
}

type App struct {
	InboxDirectory        string
	ReportsDirectory      string
	DirectoryScanInterval time.Duration
}

type Intake struct {
	ConverterBinary   string
	ConversionTimeout time.Duration
	RasterizerBinary  string
	RasterTimeout     time.Duration
	RasterDPI         int
	RasterWorkers     int
	OversizePolicy    string
	MaxUploadSize     int64
}

type Gemini struct {
	APIKey            string
	BaseURL           string
	Model             string
	ExtractionTimeout time.Duration
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Storage struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Redis struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type Kafka struct {
	Brokers []string
	Topic   string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			InboxDirectory:        cmd.String("inbox-dir"),
			ReportsDirectory:      cmd.String("reports-dir"),
			DirectoryScanInterval: cmd.Duration("scan-interval"),
		},
		Intake: Intake{
			ConverterBinary:   cmd.String("converter-bin"),
			ConversionTimeout: cmd.Duration("conversion-timeout"),
			RasterizerBinary:  cmd.String("rasterizer-bin"),
			RasterTimeout:     cmd.Duration("raster-timeout"),
			RasterDPI:         int(cmd.Int("raster-dpi")),
			RasterWorkers:     int(cmd.Int("raster-workers")),
			OversizePolicy:    cmd.String("oversize-policy"),
			MaxUploadSize:     cmd.Int64("max-upload-size"),
		},
		Gemini: Gemini{
			APIKey:            cmd.String("gemini-api-key"),
			BaseURL:           cmd.String("gemini-base-url"),
			Model:             cmd.String("gemini-model"),
			ExtractionTimeout: cmd.Duration("extraction-timeout"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		Storage: Storage{
			Endpoint:  cmd.String("minio-endpoint"),
			AccessKey: cmd.String("minio-access-key"),
			SecretKey: cmd.String("minio-secret-key"),
			Bucket:    cmd.String("minio-bucket"),
			UseSSL:    cmd.Bool("minio-use-ssl"),
		},
		Redis: Redis{
			Addr:     cmd.String("redis-addr"),
			Password: cmd.String("redis-password"),
			DB:       int(cmd.Int("redis-db")),
			CacheTTL: cmd.Duration("redis-cache-ttl"),
		},
		Kafka: Kafka{
			Brokers: cmd.StringSlice("kafka-brokers"),
			Topic:   cmd.String("kafka-topic"),
		},
	}
}
