package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const defaultBaseURL = "localhost:8080"

type Config struct {
	// Store
	DBPath       string `env:"VAULT_DB_PATH"`
	RequireValue bool   `env:"REQUIRE_VALUE"`

	// Attachments
	MaxAttachmentMB int `env:"MAX_ATTACHMENT_MB" envDefault:"10"`

	// HTTP server
	BaseURL      string `env:"BASE_URL"`
	AssetVersion string `env:"ASSET_VERSION" envDefault:"1"`

	LogLevel string `env:"LOG_LEVEL"`
	Version  bool   `env:"-"` // show version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// значения из env становятся умолчаниями для флагов
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the vault SQLite database")
	flag.BoolVar(&cfg.RequireValue, "require-value", cfg.RequireValue, "reject documents without a value")
	flag.IntVar(&cfg.MaxAttachmentMB, "max-attachment-mb", cfg.MaxAttachmentMB, "maximum attachment size in MB (0 = unlimited)")
	flag.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "адрес HTTP-сервера host:port")
	flag.StringVar(&cfg.AssetVersion, "asset-version", cfg.AssetVersion, "version of the offline asset manifest")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "уровень логирования (debug, info, warn, error)")
	flag.BoolVar(&cfg.Version, "v", cfg.Version, "Show version and exit")

	flag.Parse()

	// BaseURL: только "address:port" без схемы и пути, иначе значение по умолчанию.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.AssetVersion == "" {
		cfg.AssetVersion = "1"
	}
	if cfg.MaxAttachmentMB < 0 {
		cfg.MaxAttachmentMB = 0
	}

	return cfg
}

// LogLevelOr возвращает заданный уровень логирования или def, если он не задан.
// Серверу по умолчанию нужен info, CLI — только предупреждения.
func (c *Config) LogLevelOr(def string) string {
	if c.LogLevel == "" {
		return def
	}
	return c.LogLevel
}

// MaxAttachmentBytes возвращает лимит размера вложения в байтах; 0 — без ограничения.
func (c *Config) MaxAttachmentBytes() int64 {
	return int64(c.MaxAttachmentMB) << 20
}
