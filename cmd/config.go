package cmd

import (
	"bytes"
	_ "embed"
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

//go:embed base.yaml
var baseConfig []byte

const envDevelopment = "development"

type Config struct {
	App      AppSettings      `mapstructure:"app" validate:"required"`
	HTTP     HTTPSettings     `mapstructure:"http" validate:"required"`
	Database DatabaseSettings `mapstructure:"database" validate:"required"`
	Auth     AuthSettings     `mapstructure:"auth" validate:"required"`
	Log      LogSettings      `mapstructure:"log" validate:"required"`
}

type AppSettings struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"required,oneof=development production test"`
}

type HTTPSettings struct {
	IP     string `mapstructure:"ip" validate:"required,ip"`
	Port   string `mapstructure:"port" validate:"required,numeric"`
	Prefix string `mapstructure:"prefix" validate:"required,startswith=/"`
}

type DatabaseSettings struct {
	URL          string `mapstructure:"url" validate:"required"`
	MaxOpenConns int    `mapstructure:"max-open-conns" validate:"min=1"`
	AutoMigrate  bool   `mapstructure:"auto-migrate"`
}

// AuthSettings with an empty JWTSecret only require the Authorization header to be present.
type AuthSettings struct {
	JWTSecret   string `mapstructure:"jwt-secret"`
	JWTIssuer   string `mapstructure:"jwt-issuer" validate:"required_with=JWTSecret"`
	JWTAudience string `mapstructure:"jwt-audience" validate:"required"`
}

type LogSettings struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// IsDevelopment reports whether store error text may be returned to clients.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == envDevelopment
}

// SlogLevel converts the configured level; unknown values fall back to info.
func (l LogSettings) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// LoadConfig reads the embedded defaults, then a .env file when present,
// then the environment. A key like auth.jwt-secret is read from AUTH_JWT_SECRET.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(baseConfig)); err != nil {
		return nil, err
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
