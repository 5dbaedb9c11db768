package config

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"status-generic/pkg/status"
	"status-generic/pkg/status/validate"
)

type ServerConfig struct {
	Port        int    `koanf:"port" validate:"required,gt=0,lte=65535"`
	AppName     string `koanf:"app_name" validate:"required"`
	Concurrency int    `koanf:"concurrency" validate:"gte=0"`
	BodyLimit   int    `koanf:"body_limit" validate:"gte=0"`
}

type logLevel string

const (
	Debug logLevel = "debug"
	Info  logLevel = "info"
)

type Module string

const (
	ModuleAccount    Module = "account"
	ModuleDatabase   Module = "database"
	ModuleHealth     Module = "health"
	ModuleMiddleware Module = "middleware"
	ModuleServer     Module = "server"
	ModuleSetting    Module = "setting"
)

type DatabaseConfig struct {
	Enabled      bool     `koanf:"enabled"`
	Host         string   `koanf:"host" validate:"required_if=Enabled true"`
	Port         int      `koanf:"port" validate:"required_if=Enabled true"`
	User         string   `koanf:"user" validate:"required_if=Enabled true"`
	Password     string   `koanf:"password"`
	Name         string   `koanf:"name" validate:"required_if=Enabled true"`
	MaxIdleConns int      `koanf:"max_idle_conns" validate:"gte=0"`
	MaxOpenConns int      `koanf:"max_open_conns" validate:"gte=0"`
	MaxLifetime  int      `koanf:"max_lifetime" validate:"gte=0"`
	Replicas     []string `koanf:"replicas"`
}

// StatusConfig controls how statuses are rendered in responses.
type StatusConfig struct {
	Separator string `koanf:"separator" validate:"required"`
}

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Status   StatusConfig   `koanf:"status"`
	LogLevel logLevel       `koanf:"log_level" validate:"oneof=debug info warn error fatal panic"`
	Dns      string         `koanf:"dns"`
}

func buildMySQLDSN(cfg DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)
}

var defaultConfig = Config{
	Server: ServerConfig{
		Port:    8000,
		AppName: "status-generic",
	},
	Database: DatabaseConfig{
		Host:         "127.0.0.1",
		Port:         3306,
		User:         "root",
		Name:         "accounts",
		MaxIdleConns: 5,
		MaxOpenConns: 20,
		MaxLifetime:  30,
	},
	Status: StatusConfig{
		Separator: "; ",
	},
	LogLevel: Info,
}

// Cfg holds the last configuration Init accepted.
var Cfg = defaultConfig

// Default returns the built-in configuration.
func Default() Config { return defaultConfig }

// Init loads defaults, then the yaml file at path (if it exists), then APP_
// environment variables, validates the result and, when valid, stores it in
// Cfg. Nested env keys use a double underscore: APP_SERVER__PORT sets
// server.port, APP_LOG_LEVEL sets log_level.
func Init(path string) *status.Handler[Config] {
	st := status.NewTyped[Config](status.WithHeader(string(ModuleSetting)))

	cfg, err := load(path)
	if err != nil {
		return st.AddErrorFrom(err, "failed to load config", "path")
	}

	if cfg.Dns == "" && cfg.Database.Enabled {
		cfg.Dns = buildMySQLDSN(cfg.Database)
	}

	if err := validate.Struct(st, cfg); err != nil {
		return st.AddErrorFrom(err, "failed to validate config")
	}
	if st.HasErrors() {
		return st
	}

	Cfg = cfg

	return st.SetResult(cfg).SetMessage("config loaded")
}

func load(path string) (Config, error) {
	k := koanf.New(".")
	cfg := defaultConfig

	if e := k.Load(file.Provider(path), yaml.Parser()); e != nil && !errors.Is(e, fs.ErrNotExist) {
		return cfg, errors.Wrapf(e, "read %s", path)
	}

	if e := k.Load(env.Provider("APP_", ".", envKey), nil); e != nil {
		return cfg, errors.Wrap(e, "read environment")
	}

	if e := k.Unmarshal("", &cfg); e != nil {
		return cfg, errors.Wrap(e, "unmarshal config")
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "APP_"))
	return strings.ReplaceAll(key, "__", ".")
}
