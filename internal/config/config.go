package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

type Config struct {
	LogLevel          string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTP              HTTP     `yaml:"http"`
	Game              Game     `yaml:"game"`
	Storage           Storage  `yaml:"storage"`
	Redis             Redis    `yaml:"redis"`
	Postgres          Postgres `yaml:"postgres"`
	SQLiteStoragePath string   `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"results.db"`
}

type HTTP struct {
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"9090"`
	ReadTimeout     time.Duration `yaml:"read-timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write-timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle-timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`

	// AllowedOrigins - browser origins granted CORS access; "*" allows any.
	AllowedOrigins []string `yaml:"allowed-origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type Game struct {
	DefaultBoardSize int           `yaml:"default-board-size" env:"GAME_DEFAULT_BOARD_SIZE" env-default:"3"`
	SessionTTL       time.Duration `yaml:"session-ttl" env:"GAME_SESSION_TTL" env-default:"24h"`
}

// Storage - selects the backend for each kind of data.
type Storage struct {
	Results  string `yaml:"results" env:"STORAGE_RESULTS" env-default:"memory"`
	Sessions string `yaml:"sessions" env:"STORAGE_SESSIONS" env-default:"memory"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB   int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Postgres struct {
	DSN             string        `yaml:"dsn" env:"POSTGRES_DSN"`
	MaxOpenConns    int           `yaml:"max-open-conns" env:"POSTGRES_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"max-idle-conns" env:"POSTGRES_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn-max-lifetime" env:"POSTGRES_CONN_MAX_LIFETIME" env-default:"30m"`
}

// Load - reads the yaml file at path, with environment variables taking precedence.
// A .env file in the working directory is loaded first when present. A missing config
// file is not an error: the configuration then comes from the environment alone.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Storage.Results {
	case DriverMemory, DriverRedis, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w for results: %q", ErrUnknownDriver, that.Storage.Results)
	}

	switch that.Storage.Sessions {
	case DriverMemory, DriverRedis:
	default:
		return fmt.Errorf("%w for sessions: %q", ErrUnknownDriver, that.Storage.Sessions)
	}

	if that.Storage.Results == DriverPostgres && that.Postgres.DSN == "" {
		return errors.New("postgres dsn is required for postgres results storage")
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
