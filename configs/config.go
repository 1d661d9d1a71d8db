package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	EnrichmentPerplexity = "perplexity"
)

type DB struct {
	Driver             string `default:"sqlite"`
	Path               string `default:"coffee.db"`
	Host               string `default:"localhost"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port     int           `default:"8080"`
	CacheTTL time.Duration `default:"5m"`
}

type Perplexity struct {
	BaseURL string        `default:"https://api.perplexity.ai"`
	Model   string        `default:"sonar"`
	Timeout time.Duration `default:"30s"`
}

type Integrations struct {
	Enrichment string `default:"perplexity"`
	Perplexity Perplexity
}

type KeyStore struct {
	Dir      string `default:".beanjournal-keys"`
	InMemory bool
}

type Collection struct {
	Locale string `default:"und"`
}

type Config struct {
	DB           DB
	Server       Server
	Integrations Integrations
	KeyStore     KeyStore
	Collection   Collection
}

const envPrefix = "BEANJOURNAL" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported database driver %q", ErrConfiguration, c.DB.Driver)
	}

	if c.Integrations.Enrichment != EnrichmentPerplexity {
		return fmt.Errorf("%w: unsupported enrichment integration %q", ErrConfiguration, c.Integrations.Enrichment)
	}

	return nil
}
