package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BeanJournal/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("postgres", config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal(90*time.Second, config.Server.CacheTTL)
	suite.Equal("perplexity", config.Integrations.Enrichment)
	suite.Equal("https://llm.test.local", config.Integrations.Perplexity.BaseURL)
	suite.Equal("sonar-pro", config.Integrations.Perplexity.Model)
	suite.Equal(10*time.Second, config.Integrations.Perplexity.Timeout)
	suite.Equal("/tmp/keys", config.KeyStore.Dir)
	suite.True(config.KeyStore.InMemory)
	suite.Equal("en", config.Collection.Locale)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BEANJOURNAL_DB_DRIVER", "sqlite")
	suite.T().Setenv("BEANJOURNAL_DB_PATH", "/var/lib/beans.db")
	suite.T().Setenv("BEANJOURNAL_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("BEANJOURNAL_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("BEANJOURNAL_SERVER_PORT", "666")
	suite.T().Setenv("BEANJOURNAL_SERVER_CACHETTL", "2m")
	suite.T().Setenv("BEANJOURNAL_INTEGRATIONS_PERPLEXITY_MODEL", "sonar-reasoning")
	suite.T().Setenv("BEANJOURNAL_INTEGRATIONS_PERPLEXITY_TIMEOUT", "45s")
	suite.T().Setenv("BEANJOURNAL_KEYSTORE_DIR", "/var/lib/keys")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("sqlite", config.DB.Driver)
	suite.Equal("/var/lib/beans.db", config.DB.Path)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal(2*time.Minute, config.Server.CacheTTL)
	suite.Equal("sonar-reasoning", config.Integrations.Perplexity.Model)
	suite.Equal(45*time.Second, config.Integrations.Perplexity.Timeout)
	suite.Equal("/var/lib/keys", config.KeyStore.Dir)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BEANJOURNAL_DB_HOST", "env.local")
	suite.T().Setenv("BEANJOURNAL_DB_USER", "envuser")
	suite.T().Setenv("BEANJOURNAL_DB_PASSWORD", "env123")
	suite.T().Setenv("BEANJOURNAL_INTEGRATIONS_PERPLEXITY_BASEURL", "https://env.local")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(666, config.Server.Port)
	suite.Equal("https://env.local", config.Integrations.Perplexity.BaseURL)
	suite.Equal("sonar-pro", config.Integrations.Perplexity.Model)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileFallsBackToDefaults() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverSQLite, config.DB.Driver)
	suite.Equal("coffee.db", config.DB.Path)
	suite.Equal(8080, config.Server.Port)
	suite.Equal(5*time.Minute, config.Server.CacheTTL)
	suite.Equal(configs.EnrichmentPerplexity, config.Integrations.Enrichment)
	suite.Equal("https://api.perplexity.ai", config.Integrations.Perplexity.BaseURL)
	suite.Equal(30*time.Second, config.Integrations.Perplexity.Timeout)
	suite.False(config.KeyStore.InMemory)
	suite.Equal("und", config.Collection.Locale)
}

func (suite *ConfigTestSuite) TestGetConfig_UnsupportedDriver() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/bad_driver.toml", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.ErrorContains(err, `unsupported database driver "oracle"`)
}

func (suite *ConfigTestSuite) TestGetConfig_UnsupportedIntegration() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("BEANJOURNAL_INTEGRATIONS_ENRICHMENT", "chatgpt")

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.ErrorIs(err, configs.ErrConfiguration)
}
