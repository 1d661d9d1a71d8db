package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeanJournal/configs"
	"droscher.com/BeanJournal/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BeanJournal.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logger := newLogger(true)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	return repo.EnsureSchema(context.Background())
}
