package cmd

import "go.uber.org/zap"

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1"                       help:"Run the server"`
	Migrate MigrateCmd `cmd:"" help:"Create the coffee_beans table"`
}

func newLogger(debug bool) *zap.Logger {
	logConfig := zap.NewProductionConfig()
	if debug {
		logConfig = zap.NewDevelopmentConfig()
		logConfig.DisableStacktrace = true
	}

	logger, _ := logConfig.Build()

	return logger
}
