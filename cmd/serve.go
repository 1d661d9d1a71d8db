package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BeanJournal/configs"
	"droscher.com/BeanJournal/pkg/collection"
	"droscher.com/BeanJournal/pkg/integrations/registry"
	"droscher.com/BeanJournal/pkg/keystore"
	"droscher.com/BeanJournal/pkg/repository"
	"droscher.com/BeanJournal/pkg/server"
	"droscher.com/BeanJournal/pkg/server/grpc/api/v1/apiv1connect"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".BeanJournal.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logger := newLogger(cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	if err = repo.EnsureSchema(ctx); err != nil {
		logger.Error("error preparing database", zap.Error(err))

		return err
	}

	keyStore, err := keystore.Open(conf.KeyStore, logger)
	if err != nil {
		logger.Error("error opening key store", zap.Error(err))

		return err
	}
	defer keyStore.Close() //nolint:errcheck // nothing left to do with a close error on shutdown

	enricher, err := registry.GetIntegration(conf.Integrations.Enrichment, conf.Integrations, logger)
	if err != nil {
		logger.Error("error configuring enrichment", zap.Error(err))

		return err
	}

	locale, err := collection.ParseLocale(conf.Collection.Locale)
	if err != nil {
		logger.Error("error parsing collation locale", zap.Error(err))

		return err
	}

	beanRepo := repository.NewCachedBeanRepository(repo, conf.Server.CacheTTL, logger)
	interceptors := connect.WithInterceptors(server.ErrorInterceptor(logger))

	mux := http.NewServeMux()

	path, handler := apiv1connect.NewBeanServiceHandler(server.NewBeanServer(beanRepo, locale, logger), interceptors)
	mux.Handle(path, handler)

	path, handler = apiv1connect.NewEnrichmentServiceHandler(server.NewEnrichmentServer(enricher, keyStore, beanRepo, logger), interceptors)
	mux.Handle(path, handler)

	checker := grpchealth.NewStaticChecker(apiv1connect.BeanServiceName, apiv1connect.EnrichmentServiceName)
	mux.Handle(grpchealth.NewHandler(checker))

	address := fmt.Sprintf(":%d", conf.Server.Port)

	// Configure CORS first
	corsHandler := configureCORS(mux)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := svr.Shutdown(shutdownCtx); err != nil {
			logger.Warn("error shutting down server", zap.Error(err))
		}
	}()

	logger.Info("serving", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"date",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"grpc-timeout",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
			"x-accept-content-transfer-encoding",
			"x-accept-response-streaming",
			"x-grpc-web",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false, // Handle OPTIONS requests in CORS middleware
	})

	// Apply CORS to the main mux, then wrap with h2c
	corsHandler := corsOpts.Handler(mux)

	return corsHandler
}
