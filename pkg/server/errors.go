package server

import (
	"context"
	"errors"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/BeanJournal/pkg/collection"
	"droscher.com/BeanJournal/pkg/integrations"
	"droscher.com/BeanJournal/pkg/keystore"
	"droscher.com/BeanJournal/pkg/model"
	"droscher.com/BeanJournal/pkg/repository"
)

// ErrSuperseded is returned by an enrichment call that a newer call replaced.
var ErrSuperseded = errors.New("superseded by a newer request")

var (
	errFailedToFetch  = errors.New(integrations.ErrEnrichment.Error())
	errStorageFailure = errors.New("storage failure")
	errInternal       = errors.New("internal error")
)

// ErrorInterceptor turns the errors handlers return into connect errors. Internal
// failures are logged here and reach the caller without detail.
func ErrorInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			response, err := next(ctx, req)
			if err != nil {
				return nil, toConnectError(err, req.Spec().Procedure, logger)
			}

			return response, nil
		}
	}
}

func toConnectError(err error, procedure string, logger *zap.Logger) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch {
	case errors.Is(err, ErrSuperseded):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, integrations.ErrMissingAPIKey):
		return connect.NewError(connect.CodeFailedPrecondition, integrations.ErrMissingAPIKey)
	case errors.Is(err, model.ErrValidation), errors.Is(err, collection.ErrInvalidCriteria):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, repository.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		// the caller gave up, even when the enrichment client wrapped it
		return connect.NewError(connect.CodeCanceled, context.Canceled)
	case errors.Is(err, integrations.ErrEnrichment):
		// enrichment timeouts are fetch failures too
		logger.Warn("enrichment failed", zap.String("procedure", procedure), zap.Error(err))

		return connect.NewError(connect.CodeUnavailable, errFailedToFetch)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, repository.ErrStore), errors.Is(err, keystore.ErrKeyStore):
		logger.Error("storage failure", zap.String("procedure", procedure), zap.Error(err))

		return connect.NewError(connect.CodeInternal, errStorageFailure)
	default:
		logger.Error("unexpected error", zap.String("procedure", procedure), zap.Error(err))

		return connect.NewError(connect.CodeInternal, errInternal)
	}
}
