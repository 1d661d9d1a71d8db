package server

import (
	"context"
	"strings"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/BeanJournal/pkg/integrations"
	"droscher.com/BeanJournal/pkg/keystore"
	"droscher.com/BeanJournal/pkg/model"
	"droscher.com/BeanJournal/pkg/repository"
	"droscher.com/BeanJournal/pkg/server/grpc"
	api "droscher.com/BeanJournal/pkg/server/grpc/api/v1"
	"droscher.com/BeanJournal/pkg/server/inflight"
)

const (
	kindAutoPopulate    = "auto-populate"
	kindRecommendations = "recommendations"
)

type EnrichmentServer struct {
	enricher       integrations.Enricher
	keyStore       keystore.Store
	beanRepository repository.BeanRepository
	inflight       *inflight.Tracker
	logger         *zap.Logger
}

func NewEnrichmentServer(enricher integrations.Enricher, keyStore keystore.Store, beanRepo repository.BeanRepository, logger *zap.Logger) *EnrichmentServer {
	return &EnrichmentServer{
		enricher:       enricher,
		keyStore:       keyStore,
		beanRepository: beanRepo,
		inflight:       inflight.NewTracker(),
		logger:         logger,
	}
}

func (e *EnrichmentServer) AutoPopulate(ctx context.Context, request *connect.Request[api.AutoPopulateRequest]) (*connect.Response[api.AutoPopulateResponse], error) {
	apiKey, err := e.resolveAPIKey(ctx, request.Msg.GetApiKey())
	if err != nil {
		return nil, err
	}

	ctx, call := e.inflight.Begin(ctx, kindAutoPopulate, request.Msg.GetRequestToken())
	defer call.Done()

	details, err := e.enricher.AutoPopulate(ctx, apiKey, request.Msg.GetRoaster(), request.Msg.GetName())
	if call.Superseded() {
		e.logger.Debug("discarding superseded auto-populate", zap.String("token", request.Msg.GetRequestToken()))

		return nil, ErrSuperseded
	}

	if err != nil {
		return nil, err
	}

	if details == nil {
		details = &model.BeanDetails{}
	}

	response := api.AutoPopulateResponse{
		Details: grpc.DetailsFromModel(details),
		Updates: grpc.BeanUpdateFromModel(details.Patch()),
	}

	return connect.NewResponse(&response), nil
}

func (e *EnrichmentServer) GetRecommendations(ctx context.Context, request *connect.Request[api.GetRecommendationsRequest]) (*connect.Response[api.GetRecommendationsResponse], error) {
	apiKey, err := e.resolveAPIKey(ctx, request.Msg.GetApiKey())
	if err != nil {
		return nil, err
	}

	if err = integrations.RequireAPIKey(apiKey); err != nil {
		return nil, err
	}

	recommendationRequest := integrations.RecommendationRequest{
		Type:        integrations.RecommendationType(strings.ToLower(strings.TrimSpace(request.Msg.GetType()))),
		Preferences: grpc.PreferencesToModel(request.Msg.GetPreferences()),
	}

	if recommendationRequest.Type == integrations.RecommendByJournal {
		recommendationRequest.Journal, err = e.beanRepository.ListBeans(ctx)
		if err != nil {
			return nil, err
		}
	}

	ctx, call := e.inflight.Begin(ctx, kindRecommendations, request.Msg.GetRequestToken())
	defer call.Done()

	suggestions, err := e.enricher.Recommend(ctx, apiKey, recommendationRequest)
	if call.Superseded() {
		e.logger.Debug("discarding superseded recommendations", zap.String("token", request.Msg.GetRequestToken()))

		return nil, ErrSuperseded
	}

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetRecommendationsResponse{Recommendations: grpc.SuggestionsFromModel(suggestions)}), nil
}

func (e *EnrichmentServer) GetAPIKeyStatus(ctx context.Context, _ *connect.Request[api.GetAPIKeyStatusRequest]) (*connect.Response[api.GetAPIKeyStatusResponse], error) {
	apiKey, err := e.keyStore.Load(ctx)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetAPIKeyStatusResponse{Configured: apiKey != ""}), nil
}

func (e *EnrichmentServer) SaveAPIKey(ctx context.Context, request *connect.Request[api.SaveAPIKeyRequest]) (*connect.Response[api.SaveAPIKeyResponse], error) {
	apiKey := strings.TrimSpace(request.Msg.GetApiKey())

	if err := e.keyStore.Save(ctx, apiKey); err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.SaveAPIKeyResponse{Configured: apiKey != ""}), nil
}

// resolveAPIKey prefers the key sent with the request and remembers it. Without one the
// stored key is used.
func (e *EnrichmentServer) resolveAPIKey(ctx context.Context, requestKey string) (string, error) {
	requestKey = strings.TrimSpace(requestKey)

	if requestKey != "" {
		if err := e.keyStore.Save(ctx, requestKey); err != nil {
			e.logger.Warn("could not remember api key", zap.Error(err))
		}

		return requestKey, nil
	}

	return e.keyStore.Load(ctx)
}
