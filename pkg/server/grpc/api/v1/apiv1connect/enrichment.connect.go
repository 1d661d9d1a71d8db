package apiv1connect

import (
	"context"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"

	v1 "droscher.com/BeanJournal/pkg/server/grpc/api/v1"
)

const EnrichmentServiceName = "beanjournal.v1.EnrichmentService"

const (
	EnrichmentServiceAutoPopulateProcedure       = "/beanjournal.v1.EnrichmentService/AutoPopulate"
	EnrichmentServiceGetRecommendationsProcedure = "/beanjournal.v1.EnrichmentService/GetRecommendations"
	EnrichmentServiceGetAPIKeyStatusProcedure    = "/beanjournal.v1.EnrichmentService/GetAPIKeyStatus"
	EnrichmentServiceSaveAPIKeyProcedure         = "/beanjournal.v1.EnrichmentService/SaveAPIKey"
)

type EnrichmentServiceClient interface {
	AutoPopulate(context.Context, *connect.Request[v1.AutoPopulateRequest]) (*connect.Response[v1.AutoPopulateResponse], error)
	GetRecommendations(context.Context, *connect.Request[v1.GetRecommendationsRequest]) (*connect.Response[v1.GetRecommendationsResponse], error)
	GetAPIKeyStatus(context.Context, *connect.Request[v1.GetAPIKeyStatusRequest]) (*connect.Response[v1.GetAPIKeyStatusResponse], error)
	SaveAPIKey(context.Context, *connect.Request[v1.SaveAPIKeyRequest]) (*connect.Response[v1.SaveAPIKeyResponse], error)
}

func NewEnrichmentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) EnrichmentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)

	return &enrichmentServiceClient{
		autoPopulate:       connect.NewClient[v1.AutoPopulateRequest, v1.AutoPopulateResponse](httpClient, baseURL+EnrichmentServiceAutoPopulateProcedure, opts...),
		getRecommendations: connect.NewClient[v1.GetRecommendationsRequest, v1.GetRecommendationsResponse](httpClient, baseURL+EnrichmentServiceGetRecommendationsProcedure, opts...),
		getAPIKeyStatus:    connect.NewClient[v1.GetAPIKeyStatusRequest, v1.GetAPIKeyStatusResponse](httpClient, baseURL+EnrichmentServiceGetAPIKeyStatusProcedure, opts...),
		saveAPIKey:         connect.NewClient[v1.SaveAPIKeyRequest, v1.SaveAPIKeyResponse](httpClient, baseURL+EnrichmentServiceSaveAPIKeyProcedure, opts...),
	}
}

type enrichmentServiceClient struct {
	autoPopulate       *connect.Client[v1.AutoPopulateRequest, v1.AutoPopulateResponse]
	getRecommendations *connect.Client[v1.GetRecommendationsRequest, v1.GetRecommendationsResponse]
	getAPIKeyStatus    *connect.Client[v1.GetAPIKeyStatusRequest, v1.GetAPIKeyStatusResponse]
	saveAPIKey         *connect.Client[v1.SaveAPIKeyRequest, v1.SaveAPIKeyResponse]
}

func (c *enrichmentServiceClient) AutoPopulate(ctx context.Context, req *connect.Request[v1.AutoPopulateRequest]) (*connect.Response[v1.AutoPopulateResponse], error) {
	return c.autoPopulate.CallUnary(ctx, req)
}

func (c *enrichmentServiceClient) GetRecommendations(ctx context.Context, req *connect.Request[v1.GetRecommendationsRequest]) (*connect.Response[v1.GetRecommendationsResponse], error) {
	return c.getRecommendations.CallUnary(ctx, req)
}

func (c *enrichmentServiceClient) GetAPIKeyStatus(ctx context.Context, req *connect.Request[v1.GetAPIKeyStatusRequest]) (*connect.Response[v1.GetAPIKeyStatusResponse], error) {
	return c.getAPIKeyStatus.CallUnary(ctx, req)
}

func (c *enrichmentServiceClient) SaveAPIKey(ctx context.Context, req *connect.Request[v1.SaveAPIKeyRequest]) (*connect.Response[v1.SaveAPIKeyResponse], error) {
	return c.saveAPIKey.CallUnary(ctx, req)
}

type EnrichmentServiceHandler interface {
	AutoPopulate(context.Context, *connect.Request[v1.AutoPopulateRequest]) (*connect.Response[v1.AutoPopulateResponse], error)
	GetRecommendations(context.Context, *connect.Request[v1.GetRecommendationsRequest]) (*connect.Response[v1.GetRecommendationsResponse], error)
	GetAPIKeyStatus(context.Context, *connect.Request[v1.GetAPIKeyStatusRequest]) (*connect.Response[v1.GetAPIKeyStatusResponse], error)
	SaveAPIKey(context.Context, *connect.Request[v1.SaveAPIKeyRequest]) (*connect.Response[v1.SaveAPIKeyResponse], error)
}

func NewEnrichmentServiceHandler(svc EnrichmentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)

	mux := http.NewServeMux()
	mux.Handle(EnrichmentServiceAutoPopulateProcedure, connect.NewUnaryHandler(EnrichmentServiceAutoPopulateProcedure, svc.AutoPopulate, opts...))
	mux.Handle(EnrichmentServiceGetRecommendationsProcedure, connect.NewUnaryHandler(EnrichmentServiceGetRecommendationsProcedure, svc.GetRecommendations, opts...))
	mux.Handle(EnrichmentServiceGetAPIKeyStatusProcedure, connect.NewUnaryHandler(EnrichmentServiceGetAPIKeyStatusProcedure, svc.GetAPIKeyStatus, opts...))
	mux.Handle(EnrichmentServiceSaveAPIKeyProcedure, connect.NewUnaryHandler(EnrichmentServiceSaveAPIKeyProcedure, svc.SaveAPIKey, opts...))

	return "/" + EnrichmentServiceName + "/", mux
}
