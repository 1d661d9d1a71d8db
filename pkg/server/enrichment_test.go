package server_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"

	"droscher.com/BeanJournal/mocks"
	"droscher.com/BeanJournal/pkg/integrations"
	"droscher.com/BeanJournal/pkg/keystore"
	"droscher.com/BeanJournal/pkg/model"
	"droscher.com/BeanJournal/pkg/server"
	api "droscher.com/BeanJournal/pkg/server/grpc/api/v1"
)

type EnrichmentTestSuite struct {
	suite.Suite
	enricher *mocks.Enricher
	keyStore *mocks.Store
	beanRepo *mocks.BeanRepository
	service  *server.EnrichmentServer
	ctx      context.Context
}

func TestEnrichmentTestSuite(t *testing.T) {
	suite.Run(t, new(EnrichmentTestSuite))
}

func (suite *EnrichmentTestSuite) SetupTest() {
	suite.enricher = mocks.NewEnricher(suite.T())
	suite.keyStore = mocks.NewStore(suite.T())
	suite.beanRepo = mocks.NewBeanRepository(suite.T())
	suite.service = server.NewEnrichmentServer(suite.enricher, suite.keyStore, suite.beanRepo, zaptest.NewLogger(suite.T()))
	suite.ctx = context.Background()
}

func (suite *EnrichmentTestSuite) TestAutoPopulate_UsesStoredKey() {
	details := &model.BeanDetails{
		Origin:          pointy.String("Kenya"),
		Notes:           []string{"blackcurrant"},
		RecommendedDose: pointy.Float64(18),
	}

	suite.keyStore.EXPECT().Load(suite.ctx).Return("pplx-stored", nil)
	suite.enricher.EXPECT().AutoPopulate(mock.Anything, "pplx-stored", "Sey", "Karogoto").Return(details, nil)

	response, err := suite.service.AutoPopulate(suite.ctx, connect.NewRequest(&api.AutoPopulateRequest{Roaster: "Sey", Name: "Karogoto"}))
	suite.Require().NoError(err)

	suite.Equal("Kenya", *response.Msg.Details.Origin)
	suite.Equal("Kenya", *response.Msg.Updates.Origin)
	suite.InDelta(18.0, *response.Msg.Updates.GramsIn, 0.001)
	suite.Equal([]string{"blackcurrant"}, *response.Msg.Updates.Notes)
	suite.Nil(response.Msg.Updates.Name)
	suite.Nil(response.Msg.Updates.MlOut)
}

func (suite *EnrichmentTestSuite) TestAutoPopulate_RequestKeyWinsAndIsSaved() {
	suite.keyStore.EXPECT().Save(suite.ctx, "pplx-fresh").Return(nil)
	suite.enricher.EXPECT().AutoPopulate(mock.Anything, "pplx-fresh", "Sey", "Karogoto").Return(&model.BeanDetails{}, nil)

	_, err := suite.service.AutoPopulate(suite.ctx, connect.NewRequest(&api.AutoPopulateRequest{Roaster: "Sey", Name: "Karogoto", ApiKey: " pplx-fresh "}))
	suite.Require().NoError(err)

	suite.keyStore.AssertNotCalled(suite.T(), "Load", mock.Anything)
}

func (suite *EnrichmentTestSuite) TestAutoPopulate_SaveFailureDoesNotBlock() {
	suite.keyStore.EXPECT().Save(suite.ctx, "pplx-fresh").Return(keystore.ErrKeyStore)
	suite.enricher.EXPECT().AutoPopulate(mock.Anything, "pplx-fresh", "Sey", "Karogoto").Return(&model.BeanDetails{}, nil)

	_, err := suite.service.AutoPopulate(suite.ctx, connect.NewRequest(&api.AutoPopulateRequest{Roaster: "Sey", Name: "Karogoto", ApiKey: "pplx-fresh"}))
	suite.Require().NoError(err)
}

func (suite *EnrichmentTestSuite) TestAutoPopulate_MissingKey() {
	suite.keyStore.EXPECT().Load(suite.ctx).Return("", nil)
	suite.enricher.EXPECT().AutoPopulate(mock.Anything, "", "Sey", "Karogoto").Return(nil, integrations.ErrMissingAPIKey)

	response, err := suite.service.AutoPopulate(suite.ctx, connect.NewRequest(&api.AutoPopulateRequest{Roaster: "Sey", Name: "Karogoto"}))
	suite.Require().ErrorIs(err, integrations.ErrMissingAPIKey)
	suite.Nil(response)
}

func (suite *EnrichmentTestSuite) TestAutoPopulate_NothingFound() {
	suite.keyStore.EXPECT().Load(suite.ctx).Return("pplx-stored", nil)
	suite.enricher.EXPECT().AutoPopulate(mock.Anything, "pplx-stored", "Sey", "Unknown").Return(nil, nil)

	response, err := suite.service.AutoPopulate(suite.ctx, connect.NewRequest(&api.AutoPopulateRequest{Roaster: "Sey", Name: "Unknown"}))
	suite.Require().NoError(err)
	suite.Require().NotNil(response.Msg.Details)
	suite.Require().NotNil(response.Msg.Updates)
	suite.Nil(response.Msg.Updates.Origin)
	suite.Nil(response.Msg.Updates.GramsIn)
}

func (suite *EnrichmentTestSuite) TestAutoPopulate_KeyStoreFailure() {
	suite.keyStore.EXPECT().Load(suite.ctx).Return("", keystore.ErrKeyStore)

	_, err := suite.service.AutoPopulate(suite.ctx, connect.NewRequest(&api.AutoPopulateRequest{Roaster: "Sey", Name: "Karogoto"}))
	suite.Require().ErrorIs(err, keystore.ErrKeyStore)
}

func (suite *EnrichmentTestSuite) TestAutoPopulate_SupersededCallIsDiscarded() {
	started := make(chan struct{})
	firstDone := make(chan error, 1)

	suite.keyStore.EXPECT().Load(suite.ctx).Return("pplx-stored", nil)
	suite.enricher.EXPECT().AutoPopulate(mock.Anything, "pplx-stored", "Sey", "Slow").
		RunAndReturn(func(ctx context.Context, _, _, _ string) (*model.BeanDetails, error) {
			close(started)
			<-ctx.Done()

			return nil, ctx.Err()
		}).Once()
	suite.enricher.EXPECT().AutoPopulate(mock.Anything, "pplx-stored", "Sey", "Fast").
		Return(&model.BeanDetails{Origin: pointy.String("Kenya")}, nil).Once()

	go func() {
		_, err := suite.service.AutoPopulate(suite.ctx, connect.NewRequest(&api.AutoPopulateRequest{Roaster: "Sey", Name: "Slow", RequestToken: "form"}))
		firstDone <- err
	}()

	<-started

	response, err := suite.service.AutoPopulate(suite.ctx, connect.NewRequest(&api.AutoPopulateRequest{Roaster: "Sey", Name: "Fast", RequestToken: "form"}))
	suite.Require().NoError(err)
	suite.Equal("Kenya", *response.Msg.Details.Origin)

	suite.Require().ErrorIs(<-firstDone, server.ErrSuperseded)
}

func (suite *EnrichmentTestSuite) TestGetRecommendations_Preferences() {
	suggestions := []model.Suggestion{{ID: "s1", Name: "Karogoto", Roaster: "Sey", Notes: []string{"blackcurrant"}}}
	expected := integrations.RecommendationRequest{
		Type:        integrations.RecommendByPreferences,
		Preferences: integrations.Preferences{RoastLevel: "Light", Notes: "berries", PriceRange: "$15-$25"},
	}

	suite.keyStore.EXPECT().Load(suite.ctx).Return("pplx-stored", nil)
	suite.enricher.EXPECT().Recommend(mock.Anything, "pplx-stored", expected).Return(suggestions, nil)

	request := &api.GetRecommendationsRequest{
		Type:        "Preferences",
		Preferences: &api.Preferences{RoastLevel: "Light", Notes: "berries", PriceRange: "$15-$25"},
	}
	response, err := suite.service.GetRecommendations(suite.ctx, connect.NewRequest(request))
	suite.Require().NoError(err)
	suite.Require().Len(response.Msg.Recommendations, 1)
	suite.Equal("Karogoto", response.Msg.Recommendations[0].Name)
}

func (suite *EnrichmentTestSuite) TestGetRecommendations_JournalLoadsCollection() {
	beans := journal()

	suite.keyStore.EXPECT().Load(suite.ctx).Return("pplx-stored", nil)
	suite.beanRepo.EXPECT().ListBeans(suite.ctx).Return(beans, nil)
	suite.enricher.EXPECT().Recommend(mock.Anything, "pplx-stored", mock.MatchedBy(func(request integrations.RecommendationRequest) bool {
		return request.Type == integrations.RecommendByJournal && len(request.Journal) == len(beans)
	})).Return(nil, nil)

	response, err := suite.service.GetRecommendations(suite.ctx, connect.NewRequest(&api.GetRecommendationsRequest{Type: "journal"}))
	suite.Require().NoError(err)
	suite.Empty(response.Msg.Recommendations)
}

func (suite *EnrichmentTestSuite) TestGetRecommendations_MissingKeyChecksFirst() {
	suite.keyStore.EXPECT().Load(suite.ctx).Return("", nil)

	_, err := suite.service.GetRecommendations(suite.ctx, connect.NewRequest(&api.GetRecommendationsRequest{Type: "journal"}))
	suite.Require().ErrorIs(err, integrations.ErrMissingAPIKey)

	suite.beanRepo.AssertNotCalled(suite.T(), "ListBeans", mock.Anything)
}

func (suite *EnrichmentTestSuite) TestGetRecommendations_FetchFailure() {
	suite.keyStore.EXPECT().Load(suite.ctx).Return("pplx-stored", nil)
	suite.enricher.EXPECT().Recommend(mock.Anything, "pplx-stored", mock.Anything).
		Return(nil, errors.Join(integrations.ErrEnrichment, errors.New("status 502")))

	_, err := suite.service.GetRecommendations(suite.ctx, connect.NewRequest(&api.GetRecommendationsRequest{
		Type:        "preferences",
		Preferences: &api.Preferences{RoastLevel: "Dark", Notes: "cocoa", PriceRange: "cheap"},
	}))
	suite.Require().ErrorIs(err, integrations.ErrEnrichment)
}

func (suite *EnrichmentTestSuite) TestAPIKeyStatusAndSave() {
	suite.keyStore.EXPECT().Load(suite.ctx).Return("", nil).Once()
	suite.keyStore.EXPECT().Save(suite.ctx, "pplx-new").Return(nil).Once()
	suite.keyStore.EXPECT().Save(suite.ctx, "").Return(nil).Once()

	status, err := suite.service.GetAPIKeyStatus(suite.ctx, connect.NewRequest(&api.GetAPIKeyStatusRequest{}))
	suite.Require().NoError(err)
	suite.False(status.Msg.Configured)

	saved, err := suite.service.SaveAPIKey(suite.ctx, connect.NewRequest(&api.SaveAPIKeyRequest{ApiKey: "pplx-new\n"}))
	suite.Require().NoError(err)
	suite.True(saved.Msg.Configured)

	cleared, err := suite.service.SaveAPIKey(suite.ctx, connect.NewRequest(&api.SaveAPIKeyRequest{}))
	suite.Require().NoError(err)
	suite.False(cleared.Msg.Configured)
}
