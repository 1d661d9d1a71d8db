package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"

	"droscher.com/BeanJournal/mocks"
	"droscher.com/BeanJournal/pkg/collection"
	"droscher.com/BeanJournal/pkg/model"
	"droscher.com/BeanJournal/pkg/repository"
	"droscher.com/BeanJournal/pkg/server"
	api "droscher.com/BeanJournal/pkg/server/grpc/api/v1"
)

type BeanTestSuite struct {
	suite.Suite
	beanRepo     *mocks.BeanRepository
	service      *server.BeanServer
	observedLogs *observer.ObservedLogs
	ctx          context.Context
}

func TestBeanTestSuite(t *testing.T) {
	suite.Run(t, new(BeanTestSuite))
}

func (suite *BeanTestSuite) SetupTest() {
	suite.beanRepo = mocks.NewBeanRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = server.NewBeanServer(suite.beanRepo, language.Und, zap.New(observedZapCore))
	suite.ctx = context.Background()
}

func journal() []*model.CoffeeBean {
	now := time.Now().UTC()

	return []*model.CoffeeBean{
		{ID: "1", Roaster: "Stumptown", Name: "Kenya AA", Rank: 3, Notes: []string{"grapefruit"}, CreatedAt: now.Add(-2 * time.Hour), PurchaseCount: 1},
		{ID: "2", Roaster: "Blue Bottle", Name: "Kenya AA", Rank: 5, Notes: []string{"blackcurrant"}, CreatedAt: now, PurchaseCount: 2},
		{ID: "3", Roaster: "Stumptown", Name: "Hair Bender", Rank: 4, Notes: []string{"chocolate"}, CreatedAt: now.Add(-time.Hour), PurchaseCount: 1},
	}
}

func beanIDs(beans []*api.Bean) []string {
	ids := make([]string, 0, len(beans))
	for _, bean := range beans {
		ids = append(ids, bean.Id)
	}

	return ids
}

func validBean() *api.Bean {
	return &api.Bean{
		Roaster:     "Onyx",
		Name:        "Geometry",
		Origin:      "Ethiopia, Colombia",
		RoastLevel:  "light",
		Notes:       []string{"berry", "berry", "floral"},
		Rank:        pointy.Int(4),
		GramsIn:     pointy.Float64(18),
		MlOut:       pointy.Float64(40),
		BrewTime:    pointy.Int(28),
		Temperature: pointy.Int(93),
		Price:       pointy.Float64(21.5),
		Weight:      pointy.Int(340),
		GrindSize:   pointy.Int(12),
		OrderAgain:  true,
	}
}

func (suite *BeanTestSuite) TestListBeans_KenyaSearchSortedByRank() {
	suite.beanRepo.EXPECT().ListBeans(suite.ctx).Return(journal(), nil)

	request := &api.ListBeansRequest{Query: "kenya", SortField: "rank", SortDirection: "asc"}
	response, err := suite.service.ListBeans(suite.ctx, connect.NewRequest(request))
	suite.Require().NoError(err)

	suite.Equal([]string{"2", "1"}, beanIDs(response.Msg.Beans))
	suite.Equal([]string{"Stumptown", "Blue Bottle"}, response.Msg.Roasters)
	suite.Equal(3, response.Msg.Total)
}

func (suite *BeanTestSuite) TestListBeans_RoasterAndRankFilter() {
	suite.beanRepo.EXPECT().ListBeans(suite.ctx).Return(journal(), nil)

	request := &api.ListBeansRequest{Roaster: "Stumptown", Rank: "4"}
	response, err := suite.service.ListBeans(suite.ctx, connect.NewRequest(request))
	suite.Require().NoError(err)

	suite.Equal([]string{"3"}, beanIDs(response.Msg.Beans))
}

func (suite *BeanTestSuite) TestListBeans_DefaultsSortByName() {
	suite.beanRepo.EXPECT().ListBeans(suite.ctx).Return(journal(), nil)

	response, err := suite.service.ListBeans(suite.ctx, connect.NewRequest(&api.ListBeansRequest{Roaster: "all", Rank: "all"}))
	suite.Require().NoError(err)

	suite.Equal([]string{"3", "1", "2"}, beanIDs(response.Msg.Beans))
}

func (suite *BeanTestSuite) TestListBeans_BadCriteriaSkipsStore() {
	for _, request := range []*api.ListBeansRequest{
		{SortField: "origin"},
		{SortDirection: "up"},
		{Rank: "9"},
	} {
		_, err := suite.service.ListBeans(suite.ctx, connect.NewRequest(request))
		suite.Require().ErrorIs(err, collection.ErrInvalidCriteria)
	}

	suite.beanRepo.AssertNotCalled(suite.T(), "ListBeans", mock.Anything)
}

func (suite *BeanTestSuite) TestListBeans_StoreError() {
	suite.beanRepo.EXPECT().ListBeans(suite.ctx).Return(nil, repository.ErrStore)

	response, err := suite.service.ListBeans(suite.ctx, connect.NewRequest(&api.ListBeansRequest{}))
	suite.Require().ErrorIs(err, repository.ErrStore)
	suite.Nil(response)
}

func (suite *BeanTestSuite) TestGetBean() {
	bean := journal()[0]
	suite.beanRepo.EXPECT().GetBean(suite.ctx, "1").Return(bean, nil)

	response, err := suite.service.GetBean(suite.ctx, connect.NewRequest(&api.GetBeanRequest{Id: " 1 "}))
	suite.Require().NoError(err)
	suite.Equal("Kenya AA", response.Msg.Bean.Name)
	suite.Equal(3, *response.Msg.Bean.Rank)
	suite.Require().NotNil(response.Msg.Bean.CreatedAt)
	suite.True(bean.CreatedAt.Equal(*response.Msg.Bean.CreatedAt))
}

func (suite *BeanTestSuite) TestGetBean_MissingID() {
	_, err := suite.service.GetBean(suite.ctx, connect.NewRequest(&api.GetBeanRequest{}))
	suite.Require().ErrorIs(err, model.ErrValidation)
}

func (suite *BeanTestSuite) TestAddBean() {
	added := &model.CoffeeBean{ID: "new-id", Roaster: "Onyx", Name: "Geometry", CreatedAt: time.Now()}

	suite.beanRepo.EXPECT().AddBean(suite.ctx, mock.MatchedBy(func(bean model.CoffeeBean) bool {
		return bean.Roaster == "Onyx" && bean.RoastLevel == model.RoastLight && bean.Rank == 4 &&
			bean.GramsIn == 18 && bean.OrderAgain && bean.PurchaseCount == 0
	})).Return(added, nil)

	response, err := suite.service.AddBean(suite.ctx, connect.NewRequest(&api.AddBeanRequest{Bean: validBean()}))
	suite.Require().NoError(err)
	suite.Equal("new-id", response.Msg.Bean.Id)
	suite.Equal(1, suite.observedLogs.FilterMessage("added coffee bean").Len())
}

func (suite *BeanTestSuite) TestAddBean_MissingNumericFields() {
	bean := validBean()
	bean.GramsIn = nil
	bean.Weight = nil

	_, err := suite.service.AddBean(suite.ctx, connect.NewRequest(&api.AddBeanRequest{Bean: bean}))
	suite.Require().ErrorIs(err, model.ErrValidation)
	suite.Require().ErrorContains(err, "gramsIn is required")
	suite.Require().ErrorContains(err, "weight is required")

	_, err = suite.service.AddBean(suite.ctx, connect.NewRequest(&api.AddBeanRequest{}))
	suite.Require().ErrorIs(err, model.ErrValidation)

	suite.beanRepo.AssertNotCalled(suite.T(), "AddBean", mock.Anything, mock.Anything)
}

func (suite *BeanTestSuite) TestUpdateBean() {
	updated := journal()[0]
	updated.Rank = 5

	suite.beanRepo.EXPECT().UpdateBean(suite.ctx, "1", mock.MatchedBy(func(patch model.BeanPatch) bool {
		return patch.Rank != nil && *patch.Rank == 5 && patch.RoastLevel != nil &&
			*patch.RoastLevel == model.RoastMediumDark && patch.Name == nil
	})).Return(updated, nil)

	request := &api.UpdateBeanRequest{Id: "1", Updates: &api.BeanUpdate{Rank: pointy.Int(5), RoastLevel: pointy.String("medium dark")}}
	response, err := suite.service.UpdateBean(suite.ctx, connect.NewRequest(request))
	suite.Require().NoError(err)
	suite.Equal(5, *response.Msg.Bean.Rank)
}

func (suite *BeanTestSuite) TestUpdateBean_NotFound() {
	suite.beanRepo.EXPECT().UpdateBean(suite.ctx, "missing", model.BeanPatch{}).Return(nil, repository.ErrNotFound)

	_, err := suite.service.UpdateBean(suite.ctx, connect.NewRequest(&api.UpdateBeanRequest{Id: "missing"}))
	suite.Require().ErrorIs(err, repository.ErrNotFound)
}

func (suite *BeanTestSuite) TestDeleteBean() {
	suite.beanRepo.EXPECT().DeleteBean(suite.ctx, "1").Return(nil)

	response, err := suite.service.DeleteBean(suite.ctx, connect.NewRequest(&api.DeleteBeanRequest{Id: "1"}))
	suite.Require().NoError(err)
	suite.NotNil(response.Msg)
}

func (suite *BeanTestSuite) TestRecordPurchase() {
	bean := journal()[0]
	bean.PurchaseCount = 2
	suite.beanRepo.EXPECT().IncrementPurchaseCount(suite.ctx, "1").Return(bean, nil)

	response, err := suite.service.RecordPurchase(suite.ctx, connect.NewRequest(&api.RecordPurchaseRequest{Id: "1"}))
	suite.Require().NoError(err)
	suite.Equal(2, *response.Msg.Bean.PurchaseCount)
}

func (suite *BeanTestSuite) TestRecordPurchase_NotFound() {
	suite.beanRepo.EXPECT().IncrementPurchaseCount(suite.ctx, "missing").Return(nil, repository.ErrNotFound)

	_, err := suite.service.RecordPurchase(suite.ctx, connect.NewRequest(&api.RecordPurchaseRequest{Id: "missing"}))
	suite.Require().ErrorIs(err, repository.ErrNotFound)
}

func (suite *BeanTestSuite) TestListPurchaseHistory_NewestFirst() {
	suite.beanRepo.EXPECT().ListBeans(suite.ctx).Return(journal(), nil)

	response, err := suite.service.ListPurchaseHistory(suite.ctx, connect.NewRequest(&api.ListPurchaseHistoryRequest{}))
	suite.Require().NoError(err)
	suite.Equal([]string{"2", "3", "1"}, beanIDs(response.Msg.Beans))
}
