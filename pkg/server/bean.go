package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"droscher.com/BeanJournal/pkg/collection"
	"droscher.com/BeanJournal/pkg/model"
	"droscher.com/BeanJournal/pkg/repository"
	"droscher.com/BeanJournal/pkg/server/grpc"
	api "droscher.com/BeanJournal/pkg/server/grpc/api/v1"
)

type BeanServer struct {
	beanRepository repository.BeanRepository
	locale         language.Tag
	logger         *zap.Logger
}

func NewBeanServer(beanRepo repository.BeanRepository, locale language.Tag, logger *zap.Logger) *BeanServer {
	return &BeanServer{beanRepository: beanRepo, locale: locale, logger: logger}
}

func (b *BeanServer) ListBeans(ctx context.Context, request *connect.Request[api.ListBeansRequest]) (*connect.Response[api.ListBeansResponse], error) {
	filter, sort, err := b.criteria(request.Msg)
	if err != nil {
		return nil, err
	}

	beans, err := b.beanRepository.ListBeans(ctx)
	if err != nil {
		return nil, err
	}

	response := api.ListBeansResponse{
		Beans:    grpc.BeansFromModel(collection.Apply(beans, filter, sort)),
		Roasters: collection.Roasters(beans),
		Total:    len(beans),
	}

	return connect.NewResponse(&response), nil
}

func (b *BeanServer) criteria(msg *api.ListBeansRequest) (collection.Filter, collection.Sort, error) {
	rank, err := collection.ParseRank(msg.GetRank())
	if err != nil {
		return collection.Filter{}, collection.Sort{}, err
	}

	field, err := collection.ParseSortField(msg.GetSortField())
	if err != nil {
		return collection.Filter{}, collection.Sort{}, err
	}

	direction, err := collection.ParseDirection(msg.GetSortDirection())
	if err != nil {
		return collection.Filter{}, collection.Sort{}, err
	}

	filter := collection.Filter{Roaster: msg.GetRoaster(), Rank: rank, Query: msg.GetQuery()}
	sort := collection.Sort{Field: field, Direction: direction, Locale: b.locale}

	return filter, sort, nil
}

func (b *BeanServer) GetBean(ctx context.Context, request *connect.Request[api.GetBeanRequest]) (*connect.Response[api.GetBeanResponse], error) {
	id, err := requireID(request.Msg.GetId())
	if err != nil {
		return nil, err
	}

	bean, err := b.beanRepository.GetBean(ctx, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetBeanResponse{Bean: grpc.BeanFromModel(bean)}), nil
}

func (b *BeanServer) AddBean(ctx context.Context, request *connect.Request[api.AddBeanRequest]) (*connect.Response[api.AddBeanResponse], error) {
	bean, err := grpc.BeanToModel(request.Msg.GetBean())
	if err != nil {
		return nil, err
	}

	added, err := b.beanRepository.AddBean(ctx, bean)
	if err != nil {
		return nil, err
	}

	b.logger.Info("added coffee bean", zap.String("id", added.ID), zap.String("roaster", added.Roaster), zap.String("name", added.Name))

	return connect.NewResponse(&api.AddBeanResponse{Bean: grpc.BeanFromModel(added)}), nil
}

func (b *BeanServer) UpdateBean(ctx context.Context, request *connect.Request[api.UpdateBeanRequest]) (*connect.Response[api.UpdateBeanResponse], error) {
	id, err := requireID(request.Msg.GetId())
	if err != nil {
		return nil, err
	}

	updated, err := b.beanRepository.UpdateBean(ctx, id, grpc.BeanUpdateToModel(request.Msg.GetUpdates()))
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.UpdateBeanResponse{Bean: grpc.BeanFromModel(updated)}), nil
}

func (b *BeanServer) DeleteBean(ctx context.Context, request *connect.Request[api.DeleteBeanRequest]) (*connect.Response[api.DeleteBeanResponse], error) {
	id, err := requireID(request.Msg.GetId())
	if err != nil {
		return nil, err
	}

	if err = b.beanRepository.DeleteBean(ctx, id); err != nil {
		return nil, err
	}

	b.logger.Info("deleted coffee bean", zap.String("id", id))

	return connect.NewResponse(&api.DeleteBeanResponse{}), nil
}

func (b *BeanServer) RecordPurchase(ctx context.Context, request *connect.Request[api.RecordPurchaseRequest]) (*connect.Response[api.RecordPurchaseResponse], error) {
	id, err := requireID(request.Msg.GetId())
	if err != nil {
		return nil, err
	}

	bean, err := b.beanRepository.IncrementPurchaseCount(ctx, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.RecordPurchaseResponse{Bean: grpc.BeanFromModel(bean)}), nil
}

func (b *BeanServer) ListPurchaseHistory(ctx context.Context, _ *connect.Request[api.ListPurchaseHistoryRequest]) (*connect.Response[api.ListPurchaseHistoryResponse], error) {
	beans, err := b.beanRepository.ListBeans(ctx)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.ListPurchaseHistoryResponse{Beans: grpc.BeansFromModel(collection.Newest(beans))}), nil
}

func requireID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: id is required", model.ErrValidation)
	}

	return id, nil
}
