package apiv1connect

import (
	"context"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"

	v1 "droscher.com/BeanJournal/pkg/server/grpc/api/v1"
)

const BeanServiceName = "beanjournal.v1.BeanService"

const (
	BeanServiceListBeansProcedure           = "/beanjournal.v1.BeanService/ListBeans"
	BeanServiceGetBeanProcedure             = "/beanjournal.v1.BeanService/GetBean"
	BeanServiceAddBeanProcedure             = "/beanjournal.v1.BeanService/AddBean"
	BeanServiceUpdateBeanProcedure          = "/beanjournal.v1.BeanService/UpdateBean"
	BeanServiceDeleteBeanProcedure          = "/beanjournal.v1.BeanService/DeleteBean"
	BeanServiceRecordPurchaseProcedure      = "/beanjournal.v1.BeanService/RecordPurchase"
	BeanServiceListPurchaseHistoryProcedure = "/beanjournal.v1.BeanService/ListPurchaseHistory"
)

type BeanServiceClient interface {
	ListBeans(context.Context, *connect.Request[v1.ListBeansRequest]) (*connect.Response[v1.ListBeansResponse], error)
	GetBean(context.Context, *connect.Request[v1.GetBeanRequest]) (*connect.Response[v1.GetBeanResponse], error)
	AddBean(context.Context, *connect.Request[v1.AddBeanRequest]) (*connect.Response[v1.AddBeanResponse], error)
	UpdateBean(context.Context, *connect.Request[v1.UpdateBeanRequest]) (*connect.Response[v1.UpdateBeanResponse], error)
	DeleteBean(context.Context, *connect.Request[v1.DeleteBeanRequest]) (*connect.Response[v1.DeleteBeanResponse], error)
	RecordPurchase(context.Context, *connect.Request[v1.RecordPurchaseRequest]) (*connect.Response[v1.RecordPurchaseResponse], error)
	ListPurchaseHistory(context.Context, *connect.Request[v1.ListPurchaseHistoryRequest]) (*connect.Response[v1.ListPurchaseHistoryResponse], error)
}

// NewBeanServiceClient builds a client for the service hosted at baseURL. It speaks the
// Connect protocol with JSON bodies.
func NewBeanServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BeanServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)

	return &beanServiceClient{
		listBeans:           connect.NewClient[v1.ListBeansRequest, v1.ListBeansResponse](httpClient, baseURL+BeanServiceListBeansProcedure, opts...),
		getBean:             connect.NewClient[v1.GetBeanRequest, v1.GetBeanResponse](httpClient, baseURL+BeanServiceGetBeanProcedure, opts...),
		addBean:             connect.NewClient[v1.AddBeanRequest, v1.AddBeanResponse](httpClient, baseURL+BeanServiceAddBeanProcedure, opts...),
		updateBean:          connect.NewClient[v1.UpdateBeanRequest, v1.UpdateBeanResponse](httpClient, baseURL+BeanServiceUpdateBeanProcedure, opts...),
		deleteBean:          connect.NewClient[v1.DeleteBeanRequest, v1.DeleteBeanResponse](httpClient, baseURL+BeanServiceDeleteBeanProcedure, opts...),
		recordPurchase:      connect.NewClient[v1.RecordPurchaseRequest, v1.RecordPurchaseResponse](httpClient, baseURL+BeanServiceRecordPurchaseProcedure, opts...),
		listPurchaseHistory: connect.NewClient[v1.ListPurchaseHistoryRequest, v1.ListPurchaseHistoryResponse](httpClient, baseURL+BeanServiceListPurchaseHistoryProcedure, opts...),
	}
}

type beanServiceClient struct {
	listBeans           *connect.Client[v1.ListBeansRequest, v1.ListBeansResponse]
	getBean             *connect.Client[v1.GetBeanRequest, v1.GetBeanResponse]
	addBean             *connect.Client[v1.AddBeanRequest, v1.AddBeanResponse]
	updateBean          *connect.Client[v1.UpdateBeanRequest, v1.UpdateBeanResponse]
	deleteBean          *connect.Client[v1.DeleteBeanRequest, v1.DeleteBeanResponse]
	recordPurchase      *connect.Client[v1.RecordPurchaseRequest, v1.RecordPurchaseResponse]
	listPurchaseHistory *connect.Client[v1.ListPurchaseHistoryRequest, v1.ListPurchaseHistoryResponse]
}

func (c *beanServiceClient) ListBeans(ctx context.Context, req *connect.Request[v1.ListBeansRequest]) (*connect.Response[v1.ListBeansResponse], error) {
	return c.listBeans.CallUnary(ctx, req)
}

func (c *beanServiceClient) GetBean(ctx context.Context, req *connect.Request[v1.GetBeanRequest]) (*connect.Response[v1.GetBeanResponse], error) {
	return c.getBean.CallUnary(ctx, req)
}

func (c *beanServiceClient) AddBean(ctx context.Context, req *connect.Request[v1.AddBeanRequest]) (*connect.Response[v1.AddBeanResponse], error) {
	return c.addBean.CallUnary(ctx, req)
}

func (c *beanServiceClient) UpdateBean(ctx context.Context, req *connect.Request[v1.UpdateBeanRequest]) (*connect.Response[v1.UpdateBeanResponse], error) {
	return c.updateBean.CallUnary(ctx, req)
}

func (c *beanServiceClient) DeleteBean(ctx context.Context, req *connect.Request[v1.DeleteBeanRequest]) (*connect.Response[v1.DeleteBeanResponse], error) {
	return c.deleteBean.CallUnary(ctx, req)
}

func (c *beanServiceClient) RecordPurchase(ctx context.Context, req *connect.Request[v1.RecordPurchaseRequest]) (*connect.Response[v1.RecordPurchaseResponse], error) {
	return c.recordPurchase.CallUnary(ctx, req)
}

func (c *beanServiceClient) ListPurchaseHistory(ctx context.Context, req *connect.Request[v1.ListPurchaseHistoryRequest]) (*connect.Response[v1.ListPurchaseHistoryResponse], error) {
	return c.listPurchaseHistory.CallUnary(ctx, req)
}

type BeanServiceHandler interface {
	ListBeans(context.Context, *connect.Request[v1.ListBeansRequest]) (*connect.Response[v1.ListBeansResponse], error)
	GetBean(context.Context, *connect.Request[v1.GetBeanRequest]) (*connect.Response[v1.GetBeanResponse], error)
	AddBean(context.Context, *connect.Request[v1.AddBeanRequest]) (*connect.Response[v1.AddBeanResponse], error)
	UpdateBean(context.Context, *connect.Request[v1.UpdateBeanRequest]) (*connect.Response[v1.UpdateBeanResponse], error)
	DeleteBean(context.Context, *connect.Request[v1.DeleteBeanRequest]) (*connect.Response[v1.DeleteBeanResponse], error)
	RecordPurchase(context.Context, *connect.Request[v1.RecordPurchaseRequest]) (*connect.Response[v1.RecordPurchaseResponse], error)
	ListPurchaseHistory(context.Context, *connect.Request[v1.ListPurchaseHistoryRequest]) (*connect.Response[v1.ListPurchaseHistoryResponse], error)
}

// NewBeanServiceHandler returns the path to mount the service on and its handler.
func NewBeanServiceHandler(svc BeanServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)

	mux := http.NewServeMux()
	mux.Handle(BeanServiceListBeansProcedure, connect.NewUnaryHandler(BeanServiceListBeansProcedure, svc.ListBeans, opts...))
	mux.Handle(BeanServiceGetBeanProcedure, connect.NewUnaryHandler(BeanServiceGetBeanProcedure, svc.GetBean, opts...))
	mux.Handle(BeanServiceAddBeanProcedure, connect.NewUnaryHandler(BeanServiceAddBeanProcedure, svc.AddBean, opts...))
	mux.Handle(BeanServiceUpdateBeanProcedure, connect.NewUnaryHandler(BeanServiceUpdateBeanProcedure, svc.UpdateBean, opts...))
	mux.Handle(BeanServiceDeleteBeanProcedure, connect.NewUnaryHandler(BeanServiceDeleteBeanProcedure, svc.DeleteBean, opts...))
	mux.Handle(BeanServiceRecordPurchaseProcedure, connect.NewUnaryHandler(BeanServiceRecordPurchaseProcedure, svc.RecordPurchase, opts...))
	mux.Handle(BeanServiceListPurchaseHistoryProcedure, connect.NewUnaryHandler(BeanServiceListPurchaseHistoryProcedure, svc.ListPurchaseHistory, opts...))

	return "/" + BeanServiceName + "/", mux
}
