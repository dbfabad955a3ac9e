package app

import (
	"context"
	"time"

	notificationGateway "meddelivery/internal/gateway/kafka/notification"
	delivery_assign_post "meddelivery/internal/handlers/rest/delivery_assign_post"
	delivery_status_put "meddelivery/internal/handlers/rest/delivery_status_put"
	driver_delete_post "meddelivery/internal/handlers/rest/driver_delete_post"
	driver_get "meddelivery/internal/handlers/rest/driver_get"
	driver_post "meddelivery/internal/handlers/rest/driver_post"
	driver_put "meddelivery/internal/handlers/rest/driver_put"
	drivers_get "meddelivery/internal/handlers/rest/drivers_get"
	order_cancel_post "meddelivery/internal/handlers/rest/order_cancel_post"
	order_get "meddelivery/internal/handlers/rest/order_get"
	order_post "meddelivery/internal/handlers/rest/order_post"
	order_status_put "meddelivery/internal/handlers/rest/order_status_put"
	request_assign_post "meddelivery/internal/handlers/rest/request_assign_post"
	request_get "meddelivery/internal/handlers/rest/request_get"
	request_post "meddelivery/internal/handlers/rest/request_post"
	request_status_put "meddelivery/internal/handlers/rest/request_status_put"
	track_get "meddelivery/internal/handlers/rest/track_get"
	"meddelivery/internal/handlers/tasks/availability_reconcile"
	"meddelivery/internal/pkg/config"
	"meddelivery/internal/pkg/factory/delivery_eta"
	"meddelivery/internal/pkg/factory/payment_handle"

	deliveryRepo "meddelivery/internal/repository/delivery"
	driverRepo "meddelivery/internal/repository/driver"
	historyRepo "meddelivery/internal/repository/history"
	orderRepo "meddelivery/internal/repository/order"
	requestRepo "meddelivery/internal/repository/request"
	assignmentService "meddelivery/internal/service/assignment"
	driverService "meddelivery/internal/service/driver"
	orderService "meddelivery/internal/service/order"
	requestService "meddelivery/internal/service/request"

	"meddelivery/pkg/background"
	"meddelivery/pkg/logger"
	"meddelivery/pkg/querier"
	"meddelivery/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceRequest    ServiceRequest
	ServiceAssignment ServiceAssignment
	ServiceDriver     ServiceDriver
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_get.Service
	order_post.Service
	order_status_put.Service
	order_cancel_post.Service
}

type ServiceRequest interface {
	request_get.Service
	request_post.Service
	request_status_put.Service
	track_get.Service
}

type ServiceAssignment interface {
	delivery_assign_post.Service
	request_assign_post.Service
	delivery_status_put.Service
}

type ServiceDriver interface {
	driver_get.Service
	drivers_get.Service
	driver_post.Service
	driver_put.Service
	driver_delete_post.Service
}

type KafkaWorkerApp struct {
	HandlerFactory *payment_handle.StatusHandlerFactory
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideRequestRepository(querier *querier.Querier) *requestRepo.Repository {
	return requestRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideNotificationGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *notificationGateway.Gateway {
	return notificationGateway.New(log, producer, cfg.Kafka.NotificationsTopic)
}

func provideETAFactory(cfg *config.Config) *delivery_eta.ETAFactory {
	return delivery_eta.New(cfg.Delivery.ETAWindow)
}

func provideServiceOrder(
	repository orderService.Repository,
	history orderService.HistoryRepository,
	deliveryService orderService.DeliveryService,
	notifier orderService.Notifier,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, history, deliveryService, notifier, txManager)
}

func provideServiceRequest(
	repository requestService.Repository,
	history requestService.HistoryRepository,
	codes requestService.CodeGenerator,
	notifier requestService.Notifier,
	txManager requestService.TxManager,
) *requestService.Service {
	return requestService.New(repository, history, codes, notifier, txManager)
}

func provideServiceAssignment(
	orders assignmentService.OrderRepository,
	requests assignmentService.RequestRepository,
	deliveries assignmentService.DeliveryRepository,
	drivers assignmentService.DriverRepository,
	history assignmentService.HistoryRepository,
	etaFactory assignmentService.ETAFactory,
	notifier assignmentService.Notifier,
	txManager assignmentService.TxManager,
) *assignmentService.Assignment {
	return assignmentService.New(
		orders,
		requests,
		deliveries,
		drivers,
		history,
		etaFactory,
		notifier,
		txManager,
	)
}

func provideServiceDriver(
	repository driverService.Repository,
	txManager driverService.TxManager,
) *driverService.Driver {
	return driverService.New(repository, txManager)
}

func provideStatusHandlerFactory(orderService payment_handle.OrderService) *payment_handle.StatusHandlerFactory {
	return payment_handle.NewStatusHandlerFactory(orderService)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.AvailabilityReconcileInterval)
}

func provideAvailabilityReconcileTask(
	log logger.Logger,
	assignmentService availability_reconcile.Service,
	interval ReconcileInterval,
) *availability_reconcile.AvailabilityReconcile {
	return availability_reconcile.NewAvailabilityReconcile(log, assignmentService, time.Duration(interval))
}

func provideTaskList(
	availabilityReconcileTask *availability_reconcile.AvailabilityReconcile,
) []background.Task {
	return []background.Task{
		availabilityReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
