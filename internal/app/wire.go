//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	notificationGateway "logistics/internal/gateway/kafka/notification"
	"logistics/internal/handlers/rest/deliveries_get"
	"logistics/internal/handlers/rest/delivery_delete"
	"logistics/internal/handlers/rest/delivery_get"
	"logistics/internal/handlers/rest/delivery_post"
	"logistics/internal/handlers/rest/delivery_problems_get"
	"logistics/internal/handlers/rest/delivery_problems_post"
	"logistics/internal/handlers/rest/delivery_put"
	"logistics/internal/handlers/rest/deliveryman_deliveries_get"
	"logistics/internal/handlers/rest/deliveryman_delete"
	"logistics/internal/handlers/rest/deliveryman_delivery_put"
	"logistics/internal/handlers/rest/deliveryman_get"
	"logistics/internal/handlers/rest/deliveryman_post"
	"logistics/internal/handlers/rest/deliveryman_put"
	"logistics/internal/handlers/rest/deliverymen_get"
	"logistics/internal/handlers/rest/problem_cancel_delivery_delete"
	"logistics/internal/handlers/rest/problems_pending_get"
	"logistics/internal/handlers/rest/recipient_delete"
	"logistics/internal/handlers/rest/recipient_get"
	"logistics/internal/handlers/rest/recipient_post"
	"logistics/internal/handlers/rest/recipient_put"
	"logistics/internal/handlers/rest/recipients_get"
	"logistics/internal/handlers/tasks/overdue_deliveries"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/mailer"

	deliveryRepo "logistics/internal/repository/delivery"
	deliverymanRepo "logistics/internal/repository/deliveryman"
	problemRepo "logistics/internal/repository/problem"
	recipientRepo "logistics/internal/repository/recipient"
	deliveryService "logistics/internal/service/delivery"
	deliverymanService "logistics/internal/service/deliveryman"
	problemService "logistics/internal/service/problem"
	recipientService "logistics/internal/service/recipient"

	"logistics/pkg/background"
	"logistics/pkg/logger"
	"logistics/pkg/querier"
	"logistics/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OverdueMonitorInterval time.Duration
)

type Application struct {
	ServiceDelivery    ServiceDelivery
	ServiceProblem     ServiceProblem
	ServiceDeliveryman ServiceDeliveryman
	ServiceRecipient   ServiceRecipient
	BackgroundWorkers  *background.Worker
}

type ServiceDelivery interface {
	delivery_post.Service
	deliveries_get.Service
	delivery_get.Service
	delivery_put.Service
	delivery_delete.Service
	deliveryman_deliveries_get.Service
	deliveryman_delivery_put.Service
}

type ServiceProblem interface {
	delivery_problems_post.Service
	delivery_problems_get.Service
	problems_pending_get.Service
	problem_cancel_delivery_delete.Service
}

type ServiceDeliveryman interface {
	deliveryman_post.Service
	deliverymen_get.Service
	deliveryman_get.Service
	deliveryman_put.Service
	deliveryman_delete.Service
}

type ServiceRecipient interface {
	recipient_post.Service
	recipients_get.Service
	recipient_get.Service
	recipient_put.Service
	recipient_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOverdueMonitorInterval,

		provideDeliveryRepository,
		provideDeliverymanRepository,
		provideRecipientRepository,
		provideProblemRepository,

		provideNotificationGateway,

		provideServiceDeliveryman,
		provideServiceRecipient,
		provideServiceDelivery,
		provideServiceProblem,

		provideOverdueDeliveriesTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceProblem), new(*problemService.Problem)),
		wire.Bind(new(ServiceDeliveryman), new(*deliverymanService.Deliveryman)),
		wire.Bind(new(ServiceRecipient), new(*recipientService.Recipient)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliverymanService.Repository), new(*deliverymanRepo.Repository)),
		wire.Bind(new(recipientService.Repository), new(*recipientRepo.Repository)),
		wire.Bind(new(problemService.Repository), new(*problemRepo.Repository)),

		wire.Bind(new(deliveryService.DeliverymanService), new(*deliverymanService.Deliveryman)),
		wire.Bind(new(deliveryService.RecipientService), new(*recipientService.Recipient)),
		wire.Bind(new(problemService.DeliveryService), new(*deliveryService.Delivery)),

		wire.Bind(new(deliveryService.NotificationQueue), new(*notificationGateway.NotificationGateway)),
		wire.Bind(new(problemService.NotificationQueue), new(*notificationGateway.NotificationGateway)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(problemService.TxManager), new(*tx.Manager)),

		wire.Bind(new(overdue_deliveries.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

type MailWorkerApp struct {
	Sender mailer.Sender
}

// InitializeMailWorkerApp для почтового воркера (cmd/worker-mail-dispatch)
func InitializeMailWorkerApp(
	log logger.Logger,
	cfg *config.Config,
) (*MailWorkerApp, error) {
	wire.Build(
		provideMailSender,

		wire.Struct(new(MailWorkerApp), "*"),
	)
	return &MailWorkerApp{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideDeliverymanRepository(querier *querier.Querier) *deliverymanRepo.Repository {
	return deliverymanRepo.New(querier)
}

func provideRecipientRepository(querier *querier.Querier) *recipientRepo.Repository {
	return recipientRepo.New(querier)
}

func provideProblemRepository(querier *querier.Querier) *problemRepo.Repository {
	return problemRepo.New(querier)
}

func provideNotificationGateway(producer sarama.SyncProducer, cfg *config.Config) *notificationGateway.NotificationGateway {
	return notificationGateway.New(producer, cfg.Kafka.Topic)
}

func provideServiceDeliveryman(
	repository deliverymanService.Repository,
) *deliverymanService.Deliveryman {
	return deliverymanService.New(repository)
}

func provideServiceRecipient(
	repository recipientService.Repository,
) *recipientService.Recipient {
	return recipientService.New(repository)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	deliverymen deliveryService.DeliverymanService,
	recipients deliveryService.RecipientService,
	queue deliveryService.NotificationQueue,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		deliverymen,
		recipients,
		queue,
		txManager,
	)
}

func provideServiceProblem(
	repository problemService.Repository,
	deliveries problemService.DeliveryService,
	queue problemService.NotificationQueue,
	txManager problemService.TxManager,
) *problemService.Problem {
	return problemService.New(repository, deliveries, queue, txManager)
}

func provideOverdueMonitorInterval(cfg *config.Config) OverdueMonitorInterval {
	return OverdueMonitorInterval(cfg.Tasks.OverdueDeliveriesMonitorInterval)
}

func provideOverdueDeliveriesTask(
	log logger.Logger,
	deliveries overdue_deliveries.Service,
	interval OverdueMonitorInterval,
) *overdue_deliveries.OverdueDeliveries {
	return overdue_deliveries.NewOverdueDeliveries(log, deliveries, time.Duration(interval))
}

func provideTaskList(
	overdueDeliveriesTask *overdue_deliveries.OverdueDeliveries,
) []background.Task {
	return []background.Task{
		overdueDeliveriesTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideMailSender(cfg *config.Config) (mailer.Sender, error) {
	return mailer.NewPostmarkSender(&cfg.Mail)
}
