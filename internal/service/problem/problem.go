package problem

import (
	"context"
	"fmt"
	"strings"
	"time"

	"logistics/internal/entities"
)

const pageLimit = 5

type Problem struct {
	repository      Repository
	deliveryService DeliveryService
	queue           NotificationQueue
	txManager       TxManager
}

func New(
	repository Repository,
	deliveryService DeliveryService,
	queue NotificationQueue,
	txManager TxManager,
) *Problem {
	return &Problem{
		repository:      repository,
		deliveryService: deliveryService,
		queue:           queue,
		txManager:       txManager,
	}
}

// ReportProblem регистрирует жалобу по доставке.
// Саму доставку не трогает: отмена — отдельная операция оператора.
func (p *Problem) ReportProblem(ctx context.Context, deliveryID int64, description string) (*entities.DeliveryProblem, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrInvalidDescription
	}

	if _, err := p.deliveryService.GetDelivery(ctx, deliveryID); err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	created, err := p.repository.Create(ctx, deliveryID, description)
	if err != nil {
		return nil, fmt.Errorf("create delivery problem: %w", err)
	}

	return created, nil
}

// GetPendingProblems возвращает страницу проблем, чьи доставки ещё
// не отменены. Сортировка по delivery_id, как в выдаче операторской
// панели.
func (p *Problem) GetPendingProblems(ctx context.Context, page int64) (*entities.PendingProblemPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageLimit

	problems, total, err := p.repository.GetPendingPage(ctx, pageLimit, offset)
	if err != nil {
		return nil, fmt.Errorf("get pending problems: %w", err)
	}

	return &entities.PendingProblemPage{
		Problems: problems,
		LastPage: lastPage(total, pageLimit),
	}, nil
}

func (p *Problem) GetDeliveryProblems(ctx context.Context, deliveryID int64) ([]entities.DeliveryProblem, error) {
	if _, err := p.deliveryService.GetDelivery(ctx, deliveryID); err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	problems, err := p.repository.GetByDelivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery problems: %w", err)
	}

	return problems, nil
}

// CancelDelivery отменяет доставку по зарегистрированной проблеме и
// ставит в очередь письмо об отмене. Повторная отмена отклоняется:
// двойное письмо курьеру хуже, чем 409 оператору.
func (p *Problem) CancelDelivery(ctx context.Context, problemID int64) (*entities.DeliveryInfo, error) {
	var (
		deliveryInfo *entities.DeliveryInfo
		problem      *entities.DeliveryProblem
	)

	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		problem, err = p.repository.GetByID(ctx, problemID)
		if err != nil {
			return fmt.Errorf("get delivery problem: %w", err)
		}

		// Защита от висячей ссылки: доставку могли удалить до старта.
		deliveryInfo, err = p.deliveryService.GetDelivery(ctx, problem.DeliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if deliveryInfo.CanceledAt != nil {
			return ErrDeliveryAlreadyCanceled
		}

		canceledAt := time.Now().UTC()
		canceled, err := p.deliveryService.MarkDeliveryCanceled(ctx, problem.DeliveryID, canceledAt)
		if err != nil {
			return fmt.Errorf("mark delivery canceled: %w", err)
		}
		deliveryInfo.Delivery = *canceled

		return nil
	})
	if err != nil {
		return nil, err
	}

	job := entities.CancellationMailJob{
		Delivery: *deliveryInfo,
		Problem:  *problem,
	}
	err = p.queue.Enqueue(ctx, entities.JobCancellationMail, job)
	if err != nil {
		return nil, fmt.Errorf("enqueue cancellation mail: %w", err)
	}

	return deliveryInfo, nil
}

func lastPage(total, limit int64) int64 {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
