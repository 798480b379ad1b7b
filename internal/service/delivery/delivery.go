package delivery

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/entities"
)

// Сколько доставка может висеть в статусе withdrawn до того,
// как попадёт в метрику просроченных.
const overdueAfter = 24 * time.Hour

type Delivery struct {
	repository         Repository
	deliverymanService DeliverymanService
	recipientService   RecipientService
	queue              NotificationQueue
	txManager          TxManager
}

func New(
	repository Repository,
	deliverymanService DeliverymanService,
	recipientService RecipientService,
	queue NotificationQueue,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:         repository,
		deliverymanService: deliverymanService,
		recipientService:   recipientService,
		queue:              queue,
		txManager:          txManager,
	}
}

// CreateDelivery регистрирует новую доставку и ставит в очередь
// письмо курьеру. Ошибка постановки в очередь отдаётся вызывающему:
// запись уже в базе, молча потерять письмо нельзя.
func (d *Delivery) CreateDelivery(ctx context.Context, product string, recipientID, deliverymanID int64) (*entities.Delivery, error) {
	if recipientID == 0 || deliverymanID == 0 {
		return nil, ErrMissingRequiredFields
	}
	if !isValidProduct(product) {
		return nil, ErrInvalidProduct
	}

	recipient, err := d.recipientService.GetRecipient(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("get recipient: %w", err)
	}

	deliveryman, err := d.deliverymanService.GetDeliveryman(ctx, deliverymanID)
	if err != nil {
		return nil, fmt.Errorf("get deliveryman: %w", err)
	}

	deliveryModify := entities.DeliveryModify{
		Product:       &product,
		RecipientID:   &recipientID,
		DeliverymanID: &deliverymanID,
	}

	created, err := d.repository.Create(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	job := entities.CreationMailJob{
		Deliveryman: *deliveryman,
		Recipient:   *recipient,
		Product:     product,
	}
	err = d.queue.Enqueue(ctx, entities.JobCreationMail, job)
	if err != nil {
		return nil, fmt.Errorf("enqueue creation mail: %w", err)
	}

	return created, nil
}

func (d *Delivery) GetDeliveries(ctx context.Context) ([]entities.DeliveryInfo, error) {
	deliveries, err := d.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get deliveries: %w", err)
	}
	return deliveries, nil
}

func (d *Delivery) GetDelivery(ctx context.Context, id int64) (*entities.DeliveryInfo, error) {
	deliveryInfo, err := d.repository.GetInfoByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return deliveryInfo, nil
}

// UpdateDelivery — административное редактирование. Доставка в пути
// неизменяема, разрешено менять только product и ссылки.
func (d *Delivery) UpdateDelivery(ctx context.Context, id int64, product string, recipientID, deliverymanID int64) (*entities.Delivery, error) {
	if recipientID == 0 || deliverymanID == 0 {
		return nil, ErrMissingRequiredFields
	}
	if !isValidProduct(product) {
		return nil, ErrInvalidProduct
	}

	if _, err := d.recipientService.GetRecipient(ctx, recipientID); err != nil {
		return nil, fmt.Errorf("get recipient: %w", err)
	}
	if _, err := d.deliverymanService.GetDeliveryman(ctx, deliverymanID); err != nil {
		return nil, fmt.Errorf("get deliveryman: %w", err)
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if current.StartDate != nil {
			return ErrDeliveryAlreadyStarted
		}

		deliveryModify := entities.DeliveryModify{
			ID:            &id,
			Product:       &product,
			RecipientID:   &recipientID,
			DeliverymanID: &deliverymanID,
		}

		updated, err = d.repository.Update(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("update delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (d *Delivery) DeleteDelivery(ctx context.Context, id int64) error {
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if current.StartDate != nil {
			return ErrDeliveryAlreadyStarted
		}

		err = d.repository.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete delivery: %w", err)
		}
		return nil
	})
	return err
}

func (d *Delivery) GetDeliverymanDeliveries(ctx context.Context, deliverymanID int64, delivered bool, page int64) (*entities.DeliveryPage, error) {
	if _, err := d.deliverymanService.GetDeliveryman(ctx, deliverymanID); err != nil {
		return nil, fmt.Errorf("get deliveryman: %w", err)
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageLimit

	deliveries, total, err := d.repository.GetByDeliveryman(ctx, deliverymanID, delivered, pageLimit, offset)
	if err != nil {
		return nil, fmt.Errorf("get deliveryman deliveries: %w", err)
	}

	return &entities.DeliveryPage{
		Deliveries: deliveries,
		LastPage:   lastPage(total, pageLimit),
	}, nil
}

// RecordWithdrawal фиксирует выдачу товара курьеру (start_date).
// Проверка дневной квоты и запись выполняются в одной serializable
// транзакции: две конкурентные выдачи не могут обе пройти подсчёт.
func (d *Delivery) RecordWithdrawal(ctx context.Context, deliverymanID, deliveryID int64, startDate time.Time) (*entities.Delivery, error) {
	if _, err := d.deliverymanService.GetDeliveryman(ctx, deliverymanID); err != nil {
		return nil, fmt.Errorf("get deliveryman: %w", err)
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		switch current.Status() {
		case entities.DeliveryCanceled:
			return ErrDeliveryCanceled
		case entities.DeliveryWithdrawn, entities.DeliveryDelivered:
			return ErrAlreadyWithdrawn
		case entities.DeliveryPending:
		}

		if !isWithinWithdrawalWindow(startDate) {
			return ErrOutsideWithdrawalWindow
		}

		// Квота считается за календарный день заявленной даты выдачи
		// в UTC, а не за текущие сутки сервера.
		from, to := dayBounds(startDate.UTC())
		count, err := d.repository.CountWithdrawalsBetween(ctx, deliverymanID, from, to)
		if err != nil {
			return fmt.Errorf("count withdrawals: %w", err)
		}
		if count >= dailyWithdrawalQuota {
			return ErrDailyQuotaExceeded
		}

		deliveryModify := entities.DeliveryModify{
			ID:        &deliveryID,
			StartDate: &startDate,
		}

		updated, err = d.repository.Update(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("record withdrawal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RecordCompletion фиксирует вручение товара получателю
// (end_date + подпись).
func (d *Delivery) RecordCompletion(ctx context.Context, deliverymanID, deliveryID int64, endDate time.Time, signatureID *int64) (*entities.Delivery, error) {
	if _, err := d.deliverymanService.GetDeliveryman(ctx, deliverymanID); err != nil {
		return nil, fmt.Errorf("get deliveryman: %w", err)
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if current.Status() == entities.DeliveryCanceled {
			return ErrDeliveryCanceled
		}
		if current.StartDate == nil {
			return ErrWithdrawalNotFound
		}
		if endDate.Before(*current.StartDate) {
			return ErrCompletionBeforeWithdrawal
		}

		deliveryModify := entities.DeliveryModify{
			ID:          &deliveryID,
			EndDate:     &endDate,
			SignatureID: signatureID,
		}

		updated, err = d.repository.Update(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("record completion: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MarkDeliveryCanceled проставляет canceled_at. Единственный вызывающий —
// обработчик проблем; отмена необратима, повторная отклоняется.
func (d *Delivery) MarkDeliveryCanceled(ctx context.Context, id int64, canceledAt time.Time) (*entities.Delivery, error) {
	current, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	if current.CanceledAt != nil {
		return nil, ErrDeliveryCanceled
	}

	deliveryModify := entities.DeliveryModify{
		ID:         &id,
		CanceledAt: &canceledAt,
	}

	updated, err := d.repository.Update(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("mark delivery canceled: %w", err)
	}
	return updated, nil
}

// CountOverdueDeliveries считает выданные, но не вручённые и не
// отменённые доставки старше overdueAfter. Используется фоновым
// монитором.
func (d *Delivery) CountOverdueDeliveries(ctx context.Context) (int64, error) {
	count, err := d.repository.CountWithdrawnOlderThan(ctx, time.Now().UTC().Add(-overdueAfter))
	if err != nil {
		return 0, fmt.Errorf("count overdue deliveries: %w", err)
	}
	return count, nil
}
