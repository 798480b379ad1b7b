package deliveryman

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

type Deliveryman struct {
	repository Repository
}

func New(repository Repository) *Deliveryman {
	return &Deliveryman{
		repository: repository,
	}
}

func (s *Deliveryman) CreateDeliveryman(ctx context.Context, deliverymanModify entities.DeliverymanModify) (int64, error) {
	if deliverymanModify.Name == nil || deliverymanModify.Email == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*deliverymanModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidEmail(*deliverymanModify.Email) {
		return 0, ErrInvalidEmail
	}

	// Уникальность email обеспечивает constraint, репозиторий
	// переводит нарушение в ErrEmailTaken.
	id, err := s.repository.Create(ctx, deliverymanModify)
	if err != nil {
		return 0, fmt.Errorf("create deliveryman: %w", err)
	}

	return id, nil
}

func (s *Deliveryman) UpdateDeliveryman(ctx context.Context, deliverymanModify entities.DeliverymanModify) (*entities.Deliveryman, error) {
	if deliverymanModify.Name == nil &&
		deliverymanModify.Email == nil &&
		deliverymanModify.AvatarID == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if deliverymanModify.Name != nil && !isValidName(*deliverymanModify.Name) {
		return nil, ErrInvalidName
	}
	if deliverymanModify.Email != nil && !isValidEmail(*deliverymanModify.Email) {
		return nil, ErrInvalidEmail
	}

	deliveryman, err := s.repository.Update(ctx, deliverymanModify)
	if err != nil {
		return nil, fmt.Errorf("update deliveryman: %w", err)
	}
	return deliveryman, nil
}

func (s *Deliveryman) GetDeliveryman(ctx context.Context, id int64) (*entities.Deliveryman, error) {
	deliveryman, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get deliveryman: %w", err)
	}

	return deliveryman, nil
}

func (s *Deliveryman) GetDeliverymen(ctx context.Context, page int64) (*entities.DeliverymanPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageLimit

	deliverymen, total, err := s.repository.GetPage(ctx, pageLimit, offset)
	if err != nil {
		return nil, fmt.Errorf("get deliverymen: %w", err)
	}

	return &entities.DeliverymanPage{
		Deliverymen: deliverymen,
		LastPage:    lastPage(total, pageLimit),
	}, nil
}

func (s *Deliveryman) DeleteDeliveryman(ctx context.Context, id int64) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete deliveryman: %w", err)
	}
	return nil
}
