package recipient

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

type Recipient struct {
	repository Repository
}

func New(repository Repository) *Recipient {
	return &Recipient{
		repository: repository,
	}
}

func (s *Recipient) CreateRecipient(ctx context.Context, recipientModify entities.RecipientModify) (int64, error) {
	if recipientModify.Name == nil ||
		recipientModify.Street == nil ||
		recipientModify.Number == nil ||
		recipientModify.City == nil ||
		recipientModify.State == nil ||
		recipientModify.ZipCode == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*recipientModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidZipCode(*recipientModify.ZipCode) {
		return 0, ErrInvalidZipCode
	}

	id, err := s.repository.Create(ctx, recipientModify)
	if err != nil {
		return 0, fmt.Errorf("create recipient: %w", err)
	}

	return id, nil
}

func (s *Recipient) UpdateRecipient(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error) {
	if recipientModify.Name == nil &&
		recipientModify.Street == nil &&
		recipientModify.Number == nil &&
		recipientModify.Complement == nil &&
		recipientModify.City == nil &&
		recipientModify.State == nil &&
		recipientModify.ZipCode == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if recipientModify.Name != nil && !isValidName(*recipientModify.Name) {
		return nil, ErrInvalidName
	}
	if recipientModify.ZipCode != nil && !isValidZipCode(*recipientModify.ZipCode) {
		return nil, ErrInvalidZipCode
	}

	recipient, err := s.repository.Update(ctx, recipientModify)
	if err != nil {
		return nil, fmt.Errorf("update recipient: %w", err)
	}
	return recipient, nil
}

func (s *Recipient) GetRecipient(ctx context.Context, id int64) (*entities.Recipient, error) {
	recipient, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipient: %w", err)
	}

	return recipient, nil
}

func (s *Recipient) GetRecipients(ctx context.Context) ([]entities.Recipient, error) {
	recipients, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get recipients: %w", err)
	}

	return recipients, nil
}

func (s *Recipient) DeleteRecipient(ctx context.Context, id int64) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete recipient: %w", err)
	}
	return nil
}
