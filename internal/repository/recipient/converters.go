package recipient

import "logistics/internal/entities"

func ToDomain(r *RecipientDB) *entities.Recipient {
	if r == nil {
		return nil
	}
	return &entities.Recipient{
		ID:         r.ID,
		Name:       r.Name,
		Street:     r.Street,
		Number:     r.Number,
		Complement: r.Complement,
		City:       r.City,
		State:      r.State,
		ZipCode:    r.ZipCode,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func ToDomainList(models []RecipientDB) []entities.Recipient {
	recipients := make([]entities.Recipient, 0, len(models))
	for i := range models {
		recipients = append(recipients, *ToDomain(&models[i]))
	}
	return recipients
}

func FromDomainModify(r *entities.RecipientModify) *RecipientModifyDB {
	if r == nil {
		return nil
	}
	return &RecipientModifyDB{
		ID:         r.ID,
		Name:       r.Name,
		Street:     r.Street,
		Number:     r.Number,
		Complement: r.Complement,
		City:       r.City,
		State:      r.State,
		ZipCode:    r.ZipCode,
	}
}
