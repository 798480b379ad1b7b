package deliveryman

import "logistics/internal/entities"

func ToDomain(d *DeliverymanDB) *entities.Deliveryman {
	if d == nil {
		return nil
	}
	return &entities.Deliveryman{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		AvatarID:  d.AvatarID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ToDomainList(models []DeliverymanDB) []entities.Deliveryman {
	deliverymen := make([]entities.Deliveryman, 0, len(models))
	for i := range models {
		deliverymen = append(deliverymen, *ToDomain(&models[i]))
	}
	return deliverymen
}

func FromDomainModify(d *entities.DeliverymanModify) *DeliverymanModifyDB {
	if d == nil {
		return nil
	}
	return &DeliverymanModifyDB{
		ID:       d.ID,
		Name:     d.Name,
		Email:    d.Email,
		AvatarID: d.AvatarID,
	}
}
