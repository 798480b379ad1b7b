package delivery

import "logistics/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:            d.ID,
		Product:       d.Product,
		RecipientID:   d.RecipientID,
		DeliverymanID: d.DeliverymanID,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		CanceledAt:    d.CanceledAt,
		SignatureID:   d.SignatureID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ToInfoDomain(d *DeliveryInfoDB) *entities.DeliveryInfo {
	if d == nil {
		return nil
	}

	info := &entities.DeliveryInfo{
		Delivery: *ToDomain(&d.DeliveryDB),
		Recipient: entities.Recipient{
			ID:         d.RecipientID,
			Name:       d.RecipientName,
			Street:     d.RecipientStreet,
			Number:     d.RecipientNumber,
			Complement: d.RecipientComplement,
			City:       d.RecipientCity,
			State:      d.RecipientState,
			ZipCode:    d.RecipientZipCode,
		},
		Deliveryman: entities.Deliveryman{
			ID:       d.DeliverymanID,
			Name:     d.DeliverymanName,
			Email:    d.DeliverymanEmail,
			AvatarID: d.DeliverymanAvatarID,
		},
	}

	if d.SignatureFileID != nil {
		info.Signature = &entities.File{
			ID:   *d.SignatureFileID,
			Name: derefString(d.SignatureName),
			Path: derefString(d.SignaturePath),
			URL:  derefString(d.SignatureURL),
		}
	}

	return info
}

func ToInfoDomainList(models []DeliveryInfoDB) []entities.DeliveryInfo {
	infos := make([]entities.DeliveryInfo, 0, len(models))
	for i := range models {
		infos = append(infos, *ToInfoDomain(&models[i]))
	}
	return infos
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	return &DeliveryModifyDB{
		ID:            d.ID,
		Product:       d.Product,
		RecipientID:   d.RecipientID,
		DeliverymanID: d.DeliverymanID,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		CanceledAt:    d.CanceledAt,
		SignatureID:   d.SignatureID,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
