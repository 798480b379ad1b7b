package problem

import "logistics/internal/entities"

func ToDomain(p *DeliveryProblemDB) *entities.DeliveryProblem {
	if p == nil {
		return nil
	}
	return &entities.DeliveryProblem{
		ID:          p.ID,
		DeliveryID:  p.DeliveryID,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func ToDomainList(models []DeliveryProblemDB) []entities.DeliveryProblem {
	problems := make([]entities.DeliveryProblem, 0, len(models))
	for i := range models {
		problems = append(problems, *ToDomain(&models[i]))
	}
	return problems
}

func ToPendingDomain(p *PendingProblemDB) *entities.PendingProblem {
	if p == nil {
		return nil
	}
	return &entities.PendingProblem{
		Problem: *ToDomain(&p.DeliveryProblemDB),
		Delivery: entities.Delivery{
			ID:            p.DeliveryID,
			Product:       p.Product,
			RecipientID:   p.RecipientID,
			DeliverymanID: p.DeliverymanID,
			StartDate:     p.DeliveryStartDate,
			EndDate:       p.DeliveryEndDate,
			CanceledAt:    p.DeliveryCanceledAt,
			SignatureID:   p.DeliverySignatureID,
		},
	}
}

func ToPendingDomainList(models []PendingProblemDB) []entities.PendingProblem {
	problems := make([]entities.PendingProblem, 0, len(models))
	for i := range models {
		problems = append(problems, *ToPendingDomain(&models[i]))
	}
	return problems
}
