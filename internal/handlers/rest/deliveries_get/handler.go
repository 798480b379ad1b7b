package deliveries_get

import (
	"encoding/json"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/handlers/rest/dto"
	"logistics/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliveryEntities, err := h.service.GetDeliveries(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	deliveryDTOs := make([]dto.DeliveryInfo, len(deliveryEntities))
	for i, deliveryEntity := range deliveryEntities {
		deliveryDTOs[i] = toDeliveryInfoDTO(deliveryEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(deliveryDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDeliveryInfoDTO(info entities.DeliveryInfo) dto.DeliveryInfo {
	res := dto.DeliveryInfo{
		Delivery: dto.Delivery{
			ID:            info.ID,
			Product:       info.Product,
			RecipientID:   info.RecipientID,
			DeliverymanID: info.DeliverymanID,
			Status:        info.Status().String(),
			StartDate:     info.StartDate,
			EndDate:       info.EndDate,
			CanceledAt:    info.CanceledAt,
			SignatureID:   info.SignatureID,
		},
		Recipient: dto.Recipient{
			ID:         info.Recipient.ID,
			Name:       info.Recipient.Name,
			Street:     info.Recipient.Street,
			Number:     info.Recipient.Number,
			Complement: info.Recipient.Complement,
			City:       info.Recipient.City,
			State:      info.Recipient.State,
			ZipCode:    info.Recipient.ZipCode,
		},
		Deliveryman: dto.Deliveryman{
			ID:       info.Deliveryman.ID,
			Name:     info.Deliveryman.Name,
			Email:    info.Deliveryman.Email,
			AvatarID: info.Deliveryman.AvatarID,
		},
	}
	if info.Signature != nil {
		res.Signature = &dto.File{
			ID:   info.Signature.ID,
			Name: info.Signature.Name,
			Path: info.Signature.Path,
		}
	}
	return res
}
