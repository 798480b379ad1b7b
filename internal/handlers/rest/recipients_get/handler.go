package recipients_get

import (
	"encoding/json"
	"net/http"

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
	recipientEntities, err := h.service.GetRecipients(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	recipientDTOs := make([]dto.Recipient, len(recipientEntities))
	for i, recipientEntity := range recipientEntities {
		recipientDTOs[i] = dto.Recipient{
			ID:         recipientEntity.ID,
			Name:       recipientEntity.Name,
			Street:     recipientEntity.Street,
			Number:     recipientEntity.Number,
			Complement: recipientEntity.Complement,
			City:       recipientEntity.City,
			State:      recipientEntity.State,
			ZipCode:    recipientEntity.ZipCode,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(recipientDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
