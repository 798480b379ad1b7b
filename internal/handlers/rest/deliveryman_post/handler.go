package deliveryman_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/handlers/rest/dto"
	"logistics/internal/service/deliveryman"
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
	var deliverymanCreateDTO dto.DeliverymanCreate
	err := json.NewDecoder(r.Body).Decode(&deliverymanCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliverymanModify := entities.DeliverymanModify{
		Name:     &deliverymanCreateDTO.Name,
		Email:    &deliverymanCreateDTO.Email,
		AvatarID: deliverymanCreateDTO.AvatarID,
	}

	id, err := h.service.CreateDeliveryman(r.Context(), deliverymanModify)
	if err != nil {
		switch {
		case errors.Is(err, deliveryman.ErrMissingRequiredFields),
			errors.Is(err, deliveryman.ErrInvalidName),
			errors.Is(err, deliveryman.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deliveryman.ErrEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliverymanCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
