package deliveryman_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var deliverymanUpdateDTO dto.DeliverymanUpdate
	err = json.NewDecoder(r.Body).Decode(&deliverymanUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliverymanModify := entities.DeliverymanModify{
		ID: &id,
	}

	// Опциональные параметры
	if deliverymanUpdateDTO.Name != nil {
		deliverymanModify.Name = deliverymanUpdateDTO.Name
	}
	if deliverymanUpdateDTO.Email != nil {
		deliverymanModify.Email = deliverymanUpdateDTO.Email
	}
	if deliverymanUpdateDTO.AvatarID != nil {
		deliverymanModify.AvatarID = deliverymanUpdateDTO.AvatarID
	}

	res, err := h.service.UpdateDeliveryman(r.Context(), deliverymanModify)
	if err != nil {
		switch {
		case errors.Is(err, deliveryman.ErrMissingRequiredFields),
			errors.Is(err, deliveryman.ErrInvalidName),
			errors.Is(err, deliveryman.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deliveryman.ErrDeliverymanNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, deliveryman.ErrEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Deliveryman{
		ID:       res.ID,
		Name:     res.Name,
		Email:    res.Email,
		AvatarID: res.AvatarID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
