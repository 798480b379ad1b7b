package delivery_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"logistics/internal/handlers/rest/dto"
	"logistics/internal/service/delivery"
	"logistics/internal/service/deliveryman"
	"logistics/internal/service/recipient"
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

	var deliveryUpdateDTO dto.DeliveryUpdate
	err = json.NewDecoder(r.Body).Decode(&deliveryUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateDelivery(
		r.Context(),
		id,
		deliveryUpdateDTO.Product,
		deliveryUpdateDTO.RecipientID,
		deliveryUpdateDTO.DeliverymanID,
	)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidProduct):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound),
			errors.Is(err, recipient.ErrRecipientNotFound),
			errors.Is(err, deliveryman.ErrDeliverymanNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrDeliveryAlreadyStarted):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Delivery{
		ID:            updated.ID,
		Product:       updated.Product,
		RecipientID:   updated.RecipientID,
		DeliverymanID: updated.DeliverymanID,
		Status:        updated.Status().String(),
		StartDate:     updated.StartDate,
		EndDate:       updated.EndDate,
		CanceledAt:    updated.CanceledAt,
		SignatureID:   updated.SignatureID,
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
