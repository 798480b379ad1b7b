package deliveryman_delivery_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"logistics/internal/entities"
	"logistics/internal/handlers/rest/dto"
	"logistics/internal/service/delivery"
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
	vars := mux.Vars(r)

	deliverymanID, err := strconv.ParseInt(vars["deliverymanId"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.DeliverymanDeliveryUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Ровно одно из двух действий: взятие (start_date) или
	// завершение (end_date). Ни одного или оба сразу — ошибка клиента.
	switch {
	case updateDTO.StartDate != nil && updateDTO.EndDate == nil:
		if updateDTO.SignatureID != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	case updateDTO.EndDate != nil && updateDTO.StartDate == nil:
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updated *entities.Delivery
	if updateDTO.StartDate != nil {
		updated, err = h.service.RecordWithdrawal(r.Context(), deliverymanID, deliveryID, *updateDTO.StartDate)
	} else {
		updated, err = h.service.RecordCompletion(r.Context(), deliverymanID, deliveryID, *updateDTO.EndDate, updateDTO.SignatureID)
	}
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrOutsideWithdrawalWindow),
			errors.Is(err, delivery.ErrDailyQuotaExceeded),
			errors.Is(err, delivery.ErrWithdrawalNotFound),
			errors.Is(err, delivery.ErrCompletionBeforeWithdrawal):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound),
			errors.Is(err, deliveryman.ErrDeliverymanNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrDeliveryCanceled),
			errors.Is(err, delivery.ErrAlreadyWithdrawn):
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
