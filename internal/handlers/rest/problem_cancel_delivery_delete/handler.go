package problem_cancel_delivery_delete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"logistics/internal/handlers/rest/dto"
	"logistics/internal/service/delivery"
	"logistics/internal/service/problem"
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
	problemID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	canceled, err := h.service.CancelDelivery(r.Context(), problemID)
	if err != nil {
		switch {
		case errors.Is(err, problem.ErrProblemNotFound),
			errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, problem.ErrDeliveryAlreadyCanceled):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Delivery{
		ID:            canceled.ID,
		Product:       canceled.Product,
		RecipientID:   canceled.RecipientID,
		DeliverymanID: canceled.DeliverymanID,
		Status:        canceled.Status().String(),
		StartDate:     canceled.StartDate,
		EndDate:       canceled.EndDate,
		CanceledAt:    canceled.CanceledAt,
		SignatureID:   canceled.SignatureID,
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
