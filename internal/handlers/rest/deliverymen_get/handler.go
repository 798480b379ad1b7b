package deliverymen_get

import (
	"encoding/json"
	"net/http"
	"strconv"

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
	page := int64(1)
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		var err error
		page, err = strconv.ParseInt(pageStr, 10, 64)
		if err != nil || page < 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	deliverymanPage, err := h.service.GetDeliverymen(r.Context(), page)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.DeliverymanPage{
		Deliverymen: make([]dto.Deliveryman, len(deliverymanPage.Deliverymen)),
		LastPage:    deliverymanPage.LastPage,
	}
	for i, deliverymanEntity := range deliverymanPage.Deliverymen {
		response.Deliverymen[i] = dto.Deliveryman{
			ID:       deliverymanEntity.ID,
			Name:     deliverymanEntity.Name,
			Email:    deliverymanEntity.Email,
			AvatarID: deliverymanEntity.AvatarID,
		}
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
