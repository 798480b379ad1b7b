package deliveryman_deliveries_get

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
	deliverymanID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page := int64(1)
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err = strconv.ParseInt(pageStr, 10, 64)
		if err != nil || page < 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	delivered := false
	if deliveredStr := r.URL.Query().Get("delivered"); deliveredStr != "" {
		delivered, err = strconv.ParseBool(deliveredStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	deliveryPage, err := h.service.GetDeliverymanDeliveries(r.Context(), deliverymanID, delivered, page)
	if err != nil {
		switch {
		case errors.Is(err, deliveryman.ErrDeliverymanNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryPage{
		Deliveries: make([]dto.DeliveryInfo, len(deliveryPage.Deliveries)),
		LastPage:   deliveryPage.LastPage,
	}
	for i, deliveryEntity := range deliveryPage.Deliveries {
		response.Deliveries[i] = toDeliveryInfoDTO(deliveryEntity)
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
