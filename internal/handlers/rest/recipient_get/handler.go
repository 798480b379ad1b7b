package recipient_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"logistics/internal/handlers/rest/dto"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	recipientEntity, err := h.service.GetRecipient(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, recipient.ErrRecipientNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	recipientDTO := dto.Recipient{
		ID:         recipientEntity.ID,
		Name:       recipientEntity.Name,
		Street:     recipientEntity.Street,
		Number:     recipientEntity.Number,
		Complement: recipientEntity.Complement,
		City:       recipientEntity.City,
		State:      recipientEntity.State,
		ZipCode:    recipientEntity.ZipCode,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(recipientDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
