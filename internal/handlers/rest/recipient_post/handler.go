package recipient_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var recipientCreateDTO dto.RecipientCreate
	err := json.NewDecoder(r.Body).Decode(&recipientCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	recipientModify := entities.RecipientModify{
		Name:       &recipientCreateDTO.Name,
		Street:     &recipientCreateDTO.Street,
		Number:     &recipientCreateDTO.Number,
		Complement: recipientCreateDTO.Complement,
		City:       &recipientCreateDTO.City,
		State:      &recipientCreateDTO.State,
		ZipCode:    &recipientCreateDTO.ZipCode,
	}

	id, err := h.service.CreateRecipient(r.Context(), recipientModify)
	if err != nil {
		switch {
		case errors.Is(err, recipient.ErrMissingRequiredFields),
			errors.Is(err, recipient.ErrInvalidName),
			errors.Is(err, recipient.ErrInvalidZipCode):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RecipientCreateResponse{
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
