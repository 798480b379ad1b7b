package recipient_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var recipientUpdateDTO dto.RecipientUpdate
	err = json.NewDecoder(r.Body).Decode(&recipientUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	recipientModify := entities.RecipientModify{
		ID: &id,
	}

	// Опциональные параметры
	if recipientUpdateDTO.Name != nil {
		recipientModify.Name = recipientUpdateDTO.Name
	}
	if recipientUpdateDTO.Street != nil {
		recipientModify.Street = recipientUpdateDTO.Street
	}
	if recipientUpdateDTO.Number != nil {
		recipientModify.Number = recipientUpdateDTO.Number
	}
	if recipientUpdateDTO.Complement != nil {
		recipientModify.Complement = recipientUpdateDTO.Complement
	}
	if recipientUpdateDTO.City != nil {
		recipientModify.City = recipientUpdateDTO.City
	}
	if recipientUpdateDTO.State != nil {
		recipientModify.State = recipientUpdateDTO.State
	}
	if recipientUpdateDTO.ZipCode != nil {
		recipientModify.ZipCode = recipientUpdateDTO.ZipCode
	}

	res, err := h.service.UpdateRecipient(r.Context(), recipientModify)
	if err != nil {
		switch {
		case errors.Is(err, recipient.ErrMissingRequiredFields),
			errors.Is(err, recipient.ErrInvalidName),
			errors.Is(err, recipient.ErrInvalidZipCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, recipient.ErrRecipientNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Recipient{
		ID:         res.ID,
		Name:       res.Name,
		Street:     res.Street,
		Number:     res.Number,
		Complement: res.Complement,
		City:       res.City,
		State:      res.State,
		ZipCode:    res.ZipCode,
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
