package problems_pending_get

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

	problemPage, err := h.service.GetPendingProblems(r.Context(), page)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.PendingProblemPage{
		Problems: make([]dto.PendingProblem, len(problemPage.Problems)),
		LastPage: problemPage.LastPage,
	}
	for i, pending := range problemPage.Problems {
		response.Problems[i] = dto.PendingProblem{
			Problem: dto.Problem{
				ID:          pending.Problem.ID,
				DeliveryID:  pending.Problem.DeliveryID,
				Description: pending.Problem.Description,
				CreatedAt:   pending.Problem.CreatedAt,
			},
			Delivery: dto.Delivery{
				ID:            pending.Delivery.ID,
				Product:       pending.Delivery.Product,
				RecipientID:   pending.Delivery.RecipientID,
				DeliverymanID: pending.Delivery.DeliverymanID,
				Status:        pending.Delivery.Status().String(),
				StartDate:     pending.Delivery.StartDate,
				EndDate:       pending.Delivery.EndDate,
				CanceledAt:    pending.Delivery.CanceledAt,
				SignatureID:   pending.Delivery.SignatureID,
			},
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
