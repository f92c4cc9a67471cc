package handler

import (
	"encoding/json"
	"net/http"

	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/usecase"
	"healthnet-api/pkg/response"
	"healthnet-api/pkg/validator"
)

type TriageHandler struct {
	triageUsecase usecase.TriageUsecase
	validator     *validator.CustomValidator
}

func NewTriageHandler(triageUsecase usecase.TriageUsecase, validator *validator.CustomValidator) *TriageHandler {
	return &TriageHandler{
		triageUsecase: triageUsecase,
		validator:     validator,
	}
}

// Assess grades a free-text symptom description and suggests a department.
func (h *TriageHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var req dto.TriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	assessment, err := h.triageUsecase.Assess(r.Context(), &req)
	if err != nil {
		response.Error(w, http.StatusBadGateway, "Triage service unavailable", nil)
		return
	}

	response.Success(w, http.StatusOK, "Assessment generated successfully", assessment)
}
