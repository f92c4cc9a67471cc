package handler

import (
	"encoding/json"
	"net/http"

	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/usecase"
	"healthnet-api/pkg/response"
	"healthnet-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

// Search lists hospitals filtered by name, city, state and specialty.
func (h *HospitalHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := &dto.SearchHospitalQuery{
		Name:      r.URL.Query().Get("name"),
		City:      r.URL.Query().Get("city"),
		State:     r.URL.Query().Get("state"),
		Specialty: r.URL.Query().Get("specialty"),
	}

	hospitals, err := h.hospitalUsecase.Search(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to search hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

// GetByID returns one hospital with its staff and derived departments.
func (h *HospitalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	hospital, err := h.hospitalUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to get hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

func (h *HospitalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid established date, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to create hospital")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Hospital created successfully", hospital)
}

func (h *HospitalHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	var req dto.UpdateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to update hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital updated successfully", hospital)
}

func (h *HospitalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	if err := h.hospitalUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrHospitalHasStaff:
			response.Conflict(w, "Hospital still has doctors attached")
		default:
			response.InternalServerError(w, "Failed to delete hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital deleted successfully", nil)
}
