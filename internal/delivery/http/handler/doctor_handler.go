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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// GetByID returns one doctor with their availability windows.
func (h *DoctorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	if rawHospitalID := r.URL.Query().Get("hospital_id"); rawHospitalID != "" {
		hospitalID, err := uuid.Parse(rawHospitalID)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
			return
		}

		doctors, err := h.doctorUsecase.ListByHospital(r.Context(), hospitalID)
		if err != nil {
			response.InternalServerError(w, "Failed to list doctors")
			return
		}
		response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
		return
	}

	doctors, err := h.doctorUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetByHospital lists the staff of one hospital.
func (h *DoctorHandler) GetByHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["hospitalId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	doctors, err := h.doctorUsecase.ListByHospital(r.Context(), hospitalID)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

// Delete removes a doctor, cancelling their open appointments.
func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	if err := h.doctorUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}
