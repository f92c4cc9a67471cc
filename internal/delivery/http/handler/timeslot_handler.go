package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/scheduling"
	"healthnet-api/internal/usecase"
	"healthnet-api/pkg/response"
	"healthnet-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TimeSlotHandler struct {
	timeSlotUsecase usecase.TimeSlotUsecase
	validator       *validator.CustomValidator
}

func NewTimeSlotHandler(timeSlotUsecase usecase.TimeSlotUsecase, validator *validator.CustomValidator) *TimeSlotHandler {
	return &TimeSlotHandler{
		timeSlotUsecase: timeSlotUsecase,
		validator:       validator,
	}
}

// Create adds a weekly availability window to a doctor's roster.
func (h *TimeSlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.timeSlotUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrTimeSlotNotOwned):
			response.Forbidden(w, "Time slot does not belong to you")
		case errors.Is(err, usecase.ErrTimeSlotOverlap):
			response.Conflict(w, "Time slot overlaps an existing one on the same day")
		case errors.Is(err, scheduling.ErrInvalidTimeFormat):
			response.BadRequest(w, "Times must use the 24-hour HH:mm format")
		case errors.Is(err, scheduling.ErrWindowOrder):
			response.BadRequest(w, "Start time must be before end time")
		case errors.Is(err, scheduling.ErrUnknownDayOfWeek):
			response.BadRequest(w, "Unknown day of week")
		default:
			response.InternalServerError(w, "Failed to create time slot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Time slot created successfully", slot)
}

func (h *TimeSlotHandler) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	slots, err := h.timeSlotUsecase.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list time slots")
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", slots)
}

func (h *TimeSlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid time slot ID", nil)
		return
	}

	if err := h.timeSlotUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTimeSlotNotFound:
			response.NotFound(w, "Time slot not found")
		case usecase.ErrTimeSlotNotOwned:
			response.Forbidden(w, "Time slot does not belong to you")
		case usecase.ErrTimeSlotInUse:
			response.Conflict(w, "Time slot has upcoming appointments")
		default:
			response.InternalServerError(w, "Failed to delete time slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Time slot deleted successfully", nil)
}
