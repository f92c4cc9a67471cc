package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/scheduling"
	"healthnet-api/internal/usecase"
	"healthnet-api/pkg/response"
	"healthnet-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	bookingUsecase     usecase.BookingUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(
	bookingUsecase usecase.BookingUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookingUsecase:     bookingUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create books an appointment for the logged-in patient.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrHospitalNotFound):
		response.NotFound(w, "Hospital not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrPatientProfileMiss):
		response.NotFound(w, "Patient profile not found")
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.BadRequest(w, "Invalid appointment date, use YYYY-MM-DD")
	case errors.Is(err, scheduling.ErrUnknownDepartment):
		response.BadRequest(w, "Department not offered by this hospital")
	case errors.Is(err, scheduling.ErrDoctorNotInDepartment):
		response.BadRequest(w, "Doctor is not part of the selected department")
	case errors.Is(err, scheduling.ErrPastDate):
		response.BadRequest(w, "Appointment date cannot be in the past")
	case errors.Is(err, scheduling.ErrWeekendDate):
		response.BadRequest(w, "Weekend dates are not open for booking")
	case errors.Is(err, scheduling.ErrEmptyReason):
		response.BadRequest(w, "Reason for visit must not be empty")
	case errors.Is(err, scheduling.ErrSlotNotOffered):
		response.Conflict(w, "Slot is not available on the selected date")
	case errors.Is(err, usecase.ErrSlotUnavailable):
		response.Conflict(w, "Slot was just taken, pick another one")
	default:
		response.InternalServerError(w, "Failed to book appointment")
	}
}

// GetAvailableSlots returns the open slots of a doctor for a date.
func (h *AppointmentHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		response.BadRequest(w, "Query parameter date is required")
		return
	}
	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		response.BadRequest(w, "Invalid date, use YYYY-MM-DD")
		return
	}

	slots, err := h.bookingUsecase.GetAvailableSlots(r.Context(), doctorID, date)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) GetPatientAppointments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["patientUserId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetHospitalAppointments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["hospitalId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.ListByHospital(r.Context(), hospitalID)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// UpdateStatus advances an appointment along its lifecycle.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), id); err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// Complete closes a confirmed appointment with the doctor's findings.
func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.CompleteAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Complete(r.Context(), id, &req)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", appointment)
}

// Review lets the patient rate a completed appointment.
func (h *AppointmentHandler) Review(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.ReviewAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Review(r.Context(), id, &req)
	if err != nil {
		h.writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Review recorded successfully", appointment)
}

func (h *AppointmentHandler) writeLifecycleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrAppointmentNotOwned):
		response.Forbidden(w, "Appointment does not belong to you")
	case errors.Is(err, usecase.ErrUnknownStatus):
		response.BadRequest(w, "Unknown appointment status")
	case errors.Is(err, usecase.ErrInvalidTransition):
		response.BadRequest(w, "Status transition is not allowed")
	case errors.Is(err, usecase.ErrNotCompleted):
		response.BadRequest(w, "Appointment is not completed yet")
	default:
		response.InternalServerError(w, "Failed to process appointment")
	}
}
