package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"healthnet-api/internal/scheduling"
	"healthnet-api/internal/usecase"
)

func TestWriteLifecycleErrorStatusCodes(t *testing.T) {
	h := &AppointmentHandler{}

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"not owned", usecase.ErrAppointmentNotOwned, http.StatusForbidden},
		{"unknown status", usecase.ErrUnknownStatus, http.StatusBadRequest},
		// Illegal transitions are client mistakes, not conflicts: the
		// appointment's state is known, the request against it is wrong.
		{"invalid transition", usecase.ErrInvalidTransition, http.StatusBadRequest},
		{"review before completion", usecase.ErrNotCompleted, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.writeLifecycleError(rec, tt.err)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestWriteBookingErrorStatusCodes(t *testing.T) {
	h := &AppointmentHandler{}

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"hospital missing", usecase.ErrHospitalNotFound, http.StatusNotFound},
		{"doctor missing", usecase.ErrDoctorNotFound, http.StatusNotFound},
		{"past date", scheduling.ErrPastDate, http.StatusBadRequest},
		{"weekend", scheduling.ErrWeekendDate, http.StatusBadRequest},
		{"empty reason", scheduling.ErrEmptyReason, http.StatusBadRequest},
		// Slot races surface as conflicts so the client re-resolves and retries.
		{"slot not offered", scheduling.ErrSlotNotOffered, http.StatusConflict},
		{"slot race lost", usecase.ErrSlotUnavailable, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.writeBookingError(rec, tt.err)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
