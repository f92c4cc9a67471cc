package converter

import (
	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Names of the related parties are filled in when the relations are loaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.Patient.User.FullName,
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.Doctor.User.FullName,
		HospitalID:      appointment.HospitalID,
		HospitalName:    appointment.Hospital.Name,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		Diagnosis:       appointment.Diagnosis,
		Prescription:    appointment.Prescription,
		Review:          appointment.Review,
		Rating:          appointment.Rating,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.TimeSlot.ID != 0 {
		response.TimeSlot = TimeSlotToResponse(&appointment.TimeSlot)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
