package converter

import (
	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/domain/entity"
)

// TimeSlotToResponse converts an AvailabilityWindow entity to TimeSlotResponse DTO
func TimeSlotToResponse(window *entity.AvailabilityWindow) *dto.TimeSlotResponse {
	if window == nil {
		return nil
	}

	return &dto.TimeSlotResponse{
		ID:        window.ID,
		DoctorID:  window.DoctorID,
		DayOfWeek: window.DayOfWeek,
		StartTime: clockOf(window.StartTime),
		EndTime:   clockOf(window.EndTime),
	}
}

// TimeSlotsToResponses converts a slice of AvailabilityWindow entities to slice of TimeSlotResponse DTOs
func TimeSlotsToResponses(windows []entity.AvailabilityWindow) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(windows))
	for i, window := range windows {
		responses[i] = *TimeSlotToResponse(&window)
	}
	return responses
}

// clockOf trims a postgres TIME value ("09:00:00") down to "HH:mm".
func clockOf(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
