package converter

import (
	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:              profile.UserID,
		Email:           profile.User.Email,
		FullName:        profile.User.FullName,
		HospitalID:      profile.HospitalID,
		HospitalName:    profile.Hospital.Name,
		Department:      profile.Department,
		Specialty:       profile.Specialty,
		ExperienceYears: profile.ExperienceYears,
		Phone:           profile.Phone,
		Biography:       profile.Biography,
		IsActive:        profile.User.IsActive,
	}

	if len(profile.TimeSlots) > 0 {
		response.TimeSlots = TimeSlotsToResponses(profile.TimeSlots)
	}

	return response
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
