package converter

import (
	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity + User entity to PatientProfileResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile, user *entity.User) *dto.PatientProfileResponse {
	if profile == nil || user == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		PhoneNumber: profile.PhoneNumber,
		DateOfBirth: profile.DateOfBirth.Format("2006-01-02"),
		BloodGroup:  profile.BloodGroup,
		WeightKg:    profile.WeightKg,
		HeightCm:    profile.HeightCm,
		Address:     profile.Address,
		City:        profile.City,
		State:       profile.State,
	}
}
