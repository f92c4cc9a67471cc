package converter

import (
	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
// Includes DoctorProfile and PatientProfile if they are loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	// Include DoctorProfile if exists
	if user.DoctorProfile != nil {
		response.DoctorProfile = DoctorProfileToResponse(user.DoctorProfile)
		// Avoid duplicating the user fields inside the nested profile.
		response.DoctorProfile.Email = ""
		response.DoctorProfile.FullName = ""
	}

	// Include PatientProfile if exists
	if user.PatientProfile != nil {
		response.PatientProfile = &dto.PatientProfileResponse{
			ID:          user.PatientProfile.UserID,
			PhoneNumber: user.PatientProfile.PhoneNumber,
			DateOfBirth: user.PatientProfile.DateOfBirth.Format("2006-01-02"),
			BloodGroup:  user.PatientProfile.BloodGroup,
			WeightKg:    user.PatientProfile.WeightKg,
			HeightCm:    user.PatientProfile.HeightCm,
			Address:     user.PatientProfile.Address,
			City:        user.PatientProfile.City,
			State:       user.PatientProfile.State,
		}
	}

	return response
}
