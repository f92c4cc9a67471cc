package converter

import (
	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO.
// Staff and the derived department list are included when the staff
// relation is loaded.
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	response := &dto.HospitalResponse{
		ID:             hospital.ID,
		Name:           hospital.Name,
		Address:        hospital.Address,
		City:           hospital.City,
		State:          hospital.State,
		Specialty:      hospital.Specialty,
		BedTotal:       hospital.BedTotal,
		BedAvailable:   hospital.BedAvailable,
		IsICUAvailable: hospital.IsICUAvailable,
		ICUTotal:       hospital.ICUTotal,
		ICUAvailable:   hospital.ICUAvailable,
		Phone:          hospital.Phone,
		Email:          hospital.Email,
		Image:          hospital.Image,
		Rating:         hospital.Rating,
	}

	if hospital.Established != nil {
		response.Established = hospital.Established.Format("2006-01-02")
	}

	if len(hospital.Staff) > 0 {
		response.Staff = DoctorProfilesToResponses(hospital.Staff)
		response.Departments = departmentsOf(hospital.Staff)
	}

	return response
}

// HospitalsToResponses converts a slice of Hospital entities to slice of HospitalResponse DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i, hospital := range hospitals {
		resp := HospitalToResponse(&hospital)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// departmentsOf returns the distinct department names in first-seen order.
func departmentsOf(staff []entity.DoctorProfile) []string {
	seen := make(map[string]struct{}, len(staff))
	var names []string
	for _, d := range staff {
		if _, ok := seen[d.Department]; ok {
			continue
		}
		seen[d.Department] = struct{}{}
		names = append(names, d.Department)
	}
	return names
}
