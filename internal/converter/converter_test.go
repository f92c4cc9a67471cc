package converter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthnet-api/internal/domain/entity"
)

func TestTimeSlotToResponseTrimsPostgresTime(t *testing.T) {
	doctorID := uuid.New()
	window := &entity.AvailabilityWindow{
		ID:        3,
		DoctorID:  doctorID,
		DayOfWeek: "Monday",
		StartTime: "09:00:00",
		EndTime:   "10:30:00",
	}

	resp := TimeSlotToResponse(window)
	require.NotNil(t, resp)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "10:30", resp.EndTime)
	assert.Equal(t, doctorID, resp.DoctorID)

	// Already-trimmed values pass through unchanged.
	window.StartTime = "14:00"
	assert.Equal(t, "14:00", TimeSlotToResponse(window).StartTime)

	assert.Nil(t, TimeSlotToResponse(nil))
}

func TestHospitalToResponseDerivesDepartments(t *testing.T) {
	hospital := &entity.Hospital{
		ID:     uuid.New(),
		Name:   "City General",
		City:   "Pune",
		Rating: decimal.RequireFromString("4.5"),
		Staff: []entity.DoctorProfile{
			{UserID: uuid.New(), Department: "Cardiology"},
			{UserID: uuid.New(), Department: "Neurology"},
			{UserID: uuid.New(), Department: "Cardiology"},
		},
	}

	resp := HospitalToResponse(hospital)
	require.NotNil(t, resp)
	assert.Equal(t, []string{"Cardiology", "Neurology"}, resp.Departments)
	assert.Len(t, resp.Staff, 3)
	assert.True(t, resp.Rating.Equal(decimal.RequireFromString("4.5")))
	assert.Empty(t, resp.Established)
}

func TestHospitalToResponseWithoutStaff(t *testing.T) {
	resp := HospitalToResponse(&entity.Hospital{ID: uuid.New(), Name: "Empty"})
	require.NotNil(t, resp)
	assert.Nil(t, resp.Departments)
	assert.Nil(t, resp.Staff)
}
