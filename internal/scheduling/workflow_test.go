package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthnet-api/internal/domain/entity"
)

var (
	cardioDoctor = entity.DoctorProfile{UserID: uuid.New(), Department: "Cardiology"}
	neuroDoctor  = entity.DoctorProfile{UserID: uuid.New(), Department: "Neurology"}
	neuroDoctor2 = entity.DoctorProfile{UserID: uuid.New(), Department: "Neurology"}
)

func testWorkflow(allowWeekend bool) Workflow {
	w := NewWorkflow(uuid.New(), []entity.DoctorProfile{cardioDoctor, neuroDoctor, neuroDoctor2}, allowWeekend)
	return w.WithClock(func() time.Time { return monday })
}

func TestWorkflowDepartmentsDistinctFirstSeen(t *testing.T) {
	w := testWorkflow(false)
	assert.Equal(t, []string{"Cardiology", "Neurology"}, w.Departments())
}

func TestWorkflowHappyPath(t *testing.T) {
	w := testWorkflow(false)

	w, err := w.SelectDepartment("Neurology")
	require.NoError(t, err)
	assert.Equal(t, StateSelectingDoctor, w.State)
	assert.Len(t, w.Candidates(), 2)

	w, err = w.SelectDoctor(neuroDoctor.UserID)
	require.NoError(t, err)
	assert.Equal(t, StateSelectingDate, w.State)

	w, err = w.SelectDate(monday)
	require.NoError(t, err)
	assert.Equal(t, StateSelectingSlot, w.State)

	slots := []entity.AvailabilityWindow{window(7, "Monday", "09:00", "10:00")}
	w, err = w.SelectSlot(7, slots)
	require.NoError(t, err)
	assert.Equal(t, StateEnteringReason, w.State)

	w, err = w.EnterReason("  persistent headaches ")
	require.NoError(t, err)
	assert.Equal(t, "persistent headaches", w.Reason)

	w, err = w.Submit()
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, w.State)
}

func TestWorkflowRejectsUnknownDepartment(t *testing.T) {
	w := testWorkflow(false)
	_, err := w.SelectDepartment("Oncology")
	assert.ErrorIs(t, err, ErrUnknownDepartment)
}

func TestWorkflowRejectsDoctorOutsideDepartment(t *testing.T) {
	w := testWorkflow(false)
	w, err := w.SelectDepartment("Neurology")
	require.NoError(t, err)

	_, err = w.SelectDoctor(cardioDoctor.UserID)
	assert.ErrorIs(t, err, ErrDoctorNotInDepartment)
}

func TestWorkflowRejectsPastAndWeekendDates(t *testing.T) {
	w := testWorkflow(false)
	w, err := w.SelectDepartment("Cardiology")
	require.NoError(t, err)
	w, err = w.SelectDoctor(cardioDoctor.UserID)
	require.NoError(t, err)

	_, err = w.SelectDate(monday.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrPastDate)

	saturday := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	_, err = w.SelectDate(saturday)
	assert.ErrorIs(t, err, ErrWeekendDate)

	// With the weekend policy relaxed the same date is accepted.
	relaxed := testWorkflow(true)
	relaxed, err = relaxed.SelectDepartment("Cardiology")
	require.NoError(t, err)
	relaxed, err = relaxed.SelectDoctor(cardioDoctor.UserID)
	require.NoError(t, err)
	_, err = relaxed.SelectDate(saturday)
	assert.NoError(t, err)
}

func TestWorkflowRejectsSlotOutsideResolvedSet(t *testing.T) {
	w := testWorkflow(false)
	w, _ = w.SelectDepartment("Cardiology")
	w, _ = w.SelectDoctor(cardioDoctor.UserID)
	w, _ = w.SelectDate(monday)

	slots := []entity.AvailabilityWindow{window(7, "Monday", "09:00", "10:00")}
	_, err := w.SelectSlot(99, slots)
	assert.ErrorIs(t, err, ErrSlotNotOffered)
}

func TestWorkflowRejectsEmptyReason(t *testing.T) {
	w := testWorkflow(false)
	w, _ = w.SelectDepartment("Cardiology")
	w, _ = w.SelectDoctor(cardioDoctor.UserID)
	w, _ = w.SelectDate(monday)
	w, _ = w.SelectSlot(7, []entity.AvailabilityWindow{window(7, "Monday", "09:00", "10:00")})

	_, err := w.EnterReason("   ")
	assert.ErrorIs(t, err, ErrEmptyReason)

	// Submit without any reason recorded also fails.
	_, err = w.Submit()
	assert.ErrorIs(t, err, ErrEmptyReason)
}

func TestWorkflowStepsOutOfOrderFail(t *testing.T) {
	w := testWorkflow(false)

	_, err := w.SelectDoctor(cardioDoctor.UserID)
	assert.ErrorIs(t, err, ErrStepOutOfOrder)

	_, err = w.SelectDate(monday)
	assert.ErrorIs(t, err, ErrStepOutOfOrder)

	_, err = w.EnterReason("checkup")
	assert.ErrorIs(t, err, ErrStepOutOfOrder)
}

func TestWorkflowBackClearsDownstreamSelections(t *testing.T) {
	w := testWorkflow(false)
	w, _ = w.SelectDepartment("Neurology")
	w, _ = w.SelectDoctor(neuroDoctor.UserID)
	w, _ = w.SelectDate(monday)
	w, _ = w.SelectSlot(7, []entity.AvailabilityWindow{window(7, "Monday", "09:00", "10:00")})

	// Back to slot selection drops the slot.
	w = w.Back()
	assert.Equal(t, StateSelectingSlot, w.State)
	assert.Zero(t, w.Slot.ID)
	assert.False(t, w.Date.IsZero())

	// Back to date selection drops the date.
	w = w.Back()
	assert.Equal(t, StateSelectingDate, w.State)
	assert.True(t, w.Date.IsZero())

	// Back to doctor selection drops the doctor too.
	w = w.Back()
	assert.Equal(t, StateSelectingDoctor, w.State)
	assert.Equal(t, uuid.Nil, w.DoctorID)
	assert.Equal(t, "Neurology", w.Department)

	// Back at the first stage is a no-op.
	w = w.Back()
	assert.Equal(t, StateSelectingDepartment, w.State)
	w = w.Back()
	assert.Equal(t, StateSelectingDepartment, w.State)
}

func TestWorkflowValueSemantics(t *testing.T) {
	w := testWorkflow(false)
	next, err := w.SelectDepartment("Cardiology")
	require.NoError(t, err)

	// The original value is untouched by the transition.
	assert.Equal(t, StateSelectingDepartment, w.State)
	assert.Empty(t, w.Department)
	assert.Equal(t, StateSelectingDoctor, next.State)
}
