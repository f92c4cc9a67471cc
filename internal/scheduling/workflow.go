package scheduling

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"healthnet-api/internal/domain/entity"
)

// WorkflowState names a step of the multi-step booking flow.
type WorkflowState string

const (
	StateSelectingDepartment WorkflowState = "selecting_department"
	StateSelectingDoctor     WorkflowState = "selecting_doctor"
	StateSelectingDate       WorkflowState = "selecting_date"
	StateSelectingSlot       WorkflowState = "selecting_slot"
	StateEnteringReason      WorkflowState = "entering_reason"
	StateSubmitted           WorkflowState = "submitted"
)

var (
	ErrStepOutOfOrder        = errors.New("step not allowed in current workflow state")
	ErrUnknownDepartment     = errors.New("department not offered by this hospital")
	ErrDoctorNotInDepartment = errors.New("doctor is not part of the selected department")
	ErrPastDate              = errors.New("appointment date cannot be in the past")
	ErrWeekendDate           = errors.New("weekend dates are not open for booking")
	ErrSlotNotOffered        = errors.New("slot is not among the available slots for the date")
	ErrEmptyReason           = errors.New("reason for visit must not be empty")
)

// Workflow is the booking flow as an explicit value: each transition
// returns a new Workflow, so every step can be tested in isolation and no
// ambient form state exists. Navigating backward discards the selections
// of the stage returned to and of every later stage.
type Workflow struct {
	State        WorkflowState
	HospitalID   uuid.UUID
	AllowWeekend bool

	Department string
	DoctorID   uuid.UUID
	Date       time.Time
	Slot       entity.AvailabilityWindow
	Reason     string

	doctors []entity.DoctorProfile
	now     func() time.Time
}

// NewWorkflow starts a booking flow for a hospital with the hospital's
// doctors as the full candidate pool.
func NewWorkflow(hospitalID uuid.UUID, doctors []entity.DoctorProfile, allowWeekend bool) Workflow {
	return Workflow{
		State:        StateSelectingDepartment,
		HospitalID:   hospitalID,
		AllowWeekend: allowWeekend,
		doctors:      doctors,
		now:          time.Now,
	}
}

// WithClock replaces the workflow's clock. Tests use it to pin "today".
func (w Workflow) WithClock(now func() time.Time) Workflow {
	w.now = now
	return w
}

// Departments returns the distinct department names across the hospital's
// doctors, in first-seen order.
func (w Workflow) Departments() []string {
	seen := make(map[string]struct{}, len(w.doctors))
	var names []string
	for _, d := range w.doctors {
		if _, ok := seen[d.Department]; ok {
			continue
		}
		seen[d.Department] = struct{}{}
		names = append(names, d.Department)
	}
	return names
}

// Candidates returns the doctors in the currently selected department.
func (w Workflow) Candidates() []entity.DoctorProfile {
	if w.Department == "" {
		return nil
	}
	var out []entity.DoctorProfile
	for _, d := range w.doctors {
		if strings.EqualFold(d.Department, w.Department) {
			out = append(out, d)
		}
	}
	return out
}

// SelectDepartment restricts the doctor candidate set to one department.
func (w Workflow) SelectDepartment(name string) (Workflow, error) {
	if w.State != StateSelectingDepartment {
		return w, ErrStepOutOfOrder
	}
	name = strings.TrimSpace(name)
	found := false
	for _, dep := range w.Departments() {
		if strings.EqualFold(dep, name) {
			name = dep
			found = true
			break
		}
	}
	if !found {
		return w, ErrUnknownDepartment
	}
	w.Department = name
	w.DoctorID = uuid.Nil
	w.Date = time.Time{}
	w.Slot = entity.AvailabilityWindow{}
	w.Reason = ""
	w.State = StateSelectingDoctor
	return w, nil
}

// SelectDoctor picks a doctor from the department candidate set and
// clears any previously chosen date and slot.
func (w Workflow) SelectDoctor(doctorID uuid.UUID) (Workflow, error) {
	if w.State != StateSelectingDoctor {
		return w, ErrStepOutOfOrder
	}
	found := false
	for _, d := range w.Candidates() {
		if d.UserID == doctorID {
			found = true
			break
		}
	}
	if !found {
		return w, ErrDoctorNotInDepartment
	}
	w.DoctorID = doctorID
	w.Date = time.Time{}
	w.Slot = entity.AvailabilityWindow{}
	w.State = StateSelectingDate
	return w, nil
}

// SelectDate accepts a calendar date: never in the past, and not a
// weekend unless the weekend policy allows it. Clears any chosen slot.
func (w Workflow) SelectDate(date time.Time) (Workflow, error) {
	if w.State != StateSelectingDate {
		return w, ErrStepOutOfOrder
	}
	today := TruncateToDate(w.now())
	if TruncateToDate(date).Before(today) {
		return w, ErrPastDate
	}
	if !w.AllowWeekend {
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return w, ErrWeekendDate
		}
	}
	w.Date = TruncateToDate(date)
	w.Slot = entity.AvailabilityWindow{}
	w.State = StateSelectingSlot
	return w, nil
}

// SelectSlot picks one slot from the resolved set for the chosen date.
func (w Workflow) SelectSlot(slotID int, available []entity.AvailabilityWindow) (Workflow, error) {
	if w.State != StateSelectingSlot {
		return w, ErrStepOutOfOrder
	}
	for _, slot := range available {
		if slot.ID == slotID {
			w.Slot = slot
			w.State = StateEnteringReason
			return w, nil
		}
	}
	return w, ErrSlotNotOffered
}

// EnterReason records the free-text reason for the visit.
func (w Workflow) EnterReason(text string) (Workflow, error) {
	if w.State != StateEnteringReason {
		return w, ErrStepOutOfOrder
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return w, ErrEmptyReason
	}
	w.Reason = text
	return w, nil
}

// Submit finalizes the flow once every prior field is present. Submitted
// is terminal for the workflow instance; appointment creation happens in
// the usecase that owns the workflow.
func (w Workflow) Submit() (Workflow, error) {
	if w.State != StateEnteringReason {
		return w, ErrStepOutOfOrder
	}
	if w.Department == "" || w.DoctorID == uuid.Nil || w.Date.IsZero() || w.Slot.ID == 0 || strings.TrimSpace(w.Reason) == "" {
		return w, ErrEmptyReason
	}
	w.State = StateSubmitted
	return w, nil
}

// Back navigates one step backward, discarding the selection of the stage
// returned to and everything after it. No-op at the first stage and after
// submission.
func (w Workflow) Back() Workflow {
	switch w.State {
	case StateSelectingDoctor:
		w.Department = ""
		w.DoctorID = uuid.Nil
		w.Date = time.Time{}
		w.Slot = entity.AvailabilityWindow{}
		w.Reason = ""
		w.State = StateSelectingDepartment
	case StateSelectingDate:
		w.DoctorID = uuid.Nil
		w.Date = time.Time{}
		w.Slot = entity.AvailabilityWindow{}
		w.Reason = ""
		w.State = StateSelectingDoctor
	case StateSelectingSlot:
		w.Date = time.Time{}
		w.Slot = entity.AvailabilityWindow{}
		w.Reason = ""
		w.State = StateSelectingDate
	case StateEnteringReason:
		w.Slot = entity.AvailabilityWindow{}
		w.Reason = ""
		w.State = StateSelectingSlot
	}
	return w
}
