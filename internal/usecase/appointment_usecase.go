package usecase

import (
	"context"
	"errors"

	"healthnet-api/internal/converter"
	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/delivery/http/middleware"
	"healthnet-api/internal/domain/entity"
	"healthnet-api/internal/domain/repository"
	"healthnet-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrUnknownStatus       = errors.New("unknown appointment status")
	ErrInvalidTransition   = errors.New("status transition is not allowed")
	ErrNotCompleted        = errors.New("appointment is not completed yet")
)

type AppointmentUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error)
	Review(ctx context.Context, id uuid.UUID, req *dto.ReviewAppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	slotHoldService *service.SlotHoldService
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	slotHoldService *service.SlotHoldService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		slotHoldService: slotHoldService,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findOwned(ctx, u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	if err := requireSelfOrAdmin(ctx, patientID); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments of patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	if err := requireSelfOrAdmin(ctx, doctorID); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments of doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByHospitalID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to list appointments of hospital %s: %+v", hospitalID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateStatus moves an appointment along pending -> confirmed ->
// completed. Cancellation requests are routed through Cancel so the slot
// hold is released. The transition is applied conditionally on the status
// the caller saw; a concurrent change makes it fail as invalid.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	target, ok := entity.NormalizeStatus(req.Status)
	if !ok {
		return nil, ErrUnknownStatus
	}

	if target == entity.AppointmentStatusCancelled {
		if err := u.Cancel(ctx, id); err != nil {
			return nil, err
		}
		return u.reload(ctx, id)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findOwned(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	// Patients never advance the workflow, they can only cancel.
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDPatient {
		return nil, ErrAppointmentNotOwned
	}

	if !appointment.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	rows, err := u.appointmentRepo.UpdateStatus(tx, id, appointment.Status, target)
	if err != nil {
		u.log.Warnf("Failed to update status of appointment %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		// Someone moved the appointment first.
		return nil, ErrInvalidTransition
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentAdvance, "appointment", id.String(),
		map[string]interface{}{"status": appointment.Status},
		map[string]interface{}{"status": target}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, id)
}

// Cancel marks the appointment cancelled and releases its slot claim so
// the slot returns to the market immediately. Legal from pending and
// confirmed; terminal states reject.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findOwned(ctx, tx, id)
	if err != nil {
		return err
	}

	if !appointment.Status.CanTransitionTo(entity.AppointmentStatusCancelled) {
		return ErrInvalidTransition
	}

	rows, err := u.appointmentRepo.UpdateStatus(tx, id, appointment.Status, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrInvalidTransition
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentCancel, "appointment", id.String(),
		map[string]interface{}{"status": appointment.Status},
		map[string]interface{}{"status": entity.AppointmentStatusCancelled}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.slotHoldService.Release(ctx, appointment.DoctorID, appointment.AppointmentDate, appointment.TimeSlotID); err != nil {
		// The hold expires on its own; losing the early release only
		// delays rebooking until then.
		u.log.Warnf("Failed to release slot hold for cancelled appointment %s: %+v", id, err)
	}

	return nil
}

// Complete closes a confirmed appointment with the doctor's findings.
func (u *appointmentUsecase) Complete(ctx context.Context, id uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findOwned(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDPatient || (roleID == entity.RoleIDDoctor && appointment.DoctorID != userID) {
		return nil, ErrAppointmentNotOwned
	}

	if !appointment.Status.CanTransitionTo(entity.AppointmentStatusCompleted) {
		return nil, ErrInvalidTransition
	}

	rows, err := u.appointmentRepo.UpdateStatus(tx, id, appointment.Status, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidTransition
	}

	appointment.Diagnosis = req.Diagnosis
	appointment.Prescription = req.Prescription
	if err := tx.Model(&entity.Appointment{}).Where("id = ?", id).
		Updates(map[string]interface{}{"diagnosis": req.Diagnosis, "prescription": req.Prescription}).Error; err != nil {
		u.log.Warnf("Failed to record findings of appointment %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentAdvance, "appointment", id.String(),
		map[string]interface{}{"status": appointment.Status},
		map[string]interface{}{"status": entity.AppointmentStatusCompleted}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, id)
}

// Review lets the patient rate a completed appointment.
func (u *appointmentUsecase) Review(ctx context.Context, id uuid.UUID, req *dto.ReviewAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findOwned(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if appointment.PatientID != userID {
		return nil, ErrAppointmentNotOwned
	}
	if !appointment.IsCompleted() {
		return nil, ErrNotCompleted
	}

	if err := tx.Model(&entity.Appointment{}).Where("id = ?", id).
		Updates(map[string]interface{}{"review": req.Review, "rating": req.Rating}).Error; err != nil {
		u.log.Warnf("Failed to record review of appointment %s: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, id)
}

// findOwned loads the appointment and enforces visibility: patients and
// doctors see their own, admins see all.
func (u *appointmentUsecase) findOwned(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	switch roleID {
	case entity.RoleIDAdmin:
	case entity.RoleIDDoctor:
		if appointment.DoctorID != userID {
			return nil, ErrAppointmentNotOwned
		}
	default:
		if appointment.PatientID != userID {
			return nil, ErrAppointmentNotOwned
		}
	}

	return appointment, nil
}

func (u *appointmentUsecase) reload(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

// requireSelfOrAdmin allows a user to read their own listings; admins may
// read anyone's.
func requireSelfOrAdmin(ctx context.Context, ownerID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID != entity.RoleIDAdmin && userID != ownerID {
		return ErrAppointmentNotOwned
	}
	return nil
}
