package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthnet-api/internal/converter"
	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/delivery/http/middleware"
	"healthnet-api/internal/domain/entity"
	"healthnet-api/internal/domain/repository"
	"healthnet-api/internal/scheduling"
	"healthnet-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTimeSlotNotFound = errors.New("time slot not found")
	ErrTimeSlotOverlap  = errors.New("time slot overlaps an existing one on the same day")
	ErrTimeSlotNotOwned = errors.New("time slot does not belong to you")
	ErrTimeSlotInUse    = errors.New("time slot has upcoming appointments")
)

type TimeSlotUsecase interface {
	Create(ctx context.Context, req *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.TimeSlotListResponse, error)
	Delete(ctx context.Context, id int) error
}

type timeSlotUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	windowRepo      repository.AvailabilityWindowRepository
	doctorRepo      repository.DoctorProfileRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewTimeSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	windowRepo repository.AvailabilityWindowRepository,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) TimeSlotUsecase {
	return &timeSlotUsecase{
		db:              db,
		log:             log,
		windowRepo:      windowRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// Create adds a weekly availability window for a doctor. The window must
// be well formed and must not overlap any existing window of the same
// doctor on the same day. Doctors manage their own roster; admins can
// manage anyone's.
func (u *timeSlotUsecase) Create(ctx context.Context, req *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDDoctor && req.DoctorID != userID {
		return nil, ErrTimeSlotNotOwned
	}

	window := entity.AvailabilityWindow{
		DoctorID:  req.DoctorID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := scheduling.ValidateWindow(window); err != nil {
		return nil, err
	}
	day, _ := scheduling.CanonicalDay(req.DayOfWeek)
	window.DayOfWeek = day

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	sameDay, err := u.windowRepo.FindByDoctorAndDay(tx, req.DoctorID, day)
	if err != nil {
		u.log.Warnf("Failed to list windows of doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	for _, existing := range sameDay {
		if scheduling.Overlaps(window, existing) {
			return nil, ErrTimeSlotOverlap
		}
	}

	if err := u.windowRepo.Create(tx, &window); err != nil {
		u.log.Warnf("Failed to create time slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionTimeSlotCreate, "time_slot", fmt.Sprintf("%d", window.ID), window); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TimeSlotToResponse(&window), nil
}

func (u *timeSlotUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.TimeSlotListResponse, error) {
	windows, err := u.windowRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list time slots of doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.TimeSlotListResponse{
		TimeSlots: converter.TimeSlotsToResponses(windows),
		Total:     len(windows),
	}, nil
}

// Delete removes an availability window. Blocked while any non-cancelled
// appointment on today or a later date still uses it; past appointments
// are history and do not pin the window.
func (u *timeSlotUsecase) Delete(ctx context.Context, id int) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	window, err := u.windowRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find time slot %d: %+v", id, err)
		return err
	}
	if window == nil {
		return ErrTimeSlotNotFound
	}

	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDDoctor && window.DoctorID != userID {
		return ErrTimeSlotNotOwned
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(tx, window.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments of doctor %s: %+v", window.DoctorID, err)
		return err
	}
	today := scheduling.TruncateToDate(time.Now())
	for _, appt := range appointments {
		if appt.TimeSlotID == id && !appt.IsCancelled() && !appt.AppointmentDate.Before(today) {
			return ErrTimeSlotInUse
		}
	}

	if _, err := u.windowRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete time slot %d: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionTimeSlotDelete, "time_slot", fmt.Sprintf("%d", id), window); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
