package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"healthnet-api/internal/converter"
	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/delivery/http/middleware"
	"healthnet-api/internal/domain/entity"
	"healthnet-api/internal/domain/repository"
	"healthnet-api/internal/infrastructure/ws"
	"healthnet-api/internal/scheduling"
	"healthnet-api/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotUnavailable    = errors.New("slot is no longer available")
	ErrPatientProfileMiss = errors.New("patient profile not found")
)

type BookingUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*dto.AvailableSlotsResponse, error)
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	windowRepo      repository.AvailabilityWindowRepository
	doctorRepo      repository.DoctorProfileRepository
	patientRepo     repository.PatientProfileRepository
	hospitalRepo    repository.HospitalRepository
	slotHoldService *service.SlotHoldService
	auditService    service.AuditService
	redisClient     *redis.Client
	resolver        *scheduling.Resolver
	allowWeekend    bool
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	windowRepo repository.AvailabilityWindowRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	hospitalRepo repository.HospitalRepository,
	slotHoldService *service.SlotHoldService,
	auditService service.AuditService,
	redisClient *redis.Client,
	allowWeekend bool,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		windowRepo:      windowRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		hospitalRepo:    hospitalRepo,
		slotHoldService: slotHoldService,
		auditService:    auditService,
		redisClient:     redisClient,
		resolver:        scheduling.NewResolver(),
		allowWeekend:    allowWeekend,
	}
}

// CreateAppointment books a slot for the logged-in patient.
//
// Flow:
//  1. Replay the booking workflow over the submitted fields, so the API
//     enforces the same ordering and rules as the step-by-step flow
//     (department in hospital, doctor in department, valid future date,
//     slot in the resolved set, non-empty reason).
//  2. Claim the (doctor, date, slot) triple in Redis; a losing concurrent
//     submission stops here with ErrSlotUnavailable.
//  3. Insert the appointment and its audit row in one transaction.
//  4. If the insert fails, compensate: release the Redis claim. A unique
//     index violation means another instance won the slot through the
//     durable guard, reported identically as ErrSlotUnavailable.
func (u *bookingUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileMiss
	}

	hospital, err := u.hospitalRepo.FindByIDWithStaff(db, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", req.HospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	// Step 1: replay the selection flow over the submitted fields.
	flow := scheduling.NewWorkflow(hospital.ID, hospital.Staff, u.allowWeekend)
	if flow, err = flow.SelectDepartment(req.Department); err != nil {
		return nil, err
	}
	if flow, err = flow.SelectDoctor(req.DoctorID); err != nil {
		return nil, err
	}
	if flow, err = flow.SelectDate(date); err != nil {
		return nil, err
	}

	available, err := u.resolveSlots(db, req.DoctorID, flow.Date)
	if err != nil {
		return nil, err
	}
	if flow, err = flow.SelectSlot(req.TimeSlotID, available); err != nil {
		return nil, err
	}
	if flow, err = flow.EnterReason(req.Reason); err != nil {
		return nil, err
	}
	if flow, err = flow.Submit(); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		PatientID:       userID,
		DoctorID:        flow.DoctorID,
		HospitalID:      hospital.ID,
		AppointmentDate: flow.Date,
		TimeSlotID:      flow.Slot.ID,
		Status:          entity.AppointmentStatusPending,
		Reason:          flow.Reason,
	}

	// Step 2: claim the slot before touching the database.
	if err := u.slotHoldService.Claim(ctx, flow.DoctorID, flow.Date, flow.Slot.ID, appointment.ID); err != nil {
		if errors.Is(err, service.ErrSlotHeld) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	// Step 3: persist appointment and audit row together.
	tx := db.Begin()
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
			// Step 4: compensation, the slot goes back on the market.
			if releaseErr := u.slotHoldService.Release(ctx, flow.DoctorID, flow.Date, flow.Slot.ID); releaseErr != nil {
				u.log.Warnf("Failed to release slot hold after aborted booking: %+v", releaseErr)
			}
		}
	}()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotUnavailable
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), appointment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	committed = true

	created, err := u.appointmentRepo.FindByID(db, appointment.ID)
	if err != nil || created == nil {
		// The booking is already durable, fall back to the bare row.
		created = appointment
	}

	u.notifyBooked(ctx, created)

	return converter.AppointmentToResponse(created), nil
}

// GetAvailableSlots resolves the open slots of a doctor for a calendar
// date: windows whose weekday matches the date, minus slots consumed by a
// non-cancelled appointment. Past dates resolve to an empty set.
func (u *bookingUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*dto.AvailableSlotsResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByUserID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	slots, err := u.resolveSlots(db, doctorID, date)
	if err != nil {
		return nil, err
	}

	return &dto.AvailableSlotsResponse{
		DoctorID: doctorID,
		Date:     date.Format("2006-01-02"),
		Slots:    converter.TimeSlotsToResponses(slots),
		Total:    len(slots),
	}, nil
}

func (u *bookingUsecase) resolveSlots(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.AvailabilityWindow, error) {
	windows, err := u.windowRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list windows of doctor %s: %+v", doctorID, err)
		return nil, err
	}

	existing, err := u.appointmentRepo.FindForDoctorOnDate(db, doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to list appointments of doctor %s on %s: %+v", doctorID, date.Format("2006-01-02"), err)
		return nil, err
	}

	return u.resolver.Resolve(windows, date, existing), nil
}

// notifyBooked publishes the booking event on the chat channel so every
// API instance pushes it to its websocket clients. Best-effort.
func (u *bookingUsecase) notifyBooked(ctx context.Context, appointment *entity.Appointment) {
	payload, err := json.Marshal(map[string]interface{}{
		"event":       "appointment.created",
		"appointment": converter.AppointmentToResponse(appointment),
	})
	if err != nil {
		u.log.Warnf("Failed to encode booking event: %+v", err)
		return
	}

	if err := u.redisClient.Publish(ctx, ws.ChatChannel, payload).Err(); err != nil {
		u.log.Warnf("Failed to publish booking event: %+v", err)
	}
}
