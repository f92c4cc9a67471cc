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

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.DoctorListResponse, error)
	ListAll(ctx context.Context) (*dto.DoctorListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorProfileRepository
	userRepo        repository.UserRepository
	windowRepo      repository.AvailabilityWindowRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	userRepo repository.UserRepository,
	windowRepo repository.AvailabilityWindowRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		userRepo:        userRepo,
		windowRepo:      windowRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorUsecase) ListByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorRepo.FindByHospitalID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to list doctors of hospital %s: %+v", hospitalID, err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorUsecase) ListAll(ctx context.Context) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByUserID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	old := *profile

	if req.Department != "" {
		profile.Department = req.Department
	}
	if req.Specialty != "" {
		profile.Specialty = req.Specialty
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.Biography != "" {
		profile.Biography = req.Biography
	}

	if err := u.doctorRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor %s: %+v", id, err)
		return nil, err
	}

	if req.FullName != "" || req.IsActive != nil {
		user, err := u.userRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find user %s: %+v", id, err)
			return nil, err
		}
		if user == nil {
			return nil, ErrDoctorNotFound
		}
		if req.FullName != "" {
			user.FullName = req.FullName
		}
		if req.IsActive != nil {
			user.IsActive = req.IsActive
		}
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update user %s: %+v", id, err)
			return nil, err
		}
		profile.User = *user
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionDoctorUpdate, "doctor", id.String(), old, profile); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}

// Delete removes a doctor from the roster. Every non-terminal appointment
// with the doctor is cancelled and the availability windows are dropped,
// all in one transaction; completed and cancelled appointments remain as
// history. The user account is deactivated rather than deleted so audit
// rows keep a valid reference.
func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByUserID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	cancelled, err := u.appointmentRepo.CancelAllForDoctor(tx, id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointments of doctor %s: %+v", id, err)
		return err
	}

	if _, err := u.windowRepo.DeleteByDoctorID(tx, id); err != nil {
		u.log.Warnf("Failed to delete time slots of doctor %s: %+v", id, err)
		return err
	}

	if _, err := u.doctorRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", id, err)
		return err
	}

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return err
	}
	if user != nil {
		inactive := false
		user.IsActive = &inactive
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to deactivate user %s: %+v", id, err)
			return err
		}
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionDoctorDelete, "doctor", id.String(), profile); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if cancelled > 0 {
		u.log.Infof("Cancelled %d appointments while removing doctor %s", cancelled, id)
	}

	return nil
}
