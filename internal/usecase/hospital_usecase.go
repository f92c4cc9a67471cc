package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrHospitalHasStaff = errors.New("hospital still has doctors attached")
)

type HospitalUsecase interface {
	Create(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error)
	Search(ctx context.Context, query *dto.SearchHospitalQuery) (*dto.HospitalListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
	doctorRepo   repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		hospitalRepo: hospitalRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *hospitalUsecase) Create(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital := &entity.Hospital{
		Name:           req.Name,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Specialty:      req.Specialty,
		BedTotal:       req.BedTotal,
		BedAvailable:   req.BedAvailable,
		IsICUAvailable: req.IsICUAvailable,
		ICUTotal:       req.ICUTotal,
		ICUAvailable:   req.ICUAvailable,
		Phone:          req.Phone,
		Email:          req.Email,
		Image:          req.Image,
	}

	if req.Established != "" {
		established, err := time.Parse("2006-01-02", req.Established)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		hospital.Established = &established
	}

	if err := u.hospitalRepo.Create(tx, hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionHospitalCreate, "hospital", hospital.ID.String(), hospital); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByIDWithStaff(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", id, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) Search(ctx context.Context, query *dto.SearchHospitalQuery) (*dto.HospitalListResponse, error) {
	filter := &entity.HospitalFilter{
		Name:      query.Name,
		City:      query.City,
		State:     query.State,
		Specialty: query.Specialty,
	}

	hospitals, err := u.hospitalRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to search hospitals: %+v", err)
		return nil, err
	}

	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}, nil
}

func (u *hospitalUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", id, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	old := *hospital

	if req.Name != "" {
		hospital.Name = req.Name
	}
	if req.Address != "" {
		hospital.Address = req.Address
	}
	if req.City != "" {
		hospital.City = req.City
	}
	if req.State != "" {
		hospital.State = req.State
	}
	if req.Specialty != "" {
		hospital.Specialty = req.Specialty
	}
	if req.BedTotal != nil {
		hospital.BedTotal = *req.BedTotal
	}
	if req.BedAvailable != nil {
		hospital.BedAvailable = *req.BedAvailable
	}
	if req.IsICUAvailable != nil {
		hospital.IsICUAvailable = *req.IsICUAvailable
	}
	if req.ICUTotal != nil {
		hospital.ICUTotal = *req.ICUTotal
	}
	if req.ICUAvailable != nil {
		hospital.ICUAvailable = *req.ICUAvailable
	}
	if req.Phone != "" {
		hospital.Phone = req.Phone
	}
	if req.Email != "" {
		hospital.Email = req.Email
	}
	if req.Image != "" {
		hospital.Image = req.Image
	}

	if err := u.hospitalRepo.Update(tx, hospital); err != nil {
		u.log.Warnf("Failed to update hospital %s: %+v", id, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionHospitalUpdate, "hospital", hospital.ID.String(), old, hospital); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", id, err)
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	// Doctors reference the hospital; they have to be moved or removed
	// first so appointments keep a resolvable hospital.
	staff, err := u.doctorRepo.FindByHospitalID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to list staff of hospital %s: %+v", id, err)
		return err
	}
	if len(staff) > 0 {
		return ErrHospitalHasStaff
	}

	if _, err := u.hospitalRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete hospital %s: %+v", id, err)
		return err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionHospitalDelete, "hospital", id.String(), hospital); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
