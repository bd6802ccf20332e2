package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"healthcare-first-portal/internal/converter"
	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/domain/entity"
	"healthcare-first-portal/internal/domain/repository"
	"healthcare-first-portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound       = errors.New("patient not found")
	ErrPatientNotOwned       = errors.New("patient is assigned to another provider")
	ErrPatientEmailTaken     = errors.New("a patient with this email already exists")
	ErrInvalidDateOfBirth    = errors.New("date of birth must be a valid past date")
	ErrPatientProfileMissing = errors.New("patient profile not found")
)

type PatientUsecase interface {
	Create(ctx context.Context, providerID uuid.UUID, req *dto.CreatePatientRequest) (*dto.CreatedPatientResponse, error)
	List(ctx context.Context, providerID uuid.UUID) (*dto.PatientListResponse, error)
	Get(ctx context.Context, providerID, patientID uuid.UUID) (*dto.PatientResponse, error)
	Update(ctx context.Context, providerID, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	GetProfile(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) Create(ctx context.Context, providerID uuid.UUID, req *dto.CreatePatientRequest) (*dto.CreatedPatientResponse, error) {
	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil || (dob != nil && !dob.Before(time.Now())) {
		return nil, ErrInvalidDateOfBirth
	}

	tempPassword, err := generateTemporaryPassword()
	if err != nil {
		u.log.Warnf("Failed to generate temporary password: %+v", err)
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               strings.ToLower(req.Email),
		Password:            string(hashedPassword),
		Phone:               req.Phone,
		DateOfBirth:         dob,
		Gender:              req.Gender,
		Address:             req.Address,
		Status:              "active",
		AssignedProviderID:  &providerID,
		CreatedByProviderID: &providerID,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrPatientEmailTaken
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, providerID, entity.ActorTypeProvider, entity.AuditActionPatientCreate, entity.JSON{
		"patient_id": patient.ID.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreatedPatientResponse{
		Patient:           *converter.PatientToResponse(patient),
		TemporaryPassword: tempPassword,
	}, nil
}

func (u *patientUsecase) List(ctx context.Context, providerID uuid.UUID) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByAssignedProvider(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToListResponse(patients), nil
}

func (u *patientUsecase) Get(ctx context.Context, providerID, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.findOwned(ctx, providerID, patientID)
	if err != nil {
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, providerID, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.findOwned(ctx, providerID, patientID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		patient.FirstName = req.FirstName
	}
	if req.LastName != "" {
		patient.LastName = req.LastName
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
	}
	if req.DateOfBirth != "" {
		dob, err := parseOptionalDate(req.DateOfBirth)
		if err != nil || !dob.Before(time.Now()) {
			return nil, ErrInvalidDateOfBirth
		}
		patient.DateOfBirth = dob
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}
	if req.Address != "" {
		patient.Address = req.Address
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, providerID, entity.ActorTypeProvider, entity.AuditActionPatientUpdate, entity.JSON{
		"patient_id": patient.ID.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetProfile(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileMissing
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) findOwned(ctx context.Context, providerID, patientID uuid.UUID) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if patient.AssignedProviderID == nil || *patient.AssignedProviderID != providerID {
		return nil, ErrPatientNotOwned
	}
	return patient, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// generateTemporaryPassword returns a random URL-safe password for a
// provider-created patient account, shown once in the create response.
func generateTemporaryPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
