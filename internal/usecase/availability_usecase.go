package usecase

import (
	"context"
	"errors"
	"time"

	"healthcare-first-portal/internal/converter"
	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/domain/entity"
	"healthcare-first-portal/internal/domain/repository"
	"healthcare-first-portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAvailabilityTimesRequired = errors.New("start and end time are required for an active day")
	ErrInvalidTimeWindow         = errors.New("start time must be before end time")
	ErrInvalidDate               = errors.New("invalid date")
)

type AvailabilityUsecase interface {
	GetWeekly(ctx context.Context, providerID uuid.UUID) (*dto.WeeklyAvailabilityResponse, error)
	Update(ctx context.Context, providerID uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.WeeklyAvailabilityResponse, error)
	GetForDate(ctx context.Context, providerID uuid.UUID, date string) (*dto.DateAvailabilityResponse, error)
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	providerRepo     repository.ProviderRepository
	availabilityRepo repository.AvailabilityRepository
	auditService     service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	providerRepo repository.ProviderRepository,
	availabilityRepo repository.AvailabilityRepository,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		providerRepo:     providerRepo,
		availabilityRepo: availabilityRepo,
		auditService:     auditService,
	}
}

func (u *availabilityUsecase) GetWeekly(ctx context.Context, providerID uuid.UUID) (*dto.WeeklyAvailabilityResponse, error) {
	provider, err := u.findProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	availabilities, err := u.availabilityRepo.FindByProvider(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find availabilities: %+v", err)
		return nil, err
	}

	return converter.AvailabilitiesToWeeklyResponse(provider, availabilities), nil
}

// Update replaces the provider's weekly schedule for the submitted days.
// An active day is upserted; an inactive day is removed outright, so a day
// never lingers as a disabled row.
func (u *availabilityUsecase) Update(ctx context.Context, providerID uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.WeeklyAvailabilityResponse, error) {
	provider, err := u.findProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	for _, day := range req.Availabilities {
		if !day.IsActive {
			continue
		}
		if day.StartTime == "" || day.EndTime == "" {
			return nil, ErrAvailabilityTimesRequired
		}
		if day.StartTime >= day.EndTime {
			return nil, ErrInvalidTimeWindow
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	for _, day := range req.Availabilities {
		if !day.IsActive {
			if err := u.availabilityRepo.DeleteByProviderAndDay(tx, providerID, day.DayOfWeek); err != nil {
				u.log.Warnf("Failed to delete availability: %+v", err)
				return nil, err
			}
			continue
		}

		timezone := day.Timezone
		if timezone == "" {
			timezone = "UTC"
		}

		availability := &entity.ProviderAvailability{
			ProviderID: providerID,
			DayOfWeek:  day.DayOfWeek,
			StartTime:  day.StartTime,
			EndTime:    day.EndTime,
			Timezone:   timezone,
			IsActive:   true,
		}

		if err := u.availabilityRepo.Upsert(tx, availability); err != nil {
			u.log.Warnf("Failed to upsert availability: %+v", err)
			return nil, err
		}
	}

	u.auditService.Record(tx, providerID, entity.ActorTypeProvider, entity.AuditActionAvailabilityWrite, entity.JSON{
		"days": len(req.Availabilities),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	availabilities, err := u.availabilityRepo.FindByProvider(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find availabilities: %+v", err)
		return nil, err
	}

	return converter.AvailabilitiesToWeeklyResponse(provider, availabilities), nil
}

func (u *availabilityUsecase) GetForDate(ctx context.Context, providerID uuid.UUID, date string) (*dto.DateAvailabilityResponse, error) {
	provider, err := u.findProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	dayOfWeek := entity.WeekdayKey(parsed)
	availability, err := u.availabilityRepo.FindByProviderAndDay(u.db.WithContext(ctx), providerID, dayOfWeek)
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return nil, err
	}

	return converter.AvailabilityToDateResponse(provider, date, dayOfWeek, availability), nil
}

func (u *availabilityUsecase) findProvider(ctx context.Context, providerID uuid.UUID) (*entity.Provider, error) {
	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider: %+v", err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	return provider, nil
}
