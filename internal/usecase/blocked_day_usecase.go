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
	ErrBlockedDayNotFound  = errors.New("blocked day not found")
	ErrDateAlreadyBlocked  = errors.New("this date is already blocked")
	ErrPastDate            = errors.New("date must not be in the past")
	ErrPartialTimesInvalid = errors.New("partial blocks need a valid start and end time")
)

type BlockedDayUsecase interface {
	List(ctx context.Context, providerID uuid.UUID, startDate, endDate string) (*dto.BlockedDayListResponse, error)
	Create(ctx context.Context, providerID uuid.UUID, req *dto.CreateBlockedDayRequest) (*dto.BlockedDayResponse, error)
	Update(ctx context.Context, providerID uuid.UUID, id int, req *dto.UpdateBlockedDayRequest) (*dto.BlockedDayResponse, error)
	Delete(ctx context.Context, providerID uuid.UUID, id int) error
}

type blockedDayUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	blockedDayRepo repository.BlockedDayRepository
	auditService   service.AuditService
}

func NewBlockedDayUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	blockedDayRepo repository.BlockedDayRepository,
	auditService service.AuditService,
) BlockedDayUsecase {
	return &blockedDayUsecase{
		db:             db,
		log:            log,
		blockedDayRepo: blockedDayRepo,
		auditService:   auditService,
	}
}

func (u *blockedDayUsecase) List(ctx context.Context, providerID uuid.UUID, startDate, endDate string) (*dto.BlockedDayListResponse, error) {
	blockedDays, err := u.blockedDayRepo.FindByProvider(u.db.WithContext(ctx), providerID, startDate, endDate)
	if err != nil {
		u.log.Warnf("Failed to list blocked days: %+v", err)
		return nil, err
	}
	return converter.BlockedDaysToListResponse(blockedDays), nil
}

func (u *blockedDayUsecase) Create(ctx context.Context, providerID uuid.UUID, req *dto.CreateBlockedDayRequest) (*dto.BlockedDayResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if date.Before(todayUTC()) {
		return nil, ErrPastDate
	}

	isFullDay := req.IsFullDay == nil || *req.IsFullDay
	startTime, endTime, err := partialWindow(isFullDay, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	blockedDay := &entity.BlockedDay{
		ProviderID: providerID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		Reason:     req.Reason,
		IsFullDay:  isFullDay,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.blockedDayRepo.Create(tx, blockedDay); err != nil {
		if isDuplicateKeyError(err, "idx_provider_blocked_date") {
			return nil, ErrDateAlreadyBlocked
		}
		u.log.Warnf("Failed to create blocked day: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, providerID, entity.ActorTypeProvider, entity.AuditActionBlockedDayCreate, entity.JSON{
		"date": req.Date,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BlockedDayToResponse(blockedDay), nil
}

func (u *blockedDayUsecase) Update(ctx context.Context, providerID uuid.UUID, id int, req *dto.UpdateBlockedDayRequest) (*dto.BlockedDayResponse, error) {
	blockedDay, err := u.blockedDayRepo.FindByID(u.db.WithContext(ctx), providerID, id)
	if err != nil {
		u.log.Warnf("Failed to find blocked day: %+v", err)
		return nil, err
	}
	if blockedDay == nil {
		return nil, ErrBlockedDayNotFound
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if date.Before(todayUTC()) {
			return nil, ErrPastDate
		}
		blockedDay.Date = date
	}
	if req.IsFullDay != nil {
		blockedDay.IsFullDay = *req.IsFullDay
	}
	if req.StartTime != nil {
		blockedDay.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		blockedDay.EndTime = req.EndTime
	}
	if req.Reason != "" {
		blockedDay.Reason = req.Reason
	}

	if blockedDay.IsFullDay {
		blockedDay.StartTime = nil
		blockedDay.EndTime = nil
	} else if blockedDay.StartTime == nil || blockedDay.EndTime == nil || *blockedDay.StartTime >= *blockedDay.EndTime {
		return nil, ErrPartialTimesInvalid
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.blockedDayRepo.Update(tx, blockedDay); err != nil {
		if isDuplicateKeyError(err, "idx_provider_blocked_date") {
			return nil, ErrDateAlreadyBlocked
		}
		u.log.Warnf("Failed to update blocked day: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BlockedDayToResponse(blockedDay), nil
}

func (u *blockedDayUsecase) Delete(ctx context.Context, providerID uuid.UUID, id int) error {
	blockedDay, err := u.blockedDayRepo.FindByID(u.db.WithContext(ctx), providerID, id)
	if err != nil {
		u.log.Warnf("Failed to find blocked day: %+v", err)
		return err
	}
	if blockedDay == nil {
		return ErrBlockedDayNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.blockedDayRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete blocked day: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrBlockedDayNotFound
	}

	u.auditService.Record(tx, providerID, entity.ActorTypeProvider, entity.AuditActionBlockedDayDelete, entity.JSON{
		"blocked_day_id": id,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func partialWindow(isFullDay bool, startTime, endTime *string) (*string, *string, error) {
	if isFullDay {
		return nil, nil, nil
	}
	if startTime == nil || endTime == nil || *startTime >= *endTime {
		return nil, nil, ErrPartialTimesInvalid
	}
	return startTime, endTime, nil
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
