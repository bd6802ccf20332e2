package usecase

import (
	"context"
	"errors"
	"time"

	"healthcare-first-portal/internal/converter"
	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/domain/entity"
	"healthcare-first-portal/internal/domain/repository"
	"healthcare-first-portal/internal/scheduling"
	"healthcare-first-portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotNotFound          = errors.New("slot not found")
	ErrSlotConflict          = errors.New("slot overlaps an existing slot")
	ErrSlotBooked            = errors.New("slot has an active booking")
	ErrRecurrenceEndPast     = errors.New("recurrence end date must be after the slot date")
	ErrRecurrenceEndRequired = errors.New("recurring slots need a recurrence end date")
)

type AppointmentSlotUsecase interface {
	List(ctx context.Context, providerID uuid.UUID, req *dto.ListSlotsRequest) (*dto.SlotListResponse, error)
	Get(ctx context.Context, providerID uuid.UUID, id int) (*dto.SlotResponse, error)
	Create(ctx context.Context, providerID uuid.UUID, req *dto.CreateSlotRequest) (*dto.CreateSlotResponse, error)
	Update(ctx context.Context, providerID uuid.UUID, id int, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	Delete(ctx context.Context, providerID uuid.UUID, id int) error
}

type appointmentSlotUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	slotRepo     repository.AppointmentSlotRepository
	auditService service.AuditService
}

func NewAppointmentSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.AppointmentSlotRepository,
	auditService service.AuditService,
) AppointmentSlotUsecase {
	return &appointmentSlotUsecase{
		db:           db,
		log:          log,
		slotRepo:     slotRepo,
		auditService: auditService,
	}
}

func (u *appointmentSlotUsecase) List(ctx context.Context, providerID uuid.UUID, req *dto.ListSlotsRequest) (*dto.SlotListResponse, error) {
	filter := &entity.SlotFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    req.Status,
	}

	slots, err := u.slotRepo.FindByProvider(u.db.WithContext(ctx), providerID, filter)
	if err != nil {
		u.log.Warnf("Failed to list slots: %+v", err)
		return nil, err
	}

	return converter.SlotsToListResponse(slots, true), nil
}

func (u *appointmentSlotUsecase) Get(ctx context.Context, providerID uuid.UUID, id int) (*dto.SlotResponse, error) {
	slot, err := u.findOwnedSlot(ctx, providerID, id)
	if err != nil {
		return nil, err
	}
	return converter.SlotToResponse(slot), nil
}

// Create authors a slot, rejecting any overlap with an active slot on the
// same date. A recurring slot is expanded eagerly up to its end date;
// occurrences that would overlap an existing slot are skipped, not errors.
func (u *appointmentSlotUsecase) Create(ctx context.Context, providerID uuid.UUID, req *dto.CreateSlotRequest) (*dto.CreateSlotResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if date.Before(todayUTC()) {
		return nil, ErrPastDate
	}
	if req.StartTime >= req.EndTime {
		return nil, ErrInvalidTimeWindow
	}

	recurrence := entity.Recurrence(req.Recurrence)
	var recurrenceEnd *time.Time
	if recurrence != entity.RecurrenceNone {
		if req.RecurrenceEndDate == "" {
			return nil, ErrRecurrenceEndRequired
		}
		parsed, err := time.Parse("2006-01-02", req.RecurrenceEndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if !parsed.After(date) {
			return nil, ErrRecurrenceEndPast
		}
		recurrenceEnd = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	conflicts, err := u.slotRepo.FindActiveConflicts(tx, providerID, date, req.StartTime, req.EndTime, 0)
	if err != nil {
		u.log.Warnf("Failed to check slot conflicts: %+v", err)
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, ErrSlotConflict
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	slot := &entity.AppointmentSlot{
		ProviderID:        providerID,
		Date:              date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Timezone:          req.Timezone,
		AppointmentType:   entity.AppointmentType(req.AppointmentType),
		SlotDuration:      req.SlotDuration,
		BreakDuration:     req.BreakDuration,
		MaxAppointments:   req.MaxAppointments,
		LocationType:      entity.LocationType(req.LocationType),
		LocationAddress:   req.LocationAddress,
		RoomNumber:        req.RoomNumber,
		Fee:               req.Fee,
		Currency:          currency,
		InsuranceAccepted: req.InsuranceAccepted,
		Notes:             req.Notes,
		Recurrence:        recurrence,
		RecurrenceEndDate: recurrenceEnd,
		IsActive:          true,
	}

	if err := u.slotRepo.Create(tx, slot); err != nil {
		if isDuplicateKeyError(err, "idx_slot_window") {
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed to create slot: %+v", err)
		return nil, err
	}

	created, skipped := 0, 0
	if recurrenceEnd != nil {
		created, skipped, err = u.expandRecurrence(tx, slot, *recurrenceEnd)
		if err != nil {
			return nil, err
		}
	}

	u.auditService.Record(tx, providerID, entity.ActorTypeProvider, entity.AuditActionSlotCreate, entity.JSON{
		"slot_id":             slot.ID,
		"date":                req.Date,
		"occurrences_created": created,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreateSlotResponse{
		Slot:               *converter.SlotToResponse(slot),
		OccurrencesCreated: created,
		OccurrencesSkipped: skipped,
	}, nil
}

func (u *appointmentSlotUsecase) Update(ctx context.Context, providerID uuid.UUID, id int, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	slot, err := u.findOwnedSlot(ctx, providerID, id)
	if err != nil {
		return nil, err
	}
	if slot.IsBooked {
		return nil, ErrSlotBooked
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if date.Before(todayUTC()) {
			return nil, ErrPastDate
		}
		slot.Date = date
	}
	if req.StartTime != "" {
		slot.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		slot.EndTime = req.EndTime
	}
	if slot.StartTime >= slot.EndTime {
		return nil, ErrInvalidTimeWindow
	}
	if req.Timezone != "" {
		slot.Timezone = req.Timezone
	}
	if req.AppointmentType != "" {
		slot.AppointmentType = entity.AppointmentType(req.AppointmentType)
	}
	if req.SlotDuration != nil {
		slot.SlotDuration = *req.SlotDuration
	}
	if req.BreakDuration != nil {
		slot.BreakDuration = *req.BreakDuration
	}
	if req.MaxAppointments != nil {
		slot.MaxAppointments = *req.MaxAppointments
	}
	if req.LocationType != "" {
		slot.LocationType = entity.LocationType(req.LocationType)
	}
	if req.LocationAddress != "" {
		slot.LocationAddress = req.LocationAddress
	}
	if req.RoomNumber != "" {
		slot.RoomNumber = req.RoomNumber
	}
	if req.Fee != nil {
		slot.Fee = req.Fee
	}
	if req.Currency != "" {
		slot.Currency = req.Currency
	}
	if req.InsuranceAccepted != nil {
		slot.InsuranceAccepted = *req.InsuranceAccepted
	}
	if req.Notes != "" {
		slot.Notes = req.Notes
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	conflicts, err := u.slotRepo.FindActiveConflicts(tx, providerID, slot.Date, slot.StartTime, slot.EndTime, slot.ID)
	if err != nil {
		u.log.Warnf("Failed to check slot conflicts: %+v", err)
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, ErrSlotConflict
	}

	if err := u.slotRepo.Update(tx, slot); err != nil {
		if isDuplicateKeyError(err, "idx_slot_window") {
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed to update slot: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, providerID, entity.ActorTypeProvider, entity.AuditActionSlotUpdate, entity.JSON{
		"slot_id": slot.ID,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SlotToResponse(slot), nil
}

func (u *appointmentSlotUsecase) Delete(ctx context.Context, providerID uuid.UUID, id int) error {
	slot, err := u.findOwnedSlot(ctx, providerID, id)
	if err != nil {
		return err
	}
	if slot.IsBooked {
		return ErrSlotBooked
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.slotRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete slot: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrSlotNotFound
	}

	u.auditService.Record(tx, providerID, entity.ActorTypeProvider, entity.AuditActionSlotDelete, entity.JSON{
		"slot_id": id,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *appointmentSlotUsecase) expandRecurrence(tx *gorm.DB, base *entity.AppointmentSlot, endDate time.Time) (created, skipped int, err error) {
	for _, date := range scheduling.Occurrences(base.Date, endDate, string(base.Recurrence)) {
		conflicts, err := u.slotRepo.FindActiveConflicts(tx, base.ProviderID, date, base.StartTime, base.EndTime, 0)
		if err != nil {
			u.log.Warnf("Failed to check occurrence conflicts: %+v", err)
			return created, skipped, err
		}
		if len(conflicts) > 0 {
			skipped++
			continue
		}

		occurrence := *base
		occurrence.ID = 0
		occurrence.Date = date
		occurrence.Recurrence = entity.RecurrenceNone
		occurrence.RecurrenceEndDate = nil

		// A unique violation here aborts the transaction, so a concurrent
		// writer surfaces as a conflict rather than a silent skip.
		if err := u.slotRepo.Create(tx, &occurrence); err != nil {
			if isDuplicateKeyError(err, "idx_slot_window") {
				return created, skipped, ErrSlotConflict
			}
			u.log.Warnf("Failed to create occurrence slot: %+v", err)
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}

func (u *appointmentSlotUsecase) findOwnedSlot(ctx context.Context, providerID uuid.UUID, id int) (*entity.AppointmentSlot, error) {
	slot, err := u.slotRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return nil, err
	}
	if slot == nil || slot.ProviderID != providerID {
		return nil, ErrSlotNotFound
	}
	return slot, nil
}
