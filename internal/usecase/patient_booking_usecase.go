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
	ErrSlotAlreadyBooked    = errors.New("slot is already booked")
	ErrProviderUnavailable  = errors.New("provider has no availability on this day")
	ErrOutsideAvailability  = errors.New("requested time is outside the provider's availability")
	ErrDateBlocked          = errors.New("provider is not available on this date")
	ErrTimeWindowBlocked    = errors.New("requested time falls in a blocked window")
	ErrProviderNotBookable  = errors.New("provider is not available for booking")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrBookingDatePast      = errors.New("booking date must not be in the past")
)

type PatientBookingUsecase interface {
	ListProviders(ctx context.Context) (*dto.ProviderDirectoryResponse, error)
	ListAvailableSlots(ctx context.Context, providerID uuid.UUID, startDate, endDate string) (*dto.SlotListResponse, error)
	GenerateSlots(ctx context.Context, providerID uuid.UUID, req *dto.GenerateSlotsRequest) (*dto.GeneratedSlotListResponse, error)
	BookBySlot(ctx context.Context, patientID uuid.UUID, req *dto.BookSlotRequest) (*dto.BookingResponse, error)
	BookByTime(ctx context.Context, patientID uuid.UUID, req *dto.BookByTimeRequest) (*dto.BookingResponse, error)
	MyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
}

type patientBookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	providerRepo     repository.ProviderRepository
	availabilityRepo repository.AvailabilityRepository
	blockedDayRepo   repository.BlockedDayRepository
	slotRepo         repository.AppointmentSlotRepository
	appointmentRepo  repository.AppointmentRepository
	auditService     service.AuditService
}

func NewPatientBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	providerRepo repository.ProviderRepository,
	availabilityRepo repository.AvailabilityRepository,
	blockedDayRepo repository.BlockedDayRepository,
	slotRepo repository.AppointmentSlotRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PatientBookingUsecase {
	return &patientBookingUsecase{
		db:               db,
		log:              log,
		providerRepo:     providerRepo,
		availabilityRepo: availabilityRepo,
		blockedDayRepo:   blockedDayRepo,
		slotRepo:         slotRepo,
		appointmentRepo:  appointmentRepo,
		auditService:     auditService,
	}
}

func (u *patientBookingUsecase) ListProviders(ctx context.Context) (*dto.ProviderDirectoryResponse, error) {
	providers, err := u.providerRepo.FindApproved(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list providers: %+v", err)
		return nil, err
	}
	return converter.ProvidersToDirectory(providers), nil
}

func (u *patientBookingUsecase) ListAvailableSlots(ctx context.Context, providerID uuid.UUID, startDate, endDate string) (*dto.SlotListResponse, error) {
	if _, err := u.findBookableProvider(ctx, providerID); err != nil {
		return nil, err
	}

	slots, err := u.slotRepo.FindAvailable(u.db.WithContext(ctx), providerID, startDate, endDate)
	if err != nil {
		u.log.Warnf("Failed to find available slots: %+v", err)
		return nil, err
	}

	return converter.SlotsToListResponse(slots, false), nil
}

// GenerateSlots expands the provider's weekly availability for one date into
// fixed-duration candidate windows. A day with no active availability yields
// an empty list rather than an error. Windows covered by a blocked day are
// dropped; windows overlapping a booked slot are surfaced as booked; windows
// overlapping an unbooked explicit slot lend the window that slot's id.
func (u *patientBookingUsecase) GenerateSlots(ctx context.Context, providerID uuid.UUID, req *dto.GenerateSlotsRequest) (*dto.GeneratedSlotListResponse, error) {
	if _, err := u.findBookableProvider(ctx, providerID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	availability, err := u.availabilityRepo.FindByProviderAndDay(u.db.WithContext(ctx), providerID, entity.WeekdayKey(date))
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return nil, err
	}
	if availability == nil || !availability.IsActive {
		return &dto.GeneratedSlotListResponse{Slots: []dto.GeneratedSlotResponse{}}, nil
	}

	blockedDay, err := u.blockedDayRepo.FindByProviderAndDate(u.db.WithContext(ctx), providerID, date)
	if err != nil {
		u.log.Warnf("Failed to find blocked day: %+v", err)
		return nil, err
	}
	if blockedDay != nil && blockedDay.IsFullDay {
		return nil, ErrDateBlocked
	}

	existing, err := u.slotRepo.FindByProviderAndDate(u.db.WithContext(ctx), providerID, date)
	if err != nil {
		u.log.Warnf("Failed to find slots for date: %+v", err)
		return nil, err
	}

	duration := req.SlotDuration
	if duration == 0 {
		duration = scheduling.DefaultSlotDuration
	}

	windows := scheduling.GenerateWindows(availability.StartTime, availability.EndTime, duration)
	slots := make([]dto.GeneratedSlotResponse, 0, len(windows))

	for _, w := range windows {
		if blockedDay != nil && blockedDay.Blocks(w.StartTime, w.EndTime) {
			continue
		}

		candidate := dto.GeneratedSlotResponse{
			Date:      req.Date,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			Timezone:  availability.Timezone,
		}

		for i := range existing {
			slot := &existing[i]
			if !slot.IsActive || !scheduling.Overlaps(slot.StartTime, slot.EndTime, w.StartTime, w.EndTime) {
				continue
			}
			if slot.IsBooked {
				candidate.IsBooked = true
			} else {
				id := slot.ID
				candidate.ExistingSlotID = &id
			}
			break
		}

		slots = append(slots, candidate)
	}

	return &dto.GeneratedSlotListResponse{Slots: slots}, nil
}

// BookBySlot books an explicit slot. The slot row is locked for the span of
// the transaction so two patients cannot claim it at once; the unique
// constraint on appointments.slot_id backstops the lock.
func (u *patientBookingUsecase) BookBySlot(ctx context.Context, patientID uuid.UUID, req *dto.BookSlotRequest) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	slot, err := u.slotRepo.FindByIDForUpdate(tx, req.SlotID)
	if err != nil {
		u.log.Warnf("Failed to lock slot: %+v", err)
		return nil, err
	}
	if slot == nil || !slot.IsActive {
		return nil, ErrSlotNotFound
	}
	if slot.IsBooked {
		return nil, ErrSlotAlreadyBooked
	}

	appointment, err := u.createAppointment(tx, slot, patientID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return bookingResponse(appointment, slot), nil
}

// BookByTime books a generated window that has no explicit slot yet. The
// matching slot is materialized inside the transaction and booked in the
// same breath; if another patient materialized it first, the window-level
// unique constraint turns the race into an already-booked error.
func (u *patientBookingUsecase) BookByTime(ctx context.Context, patientID uuid.UUID, req *dto.BookByTimeRequest) (*dto.BookingResponse, error) {
	if _, err := u.findBookableProvider(ctx, req.ProviderID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if date.Before(todayUTC()) {
		return nil, ErrBookingDatePast
	}
	if req.StartTime >= req.EndTime {
		return nil, ErrInvalidTimeWindow
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	slot, err := u.slotRepo.FindByWindowForUpdate(tx, req.ProviderID, date, req.StartTime, req.EndTime)
	if err != nil {
		u.log.Warnf("Failed to lock slot window: %+v", err)
		return nil, err
	}

	if slot == nil {
		slot, err = u.materializeSlot(tx, req.ProviderID, date, req.StartTime, req.EndTime)
		if err != nil {
			return nil, err
		}
	} else {
		if !slot.IsActive {
			return nil, ErrSlotNotFound
		}
		if slot.IsBooked {
			return nil, ErrSlotAlreadyBooked
		}
	}

	appointment, err := u.createAppointment(tx, slot, patientID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return bookingResponse(appointment, slot), nil
}

func (u *patientBookingUsecase) MyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatient(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	responses := make([]dto.ProviderAppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, dto.ProviderAppointmentResponse{
			Appointment: *converter.AppointmentToResponse(&appointments[i]),
		})
	}

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

// materializeSlot turns a generated availability window into a concrete slot
// row at booking time. The window must sit inside the day's availability and
// clear of blocked windows and overlapping slots.
func (u *patientBookingUsecase) materializeSlot(tx *gorm.DB, providerID uuid.UUID, date time.Time, startTime, endTime string) (*entity.AppointmentSlot, error) {
	availability, err := u.availabilityRepo.FindByProviderAndDay(tx, providerID, entity.WeekdayKey(date))
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return nil, err
	}
	if availability == nil || !availability.IsActive {
		return nil, ErrProviderUnavailable
	}
	if !scheduling.WithinWindow(startTime, endTime, availability.StartTime, availability.EndTime) {
		return nil, ErrOutsideAvailability
	}

	blockedDay, err := u.blockedDayRepo.FindByProviderAndDate(tx, providerID, date)
	if err != nil {
		u.log.Warnf("Failed to find blocked day: %+v", err)
		return nil, err
	}
	if blockedDay != nil && blockedDay.Blocks(startTime, endTime) {
		if blockedDay.IsFullDay {
			return nil, ErrDateBlocked
		}
		return nil, ErrTimeWindowBlocked
	}

	conflicts, err := u.slotRepo.FindActiveConflicts(tx, providerID, date, startTime, endTime, 0)
	if err != nil {
		u.log.Warnf("Failed to check slot conflicts: %+v", err)
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, ErrSlotAlreadyBooked
	}

	duration, err := scheduling.DurationMinutes(startTime, endTime)
	if err != nil {
		return nil, ErrInvalidTimeWindow
	}

	slot := &entity.AppointmentSlot{
		ProviderID:      providerID,
		Date:            date,
		StartTime:       startTime,
		EndTime:         endTime,
		Timezone:        availability.Timezone,
		AppointmentType: entity.AppointmentTypeConsultation,
		SlotDuration:    duration,
		MaxAppointments: 1,
		LocationType:    entity.LocationTypeVirtual,
		Currency:        "USD",
		Recurrence:      entity.RecurrenceNone,
		IsActive:        true,
	}

	if err := u.slotRepo.Create(tx, slot); err != nil {
		if isDuplicateKeyError(err, "idx_slot_window") {
			return nil, ErrSlotAlreadyBooked
		}
		u.log.Warnf("Failed to materialize slot: %+v", err)
		return nil, err
	}

	return slot, nil
}

func (u *patientBookingUsecase) createAppointment(tx *gorm.DB, slot *entity.AppointmentSlot, patientID uuid.UUID) (*entity.Appointment, error) {
	appointment := &entity.Appointment{
		SlotID:     slot.ID,
		ProviderID: slot.ProviderID,
		PatientID:  patientID,
		Status:     entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "slot_id") {
			return nil, ErrSlotAlreadyBooked
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	slot.IsBooked = true
	if err := u.slotRepo.Update(tx, slot); err != nil {
		u.log.Warnf("Failed to mark slot booked: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, patientID, entity.ActorTypePatient, entity.AuditActionAppointmentBook, entity.JSON{
		"slot_id":     slot.ID,
		"provider_id": slot.ProviderID.String(),
		"date":        slot.Date.Format("2006-01-02"),
	})

	return appointment, nil
}

func (u *patientBookingUsecase) findBookableProvider(ctx context.Context, providerID uuid.UUID) (*entity.Provider, error) {
	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider: %+v", err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	if !provider.IsApproved() {
		return nil, ErrProviderNotBookable
	}
	return provider, nil
}

func bookingResponse(appointment *entity.Appointment, slot *entity.AppointmentSlot) *dto.BookingResponse {
	response := converter.AppointmentToResponse(appointment)
	response.Slot = converter.SlotToResponse(slot)
	return &dto.BookingResponse{Appointment: *response}
}
