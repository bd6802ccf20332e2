package usecase_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/domain/entity"
	"healthcare-first-portal/internal/repository"
	"healthcare-first-portal/internal/service"
	"healthcare-first-portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("db: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.Provider{},
		&entity.Patient{},
		&entity.ProviderAvailability{},
		&entity.BlockedDay{},
		&entity.AppointmentSlot{},
		&entity.Appointment{},
		&entity.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func newBookingUsecase(db *gorm.DB) usecase.PatientBookingUsecase {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	return usecase.NewPatientBookingUsecase(
		db,
		log,
		repository.NewProviderRepository(),
		repository.NewAvailabilityRepository(),
		repository.NewBlockedDayRepository(),
		repository.NewAppointmentSlotRepository(),
		repository.NewAppointmentRepository(),
		auditService,
	)
}

func createProvider(t *testing.T, db *gorm.DB) *entity.Provider {
	t.Helper()
	provider := &entity.Provider{
		ID:             uuid.New(),
		FirstName:      "Test",
		LastName:       "Provider",
		Email:          fmt.Sprintf("provider-%s@test.local", uuid.New().String()[:8]),
		Password:       "hashed",
		Phone:          fmt.Sprintf("+1%s", uuid.New().String()[:10]),
		LicenseNumber:  uuid.New().String()[:12],
		Specialization: "cardiology",
		Status:         entity.ProviderStatusApproved,
	}
	if err := db.Create(provider).Error; err != nil {
		t.Fatalf("create provider: %v", err)
	}
	t.Cleanup(func() {
		db.Where("provider_id = ?", provider.ID).Delete(&entity.Appointment{})
		db.Where("provider_id = ?", provider.ID).Delete(&entity.AppointmentSlot{})
		db.Where("provider_id = ?", provider.ID).Delete(&entity.BlockedDay{})
		db.Where("provider_id = ?", provider.ID).Delete(&entity.ProviderAvailability{})
		db.Delete(provider)
	})
	return provider
}

func createPatient(t *testing.T, db *gorm.DB, providerID uuid.UUID) *entity.Patient {
	t.Helper()
	patient := &entity.Patient{
		ID:                  uuid.New(),
		FirstName:           "Test",
		LastName:            "Patient",
		Email:               fmt.Sprintf("patient-%s@test.local", uuid.New().String()[:8]),
		Password:            "hashed",
		Status:              "active",
		AssignedProviderID:  &providerID,
		CreatedByProviderID: &providerID,
	}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("create patient: %v", err)
	}
	t.Cleanup(func() {
		db.Where("patient_id = ?", patient.ID).Delete(&entity.Appointment{})
		db.Delete(patient)
	})
	return patient
}

func createSlot(t *testing.T, db *gorm.DB, providerID uuid.UUID, date time.Time, start, end string) *entity.AppointmentSlot {
	t.Helper()
	slot := &entity.AppointmentSlot{
		ProviderID:      providerID,
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		Timezone:        "UTC",
		AppointmentType: entity.AppointmentTypeConsultation,
		SlotDuration:    30,
		MaxAppointments: 1,
		LocationType:    entity.LocationTypeVirtual,
		Currency:        "USD",
		Recurrence:      entity.RecurrenceNone,
		IsActive:        true,
	}
	if err := db.Create(slot).Error; err != nil {
		t.Fatalf("create slot: %v", err)
	}
	return slot
}

// nextWeekday returns the next calendar date falling on the given weekday,
// at least one day out.
func nextWeekday(day time.Weekday) time.Time {
	d := time.Now().UTC().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func TestBookBySlotConcurrent(t *testing.T) {
	db := setupDB(t)
	uc := newBookingUsecase(db)

	provider := createProvider(t, db)
	slotDate := nextWeekday(time.Monday)
	slot := createSlot(t, db, provider.ID, slotDate, "09:00", "09:30")

	const patients = 4
	var wg sync.WaitGroup
	errs := make([]error, patients)

	for i := 0; i < patients; i++ {
		patient := createPatient(t, db, provider.ID)
		wg.Add(1)
		go func(i int, patientID uuid.UUID) {
			defer wg.Done()
			_, errs[i] = uc.BookBySlot(context.Background(), patientID, &dto.BookSlotRequest{SlotID: slot.ID})
		}(i, patient.ID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch err {
		case nil:
			succeeded++
		case usecase.ErrSlotAlreadyBooked:
		default:
			t.Errorf("unexpected booking error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("exactly one booking should succeed, got %d", succeeded)
	}

	var count int64
	db.Model(&entity.Appointment{}).Where("slot_id = ?", slot.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 appointment row, got %d", count)
	}
}

func TestBookBySlotAlreadyBooked(t *testing.T) {
	db := setupDB(t)
	uc := newBookingUsecase(db)

	provider := createProvider(t, db)
	patient := createPatient(t, db, provider.ID)
	other := createPatient(t, db, provider.ID)
	slot := createSlot(t, db, provider.ID, nextWeekday(time.Tuesday), "10:00", "10:30")

	if _, err := uc.BookBySlot(context.Background(), patient.ID, &dto.BookSlotRequest{SlotID: slot.ID}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	if _, err := uc.BookBySlot(context.Background(), other.ID, &dto.BookSlotRequest{SlotID: slot.ID}); err != usecase.ErrSlotAlreadyBooked {
		t.Errorf("second booking: got %v, want ErrSlotAlreadyBooked", err)
	}
}

func TestBookByTimeMaterializesSlot(t *testing.T) {
	db := setupDB(t)
	uc := newBookingUsecase(db)

	provider := createProvider(t, db)
	patient := createPatient(t, db, provider.ID)

	bookDate := nextWeekday(time.Wednesday)
	availability := &entity.ProviderAvailability{
		ProviderID: provider.ID,
		DayOfWeek:  entity.WeekdayKey(bookDate),
		StartTime:  "09:00",
		EndTime:    "17:00",
		Timezone:   "UTC",
		IsActive:   true,
	}
	if err := db.Create(availability).Error; err != nil {
		t.Fatalf("create availability: %v", err)
	}

	result, err := uc.BookByTime(context.Background(), patient.ID, &dto.BookByTimeRequest{
		ProviderID: provider.ID,
		Date:       bookDate.Format("2006-01-02"),
		StartTime:  "09:00",
		EndTime:    "09:30",
	})
	if err != nil {
		t.Fatalf("book by time: %v", err)
	}
	if result.Appointment.Slot == nil || !result.Appointment.Slot.IsBooked {
		t.Error("materialized slot should be returned booked")
	}

	// The same window cannot be booked twice
	other := createPatient(t, db, provider.ID)
	if _, err := uc.BookByTime(context.Background(), other.ID, &dto.BookByTimeRequest{
		ProviderID: provider.ID,
		Date:       bookDate.Format("2006-01-02"),
		StartTime:  "09:00",
		EndTime:    "09:30",
	}); err != usecase.ErrSlotAlreadyBooked {
		t.Errorf("rebooking window: got %v, want ErrSlotAlreadyBooked", err)
	}
}

func TestBookByTimeOutsideAvailability(t *testing.T) {
	db := setupDB(t)
	uc := newBookingUsecase(db)

	provider := createProvider(t, db)
	patient := createPatient(t, db, provider.ID)

	bookDate := nextWeekday(time.Thursday)
	availability := &entity.ProviderAvailability{
		ProviderID: provider.ID,
		DayOfWeek:  entity.WeekdayKey(bookDate),
		StartTime:  "09:00",
		EndTime:    "12:00",
		Timezone:   "UTC",
		IsActive:   true,
	}
	if err := db.Create(availability).Error; err != nil {
		t.Fatalf("create availability: %v", err)
	}

	if _, err := uc.BookByTime(context.Background(), patient.ID, &dto.BookByTimeRequest{
		ProviderID: provider.ID,
		Date:       bookDate.Format("2006-01-02"),
		StartTime:  "13:00",
		EndTime:    "13:30",
	}); err != usecase.ErrOutsideAvailability {
		t.Errorf("got %v, want ErrOutsideAvailability", err)
	}
}

func TestBookByTimeBlockedDay(t *testing.T) {
	db := setupDB(t)
	uc := newBookingUsecase(db)

	provider := createProvider(t, db)
	patient := createPatient(t, db, provider.ID)

	bookDate := nextWeekday(time.Friday)
	availability := &entity.ProviderAvailability{
		ProviderID: provider.ID,
		DayOfWeek:  entity.WeekdayKey(bookDate),
		StartTime:  "09:00",
		EndTime:    "17:00",
		Timezone:   "UTC",
		IsActive:   true,
	}
	if err := db.Create(availability).Error; err != nil {
		t.Fatalf("create availability: %v", err)
	}

	blocked := &entity.BlockedDay{
		ProviderID: provider.ID,
		Date:       bookDate,
		IsFullDay:  true,
		Reason:     "conference",
	}
	if err := db.Create(blocked).Error; err != nil {
		t.Fatalf("create blocked day: %v", err)
	}

	if _, err := uc.BookByTime(context.Background(), patient.ID, &dto.BookByTimeRequest{
		ProviderID: provider.ID,
		Date:       bookDate.Format("2006-01-02"),
		StartTime:  "09:00",
		EndTime:    "09:30",
	}); err != usecase.ErrDateBlocked {
		t.Errorf("got %v, want ErrDateBlocked", err)
	}
}

func TestGenerateSlots(t *testing.T) {
	db := setupDB(t)
	uc := newBookingUsecase(db)

	provider := createProvider(t, db)

	genDate := nextWeekday(time.Monday)
	availability := &entity.ProviderAvailability{
		ProviderID: provider.ID,
		DayOfWeek:  entity.WeekdayKey(genDate),
		StartTime:  "09:00",
		EndTime:    "12:00",
		Timezone:   "UTC",
		IsActive:   true,
	}
	if err := db.Create(availability).Error; err != nil {
		t.Fatalf("create availability: %v", err)
	}

	// Partial block removes the 10:00-11:00 windows
	blockStart, blockEnd := "10:00", "11:00"
	blocked := &entity.BlockedDay{
		ProviderID: provider.ID,
		Date:       genDate,
		StartTime:  &blockStart,
		EndTime:    &blockEnd,
		IsFullDay:  false,
	}
	if err := db.Create(blocked).Error; err != nil {
		t.Fatalf("create blocked day: %v", err)
	}

	result, err := uc.GenerateSlots(context.Background(), provider.ID, &dto.GenerateSlotsRequest{
		Date:         genDate.Format("2006-01-02"),
		SlotDuration: 30,
	})
	if err != nil {
		t.Fatalf("generate slots: %v", err)
	}

	// 09:00-12:00 yields six 30-minute windows; two fall inside the block
	if len(result.Slots) != 4 {
		t.Fatalf("got %d windows, want 4: %+v", len(result.Slots), result.Slots)
	}
	for _, slot := range result.Slots {
		if slot.StartTime >= blockStart && slot.StartTime < blockEnd {
			t.Errorf("window %s-%s overlaps the blocked window", slot.StartTime, slot.EndTime)
		}
	}
}

func TestGenerateSlotsNoAvailability(t *testing.T) {
	db := setupDB(t)
	uc := newBookingUsecase(db)

	provider := createProvider(t, db)

	result, err := uc.GenerateSlots(context.Background(), provider.ID, &dto.GenerateSlotsRequest{
		Date: nextWeekday(time.Sunday).Format("2006-01-02"),
	})
	if err != nil {
		t.Fatalf("generate slots: %v", err)
	}
	if len(result.Slots) != 0 {
		t.Errorf("got %d windows, want none: %+v", len(result.Slots), result.Slots)
	}
}

func TestGenerateSlotsOverlappingSlot(t *testing.T) {
	db := setupDB(t)
	uc := newBookingUsecase(db)

	provider := createProvider(t, db)

	genDate := nextWeekday(time.Wednesday)
	availability := &entity.ProviderAvailability{
		ProviderID: provider.ID,
		DayOfWeek:  entity.WeekdayKey(genDate),
		StartTime:  "09:00",
		EndTime:    "10:00",
		Timezone:   "UTC",
		IsActive:   true,
	}
	if err := db.Create(availability).Error; err != nil {
		t.Fatalf("create availability: %v", err)
	}

	// An unbooked slot straddling both 30-minute windows
	slot := createSlot(t, db, provider.ID, genDate, "09:15", "09:45")

	result, err := uc.GenerateSlots(context.Background(), provider.ID, &dto.GenerateSlotsRequest{
		Date:         genDate.Format("2006-01-02"),
		SlotDuration: 30,
	})
	if err != nil {
		t.Fatalf("generate slots: %v", err)
	}
	if len(result.Slots) != 2 {
		t.Fatalf("got %d windows, want 2: %+v", len(result.Slots), result.Slots)
	}
	for _, w := range result.Slots {
		if w.IsBooked {
			t.Errorf("window %s-%s marked booked", w.StartTime, w.EndTime)
		}
		if w.ExistingSlotID == nil || *w.ExistingSlotID != slot.ID {
			t.Errorf("window %s-%s should carry slot %d, got %v", w.StartTime, w.EndTime, slot.ID, w.ExistingSlotID)
		}
	}
}
