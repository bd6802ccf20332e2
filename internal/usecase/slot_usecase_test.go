package usecase_test

import (
	"context"
	"os"
	"testing"
	"time"

	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/repository"
	"healthcare-first-portal/internal/service"
	"healthcare-first-portal/internal/usecase"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func newSlotUsecase(db *gorm.DB) usecase.AppointmentSlotUsecase {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	return usecase.NewAppointmentSlotUsecase(db, log, repository.NewAppointmentSlotRepository(), auditService)
}

func TestCreateSlotRejectsPastDate(t *testing.T) {
	db := setupDB(t)
	uc := newSlotUsecase(db)

	provider := createProvider(t, db)

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	if _, err := uc.Create(context.Background(), provider.ID, &dto.CreateSlotRequest{
		Date:            yesterday,
		StartTime:       "09:00",
		EndTime:         "09:30",
		Timezone:        "UTC",
		AppointmentType: "consultation",
		SlotDuration:    30,
		MaxAppointments: 1,
		LocationType:    "virtual",
		Recurrence:      "none",
	}); err != usecase.ErrPastDate {
		t.Errorf("got %v, want ErrPastDate", err)
	}
}

func TestUpdateSlotRejectsPastDate(t *testing.T) {
	db := setupDB(t)
	uc := newSlotUsecase(db)

	provider := createProvider(t, db)
	slot := createSlot(t, db, provider.ID, nextWeekday(time.Tuesday), "09:00", "09:30")

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	if _, err := uc.Update(context.Background(), provider.ID, slot.ID, &dto.UpdateSlotRequest{
		Date: yesterday,
	}); err != usecase.ErrPastDate {
		t.Errorf("got %v, want ErrPastDate", err)
	}
}
