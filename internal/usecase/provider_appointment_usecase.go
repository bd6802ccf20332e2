package usecase

import (
	"context"
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

type ProviderAppointmentUsecase interface {
	List(ctx context.Context, providerID uuid.UUID, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, providerID uuid.UUID, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Stats(ctx context.Context, providerID uuid.UUID) (*dto.AppointmentStatsResponse, error)
}

type providerAppointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewProviderAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) ProviderAppointmentUsecase {
	return &providerAppointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *providerAppointmentUsecase) List(ctx context.Context, providerID uuid.UUID, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByProvider(u.db.WithContext(ctx), providerID, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToProviderListResponse(appointments), nil
}

func (u *providerAppointmentUsecase) UpdateStatus(ctx context.Context, providerID uuid.UUID, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil || appointment.ProviderID != providerID {
		return nil, ErrAppointmentNotFound
	}

	status := entity.AppointmentStatus(req.Status)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.UpdateStatus(tx, id, status, req.Notes); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, providerID, entity.ActorTypeProvider, entity.AuditActionAppointmentStatus, entity.JSON{
		"appointment_id": id,
		"status":         req.Status,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = status
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *providerAppointmentUsecase) Stats(ctx context.Context, providerID uuid.UUID) (*dto.AppointmentStatsResponse, error) {
	byStatus, err := u.appointmentRepo.CountByProviderAndStatus(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	today := time.Now().UTC().Format("2006-01-02")
	todayFilter := &entity.AppointmentFilter{StartDate: today, EndDate: today}
	todays, err := u.appointmentRepo.FindByProvider(u.db.WithContext(ctx), providerID, todayFilter)
	if err != nil {
		u.log.Warnf("Failed to list today's appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentStatsResponse{
		Today:     int64(len(todays)),
		Scheduled: byStatus[string(entity.AppointmentStatusScheduled)],
		Completed: byStatus[string(entity.AppointmentStatusCompleted)],
		ByStatus:  byStatus,
	}, nil
}
