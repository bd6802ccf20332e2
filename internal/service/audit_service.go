package service

import (
	"healthcare-first-portal/internal/domain/entity"
	"healthcare-first-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit trail entries. Failures are logged and swallowed
// so auditing never fails a business operation.
type AuditService interface {
	Record(tx *gorm.DB, actorID uuid.UUID, actorType, action string, metadata entity.JSON)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(tx *gorm.DB, actorID uuid.UUID, actorType, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		ActorID:   &actorID,
		ActorType: actorType,
		Action:    action,
		Metadata:  metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log for %s: %+v", action, err)
	}
}
