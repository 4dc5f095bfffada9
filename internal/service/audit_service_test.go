package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"clinica-dental-api/internal/domain/entity"
	"clinica-dental-api/internal/domain/repository/mocks"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAuditService_LogUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditLogRepository(ctrl)
	svc := NewAuditService(quietLogger(), repo)
	userID := uuid.New()

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *entity.AuditLog) error {
			if log.Action != entity.AuditActionAppointmentUpdate {
				t.Fatalf("action = %s", log.Action)
			}
			if log.UserID == nil || *log.UserID != userID {
				t.Fatalf("user id = %v", log.UserID)
			}
			if log.Metadata["entity"] != entity.AuditEntityAppointment || log.Metadata["entity_id"] != "7" {
				t.Fatalf("unexpected metadata: %+v", log.Metadata)
			}
			if log.Metadata["old_value"] != "old" || log.Metadata["new_value"] != "new" {
				t.Fatalf("unexpected values: %+v", log.Metadata)
			}
			return nil
		},
	)

	err := svc.LogUpdate(context.Background(), &userID, entity.AuditActionAppointmentUpdate, entity.AuditEntityAppointment, "7", "old", "new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuditService_LogDeleteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditLogRepository(ctrl)
	svc := NewAuditService(quietLogger(), repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	err := svc.LogDelete(context.Background(), nil, entity.AuditActionAppointmentDelete, entity.AuditEntityAppointment, "7", "old")
	if err == nil || err.Error() != "db down" {
		t.Fatalf("expected db error, got %v", err)
	}
}
