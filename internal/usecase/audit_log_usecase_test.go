package usecase

import (
	"context"
	"errors"
	"testing"

	"clinica-dental-api/internal/domain/entity"
	"clinica-dental-api/internal/domain/repository/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestAuditLogUsecase_GetAllAuditLogs(t *testing.T) {
	t.Run("returns appointment actions with their actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAuditLogRepository(ctrl)

		userID := uuid.New()
		repo.EXPECT().FindAll(gomock.Any()).Return([]entity.AuditLog{
			{ID: 3, UserID: &userID, Action: entity.AuditActionAppointmentDelete, Metadata: entity.JSON{"entity_id": "5"},
				User: &entity.User{ID: userID, Email: "staff@clinic.test"}},
			{ID: 2, UserID: &userID, Action: entity.AuditActionAppointmentUpdate, Metadata: entity.JSON{"entity_id": "5"}},
			{ID: 1, Action: entity.AuditActionAppointmentCreate, Metadata: entity.JSON{"entity_id": "5"}},
		}, nil)

		uc := NewAuditLogUsecase(quietLogger(), repo)
		resp, err := uc.GetAllAuditLogs(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Total != 3 || len(resp.Logs) != 3 {
			t.Fatalf("total = %d, logs = %d, want 3", resp.Total, len(resp.Logs))
		}

		want := []string{
			entity.AuditActionAppointmentDelete,
			entity.AuditActionAppointmentUpdate,
			entity.AuditActionAppointmentCreate,
		}
		for i, action := range want {
			if resp.Logs[i].Action != action {
				t.Fatalf("logs[%d].action = %q, want %q", i, resp.Logs[i].Action, action)
			}
		}
		if resp.Logs[0].User == nil || resp.Logs[0].User.Email != "staff@clinic.test" {
			t.Fatalf("actor not returned: %+v", resp.Logs[0].User)
		}
		if resp.Logs[2].User != nil {
			t.Fatalf("anonymous entry should have no user: %+v", resp.Logs[2].User)
		}
		if resp.Logs[1].Metadata["entity_id"] != "5" {
			t.Fatalf("metadata = %v", resp.Logs[1].Metadata)
		}
	})

	t.Run("empty trail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAuditLogRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		resp, err := NewAuditLogUsecase(quietLogger(), repo).GetAllAuditLogs(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Total != 0 || resp.Logs == nil {
			t.Fatalf("want an empty, non-nil list: %+v", resp)
		}
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAuditLogRepository(ctrl)
		dbErr := errors.New("connection reset")
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, dbErr)

		if _, err := NewAuditLogUsecase(quietLogger(), repo).GetAllAuditLogs(context.Background()); !errors.Is(err, dbErr) {
			t.Fatalf("expected %v, got %v", dbErr, err)
		}
	})
}
