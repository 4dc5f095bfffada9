package repository

import (
	"context"

	"clinica-dental-api/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindOverlapping(ctx context.Context, filter *entity.OverlapFilter) ([]entity.Appointment, error)
	// Update writes every column of a live appointment and reports the rows matched;
	// zero means it was deleted in the meantime.
	Update(ctx context.Context, appointment *entity.Appointment) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}
