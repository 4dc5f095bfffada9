package repository

import (
	"context"

	"clinica-dental-api/internal/domain/entity"
)

type DentistRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Dentist, error)
}
