package repository

import (
	"context"

	"clinica-dental-api/internal/domain/entity"
)

type ServiceRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Service, error)
	FindByDentistID(ctx context.Context, dentistID int) ([]entity.Service, error)
}
