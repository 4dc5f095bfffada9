package repository

import (
	"context"

	"clinica-dental-api/internal/domain/entity"
)

type ClientRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Client, error)
}
