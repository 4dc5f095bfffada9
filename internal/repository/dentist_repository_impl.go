package repository

import (
	"context"
	"errors"

	"clinica-dental-api/internal/domain/entity"
	domainRepo "clinica-dental-api/internal/domain/repository"

	"gorm.io/gorm"
)

type dentistRepository struct {
	db *gorm.DB
}

func NewDentistRepository(db *gorm.DB) domainRepo.DentistRepository {
	return &dentistRepository{db: db}
}

func (r *dentistRepository) FindByID(ctx context.Context, id int) (*entity.Dentist, error) {
	var dentist entity.Dentist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dentist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dentist, nil
}
