package repository

import (
	"context"
	"errors"

	"clinica-dental-api/internal/domain/entity"
	domainRepo "clinica-dental-api/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) domainRepo.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) FindByID(ctx context.Context, id int) (*entity.Service, error) {
	var service entity.Service
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

// FindByDentistID returns the services linked to a dentist through dentist_services.
func (r *serviceRepository) FindByDentistID(ctx context.Context, dentistID int) ([]entity.Service, error) {
	var services []entity.Service
	err := r.db.WithContext(ctx).
		Joins("JOIN dentist_services ON dentist_services.service_id = services.id").
		Where("dentist_services.dentist_id = ?", dentistID).
		Order("services.name ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}
