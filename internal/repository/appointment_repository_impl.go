package repository

import (
	"context"
	"errors"

	"clinica-dental-api/internal/domain/entity"
	domainRepo "clinica-dental-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").Preload("Dentist").Preload("Service").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").Preload("Dentist").Preload("Service").
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindOverlapping returns the dentist's live appointments colliding with filter.Range.
// Soft-deleted rows are skipped by gorm's DeletedAt scope.
func (r *appointmentRepository) FindOverlapping(ctx context.Context, filter *entity.OverlapFilter) ([]entity.Appointment, error) {
	query := r.db.WithContext(ctx).Where("dentist_id = ?", filter.DentistID)

	if filter.Inclusive {
		query = query.Where("start_time <= ? AND end_time >= ?", filter.Range.End, filter.Range.Start)
	} else {
		query = query.Where("start_time < ? AND end_time > ?", filter.Range.End, filter.Range.Start)
	}

	if filter.ExcludeID != 0 {
		query = query.Where("id <> ?", filter.ExcludeID)
	}

	var appointments []entity.Appointment
	if err := query.Order("start_time ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// Update never upserts: a row soft-deleted since it was read matches nothing and stays deleted.
func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(appointment).
		Select("*").
		Omit(clause.Associations, "created_at", "deleted_at").
		Updates(appointment)
	return result.RowsAffected, result.Error
}

// Delete soft-deletes the appointment; the row stays for historical queries.
func (r *appointmentRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
