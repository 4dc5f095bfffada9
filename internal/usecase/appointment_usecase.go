package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clinica-dental-api/internal/converter"
	"clinica-dental-api/internal/delivery/dto"
	"clinica-dental-api/internal/delivery/http/middleware"
	"clinica-dental-api/internal/domain/entity"
	"clinica-dental-api/internal/domain/repository"
	"clinica-dental-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrClientNotFound       = errors.New("client not found")
	ErrDentistNotFound      = errors.New("dentist not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrDentistHasNoServices = errors.New("dentist has no associated services")
	ErrInvalidTimeRange     = errors.New("start_time must be before end_time")
	ErrScheduleConflict     = errors.New("dentist already has appointments in the requested time range")
)

// ScheduleConflictError lists the ranges that collide with a proposed appointment.
type ScheduleConflictError struct {
	Occupied []entity.TimeRange
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("%s. Occupied slots: %s", ErrScheduleConflict.Error(), strings.Join(e.OccupiedSlots(), ", "))
}

func (e *ScheduleConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}

// OccupiedSlots renders every occupied range as "From <start> to <end>".
func (e *ScheduleConflictError) OccupiedSlots() []string {
	slots := make([]string, len(e.Occupied))
	for i, r := range e.Occupied {
		slots[i] = r.String()
	}
	return slots
}

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	FindAll(ctx context.Context) (*dto.AppointmentListResponse, error)
	FindOne(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	Remove(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	ServicesForDentist(ctx context.Context, dentistID int) (*dto.ServiceListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	clientRepo      repository.ClientRepository
	dentistRepo     repository.DentistRepository
	serviceRepo     repository.ServiceRepository
	appointmentRepo repository.AppointmentRepository
	rule            *service.SchedulingRule
	locker          service.ScheduleLocker
	auditService    service.AuditService
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	clientRepo repository.ClientRepository,
	dentistRepo repository.DentistRepository,
	serviceRepo repository.ServiceRepository,
	appointmentRepo repository.AppointmentRepository,
	rule *service.SchedulingRule,
	locker service.ScheduleLocker,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		clientRepo:      clientRepo,
		dentistRepo:     dentistRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		rule:            rule,
		locker:          locker,
		auditService:    auditService,
		now:             time.Now,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.ensureClient(ctx, req.ClientID); err != nil {
		return nil, err
	}
	if err := u.ensureDentist(ctx, req.DentistID); err != nil {
		return nil, err
	}
	if err := u.ensureService(ctx, req.ServiceID); err != nil {
		return nil, err
	}

	window := entity.TimeRange{Start: req.StartTime, End: req.EndTime}
	if err := u.validateWindow(window); err != nil {
		return nil, err
	}

	unlock, err := u.locker.Lock(ctx, req.DentistID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := u.ensureFree(ctx, req.DentistID, window, 0); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		ClientID:  req.ClientID,
		DentistID: req.DentistID,
		ServiceID: req.ServiceID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	result := u.reload(ctx, appointment)
	resp := converter.AppointmentToResponse(result)

	if err := u.auditService.LogCreate(ctx, actorFromContext(ctx), entity.AuditActionAppointmentCreate, entity.AuditEntityAppointment, strconv.Itoa(appointment.ID), resp); err != nil {
		u.log.Warnf("Failed to audit appointment %d creation: %+v", appointment.ID, err)
	}

	u.log.Infof("Appointment %d created for dentist %d (%s)", appointment.ID, appointment.DentistID, window)
	return resp, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	oldValue := converter.AppointmentToResponse(appointment)

	if req.ClientID != nil && *req.ClientID != appointment.ClientID {
		if err := u.ensureClient(ctx, *req.ClientID); err != nil {
			return nil, err
		}
	}
	dentistChanged := req.DentistID != nil && *req.DentistID != appointment.DentistID
	if dentistChanged {
		if err := u.ensureDentist(ctx, *req.DentistID); err != nil {
			return nil, err
		}
	}
	if req.ServiceID != nil && *req.ServiceID != appointment.ServiceID {
		if err := u.ensureService(ctx, *req.ServiceID); err != nil {
			return nil, err
		}
	}

	dentistID := appointment.DentistID
	if req.DentistID != nil {
		dentistID = *req.DentistID
	}
	window := appointment.Range()
	if req.StartTime != nil {
		window.Start = *req.StartTime
	}
	if req.EndTime != nil {
		window.End = *req.EndTime
	}

	windowChanged := req.StartTime != nil || req.EndTime != nil
	if windowChanged {
		if err := u.validateWindow(window); err != nil {
			return nil, err
		}
	}

	if windowChanged || dentistChanged {
		unlock, err := u.locker.Lock(ctx, dentistID)
		if err != nil {
			return nil, err
		}
		defer unlock()

		if err := u.ensureFree(ctx, dentistID, window, appointment.ID); err != nil {
			return nil, err
		}
	}

	u.applyUpdate(appointment, req, dentistID, window)

	affected, err := u.appointmentRepo.Update(ctx, appointment)
	if err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		// Removed concurrently between the lookup and the write
		return nil, fmt.Errorf("%w: id %d", ErrAppointmentNotFound, id)
	}

	result := u.reload(ctx, appointment)
	resp := converter.AppointmentToResponse(result)

	if err := u.auditService.LogUpdate(ctx, actorFromContext(ctx), entity.AuditActionAppointmentUpdate, entity.AuditEntityAppointment, strconv.Itoa(id), oldValue, resp); err != nil {
		u.log.Warnf("Failed to audit appointment %d update: %+v", id, err)
	}

	return resp, nil
}

// applyUpdate copies only the supplied fields onto the stored appointment.
func (u *appointmentUsecase) applyUpdate(a *entity.Appointment, req *dto.UpdateAppointmentRequest, dentistID int, window entity.TimeRange) {
	if req.ClientID != nil {
		a.ClientID = *req.ClientID
	}
	if req.ServiceID != nil {
		a.ServiceID = *req.ServiceID
	}
	a.DentistID = dentistID
	a.StartTime = window.Start
	a.EndTime = window.End

	// Stale relations would otherwise leak into the response
	a.Client = entity.Client{}
	a.Dentist = entity.Dentist{}
	a.Service = entity.Service{}

	if req.Status != nil {
		a.ApplyStatus(entity.AppointmentStatus(*req.Status), u.now())
	}

	// Explicit stamps take precedence over the ones derived from status
	if req.ConfirmedAt != nil {
		confirmedAt := *req.ConfirmedAt
		a.ConfirmedAt = &confirmedAt
	}
	if req.SuspendedAt != nil {
		suspendedAt := *req.SuspendedAt
		a.SuspendedAt = &suspendedAt
	}
}

func (u *appointmentUsecase) FindAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) FindOne(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Remove(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	affected, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		// Deleted concurrently between the lookup and the delete
		return nil, fmt.Errorf("%w: id %d", ErrAppointmentNotFound, id)
	}

	resp := converter.AppointmentToResponse(appointment)

	if err := u.auditService.LogDelete(ctx, actorFromContext(ctx), entity.AuditActionAppointmentDelete, entity.AuditEntityAppointment, strconv.Itoa(id), resp); err != nil {
		u.log.Warnf("Failed to audit appointment %d deletion: %+v", id, err)
	}

	u.log.Infof("Appointment %d removed", id)
	return resp, nil
}

func (u *appointmentUsecase) ServicesForDentist(ctx context.Context, dentistID int) (*dto.ServiceListResponse, error) {
	if err := u.ensureDentist(ctx, dentistID); err != nil {
		return nil, err
	}

	services, err := u.serviceRepo.FindByDentistID(ctx, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find services for dentist %d: %+v", dentistID, err)
		return nil, err
	}
	if len(services) == 0 {
		return nil, fmt.Errorf("%w: id %d", ErrDentistHasNoServices, dentistID)
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *appointmentUsecase) findAppointment(ctx context.Context, id int) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, fmt.Errorf("%w: id %d", ErrAppointmentNotFound, id)
	}
	return appointment, nil
}

func (u *appointmentUsecase) ensureClient(ctx context.Context, id int) error {
	client, err := u.clientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find client %d: %+v", id, err)
		return err
	}
	if client == nil {
		return fmt.Errorf("%w: id %d", ErrClientNotFound, id)
	}
	return nil
}

func (u *appointmentUsecase) ensureDentist(ctx context.Context, id int) error {
	dentist, err := u.dentistRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist %d: %+v", id, err)
		return err
	}
	if dentist == nil {
		return fmt.Errorf("%w: id %d", ErrDentistNotFound, id)
	}
	return nil
}

func (u *appointmentUsecase) ensureService(ctx context.Context, id int) error {
	svc, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", id, err)
		return err
	}
	if svc == nil {
		return fmt.Errorf("%w: id %d", ErrServiceNotFound, id)
	}
	return nil
}

func (u *appointmentUsecase) validateWindow(window entity.TimeRange) error {
	if !window.IsValid() {
		return ErrInvalidTimeRange
	}
	return u.rule.ValidateHours(window.Start, window.End)
}

// ensureFree fails with a ScheduleConflictError when the dentist already has
// appointments colliding with window. excludeID skips the appointment being edited.
func (u *appointmentUsecase) ensureFree(ctx context.Context, dentistID int, window entity.TimeRange, excludeID int) error {
	existing, err := u.appointmentRepo.FindOverlapping(ctx, &entity.OverlapFilter{
		DentistID: dentistID,
		Range:     window,
		ExcludeID: excludeID,
		Inclusive: u.rule.InclusiveOverlap(),
	})
	if err != nil {
		u.log.Warnf("Failed to check schedule of dentist %d: %+v", dentistID, err)
		return err
	}
	if len(existing) == 0 {
		return nil
	}

	occupied := make([]entity.TimeRange, len(existing))
	for i := range existing {
		occupied[i] = existing[i].Range().In(u.rule.Location())
	}
	return &ScheduleConflictError{Occupied: occupied}
}

// reload fetches the stored appointment with its relations, falling back to the
// in-memory copy if the read fails.
func (u *appointmentUsecase) reload(ctx context.Context, appointment *entity.Appointment) *entity.Appointment {
	stored, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil || stored == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		return appointment
	}
	return stored
}

func actorFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
