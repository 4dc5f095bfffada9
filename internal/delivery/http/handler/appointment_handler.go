package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"clinica-dental-api/internal/delivery/dto"
	"clinica-dental-api/internal/service"
	"clinica-dental-api/internal/usecase"
	"clinica-dental-api/pkg/response"
	"clinica-dental-api/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment handles booking a new appointment
// @Summary Create appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// GetAllAppointments handles listing every active appointment
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.FindAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetAppointment handles fetching one appointment
// @Summary Get appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.FindOne(r.Context(), id)
	if err != nil {
		writeAppointmentError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// UpdateAppointment handles partial updates, including status changes
// @Summary Update appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Update Appointment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id} [patch]
func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// DeleteAppointment handles soft-deleting an appointment
// @Summary Delete appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Remove(r.Context(), id)
	if err != nil {
		writeAppointmentError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", appointment)
}

func appointmentID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return 0, false
	}
	return id, true
}

func writeAppointmentError(w http.ResponseWriter, err error, fallback string) {
	var conflict *usecase.ScheduleConflictError
	switch {
	case errors.As(err, &conflict):
		response.Conflict(w, conflict.Error(), conflict.OccupiedSlots())
	case errors.Is(err, service.ErrOutsideClinicHours), errors.Is(err, service.ErrScheduleBusy):
		response.Conflict(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrInvalidTimeRange):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrAppointmentNotFound),
		errors.Is(err, usecase.ErrClientNotFound),
		errors.Is(err, usecase.ErrDentistNotFound),
		errors.Is(err, usecase.ErrServiceNotFound),
		errors.Is(err, usecase.ErrDentistHasNoServices):
		response.NotFound(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
