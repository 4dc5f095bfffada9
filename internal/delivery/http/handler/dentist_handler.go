package handler

import (
	"net/http"
	"strconv"

	"clinica-dental-api/internal/usecase"
	"clinica-dental-api/pkg/response"

	"github.com/gorilla/mux"
)

type DentistHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
}

func NewDentistHandler(appointmentUsecase usecase.AppointmentUsecase) *DentistHandler {
	return &DentistHandler{
		appointmentUsecase: appointmentUsecase,
	}
}

// GetDentistServices lists the services a dentist offers
func (h *DentistHandler) GetDentistServices(w http.ResponseWriter, r *http.Request) {
	dentistID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || dentistID <= 0 {
		response.Error(w, http.StatusBadRequest, "Invalid dentist ID", nil)
		return
	}

	services, err := h.appointmentUsecase.ServicesForDentist(r.Context(), dentistID)
	if err != nil {
		writeAppointmentError(w, err, "Failed to get dentist services")
		return
	}

	response.Success(w, http.StatusOK, "Dentist services retrieved successfully", services)
}
