package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinica-dental-api/internal/delivery/dto"
	"clinica-dental-api/internal/domain/entity"
	"clinica-dental-api/internal/service"
	"clinica-dental-api/internal/usecase"
	"clinica-dental-api/pkg/response"
	"clinica-dental-api/pkg/validator"

	"github.com/gorilla/mux"
)

type stubAppointmentUsecase struct {
	createErr error
	updateErr error
	findErr   error
	removeErr error
	services  *dto.ServiceListResponse
	lastID    int
	lastReq   *dto.UpdateAppointmentRequest
}

func (s *stubAppointmentUsecase) Create(_ context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.AppointmentResponse{ID: 1, ClientID: req.ClientID, DentistID: req.DentistID, Status: "Pendiente"}, nil
}

func (s *stubAppointmentUsecase) Update(_ context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	s.lastID, s.lastReq = id, req
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &dto.AppointmentResponse{ID: id}, nil
}

func (s *stubAppointmentUsecase) FindAll(context.Context) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, s.findErr
}

func (s *stubAppointmentUsecase) FindOne(_ context.Context, id int) (*dto.AppointmentResponse, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return &dto.AppointmentResponse{ID: id}, nil
}

func (s *stubAppointmentUsecase) Remove(_ context.Context, id int) (*dto.AppointmentResponse, error) {
	if s.removeErr != nil {
		return nil, s.removeErr
	}
	return &dto.AppointmentResponse{ID: id}, nil
}

func (s *stubAppointmentUsecase) ServicesForDentist(_ context.Context, dentistID int) (*dto.ServiceListResponse, error) {
	s.lastID = dentistID
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.services, nil
}

func newTestRouter(uc usecase.AppointmentUsecase) *mux.Router {
	h := NewAppointmentHandler(uc, validator.NewValidator())
	d := NewDentistHandler(uc)

	r := mux.NewRouter()
	r.HandleFunc("/appointments", h.CreateAppointment).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{id}", h.GetAppointment).Methods(http.MethodGet)
	r.HandleFunc("/appointments/{id}", h.UpdateAppointment).Methods(http.MethodPatch)
	r.HandleFunc("/appointments/{id}", h.DeleteAppointment).Methods(http.MethodDelete)
	r.HandleFunc("/dentists/{id}/services", d.GetDentistServices).Methods(http.MethodGet)
	return r
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

const validCreateBody = `{"client_id":1,"dentist_id":2,"service_id":3,"start_time":"2025-03-10T09:00:00-04:00","end_time":"2025-03-10T10:00:00-04:00"}`

func TestAppointmentHandler_Create(t *testing.T) {
	conflict := &usecase.ScheduleConflictError{Occupied: []entity.TimeRange{{
		Start: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
	}}}

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "created", body: validCreateBody, wantStatus: http.StatusCreated},
		{name: "malformed json", body: `{"client_id":`, wantStatus: http.StatusBadRequest},
		{name: "missing fields", body: `{"client_id":1}`, wantStatus: http.StatusBadRequest},
		{name: "unknown client", body: validCreateBody, err: fmt.Errorf("%w: id 1", usecase.ErrClientNotFound), wantStatus: http.StatusNotFound},
		{name: "overlap", body: validCreateBody, err: conflict, wantStatus: http.StatusConflict},
		{name: "outside clinic hours", body: validCreateBody, err: service.ErrOutsideClinicHours, wantStatus: http.StatusConflict},
		{name: "schedule busy", body: validCreateBody, err: service.ErrScheduleBusy, wantStatus: http.StatusConflict},
		{name: "inverted range", body: validCreateBody, err: usecase.ErrInvalidTimeRange, wantStatus: http.StatusBadRequest},
		{name: "database down", body: validCreateBody, err: fmt.Errorf("dial tcp: refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubAppointmentUsecase{createErr: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestAppointmentHandler_ConflictListsOccupiedSlots(t *testing.T) {
	conflict := &usecase.ScheduleConflictError{Occupied: []entity.TimeRange{{
		Start: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
	}}}
	router := newTestRouter(&stubAppointmentUsecase{createErr: conflict})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(validCreateBody)))

	body := decode(t, rec)
	if !strings.Contains(body.Message, "From 2025-03-10 09:00 to 2025-03-10 10:00") {
		t.Fatalf("message = %q", body.Message)
	}
	slots, ok := body.Error.([]interface{})
	if !ok || len(slots) != 1 {
		t.Fatalf("error = %#v, want one occupied slot", body.Error)
	}
}

func TestAppointmentHandler_Update(t *testing.T) {
	t.Run("passes only supplied fields", func(t *testing.T) {
		stub := &stubAppointmentUsecase{}
		router := newTestRouter(stub)

		req := httptest.NewRequest(http.MethodPatch, "/appointments/5", strings.NewReader(`{"status":"Confirmado"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		if stub.lastID != 5 || stub.lastReq.Status == nil || *stub.lastReq.Status != "Confirmado" {
			t.Fatalf("unexpected request: id=%d req=%+v", stub.lastID, stub.lastReq)
		}
		if stub.lastReq.StartTime != nil || stub.lastReq.DentistID != nil {
			t.Fatal("absent fields must stay nil")
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		router := newTestRouter(&stubAppointmentUsecase{})

		req := httptest.NewRequest(http.MethodPatch, "/appointments/5", strings.NewReader(`{"status":"Cancelado"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		body := decode(t, rec)
		errs, _ := body.Error.(map[string]interface{})
		if _, ok := errs["status"]; !ok {
			t.Fatalf("expected a status validation error, got %#v", body.Error)
		}
	})

	t.Run("missing appointment", func(t *testing.T) {
		router := newTestRouter(&stubAppointmentUsecase{updateErr: fmt.Errorf("%w: id 5", usecase.ErrAppointmentNotFound)})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/appointments/5", strings.NewReader(`{}`)))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestAppointmentHandler_InvalidID(t *testing.T) {
	router := newTestRouter(&stubAppointmentUsecase{})

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, "/appointments/abc", nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", method, rec.Code)
		}
	}
}

func TestAppointmentHandler_Delete(t *testing.T) {
	router := newTestRouter(&stubAppointmentUsecase{removeErr: fmt.Errorf("%w: id 9", usecase.ErrAppointmentNotFound)})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/appointments/9", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDentistHandler_GetDentistServices(t *testing.T) {
	t.Run("lists services", func(t *testing.T) {
		stub := &stubAppointmentUsecase{services: &dto.ServiceListResponse{
			Services: []dto.ServiceResponse{{ID: 1, Name: "Limpieza"}},
			Total:    1,
		}}
		router := newTestRouter(stub)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dentists/4/services", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if stub.lastID != 4 {
			t.Fatalf("dentist id = %d, want 4", stub.lastID)
		}
	})

	for name, err := range map[string]error{
		"unknown dentist":  usecase.ErrDentistNotFound,
		"without services": usecase.ErrDentistHasNoServices,
	} {
		t.Run(name, func(t *testing.T) {
			router := newTestRouter(&stubAppointmentUsecase{findErr: err})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dentists/4/services", nil))

			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rec.Code)
			}
			if body := decode(t, rec); body.Message != err.Error() {
				t.Fatalf("message = %q, want %q", body.Message, err.Error())
			}
		})
	}
}
