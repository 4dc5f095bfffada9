package validator

import (
	"testing"
	"time"
)

type appointmentRequest struct {
	ClientID  int       `json:"client_id" validate:"required,min=1"`
	StartTime time.Time `json:"start_time" validate:"required"`
	Status    *string   `json:"status" validate:"omitempty,oneof=Pendiente Confirmado Rechazado"`
}

func TestCustomValidator_FormatValidationErrors(t *testing.T) {
	v := NewValidator()
	status := "Cancelado"

	err := v.Validate(&appointmentRequest{Status: &status})
	if err == nil {
		t.Fatal("expected validation error")
	}

	got := v.FormatValidationErrors(err)
	want := map[string]string{
		"client_id":  "client_id is required",
		"start_time": "start_time is required",
		"status":     "status must be one of: Pendiente Confirmado Rechazado",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("%s: got %q, want %q", field, got[field], msg)
		}
	}
}

func TestCustomValidator_Valid(t *testing.T) {
	v := NewValidator()
	status := "Confirmado"

	req := &appointmentRequest{ClientID: 3, StartTime: time.Now(), Status: &status}
	if err := v.Validate(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := v.Validate(&appointmentRequest{ClientID: 3, StartTime: time.Now()}); err != nil {
		t.Fatalf("nil optional status should pass: %v", err)
	}
}
