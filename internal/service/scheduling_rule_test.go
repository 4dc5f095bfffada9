package service

import (
	"errors"
	"testing"
	"time"
)

func TestSchedulingRule_ValidateHours(t *testing.T) {
	loc := time.FixedZone("BOT", -4*60*60)
	rule := NewSchedulingRule(loc, false)

	day := func(hour, minute int) time.Time {
		return time.Date(2024, time.May, 6, hour, minute, 0, 0, loc)
	}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"morning slot", day(9, 0), day(10, 0), false},
		{"morning window edges", day(8, 0), day(12, 30), false},
		{"afternoon slot", day(14, 0), day(15, 0), false},
		{"afternoon window edges", day(14, 0), day(18, 0), false},
		{"crosses lunch gap", day(13, 0), day(15, 0), true},
		{"inside lunch gap", day(12, 45), day(13, 30), true},
		{"ends after morning close", day(12, 0), day(12, 31), true},
		{"starts before opening", day(7, 59), day(9, 0), true},
		{"ends after closing", day(17, 30), day(18, 1), true},
		{"spans both windows", day(9, 0), day(16, 0), true},
		{"ends next day", day(17, 0), day(17, 0).Add(24 * time.Hour), true},
		{"late night crossing midnight", day(23, 0), day(23, 0).Add(2 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.ValidateHours(tt.start, tt.end)
			if tt.wantErr {
				if !errors.Is(err, ErrOutsideClinicHours) {
					t.Fatalf("expected ErrOutsideClinicHours, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestSchedulingRule_UsesClinicZone(t *testing.T) {
	loc := time.FixedZone("BOT", -4*60*60)
	rule := NewSchedulingRule(loc, false)

	// 13:00 UTC is 09:00 at the clinic.
	start := time.Date(2024, time.May, 6, 13, 0, 0, 0, time.UTC)
	if err := rule.ValidateHours(start, start.Add(time.Hour)); err != nil {
		t.Fatalf("expected UTC input to be evaluated in clinic time, got %v", err)
	}

	// 18:00 UTC is 14:00 at the clinic, so 16:30 UTC falls in the lunch gap.
	lunch := time.Date(2024, time.May, 6, 16, 30, 0, 0, time.UTC)
	if err := rule.ValidateHours(lunch, lunch.Add(30*time.Minute)); !errors.Is(err, ErrOutsideClinicHours) {
		t.Fatalf("expected ErrOutsideClinicHours, got %v", err)
	}
}

func TestSchedulingRule_InclusiveOverlap(t *testing.T) {
	if !NewSchedulingRule(time.UTC, false).InclusiveOverlap() {
		t.Fatal("touching endpoints should collide by default")
	}
	if NewSchedulingRule(time.UTC, true).InclusiveOverlap() {
		t.Fatal("back-to-back mode should not treat touching endpoints as collisions")
	}
	if NewSchedulingRule(nil, false).Location() != time.Local {
		t.Fatal("nil location should fall back to time.Local")
	}
}
