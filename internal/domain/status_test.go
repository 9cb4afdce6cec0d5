package domain_test

import (
	"testing"

	"github.com/stayease/stayease/internal/domain"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		want domain.AppointmentStatus
	}{
		{"PENDING", domain.StatusPending},
		{"pending", domain.StatusPending},
		{"ACCEPTED", domain.StatusConfirmed},
		{"confirmed", domain.StatusConfirmed},
		{"REJECTED", domain.StatusCancelled},
		{"cancelled", domain.StatusCancelled},
		// Unknown spellings pass through so contract breaks stay visible.
		{"WAITLISTED", domain.AppointmentStatus("WAITLISTED")},
		{"", domain.AppointmentStatus("")},
	}

	for _, tt := range tests {
		if got := domain.NormalizeStatus(tt.in); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeStatusIdempotent(t *testing.T) {
	for _, in := range []string{"PENDING", "ACCEPTED", "REJECTED", "pending", "confirmed", "cancelled", "junk"} {
		once := domain.NormalizeStatus(in)
		twice := domain.NormalizeStatus(string(once))
		if once != twice {
			t.Errorf("NormalizeStatus not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestParseAppointmentStatus(t *testing.T) {
	if got, ok := domain.ParseAppointmentStatus("ACCEPTED"); !ok || got != domain.StatusConfirmed {
		t.Errorf("ParseAppointmentStatus(ACCEPTED) = %q, %v", got, ok)
	}
	if _, ok := domain.ParseAppointmentStatus("WAITLISTED"); ok {
		t.Error("ParseAppointmentStatus accepted an unknown status")
	}
}

func TestWireStatus(t *testing.T) {
	tests := []struct {
		in   domain.AppointmentStatus
		want string
	}{
		{domain.StatusPending, "PENDING"},
		{domain.StatusConfirmed, "ACCEPTED"},
		{domain.StatusCancelled, "REJECTED"},
	}
	for _, tt := range tests {
		if got := domain.WireStatus(tt.in); got != tt.want {
			t.Errorf("WireStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
