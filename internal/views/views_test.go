package views_test

import (
	"strings"
	"testing"

	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/views"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"PENDING", "Pending"},
		{"pending", "Pending"},
		{"ACCEPTED", "Confirmed"},
		{"confirmed", "Confirmed"},
		{"REJECTED", "Cancelled"},
		{"cancelled", "Cancelled"},
		{"WAITLISTED", "WAITLISTED"},
	}
	for _, tt := range tests {
		if got := views.StatusLabel(tt.in); got != tt.want {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppointmentCardFormatsVisitTime(t *testing.T) {
	var b strings.Builder
	views.AppointmentCard(&b, domain.Appointment{
		ID:              1,
		AppointmentTime: "2025-03-01T14:30:00",
		Status:          "ACCEPTED",
		Listing:         &domain.Listing{Title: "Canal View Flat", Location: "Amsterdam"},
	})

	out := b.String()
	if !strings.Contains(out, "Canal View Flat") {
		t.Errorf("missing listing title in %q", out)
	}
	if !strings.Contains(out, "Confirmed") {
		t.Errorf("missing status label in %q", out)
	}
	if !strings.Contains(out, "Sat, Mar 1 2025 at 2:30 PM") {
		t.Errorf("visit time not formatted in %q", out)
	}
}

func TestNotificationListMarksUnread(t *testing.T) {
	var b strings.Builder
	views.NotificationList(&b, []domain.Notification{
		{ID: 1, Message: "unread", IsRead: false},
		{ID: 2, Message: "read", IsRead: true},
	})

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "*") {
		t.Errorf("unread line not marked: %q", lines[0])
	}
	if strings.HasPrefix(lines[1], "*") {
		t.Errorf("read line marked: %q", lines[1])
	}
}
