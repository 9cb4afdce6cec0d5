package domain

// AppointmentStatus is the canonical tri-state appointment lifecycle. The
// backend speaks PENDING/ACCEPTED/REJECTED on the wire; display and filtering
// use these lowercase values.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// NormalizeStatus maps both status spellings onto the canonical value.
// Unrecognized input is passed through unchanged, so callers comparing
// against the canonical constants simply never match it. Use
// ParseAppointmentStatus to reject unknown values instead.
func NormalizeStatus(status string) AppointmentStatus {
	switch status {
	case "PENDING", "pending":
		return StatusPending
	case "ACCEPTED", "confirmed":
		return StatusConfirmed
	case "REJECTED", "cancelled":
		return StatusCancelled
	default:
		return AppointmentStatus(status)
	}
}

// ParseAppointmentStatus normalizes and reports whether the input belonged to
// the known status domain.
func ParseAppointmentStatus(status string) (AppointmentStatus, bool) {
	normalized := NormalizeStatus(status)
	switch normalized {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return normalized, true
	default:
		return normalized, false
	}
}

// WireStatus converts a canonical status to the backend enum casing used by
// the status-update endpoint.
func WireStatus(status AppointmentStatus) string {
	switch status {
	case StatusPending:
		return "PENDING"
	case StatusConfirmed:
		return "ACCEPTED"
	case StatusCancelled:
		return "REJECTED"
	default:
		return string(status)
	}
}
