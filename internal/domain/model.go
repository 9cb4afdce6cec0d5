package domain

type Role string

const (
	RoleTenant Role = "user"
	RoleOwner  Role = "owner"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleTenant, RoleOwner:
		return Role(s), true
	default:
		return "", false
	}
}

type Availability string

const (
	Available   Availability = "available"
	Unavailable Availability = "unavailable"
)

type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

type Listing struct {
	ID                 int64        `json:"id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Location           string       `json:"location"`
	FloorNumber        int          `json:"floorNumber"`
	ImageURL           string       `json:"imageUrl"`
	AvailabilityStatus Availability `json:"availabilityStatus"`
	Owner              *User        `json:"owner,omitempty"`
}

type Appointment struct {
	ID int64 `json:"id"`

	// AppointmentTime is the canonical combined timestamp in
	// "yyyy-MM-ddTHH:mm:ss" form. Older records may instead carry a separate
	// AppointmentDate plus a clock-only AppointmentTime.
	AppointmentTime string `json:"appointmentTime"`
	AppointmentDate string `json:"appointmentDate,omitempty"`

	// Status arrives in either backend enum casing (PENDING/ACCEPTED/REJECTED)
	// or the lowercase labels. Always compare through NormalizeStatus.
	Status string `json:"status"`

	User      *User    `json:"user,omitempty"`
	Listing   *Listing `json:"listing,omitempty"`
	UserID    int64    `json:"userId,omitempty"`
	ListingID int64    `json:"listingId,omitempty"`
}

type ListingSummary struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
}

type Review struct {
	ID        int64           `json:"id"`
	Rating    int             `json:"rating"`
	Comment   string          `json:"comment"`
	CreatedAt string          `json:"createdAt"`
	UserID    int64           `json:"userId"`
	UserName  string          `json:"userName"`
	ListingID int64           `json:"listingId"`
	Listing   *ListingSummary `json:"listing,omitempty"`
}

type Notification struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt"`
	User      *User  `json:"user,omitempty"`
}

type DashboardStats struct {
	TotalAppointments    int     `json:"totalAppointments"`
	PendingAppointments  int     `json:"pendingAppointments"`
	AcceptedAppointments int     `json:"acceptedAppointments"`
	RejectedAppointments int     `json:"rejectedAppointments"`
	TotalReviews         int     `json:"totalReviews"`
	AverageRating        float64 `json:"averageRating"`
	TotalListings        int     `json:"totalListings"`
}
