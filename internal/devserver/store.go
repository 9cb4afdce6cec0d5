package devserver

import (
	"strings"
	"sync"
	"time"

	"github.com/stayease/stayease/internal/domain"
)

// wire casing of the appointment status enum, as the real backend stores it
const (
	wirePending  = "PENDING"
	wireAccepted = "ACCEPTED"
	wireRejected = "REJECTED"
)

type userRecord struct {
	domain.User
	passwordHash string
}

// Store is the in-memory state behind the dev server. It exists so the client
// can be developed and tested against the full REST contract without the real
// backend; nothing here persists.
type Store struct {
	mu sync.Mutex

	nextUserID         int64
	nextListingID      int64
	nextAppointmentID  int64
	nextReviewID       int64
	nextNotificationID int64

	users         map[int64]*userRecord
	byEmail       map[string]int64
	listings      map[int64]*domain.Listing
	appointments  map[int64]*domain.Appointment
	reviews       map[int64]*domain.Review
	notifications map[int64]*domain.Notification
	inbox         map[int64][]int64 // user id -> notification ids, insertion order
}

func NewStore() *Store {
	return &Store{
		users:         make(map[int64]*userRecord),
		byEmail:       make(map[string]int64),
		listings:      make(map[int64]*domain.Listing),
		appointments:  make(map[int64]*domain.Appointment),
		reviews:       make(map[int64]*domain.Review),
		notifications: make(map[int64]*domain.Notification),
		inbox:         make(map[int64][]int64),
	}
}

// ---------- users ----------

func (s *Store) CreateUser(fullName, email, passwordHash string, role domain.Role) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, false
	}
	s.nextUserID++
	rec := &userRecord{
		User: domain.User{
			ID:       s.nextUserID,
			FullName: fullName,
			Email:    email,
			Role:     role,
		},
		passwordHash: passwordHash,
	}
	s.users[rec.ID] = rec
	s.byEmail[email] = rec.ID

	u := rec.User
	return &u, true
}

func (s *Store) FindByEmail(email string) (*domain.User, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, "", false
	}
	rec := s.users[id]
	u := rec.User
	return &u, rec.passwordHash, true
}

func (s *Store) FindUser(id int64) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return nil, false
	}
	u := rec.User
	return &u, true
}

// ---------- listings ----------

func (s *Store) CreateListing(l domain.Listing) *domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextListingID++
	l.ID = s.nextListingID
	s.listings[l.ID] = &l

	out := l
	return &out
}

func (s *Store) Listings() []domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listingsLocked(nil)
}

type listingFilter struct {
	OwnerID            *int64
	Location           string
	AvailabilityStatus string
	FloorNumber        *int
}

func (s *Store) FilterListings(f listingFilter) []domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listingsLocked(&f)
}

func (s *Store) listingsLocked(f *listingFilter) []domain.Listing {
	out := make([]domain.Listing, 0, len(s.listings))
	for id := int64(1); id <= s.nextListingID; id++ {
		l, ok := s.listings[id]
		if !ok {
			continue
		}
		if f != nil {
			if f.OwnerID != nil && (l.Owner == nil || l.Owner.ID != *f.OwnerID) {
				continue
			}
			if f.Location != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(f.Location)) {
				continue
			}
			if f.AvailabilityStatus != "" && string(l.AvailabilityStatus) != f.AvailabilityStatus {
				continue
			}
			if f.FloorNumber != nil && l.FloorNumber != *f.FloorNumber {
				continue
			}
		}
		out = append(out, *l)
	}
	return out
}

// ---------- appointments ----------

func (s *Store) CreateAppointment(userID, listingID int64, appointmentTime string) (*domain.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[userID]
	if !ok {
		return nil, false
	}
	listing, ok := s.listings[listingID]
	if !ok {
		return nil, false
	}

	s.nextAppointmentID++
	user := rec.User
	l := *listing
	apt := &domain.Appointment{
		ID:              s.nextAppointmentID,
		AppointmentTime: appointmentTime,
		Status:          wirePending,
		User:            &user,
		Listing:         &l,
	}
	s.appointments[apt.ID] = apt

	out := *apt
	return &out, true
}

func (s *Store) AppointmentsByUser(userID int64) []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Appointment
	for id := int64(1); id <= s.nextAppointmentID; id++ {
		apt, ok := s.appointments[id]
		if !ok || apt.User == nil || apt.User.ID != userID {
			continue
		}
		out = append(out, *apt)
	}
	return out
}

func (s *Store) AppointmentsByOwner(ownerID int64) []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Appointment
	for id := int64(1); id <= s.nextAppointmentID; id++ {
		apt, ok := s.appointments[id]
		if !ok || apt.Listing == nil || apt.Listing.Owner == nil || apt.Listing.Owner.ID != ownerID {
			continue
		}
		out = append(out, *apt)
	}
	return out
}

func (s *Store) GetAppointment(id int64) (*domain.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apt, ok := s.appointments[id]
	if !ok {
		return nil, false
	}
	out := *apt
	return &out, true
}

func (s *Store) UpdateAppointmentStatus(id int64, wireStatus string) (*domain.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apt, ok := s.appointments[id]
	if !ok {
		return nil, false
	}
	apt.Status = wireStatus

	out := *apt
	return &out, true
}

// ---------- reviews ----------

func (s *Store) CreateReview(userID, listingID int64, rating int, comment string) (*domain.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[userID]
	if !ok {
		return nil, false
	}
	listing, ok := s.listings[listingID]
	if !ok {
		return nil, false
	}
	for _, r := range s.reviews {
		if r.UserID == userID && r.ListingID == listingID {
			return nil, false
		}
	}

	s.nextReviewID++
	review := &domain.Review{
		ID:        s.nextReviewID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().Format(time.RFC3339),
		UserID:    userID,
		UserName:  rec.FullName,
		ListingID: listingID,
		Listing: &domain.ListingSummary{
			ID:       listing.ID,
			Title:    listing.Title,
			Location: listing.Location,
		},
	}
	s.reviews[review.ID] = review

	out := *review
	return &out, true
}

func (s *Store) ReviewsByListing(listingID int64) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Review
	for id := int64(1); id <= s.nextReviewID; id++ {
		r, ok := s.reviews[id]
		if !ok || r.ListingID != listingID {
			continue
		}
		out = append(out, *r)
	}
	return out
}

func (s *Store) ReviewsByUser(userID int64) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Review
	for id := int64(1); id <= s.nextReviewID; id++ {
		r, ok := s.reviews[id]
		if !ok || r.UserID != userID {
			continue
		}
		out = append(out, *r)
	}
	return out
}

func (s *Store) UpdateReview(id int64, rating int, comment string) (*domain.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[id]
	if !ok {
		return nil, false
	}
	r.Rating = rating
	r.Comment = comment

	out := *r
	return &out, true
}

func (s *Store) DeleteReview(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return false
	}
	delete(s.reviews, id)
	return true
}

// ---------- notifications ----------

func (s *Store) AddNotification(userID int64, message string) (*domain.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNotificationLocked(userID, message)
}

func (s *Store) addNotificationLocked(userID int64, message string) (*domain.Notification, bool) {
	rec, ok := s.users[userID]
	if !ok {
		return nil, false
	}

	s.nextNotificationID++
	user := rec.User
	n := &domain.Notification{
		ID:        s.nextNotificationID,
		Message:   message,
		CreatedAt: time.Now().Format(time.RFC3339),
		User:      &user,
	}
	s.notifications[n.ID] = n
	s.inbox[userID] = append(s.inbox[userID], n.ID)

	out := *n
	return &out, true
}

func (s *Store) NotificationsByUser(userID int64) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Notification
	for _, id := range s.inbox[userID] {
		if n, ok := s.notifications[id]; ok {
			out = append(out, *n)
		}
	}
	return out
}

func (s *Store) MarkNotificationRead(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return false
	}
	n.IsRead = true
	return true
}

func (s *Store) DeleteNotification(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notifications[id]; !ok {
		return false
	}
	delete(s.notifications, id)
	return true
}

// ---------- dashboard ----------

func (s *Store) UserStats(userID int64) domain.DashboardStats {
	appointments := s.AppointmentsByUser(userID)
	reviews := s.ReviewsByUser(userID)
	return buildStats(appointments, reviews, 0)
}

func (s *Store) OwnerStats(ownerID int64) domain.DashboardStats {
	listings := s.FilterListings(listingFilter{OwnerID: &ownerID})
	appointments := s.AppointmentsByOwner(ownerID)

	var reviews []domain.Review
	for _, l := range listings {
		reviews = append(reviews, s.ReviewsByListing(l.ID)...)
	}
	return buildStats(appointments, reviews, len(listings))
}

func buildStats(appointments []domain.Appointment, reviews []domain.Review, listings int) domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalAppointments: len(appointments),
		TotalReviews:      len(reviews),
		TotalListings:     listings,
	}
	for _, apt := range appointments {
		switch apt.Status {
		case wirePending:
			stats.PendingAppointments++
		case wireAccepted:
			stats.AcceptedAppointments++
		case wireRejected:
			stats.RejectedAppointments++
		}
	}
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		stats.AverageRating = float64(sum) / float64(len(reviews))
	}
	return stats
}
