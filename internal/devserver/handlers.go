// Package devserver is an in-memory stand-in for the StayEase backend. It
// implements the REST contract the client consumes so the CLI and the page
// tests can run against a real HTTP surface without the production API.
package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/go-chi/chi/v5"

	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/utils"
	"github.com/stayease/stayease/pkg/auth"
)

type Server struct {
	store      *Store
	cookieName string
	sessionTTL time.Duration
}

func New(store *Store, cookieName string, sessionTTL time.Duration) *Server {
	return &Server{store: store, cookieName: cookieName, sessionTTL: sessionTTL}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.register)
			r.Post("/login", s.login)
		})
		r.Route("/listings", func(r chi.Router) {
			r.Get("/", s.listListings)
			r.Post("/", s.createListing)
			r.Post("/filter", s.filterListings)
		})
		r.Route("/appointments", func(r chi.Router) {
			r.Post("/", s.createAppointment)
			r.Get("/user/{id}", s.appointmentsByUser)
			r.Get("/owner/{id}", s.appointmentsByOwner)
			r.Put("/{id}/status", s.updateAppointmentStatus)
			r.Get("/{id}/receipt", s.receipt)
		})
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/listing/{id}", s.reviewsByListing)
			r.Get("/user/{id}", s.reviewsByUser)
			r.Post("/", s.createReview)
			r.Put("/{id}", s.updateReview)
			r.Delete("/{id}", s.deleteReview)
		})
		r.Route("/notifications", func(r chi.Router) {
			r.Post("/send", s.sendNotification)
			r.Put("/read/{id}", s.markNotificationRead)
			r.Get("/{userId}", s.notificationsByUser)
			r.Delete("/{id}", s.deleteNotification)
		})
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/user/{id}", s.userDashboard)
			r.Get("/owner/{id}", s.ownerDashboard)
		})
	})
	return r
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// ---------- auth ----------

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "invalid json")
		return
	}

	in.Email = utils.NormalizeEmail(in.Email)
	if in.FullName == "" || in.Password == "" || !utils.IsValidEmail(in.Email) {
		badRequest(w, "fullName, email and password are required")
		return
	}
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		badRequest(w, "role must be 'user' or 'owner'")
		return
	}

	hash, err := argon2id.CreateHash(in.Password, argon2id.DefaultParams)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error creating user")
		return
	}

	user, ok := s.store.CreateUser(utils.NormalizeString(in.FullName), in.Email, hash, role)
	if !ok {
		// the client keys off this exact message, not the status code
		writeJSON(w, http.StatusConflict, map[string]any{"message": "User already exists"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "invalid json")
		return
	}

	user, hash, ok := s.store.FindByEmail(utils.NormalizeEmail(in.Email))
	if ok {
		match, err := argon2id.ComparePasswordAndHash(in.Password, hash)
		ok = err == nil && match
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.NewSessionToken(user.ID, user.FullName, user.Email, string(user.Role), s.sessionTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error issuing session")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.sessionTTL),
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Login successful",
		"userId":   user.ID,
		"fullName": user.FullName,
		"role":     user.Role,
	})
}

// ---------- listings ----------

func (s *Server) listListings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Listings())
}

func (s *Server) createListing(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title              string `json:"title"`
		Description        string `json:"description"`
		Location           string `json:"location"`
		FloorNumber        int    `json:"floorNumber"`
		ImageURL           string `json:"imageUrl"`
		AvailabilityStatus string `json:"availabilityStatus"`
		Owner              struct {
			ID int64 `json:"id"`
		} `json:"owner"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if in.Title == "" || in.Location == "" {
		badRequest(w, "title and location are required")
		return
	}
	if in.AvailabilityStatus != string(domain.Available) && in.AvailabilityStatus != string(domain.Unavailable) {
		badRequest(w, "availabilityStatus must be 'available' or 'unavailable'")
		return
	}

	owner, ok := s.store.FindUser(in.Owner.ID)
	if !ok || owner.Role != domain.RoleOwner {
		badRequest(w, "owner not found")
		return
	}

	listing := s.store.CreateListing(domain.Listing{
		Title:              in.Title,
		Description:        in.Description,
		Location:           in.Location,
		FloorNumber:        in.FloorNumber,
		ImageURL:           in.ImageURL,
		AvailabilityStatus: domain.Availability(in.AvailabilityStatus),
		Owner:              owner,
	})
	writeJSON(w, http.StatusCreated, listing)
}

func (s *Server) filterListings(w http.ResponseWriter, r *http.Request) {
	var in struct {
		OwnerID            *int64 `json:"ownerId"`
		Location           string `json:"location"`
		AvailabilityStatus string `json:"availabilityStatus"`
		FloorNumber        *int   `json:"floorNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "invalid json")
		return
	}
	writeJSON(w, http.StatusOK, s.store.FilterListings(listingFilter{
		OwnerID:            in.OwnerID,
		Location:           in.Location,
		AvailabilityStatus: in.AvailabilityStatus,
		FloorNumber:        in.FloorNumber,
	}))
}

// ---------- appointments ----------

func (s *Server) createAppointment(w http.ResponseWriter, r *http.Request) {
	var in struct {
		AppointmentTime string `json:"appointmentTime"`
		UserID          int64  `json:"userId"`
		ListingID       int64  `json:"listingId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if _, err := time.Parse(domain.CombinedLayout, in.AppointmentTime); err != nil {
		badRequest(w, "appointmentTime must be yyyy-MM-ddTHH:mm:ss")
		return
	}

	apt, ok := s.store.CreateAppointment(in.UserID, in.ListingID, in.AppointmentTime)
	if !ok {
		notFound(w, "user or listing not found")
		return
	}

	if apt.Listing != nil && apt.Listing.Owner != nil {
		s.store.AddNotification(apt.Listing.Owner.ID,
			fmt.Sprintf("New visit request for %s", apt.Listing.Title))
	}
	writeJSON(w, http.StatusCreated, apt)
}

func (s *Server) appointmentsByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, s.store.AppointmentsByUser(id))
}

func (s *Server) appointmentsByOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, s.store.AppointmentsByOwner(id))
}

func (s *Server) updateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}

	status := r.URL.Query().Get("status")
	if status != wireAccepted && status != wireRejected {
		badRequest(w, "status must be ACCEPTED or REJECTED")
		return
	}

	apt, ok := s.store.UpdateAppointmentStatus(id, status)
	if !ok {
		notFound(w, "Appointment not found")
		return
	}

	if apt.User != nil && apt.Listing != nil {
		verdict := "confirmed"
		if status == wireRejected {
			verdict = "cancelled"
		}
		s.store.AddNotification(apt.User.ID,
			fmt.Sprintf("Your visit for %s was %s", apt.Listing.Title, verdict))
	}
	writeJSON(w, http.StatusOK, apt)
}

func (s *Server) receipt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	apt, ok := s.store.GetAppointment(id)
	if !ok {
		notFound(w, "Appointment not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%d.pdf", id))
	w.WriteHeader(http.StatusOK)
	w.Write(receiptPDF(apt))
}

// ---------- reviews ----------

func (s *Server) reviewsByListing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, s.store.ReviewsByListing(id))
}

func (s *Server) reviewsByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, s.store.ReviewsByUser(id))
}

func (s *Server) createReview(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
		UserID    int64  `json:"userId"`
		ListingID int64  `json:"listingId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if in.Rating < 1 || in.Rating > 5 {
		badRequest(w, "rating must be between 1 and 5")
		return
	}

	review, ok := s.store.CreateReview(in.UserID, in.ListingID, in.Rating, in.Comment)
	if !ok {
		writeError(w, http.StatusConflict, "Review already exists")
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (s *Server) updateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	var in struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if in.Rating < 1 || in.Rating > 5 {
		badRequest(w, "rating must be between 1 and 5")
		return
	}

	review, ok := s.store.UpdateReview(id, in.Rating, in.Comment)
	if !ok {
		notFound(w, "Review not found")
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (s *Server) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if !s.store.DeleteReview(id) {
		notFound(w, "Review not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------- notifications ----------

func (s *Server) notificationsByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userId")
	if !ok {
		badRequest(w, "invalid user id")
		return
	}
	writeJSON(w, http.StatusOK, s.store.NotificationsByUser(id))
}

func (s *Server) sendNotification(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	message := r.URL.Query().Get("message")
	if err != nil || userID <= 0 || message == "" {
		badRequest(w, "userId and message are required")
		return
	}

	notification, ok := s.store.AddNotification(userID, message)
	if !ok {
		notFound(w, "User not found")
		return
	}
	writeJSON(w, http.StatusCreated, notification)
}

func (s *Server) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if !s.store.MarkNotificationRead(id) {
		notFound(w, "Notification not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

func (s *Server) deleteNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if !s.store.DeleteNotification(id) {
		notFound(w, "Notification not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------- dashboard ----------

func (s *Server) userDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, s.store.UserStats(id))
}

func (s *Server) ownerDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, s.store.OwnerStats(id))
}
