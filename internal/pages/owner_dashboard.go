package pages

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/stayease/stayease/internal/api"
	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/session"
	"github.com/stayease/stayease/pkg/logger"
)

// OwnerDashboard aggregates an owner's listings, the appointments booked
// against them, the reviews they collected and the owner's notifications.
type OwnerDashboard struct {
	page
	api  *api.Client
	sess *session.Store

	listings      []domain.Listing
	appointments  []domain.Appointment
	reviews       []domain.Review
	notifications []domain.Notification
}

func NewOwnerDashboard(client *api.Client, sess *session.Store) *OwnerDashboard {
	return &OwnerDashboard{api: client, sess: sess}
}

func (p *OwnerDashboard) Load(ctx context.Context) error {
	user, ok := p.guard(p.sess, domain.RoleOwner, RouteTenantDashboard)
	if !ok {
		return nil
	}
	ctx = context.WithValue(ctx, logger.PageKey, "owner-dashboard")

	var (
		listings      []domain.Listing
		appointments  []domain.Appointment
		notifications []domain.Notification
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		listings, err = p.api.FilterListings(gctx, api.ListingFilter{OwnerID: &user.ID})
		return err
	})
	g.Go(func() (err error) {
		appointments, err = p.api.AppointmentsByOwner(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		notifications, err = p.api.NotificationsByUser(gctx, user.ID)
		return err
	})

	err := g.Wait()
	var reviews []domain.Review
	if err == nil {
		reviews, err = p.reviewsForListings(ctx, listings)
	}
	if err != nil {
		logger.ErrorContext(ctx, "dashboard load failed", "error", err)
	}

	p.commit(err, func() {
		p.listings = listings
		p.appointments = appointments
		p.notifications = notifications
		p.reviews = reviews
	})
	return err
}

// reviewsForListings fans out one request per listing and flattens the
// results in listing order.
func (p *OwnerDashboard) reviewsForListings(ctx context.Context, listings []domain.Listing) ([]domain.Review, error) {
	perListing := make([][]domain.Review, len(listings))

	g, gctx := errgroup.WithContext(ctx)
	for i, listing := range listings {
		i, listing := i, listing
		g.Go(func() (err error) {
			perListing[i], err = p.api.ReviewsByListing(gctx, listing.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.Review
	for _, reviews := range perListing {
		all = append(all, reviews...)
	}
	return all, nil
}

// UpdateAppointmentStatus confirms or cancels a visit request, then reloads
// the whole dashboard so every derived count reflects the backend's answer.
// This page deliberately reloads instead of patching locally.
func (p *OwnerDashboard) UpdateAppointmentStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	if _, err := p.api.UpdateAppointmentStatus(ctx, id, status); err != nil {
		p.fail(err.Error())
		return err
	}
	return p.Load(ctx)
}

func (p *OwnerDashboard) Listings() []domain.Listing {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listings
}

func (p *OwnerDashboard) Appointments() []domain.Appointment {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.appointments
}

func (p *OwnerDashboard) Reviews() []domain.Review {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reviews
}

func (p *OwnerDashboard) Notifications() []domain.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notifications
}

func (p *OwnerDashboard) Pending() []domain.Appointment {
	return filterByStatus(p.Appointments(), domain.StatusPending)
}

func (p *OwnerDashboard) Confirmed() []domain.Appointment {
	return filterByStatus(p.Appointments(), domain.StatusConfirmed)
}

func (p *OwnerDashboard) UnreadCount() int {
	count := 0
	for _, n := range p.Notifications() {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// AverageRating is the arithmetic mean of all collected ratings, rounded to
// one decimal. Zero when there are no reviews.
func (p *OwnerDashboard) AverageRating() float64 {
	reviews := p.Reviews()
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}
