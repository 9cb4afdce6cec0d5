package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stayease/stayease/internal/api"
	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/session"
	"github.com/stayease/stayease/pkg/logger"
)

// TenantDashboard is the signed-in tenant's overview: their appointments,
// written reviews and notification inbox.
type TenantDashboard struct {
	page
	api  *api.Client
	sess *session.Store

	appointments  []domain.Appointment
	reviews       []domain.Review
	notifications []domain.Notification
}

func NewTenantDashboard(client *api.Client, sess *session.Store) *TenantDashboard {
	return &TenantDashboard{api: client, sess: sess}
}

// Load fetches the three resources concurrently. The outcome is all or
// nothing: one failed call fails the batch, but previously loaded data stays.
func (p *TenantDashboard) Load(ctx context.Context) error {
	user, ok := p.guard(p.sess, domain.RoleTenant, RouteOwnerDashboard)
	if !ok {
		return nil
	}
	ctx = context.WithValue(ctx, logger.PageKey, "tenant-dashboard")

	var (
		appointments  []domain.Appointment
		reviews       []domain.Review
		notifications []domain.Notification
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		appointments, err = p.api.AppointmentsByUser(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		reviews, err = p.api.ReviewsByUser(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		notifications, err = p.api.NotificationsByUser(gctx, user.ID)
		return err
	})

	err := g.Wait()
	if err != nil {
		logger.ErrorContext(ctx, "dashboard load failed", "error", err)
	}
	p.commit(err, func() {
		p.appointments = appointments
		p.reviews = reviews
		p.notifications = notifications
	})
	return err
}

func (p *TenantDashboard) Appointments() []domain.Appointment {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.appointments
}

func (p *TenantDashboard) Reviews() []domain.Review {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reviews
}

func (p *TenantDashboard) Notifications() []domain.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notifications
}

// Confirmed returns the upcoming (confirmed) appointments.
func (p *TenantDashboard) Confirmed() []domain.Appointment {
	return filterByStatus(p.Appointments(), domain.StatusConfirmed)
}

// Pending returns appointments still awaiting the owner's decision.
func (p *TenantDashboard) Pending() []domain.Appointment {
	return filterByStatus(p.Appointments(), domain.StatusPending)
}

func (p *TenantDashboard) UnreadCount() int {
	count := 0
	for _, n := range p.Notifications() {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func filterByStatus(appointments []domain.Appointment, status domain.AppointmentStatus) []domain.Appointment {
	var out []domain.Appointment
	for _, apt := range appointments {
		if domain.NormalizeStatus(apt.Status) == status {
			out = append(out, apt)
		}
	}
	return out
}
