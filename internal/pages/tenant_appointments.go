package pages

import (
	"context"

	"github.com/stayease/stayease/internal/api"
	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/session"
)

// TenantAppointments lists a tenant's visit requests with the
// all/pending/confirmed/cancelled tab filter.
type TenantAppointments struct {
	page
	api  *api.Client
	sess *session.Store

	appointments []domain.Appointment
}

func NewTenantAppointments(client *api.Client, sess *session.Store) *TenantAppointments {
	return &TenantAppointments{api: client, sess: sess}
}

func (p *TenantAppointments) Load(ctx context.Context) error {
	user, ok := p.guard(p.sess, domain.RoleTenant, RouteOwnerAppointments)
	if !ok {
		return nil
	}

	appointments, err := p.api.AppointmentsByUser(ctx, user.ID)
	p.commit(err, func() {
		p.appointments = appointments
	})
	return err
}

func (p *TenantAppointments) Appointments() []domain.Appointment {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.appointments
}

// Tab filters by canonical status; "all" returns everything. Appointments
// whose status normalizes outside the canonical triple match no tab.
func (p *TenantAppointments) Tab(tab string) []domain.Appointment {
	appointments := p.Appointments()
	if tab == "all" || tab == "" {
		return appointments
	}
	return filterByStatus(appointments, domain.AppointmentStatus(tab))
}

// DownloadReceipt saves the visit receipt PDF next to the other downloads and
// returns its path.
func (p *TenantAppointments) DownloadReceipt(ctx context.Context, id int64, dir string) (string, error) {
	path, err := p.api.DownloadReceipt(ctx, id, dir)
	if err != nil {
		p.fail(err.Error())
	}
	return path, err
}
