package pages

import (
	"context"
	"errors"

	"github.com/stayease/stayease/internal/api"
	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/session"
)

// BookAppointment is the visit-booking flow for one listing.
type BookAppointment struct {
	page
	api  *api.Client
	sess *session.Store

	listingID int64
	listing   *domain.Listing
}

func NewBookAppointment(client *api.Client, sess *session.Store, listingID int64) *BookAppointment {
	return &BookAppointment{api: client, sess: sess, listingID: listingID}
}

func (p *BookAppointment) Load(ctx context.Context) error {
	if _, ok := p.guard(p.sess, domain.RoleTenant, RouteHome); !ok {
		return nil
	}
	if p.listingID == 0 {
		p.mu.Lock()
		p.state = StateRedirecting
		p.redirect = RouteTenantListings
		p.mu.Unlock()
		return nil
	}

	// The backend has no single-listing endpoint; the catalogue is scanned.
	listings, err := p.api.Listings(ctx)
	var found *domain.Listing
	if err == nil {
		for i := range listings {
			if listings[i].ID == p.listingID {
				found = &listings[i]
				break
			}
		}
		if found == nil {
			err = errors.New("Listing not found")
		}
	}

	p.commit(err, func() {
		p.listing = found
	})
	return err
}

func (p *BookAppointment) Listing() *domain.Listing {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listing
}

// Submit combines the date and clock into the backend timestamp and creates
// the visit request.
func (p *BookAppointment) Submit(ctx context.Context, date, clock string) (*domain.Appointment, error) {
	user := p.sess.Current()
	if user == nil {
		return nil, errNotSignedIn
	}

	combined := domain.CombineDateTime(date, clock)
	if combined == "" {
		return nil, errors.New("date and time are required")
	}

	appointment, err := p.api.CreateAppointment(ctx, api.CreateAppointmentRequest{
		AppointmentTime: combined,
		UserID:          user.ID,
		ListingID:       p.listingID,
	})
	if err != nil {
		p.fail(err.Error())
		return nil, err
	}
	return appointment, nil
}
