package pages

import (
	"context"

	"github.com/stayease/stayease/internal/api"
	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/session"
)

// ListingsBrowse is the tenant's listing search: the full catalogue by
// default, narrowed through the filter endpoint on demand.
type ListingsBrowse struct {
	page
	api  *api.Client
	sess *session.Store

	listings []domain.Listing
}

func NewListingsBrowse(client *api.Client, sess *session.Store) *ListingsBrowse {
	return &ListingsBrowse{api: client, sess: sess}
}

func (p *ListingsBrowse) Load(ctx context.Context) error {
	if _, ok := p.guard(p.sess, domain.RoleTenant, RouteHome); !ok {
		return nil
	}

	listings, err := p.api.Listings(ctx)
	p.commit(err, func() {
		p.listings = listings
	})
	return err
}

// Filter replaces the shown listings with the filtered result set.
func (p *ListingsBrowse) Filter(ctx context.Context, filter api.ListingFilter) error {
	if _, ok := p.guard(p.sess, domain.RoleTenant, RouteHome); !ok {
		return nil
	}

	listings, err := p.api.FilterListings(ctx, filter)
	p.commit(err, func() {
		p.listings = listings
	})
	return err
}

func (p *ListingsBrowse) Listings() []domain.Listing {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listings
}

// OwnerListings manages the owner's own portfolio.
type OwnerListings struct {
	page
	api  *api.Client
	sess *session.Store

	listings []domain.Listing
}

func NewOwnerListings(client *api.Client, sess *session.Store) *OwnerListings {
	return &OwnerListings{api: client, sess: sess}
}

func (p *OwnerListings) Load(ctx context.Context) error {
	user, ok := p.guard(p.sess, domain.RoleOwner, RouteHome)
	if !ok {
		return nil
	}

	listings, err := p.api.FilterListings(ctx, api.ListingFilter{OwnerID: &user.ID})
	p.commit(err, func() {
		p.listings = listings
	})
	return err
}

func (p *OwnerListings) Listings() []domain.Listing {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listings
}

// Create adds a listing owned by the signed-in owner, then reloads the
// portfolio. This page reloads in full rather than patching locally.
func (p *OwnerListings) Create(ctx context.Context, req api.CreateListingRequest) error {
	user := p.sess.Current()
	if user == nil {
		return errNotSignedIn
	}
	req.Owner = api.OwnerRef{ID: user.ID}

	if _, err := p.api.CreateListing(ctx, req); err != nil {
		p.fail(err.Error())
		return err
	}
	return p.Load(ctx)
}
