package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stayease/stayease/internal/api"
	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/session"
)

// TenantReviews shows the tenant's written reviews plus the listings they are
// eligible to review: confirmed visits whose listing has no review from this
// tenant yet.
type TenantReviews struct {
	page
	api  *api.Client
	sess *session.Store

	reviews  []domain.Review
	eligible []domain.Appointment
}

func NewTenantReviews(client *api.Client, sess *session.Store) *TenantReviews {
	return &TenantReviews{api: client, sess: sess}
}

func (p *TenantReviews) Load(ctx context.Context) error {
	user, ok := p.guard(p.sess, domain.RoleTenant, RouteHome)
	if !ok {
		return nil
	}

	var (
		reviews      []domain.Review
		appointments []domain.Appointment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		reviews, err = p.api.ReviewsByUser(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		appointments, err = p.api.AppointmentsByUser(gctx, user.ID)
		return err
	})

	err := g.Wait()
	p.commit(err, func() {
		p.reviews = reviews
		p.eligible = eligibleForReview(appointments, reviews)
	})
	return err
}

// eligibleForReview keeps confirmed appointments with an embedded listing the
// tenant has not reviewed yet. One review per (user, listing) pair.
func eligibleForReview(appointments []domain.Appointment, reviews []domain.Review) []domain.Appointment {
	reviewed := make(map[int64]bool, len(reviews))
	for _, r := range reviews {
		reviewed[r.ListingID] = true
	}

	var eligible []domain.Appointment
	for _, apt := range appointments {
		if domain.NormalizeStatus(apt.Status) != domain.StatusConfirmed {
			continue
		}
		if apt.Listing == nil || reviewed[apt.Listing.ID] {
			continue
		}
		eligible = append(eligible, apt)
	}
	return eligible
}

func (p *TenantReviews) Reviews() []domain.Review {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reviews
}

func (p *TenantReviews) Eligible() []domain.Appointment {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.eligible
}

// Submit creates a review and reloads so the listing drops out of the
// eligible set. This page reloads in full rather than patching locally.
func (p *TenantReviews) Submit(ctx context.Context, listingID int64, rating int, comment string) error {
	user := p.sess.Current()
	if user == nil {
		return errNotSignedIn
	}
	_, err := p.api.CreateReview(ctx, api.CreateReviewRequest{
		Rating:    rating,
		Comment:   comment,
		UserID:    user.ID,
		ListingID: listingID,
	})
	if err != nil {
		p.fail(err.Error())
		return err
	}
	return p.Load(ctx)
}

func (p *TenantReviews) Update(ctx context.Context, id int64, rating int, comment string) error {
	if _, err := p.api.UpdateReview(ctx, id, api.UpdateReviewRequest{Rating: rating, Comment: comment}); err != nil {
		p.fail(err.Error())
		return err
	}
	return p.Load(ctx)
}

func (p *TenantReviews) Delete(ctx context.Context, id int64) error {
	if err := p.api.DeleteReview(ctx, id); err != nil {
		p.fail(err.Error())
		return err
	}
	return p.Load(ctx)
}
