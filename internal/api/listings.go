package api

import (
	"context"
	"net/http"

	"github.com/stayease/stayease/internal/domain"
)

// ListingFilter narrows the listings search. Zero fields are omitted from the
// request body.
type ListingFilter struct {
	OwnerID            *int64              `json:"ownerId,omitempty"`
	Location           string              `json:"location,omitempty"`
	AvailabilityStatus domain.Availability `json:"availabilityStatus,omitempty"`
	FloorNumber        *int                `json:"floorNumber,omitempty"`
}

type CreateListingRequest struct {
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Location           string              `json:"location"`
	FloorNumber        int                 `json:"floorNumber"`
	ImageURL           string              `json:"imageUrl"`
	AvailabilityStatus domain.Availability `json:"availabilityStatus"`
	Owner              OwnerRef            `json:"owner"`
}

type OwnerRef struct {
	ID int64 `json:"id"`
}

func (c *Client) Listings(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := c.do(ctx, http.MethodGet, "/api/listings", nil, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *Client) FilterListings(ctx context.Context, filter ListingFilter) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := c.do(ctx, http.MethodPost, "/api/listings/filter", filter, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *Client) CreateListing(ctx context.Context, req CreateListingRequest) (*domain.Listing, error) {
	var listing domain.Listing
	if err := c.do(ctx, http.MethodPost, "/api/listings", req, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}
