package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stayease/stayease/internal/domain"
)

type CreateReviewRequest struct {
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	UserID    int64  `json:"userId"`
	ListingID int64  `json:"listingId"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (c *Client) ReviewsByListing(ctx context.Context, listingID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	path := fmt.Sprintf("/api/reviews/listing/%d", listingID)
	if err := c.do(ctx, http.MethodGet, path, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) ReviewsByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	path := fmt.Sprintf("/api/reviews/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	var review domain.Review
	if err := c.do(ctx, http.MethodPost, "/api/reviews", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) UpdateReview(ctx context.Context, id int64, req UpdateReviewRequest) (*domain.Review, error) {
	var review domain.Review
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/reviews/%d", id), req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), nil, nil)
}
