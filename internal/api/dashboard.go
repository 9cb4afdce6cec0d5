package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stayease/stayease/internal/domain"
)

func (c *Client) UserDashboard(ctx context.Context, userID int64) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	path := fmt.Sprintf("/api/dashboard/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) OwnerDashboard(ctx context.Context, ownerID int64) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	path := fmt.Sprintf("/api/dashboard/owner/%d", ownerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
