package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"
	"github.com/stayease/stayease/internal/domain"
)

func (c *Client) NotificationsByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	var notifications []domain.Notification
	path := fmt.Sprintf("/api/notifications/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// SendNotification delivers a message to a user's in-app inbox. The endpoint
// takes its input as query parameters, not a body.
func (c *Client) SendNotification(ctx context.Context, userID int64, message string) error {
	params, err := query.Values(struct {
		UserID  int64  `url:"userId"`
		Message string `url:"message"`
	}{UserID: userID, Message: message})
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/api/notifications/send?"+params.Encode(), nil, nil)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/notifications/read/%d", id), nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/notifications/%d", id), nil, nil)
}
