package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/go-querystring/query"
	"github.com/stayease/stayease/internal/domain"
)

type CreateAppointmentRequest struct {
	// AppointmentTime is the combined "yyyy-MM-ddTHH:mm:ss" timestamp. Build
	// it with domain.CombineDateTime.
	AppointmentTime string `json:"appointmentTime"`
	UserID          int64  `json:"userId"`
	ListingID       int64  `json:"listingId"`
}

func (c *Client) AppointmentsByUser(ctx context.Context, userID int64) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	path := fmt.Sprintf("/api/appointments/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *Client) AppointmentsByOwner(ctx context.Context, ownerID int64) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	path := fmt.Sprintf("/api/appointments/owner/%d", ownerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*domain.Appointment, error) {
	var appointment domain.Appointment
	if err := c.do(ctx, http.MethodPost, "/api/appointments", req, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// UpdateAppointmentStatus accepts either spelling of the status and sends the
// backend enum casing on the wire.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	params, err := query.Values(struct {
		Status string `url:"status"`
	}{Status: domain.WireStatus(domain.NormalizeStatus(string(status)))})
	if err != nil {
		return nil, err
	}

	var appointment domain.Appointment
	path := fmt.Sprintf("/api/appointments/%d/status?%s", id, params.Encode())
	if err := c.do(ctx, http.MethodPut, path, nil, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// DownloadReceipt fetches the binary receipt and saves it into dir as
// receipt_<id>.pdf, returning the written path.
func (c *Client) DownloadReceipt(ctx context.Context, id int64, dir string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/appointments/%d/receipt", id), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp)
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read receipt body: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("receipt_%d.pdf", id))
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return "", fmt.Errorf("save receipt: %w", err)
	}
	return path, nil
}
