package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/stayease/stayease/internal/domain"
)

type RegisterRequest struct {
	FullName string      `json:"fullName"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

type LoginResult struct {
	Message  string      `json:"message"`
	UserID   int64       `json:"userId"`
	FullName string      `json:"fullName"`
	Role     domain.Role `json:"role"`
}

// Register creates an account. The backend signals a duplicate account with a
// message field rather than a status code, so the body is inspected either way.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	httpReq, err := c.newRequest(ctx, http.MethodPost, "/api/auth/register", req)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message == "User already exists" {
		return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromBody(resp.StatusCode, raw)
	}
	return nil
}

// Login authenticates and returns the issued identity fields. The session
// cookie rides in on the response and lands in the client's jar. An invalid
// credential is reported through the message field, not the status code.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/api/auth/login", payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var result LoginResult
	if err := json.Unmarshal(raw, &result); err == nil && strings.Contains(result.Message, "Invalid") {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "Invalid email or password"}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromBody(resp.StatusCode, raw)
	}
	return &result, nil
}
