package api

import (
	"context"

	"github.com/mpetrova/studytrack/internal/client/models"
)

// Login exchanges credentials for a bearer token. The only endpoint,
// together with Register, that goes out without an Authorization header.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthPayload, error) {
	var payload models.AuthPayload
	if err := c.post(ctx, "/auth/login", req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Register creates an account. It does not establish a session; callers
// log in afterwards.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.post(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
