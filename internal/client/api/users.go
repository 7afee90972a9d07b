package api

import (
	"context"

	"github.com/mpetrova/studytrack/internal/client/models"
)

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateAPIKey issues a fresh API key for the authenticated user.
func (c *Client) CreateAPIKey(ctx context.Context) (*models.APIKey, error) {
	var key models.APIKey
	if err := c.post(ctx, "/users/api_key", nil, &key); err != nil {
		return nil, err
	}
	return &key, nil
}
