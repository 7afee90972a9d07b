// Package models defines the payload types exchanged with the studytrack API.
// Date-only fields use "YYYY-MM-DD" strings as the server emits them;
// timestamps are RFC 3339 and map to time.Time.
package models

import "time"

type User struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthPayload is the data field of a successful login response.
type AuthPayload struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type APIKey struct {
	APIKey    string    `json:"api_key"`
	CreatedAt time.Time `json:"created_at"`
}
