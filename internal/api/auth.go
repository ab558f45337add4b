package api

import (
	"context"
	"time"
)

// User is the authenticated principal as the backend reports it. The client
// never patches individual fields; the whole object is replaced on login or
// profile refresh.
type User struct {
	ID             string     `json:"id,omitempty"`
	Username       string     `json:"username"`
	Email          string     `json:"email,omitempty"`
	Role           string     `json:"role,omitempty"`
	AssignedBranch string     `json:"assigned_branch,omitempty"`
	IsActive       bool       `json:"is_active"`
	IsStaff        bool       `json:"is_staff"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// Credentials is the login request body
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the login endpoint's success payload. The user profile
// is optional; callers that need it when absent fetch it separately.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// Login exchanges credentials for a token
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/users/auth/token/login/", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser retrieves the profile for the current token. A 401 here means
// the stored token is stale.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RevokeToken asks the backend to invalidate the current token. Used only
// when logout revocation is enabled; callers treat it as fire-and-forget.
func (c *Client) RevokeToken(ctx context.Context) error {
	return c.post(ctx, "/users/auth/token/logout/", nil, nil)
}
