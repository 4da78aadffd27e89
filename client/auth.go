package client

import (
	"context"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"
)

// Register creates a client account and stores the issued token pair.
func (c *Client) Register(ctx context.Context, req request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	var auth response.AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Skip-Auth", "1").
		SetBody(req).
		Post("/api/auth/register")
	if err := c.decode(resp, err, &auth); err != nil {
		c.notifyError(err)
		return nil, err
	}

	c.SetTokens(auth.AccessToken, auth.RefreshToken)
	c.cache.Set(Key{Resource: ResourceProfile}, auth.User)
	return &auth, nil
}

// Login authenticates and stores the issued token pair.
func (c *Client) Login(ctx context.Context, req request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	var auth response.AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Skip-Auth", "1").
		SetBody(req).
		Post("/api/auth/login")
	if err := c.decode(resp, err, &auth); err != nil {
		c.notifyError(err)
		return nil, err
	}

	c.SetTokens(auth.AccessToken, auth.RefreshToken)
	c.cache.Set(Key{Resource: ResourceProfile}, auth.User)
	return &auth, nil
}

// Logout revokes the session server-side and clears local state either way.
func (c *Client) Logout(ctx context.Context) error {
	_, refresh := c.tokens()

	var callErr error
	if refresh != "" {
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("X-Skip-Auth", "1").
			SetBody(request.LogoutRequest{RefreshToken: refresh}).
			Post("/api/auth/logout")
		callErr = c.decode(resp, err, nil)
	}

	c.SetTokens("", "")
	c.cache.Invalidate(
		Key{Resource: ResourceProfile},
		Key{Resource: ResourceBookings},
		Key{Resource: ResourceCharterBookings},
		Key{Resource: ResourceTransportBookings},
	)
	// Message threads are keyed per booking, so drop the whole resource.
	c.cache.InvalidateResource(ResourceMessages)
	return callErr
}

// refreshSession rotates the token pair using the stored refresh token.
// Concurrent callers serialize on the client mutex inside SetTokens; a
// failed rotation leaves the old pair in place.
func (c *Client) refreshSession(ctx context.Context) error {
	_, refresh := c.tokens()
	if refresh == "" {
		return &ApiError{Status: 401, Message: "no session"}
	}

	var auth response.AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Skip-Auth", "1").
		SetBody(request.RefreshRequest{RefreshToken: refresh}).
		Post("/api/auth/refresh")
	if err := c.decode(resp, err, &auth); err != nil {
		return err
	}

	c.SetTokens(auth.AccessToken, auth.RefreshToken)
	return nil
}

// Profile returns the authenticated user, served from cache when warm.
func (c *Client) Profile(ctx context.Context) (*response.UserResponse, error) {
	if cached, ok := c.cache.Get(Key{Resource: ResourceProfile}); ok {
		if user, ok := cached.(response.UserResponse); ok {
			return &user, nil
		}
	}

	var user response.UserResponse
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/support/profile")
	if err := c.decode(resp, err, &user); err != nil {
		return nil, err
	}

	c.cache.Set(Key{Resource: ResourceProfile}, user)
	return &user, nil
}
