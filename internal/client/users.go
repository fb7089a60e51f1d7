package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// UsersClient implements fusionauth.UsersClient.
type UsersClient struct {
	rest *rest.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(restClient *rest.Client) *UsersClient {
	return &UsersClient{rest: restClient}
}

// Create implements fusionauth.UsersClient.Create. An empty userID lets the
// server generate one.
func (c *UsersClient) Create(ctx context.Context, userID string, request *fusionauth.UserRequest) (*fusionauth.UserResponse, error) {
	var result fusionauth.UserResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("user").Segment(userID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &result, nil
}

// Get implements fusionauth.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID string) (*fusionauth.UserResponse, error) {
	var result fusionauth.UserResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("user").Segment(userID)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return &result, nil
}

// GetByEmail implements fusionauth.UsersClient.GetByEmail.
func (c *UsersClient) GetByEmail(ctx context.Context, email string) (*fusionauth.UserResponse, error) {
	var result fusionauth.UserResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("user").
		Param("email", email)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return &result, nil
}

// GetByUsername implements fusionauth.UsersClient.GetByUsername.
func (c *UsersClient) GetByUsername(ctx context.Context, username string) (*fusionauth.UserResponse, error) {
	var result fusionauth.UserResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("user").
		Param("username", username)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting user by username: %w", err)
	}

	return &result, nil
}

// GetByIDs implements fusionauth.UsersClient.GetByIDs. Each id becomes a
// repeated ids query parameter.
func (c *UsersClient) GetByIDs(ctx context.Context, userIDs []string) (*fusionauth.UserResponse, error) {
	var result fusionauth.UserResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("user").
		Param("ids", userIDs)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting users by ids: %w", err)
	}

	return &result, nil
}

// Update implements fusionauth.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, userID string, request *fusionauth.UserRequest) (*fusionauth.UserResponse, error) {
	var result fusionauth.UserResponse

	req := c.rest.NewRequest().
		Method(http.MethodPut).
		Segment("api").Segment("user").Segment(userID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return &result, nil
}

// Deactivate implements fusionauth.UsersClient.Deactivate.
func (c *UsersClient) Deactivate(ctx context.Context, userID string) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("user").Segment(userID)

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("deactivating user: %w", err)
	}

	return nil
}

// Reactivate implements fusionauth.UsersClient.Reactivate.
func (c *UsersClient) Reactivate(ctx context.Context, userID string) (*fusionauth.UserResponse, error) {
	var result fusionauth.UserResponse

	req := c.rest.NewRequest().
		Method(http.MethodPut).
		Segment("api").Segment("user").Segment(userID).
		Param("reactivate", true)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("reactivating user: %w", err)
	}

	return &result, nil
}

// Delete implements fusionauth.UsersClient.Delete. Without hardDelete the
// user is only deactivated.
func (c *UsersClient) Delete(ctx context.Context, userID string, hardDelete bool) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("user").Segment(userID)

	if hardDelete {
		req.Param("hardDelete", true)
	}

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

// ChangePassword implements fusionauth.UsersClient.ChangePassword. The
// changePasswordID comes from a forgot-password flow; when empty the request
// identifies the user by loginId and current password instead.
func (c *UsersClient) ChangePassword(ctx context.Context, changePasswordID string, request *fusionauth.ChangePasswordRequest) (*fusionauth.ChangePasswordResponse, error) {
	var result fusionauth.ChangePasswordResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("user").Segment("change-password").Segment(changePasswordID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("changing password: %w", err)
	}

	return &result, nil
}

// ForgotPassword implements fusionauth.UsersClient.ForgotPassword.
func (c *UsersClient) ForgotPassword(ctx context.Context, request *fusionauth.ForgotPasswordRequest) (*fusionauth.ForgotPasswordResponse, error) {
	var result fusionauth.ForgotPasswordResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("user").Segment("forgot-password").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("starting forgot password: %w", err)
	}

	return &result, nil
}

// VerifyEmail implements fusionauth.UsersClient.VerifyEmail. Anonymous: the
// verification id is the proof.
func (c *UsersClient) VerifyEmail(ctx context.Context, verificationID string) error {
	req := c.rest.NewAnonymousRequest().
		Method(http.MethodPost).
		Segment("api").Segment("user").Segment("verify-email").Segment(verificationID)

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("verifying email: %w", err)
	}

	return nil
}

// ResendEmailVerification implements fusionauth.UsersClient.ResendEmailVerification.
func (c *UsersClient) ResendEmailVerification(ctx context.Context, email string) error {
	req := c.rest.NewRequest().
		Method(http.MethodPut).
		Segment("api").Segment("user").Segment("verify-email").
		Param("email", email)

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("resending email verification: %w", err)
	}

	return nil
}

// CommentOnUser implements fusionauth.UsersClient.CommentOnUser.
func (c *UsersClient) CommentOnUser(ctx context.Context, request *fusionauth.UserCommentRequest) (*fusionauth.UserCommentResponse, error) {
	var result fusionauth.UserCommentResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("user").Segment("comment").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("commenting on user: %w", err)
	}

	return &result, nil
}

// GetComments implements fusionauth.UsersClient.GetComments.
func (c *UsersClient) GetComments(ctx context.Context, userID string) (*fusionauth.UserCommentResponse, error) {
	var result fusionauth.UserCommentResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("user").Segment("comment").Segment(userID)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting user comments: %w", err)
	}

	return &result, nil
}
