package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// RegistrationsClient implements fusionauth.RegistrationsClient.
type RegistrationsClient struct {
	rest *rest.Client
}

// NewRegistrationsClient creates a new registrations client.
func NewRegistrationsClient(restClient *rest.Client) *RegistrationsClient {
	return &RegistrationsClient{rest: restClient}
}

// Create implements fusionauth.RegistrationsClient.Create. The request may
// carry a User to create the user and the registration in one call.
func (c *RegistrationsClient) Create(ctx context.Context, userID string, request *fusionauth.RegistrationRequest) (*fusionauth.RegistrationResponse, error) {
	var result fusionauth.RegistrationResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("user").Segment("registration").Segment(userID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("creating registration: %w", err)
	}

	return &result, nil
}

// Get implements fusionauth.RegistrationsClient.Get.
func (c *RegistrationsClient) Get(ctx context.Context, userID, applicationID string) (*fusionauth.RegistrationResponse, error) {
	var result fusionauth.RegistrationResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("user").Segment("registration").Segment(userID).Segment(applicationID)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting registration: %w", err)
	}

	return &result, nil
}

// Update implements fusionauth.RegistrationsClient.Update.
func (c *RegistrationsClient) Update(ctx context.Context, userID string, request *fusionauth.RegistrationRequest) (*fusionauth.RegistrationResponse, error) {
	var result fusionauth.RegistrationResponse

	req := c.rest.NewRequest().
		Method(http.MethodPut).
		Segment("api").Segment("user").Segment("registration").Segment(userID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("updating registration: %w", err)
	}

	return &result, nil
}

// Delete implements fusionauth.RegistrationsClient.Delete.
func (c *RegistrationsClient) Delete(ctx context.Context, userID, applicationID string) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("user").Segment("registration").Segment(userID).Segment(applicationID)

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("deleting registration: %w", err)
	}

	return nil
}
