package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// GroupsClient implements fusionauth.GroupsClient.
type GroupsClient struct {
	rest *rest.Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(restClient *rest.Client) *GroupsClient {
	return &GroupsClient{rest: restClient}
}

// Create implements fusionauth.GroupsClient.Create.
func (c *GroupsClient) Create(ctx context.Context, groupID string, request *fusionauth.GroupRequest) (*fusionauth.GroupResponse, error) {
	var result fusionauth.GroupResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("group").Segment(groupID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	return &result, nil
}

// Get implements fusionauth.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, groupID string) (*fusionauth.GroupResponse, error) {
	var result fusionauth.GroupResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("group").Segment(groupID)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting group: %w", err)
	}

	return &result, nil
}

// List implements fusionauth.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context) (*fusionauth.GroupResponse, error) {
	var result fusionauth.GroupResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("group")

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	return &result, nil
}

// Update implements fusionauth.GroupsClient.Update.
func (c *GroupsClient) Update(ctx context.Context, groupID string, request *fusionauth.GroupRequest) (*fusionauth.GroupResponse, error) {
	var result fusionauth.GroupResponse

	req := c.rest.NewRequest().
		Method(http.MethodPut).
		Segment("api").Segment("group").Segment(groupID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("updating group: %w", err)
	}

	return &result, nil
}

// Delete implements fusionauth.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, groupID string) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("group").Segment(groupID)

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	return nil
}

// AddMembers implements fusionauth.GroupsClient.AddMembers.
func (c *GroupsClient) AddMembers(ctx context.Context, request *fusionauth.MemberRequest) (*fusionauth.MemberResponse, error) {
	var result fusionauth.MemberResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("group").Segment("member").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("adding group members: %w", err)
	}

	return &result, nil
}

// RemoveMembers implements fusionauth.GroupsClient.RemoveMembers.
func (c *GroupsClient) RemoveMembers(ctx context.Context, request *fusionauth.MemberDeleteRequest) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("group").Segment("member").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("removing group members: %w", err)
	}

	return nil
}
