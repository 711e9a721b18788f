package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// MembersClient implements ckan.MembersClient.
type MembersClient struct {
	httpClient *http.Client
}

// NewMembersClient creates a new members client.
func NewMembersClient(httpClient *http.Client) *MembersClient {
	return &MembersClient{
		httpClient: httpClient,
	}
}

// List implements ckan.MembersClient.List.
func (c *MembersClient) List(ctx context.Context, params *ckan.MemberListParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("member_list")
	}

	b := body.New().
		String("id", params.ID).
		OptString("object_type", params.ObjectType).
		OptString("capacity", params.Capacity)

	return postAction(ctx, c.httpClient, "member_list", b)
}

// Create implements ckan.MembersClient.Create.
func (c *MembersClient) Create(ctx context.Context, params *ckan.MemberCreateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("member_create")
	}

	b := body.New().
		String("id", params.ID).
		String("object", params.Object).
		String("object_type", params.ObjectType).
		String("capacity", params.Capacity)

	return postAction(ctx, c.httpClient, "member_create", b)
}

// Delete implements ckan.MembersClient.Delete.
func (c *MembersClient) Delete(ctx context.Context, params *ckan.MemberDeleteParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("member_delete")
	}

	b := body.New().
		String("id", params.ID).
		String("object", params.Object).
		String("object_type", params.ObjectType)

	return postAction(ctx, c.httpClient, "member_delete", b)
}

// RolesList implements ckan.MembersClient.RolesList.
func (c *MembersClient) RolesList(ctx context.Context, groupType *string) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, "member_roles_list", body.New().OptString("group_type", groupType))
}
