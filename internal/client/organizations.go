package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// OrganizationsClient implements ckan.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *http.Client
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(httpClient *http.Client) *OrganizationsClient {
	return &OrganizationsClient{
		httpClient: httpClient,
	}
}

// List implements ckan.OrganizationsClient.List.
func (c *OrganizationsClient) List(ctx context.Context, params *ckan.OrganizationListParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		groupListFields(b, &params.GroupListFields).OptStrings("organizations", params.Organizations)
	}

	return postAction(ctx, c.httpClient, "organization_list", b)
}

// ListForUser implements ckan.OrganizationsClient.ListForUser.
func (c *OrganizationsClient) ListForUser(ctx context.Context, params *ckan.OrganizationListForUserParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		b.OptString("id", params.ID).
			OptString("permission", params.Permission).
			OptBool("include_dataset_count", params.IncludeDatasetCount)
	}

	return postAction(ctx, c.httpClient, "organization_list_for_user", b)
}

// Show implements ckan.OrganizationsClient.Show.
func (c *OrganizationsClient) Show(ctx context.Context, params *ckan.GroupShowParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("organization_show")
	}

	return postAction(ctx, c.httpClient, "organization_show", groupShowBody(params))
}

// Autocomplete implements ckan.OrganizationsClient.Autocomplete.
func (c *OrganizationsClient) Autocomplete(ctx context.Context, params *ckan.AutocompleteParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("organization_autocomplete")
	}

	return postAction(ctx, c.httpClient, "organization_autocomplete", autocompleteBody(params))
}

// Create implements ckan.OrganizationsClient.Create.
func (c *OrganizationsClient) Create(ctx context.Context, params *ckan.GroupCreateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("organization_create")
	}

	b := body.New().
		String("name", params.Name).
		OptString("id", params.ID)

	return postAction(ctx, c.httpClient, "organization_create", organizationFields(b, &params.GroupFields))
}

// Update implements ckan.OrganizationsClient.Update.
func (c *OrganizationsClient) Update(ctx context.Context, params *ckan.GroupUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("organization_update")
	}

	b := body.New().
		String("id", params.ID).
		String("name", params.Name)

	return postAction(ctx, c.httpClient, "organization_update", organizationFields(b, &params.GroupFields))
}

// Patch implements ckan.OrganizationsClient.Patch.
func (c *OrganizationsClient) Patch(ctx context.Context, params *ckan.GroupPatchParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("organization_patch")
	}

	b := body.New().
		String("id", params.ID).
		OptString("name", params.Name)

	return postAction(ctx, c.httpClient, "organization_patch", organizationFields(b, &params.GroupFields))
}

// Delete implements ckan.OrganizationsClient.Delete.
func (c *OrganizationsClient) Delete(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "organization_delete", id)
}

// Purge implements ckan.OrganizationsClient.Purge.
func (c *OrganizationsClient) Purge(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "organization_purge", id)
}

// MemberCreate implements ckan.OrganizationsClient.MemberCreate.
func (c *OrganizationsClient) MemberCreate(ctx context.Context, params *ckan.GroupMemberParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("organization_member_create")
	}

	return postAction(ctx, c.httpClient, "organization_member_create", groupMemberBody(params))
}

// MemberDelete implements ckan.OrganizationsClient.MemberDelete.
func (c *OrganizationsClient) MemberDelete(ctx context.Context, id, username string) (*ckan.Response, error) {
	b := body.New().
		String("id", id).
		String("username", username)

	return postAction(ctx, c.httpClient, "organization_member_delete", b)
}
