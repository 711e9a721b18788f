package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// GroupsClient implements ckan.GroupsClient.
type GroupsClient struct {
	httpClient *http.Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *http.Client) *GroupsClient {
	return &GroupsClient{
		httpClient: httpClient,
	}
}

// List implements ckan.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, params *ckan.GroupListParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		groupListFields(b, &params.GroupListFields).OptStrings("groups", params.Groups)
	}

	return postAction(ctx, c.httpClient, "group_list", b)
}

// ListAuthz implements ckan.GroupsClient.ListAuthz.
func (c *GroupsClient) ListAuthz(ctx context.Context, params *ckan.GroupListAuthzParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		b.OptBool("available_only", params.AvailableOnly).
			OptBool("am_member", params.AmMember)
	}

	return postAction(ctx, c.httpClient, "group_list_authz", b)
}

// Show implements ckan.GroupsClient.Show.
func (c *GroupsClient) Show(ctx context.Context, params *ckan.GroupShowParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("group_show")
	}

	return postAction(ctx, c.httpClient, "group_show", groupShowBody(params))
}

// PackageShow implements ckan.GroupsClient.PackageShow.
func (c *GroupsClient) PackageShow(ctx context.Context, params *ckan.GroupPackageShowParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("group_package_show")
	}

	b := body.New().
		String("id", params.ID).
		OptInt("limit", params.Limit)

	return postAction(ctx, c.httpClient, "group_package_show", b)
}

// Autocomplete implements ckan.GroupsClient.Autocomplete.
func (c *GroupsClient) Autocomplete(ctx context.Context, params *ckan.AutocompleteParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("group_autocomplete")
	}

	return postAction(ctx, c.httpClient, "group_autocomplete", autocompleteBody(params))
}

// Create implements ckan.GroupsClient.Create.
func (c *GroupsClient) Create(ctx context.Context, params *ckan.GroupCreateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("group_create")
	}

	b := body.New().
		String("name", params.Name).
		OptString("id", params.ID)

	return postAction(ctx, c.httpClient, "group_create", groupFields(b, &params.GroupFields))
}

// Update implements ckan.GroupsClient.Update.
func (c *GroupsClient) Update(ctx context.Context, params *ckan.GroupUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("group_update")
	}

	b := body.New().
		String("id", params.ID).
		String("name", params.Name)

	return postAction(ctx, c.httpClient, "group_update", groupFields(b, &params.GroupFields))
}

// Patch implements ckan.GroupsClient.Patch.
func (c *GroupsClient) Patch(ctx context.Context, params *ckan.GroupPatchParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("group_patch")
	}

	b := body.New().
		String("id", params.ID).
		OptString("name", params.Name)

	return postAction(ctx, c.httpClient, "group_patch", groupFields(b, &params.GroupFields))
}

// Delete implements ckan.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "group_delete", id)
}

// Purge implements ckan.GroupsClient.Purge.
func (c *GroupsClient) Purge(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "group_purge", id)
}

// MemberCreate implements ckan.GroupsClient.MemberCreate.
func (c *GroupsClient) MemberCreate(ctx context.Context, params *ckan.GroupMemberParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("group_member_create")
	}

	return postAction(ctx, c.httpClient, "group_member_create", groupMemberBody(params))
}

// MemberDelete implements ckan.GroupsClient.MemberDelete.
func (c *GroupsClient) MemberDelete(ctx context.Context, id, username string) (*ckan.Response, error) {
	b := body.New().
		String("id", id).
		String("username", username)

	return postAction(ctx, c.httpClient, "group_member_delete", b)
}

func groupListFields(b *body.Builder, fields *ckan.GroupListFields) *body.Builder {
	return b.OptString("type", fields.Type).
		OptString("order_by", fields.OrderBy).
		OptString("sort", fields.Sort).
		OptInt("limit", fields.Limit).
		OptInt("offset", fields.Offset).
		OptBool("all_fields", fields.AllFields).
		OptBool("include_dataset_count", fields.IncludeDatasetCount).
		OptBool("include_extras", fields.IncludeExtras).
		OptBool("include_tags", fields.IncludeTags).
		OptBool("include_groups", fields.IncludeGroups).
		OptBool("include_users", fields.IncludeUsers)
}

func groupShowBody(params *ckan.GroupShowParams) *body.Builder {
	return body.New().
		String("id", params.ID).
		OptBool("include_datasets", params.IncludeDatasets).
		OptBool("include_dataset_count", params.IncludeDatasetCount).
		OptBool("include_extras", params.IncludeExtras).
		OptBool("include_users", params.IncludeUsers).
		OptBool("include_groups", params.IncludeGroups).
		OptBool("include_tags", params.IncludeTags).
		OptBool("include_followers", params.IncludeFollowers)
}

// groupFields appends the shared group write fields.
func groupFields(b *body.Builder, fields *ckan.GroupFields) *body.Builder {
	return b.OptString("title", fields.Title).
		OptString("description", fields.Description).
		OptString("image_url", fields.ImageURL).
		OptString("type", fields.Type).
		OptString("state", fields.State).
		OptString("approval_status", fields.ApprovalStatus).
		OptObjects("extras", fields.Extras).
		OptObjects("packages", fields.Packages).
		OptObjects("groups", fields.Groups).
		OptObjects("users", fields.Users)
}

// organizationFields is groupFields without type and groups.
func organizationFields(b *body.Builder, fields *ckan.GroupFields) *body.Builder {
	return b.OptString("title", fields.Title).
		OptString("description", fields.Description).
		OptString("image_url", fields.ImageURL).
		OptString("state", fields.State).
		OptString("approval_status", fields.ApprovalStatus).
		OptObjects("extras", fields.Extras).
		OptObjects("packages", fields.Packages).
		OptObjects("users", fields.Users)
}

func groupMemberBody(params *ckan.GroupMemberParams) *body.Builder {
	return body.New().
		String("id", params.ID).
		String("username", params.Username).
		String("role", params.Role)
}
