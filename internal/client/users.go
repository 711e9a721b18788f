package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// UsersClient implements ckan.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements ckan.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, params *ckan.UserListParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		b.OptString("q", params.Q).
			OptString("email", params.Email).
			OptString("order_by", params.OrderBy).
			OptBool("all_fields", params.AllFields).
			OptBool("include_site_user", params.IncludeSiteUser)
	}

	return postAction(ctx, c.httpClient, "user_list", b)
}

// Show implements ckan.UsersClient.Show.
func (c *UsersClient) Show(ctx context.Context, params *ckan.UserShowParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("user_show")
	}

	b := body.New().
		String("id", params.ID).
		OptBool("include_datasets", params.IncludeDatasets).
		OptBool("include_num_followers", params.IncludeNumFollowers).
		OptBool("include_password_hash", params.IncludePasswordHash).
		OptBool("include_plugin_extras", params.IncludePluginExtras)

	return postAction(ctx, c.httpClient, "user_show", b)
}

// Autocomplete implements ckan.UsersClient.Autocomplete.
func (c *UsersClient) Autocomplete(ctx context.Context, params *ckan.AutocompleteParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("user_autocomplete")
	}

	return postAction(ctx, c.httpClient, "user_autocomplete", autocompleteBody(params))
}

// Create implements ckan.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, params *ckan.UserCreateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("user_create")
	}

	b := body.New().
		String("name", params.Name).
		String("email", params.Email).
		String("password", params.Password).
		OptString("id", params.ID)

	return postAction(ctx, c.httpClient, "user_create", userFields(b, &params.UserFields))
}

// Invite implements ckan.UsersClient.Invite.
func (c *UsersClient) Invite(ctx context.Context, params *ckan.UserInviteParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("user_invite")
	}

	b := body.New().
		String("email", params.Email).
		String("group_id", params.GroupID).
		String("role", params.Role)

	return postAction(ctx, c.httpClient, "user_invite", b)
}

// Update implements ckan.UsersClient.Update. The password is only sent when
// it is being changed.
func (c *UsersClient) Update(ctx context.Context, params *ckan.UserUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("user_update")
	}

	b := body.New().
		String("id", params.ID).
		String("name", params.Name).
		String("email", params.Email).
		OptString("password", params.Password)

	return postAction(ctx, c.httpClient, "user_update", userFields(b, &params.UserFields))
}

// Patch implements ckan.UsersClient.Patch.
func (c *UsersClient) Patch(ctx context.Context, params *ckan.UserPatchParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("user_patch")
	}

	b := body.New().
		String("id", params.ID).
		OptString("name", params.Name).
		OptString("email", params.Email).
		OptString("password", params.Password)

	return postAction(ctx, c.httpClient, "user_patch", userFields(b, &params.UserFields))
}

func userFields(b *body.Builder, fields *ckan.UserFields) *body.Builder {
	return b.OptString("fullname", fields.Fullname).
		OptString("about", fields.About).
		OptString("image_url", fields.ImageURL).
		OptObject("plugin_extras", fields.PluginExtras).
		OptBool("with_apitoken", fields.WithAPIToken)
}

// Delete implements ckan.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "user_delete", id)
}

// SiteUser implements ckan.UsersClient.SiteUser.
func (c *UsersClient) SiteUser(ctx context.Context, deferCommit *bool) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, "get_site_user", body.New().OptBool("defer_commit", deferCommit))
}
