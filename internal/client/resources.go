package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// ResourcesClient implements ckan.ResourcesClient.
type ResourcesClient struct {
	httpClient *http.Client
}

// NewResourcesClient creates a new resources client.
func NewResourcesClient(httpClient *http.Client) *ResourcesClient {
	return &ResourcesClient{
		httpClient: httpClient,
	}
}

// Show implements ckan.ResourcesClient.Show.
func (c *ResourcesClient) Show(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "resource_show", id)
}

// Search implements ckan.ResourcesClient.Search.
func (c *ResourcesClient) Search(ctx context.Context, params *ckan.ResourceSearchParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		b.OptRaw("query", params.Query).
			OptString("order_by", params.OrderBy).
			OptInt("offset", params.Offset).
			OptInt("limit", params.Limit)
	}

	return postAction(ctx, c.httpClient, "resource_search", b)
}

// Create implements ckan.ResourcesClient.Create. With params.Upload set the
// request is sent as multipart/form-data.
func (c *ResourcesClient) Create(ctx context.Context, params *ckan.ResourceCreateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("resource_create")
	}

	b := body.New().String("package_id", params.PackageID)

	return sendAction(ctx, c.httpClient, "resource_create", resourceFields(b, &params.ResourceFields), params.Upload)
}

// Update implements ckan.ResourcesClient.Update.
func (c *ResourcesClient) Update(ctx context.Context, params *ckan.ResourceUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("resource_update")
	}

	return c.write(ctx, "resource_update", params)
}

// Patch implements ckan.ResourcesClient.Patch.
func (c *ResourcesClient) Patch(ctx context.Context, params *ckan.ResourceUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("resource_patch")
	}

	return c.write(ctx, "resource_patch", params)
}

func (c *ResourcesClient) write(ctx context.Context, action string, params *ckan.ResourceUpdateParams) (*ckan.Response, error) {
	b := body.New().
		String("id", params.ID).
		OptString("package_id", params.PackageID)

	return sendAction(ctx, c.httpClient, action, resourceFields(b, &params.ResourceFields), params.Upload)
}

func resourceFields(b *body.Builder, fields *ckan.ResourceFields) *body.Builder {
	return b.OptString("url", fields.URL).
		OptString("description", fields.Description).
		OptString("format", fields.Format).
		OptString("hash", fields.Hash).
		OptString("name", fields.Name).
		OptString("resource_type", fields.ResourceType).
		OptString("mimetype", fields.Mimetype).
		OptString("mimetype_inner", fields.MimetypeInner).
		OptString("cache_url", fields.CacheURL).
		OptInt("size", fields.Size).
		OptString("created", fields.Created).
		OptString("last_modified", fields.LastModified).
		OptString("cache_last_updated", fields.CacheLastUpdated).
		Merge(fields.CustomFields)
}

// Delete implements ckan.ResourcesClient.Delete.
func (c *ResourcesClient) Delete(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "resource_delete", id)
}

// FormatAutocomplete implements ckan.ResourcesClient.FormatAutocomplete.
func (c *ResourcesClient) FormatAutocomplete(ctx context.Context, params *ckan.AutocompleteParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("format_autocomplete")
	}

	return postAction(ctx, c.httpClient, "format_autocomplete", autocompleteBody(params))
}
