package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// ResourceViewsClient implements ckan.ResourceViewsClient.
type ResourceViewsClient struct {
	httpClient *http.Client
}

// NewResourceViewsClient creates a new resource views client.
func NewResourceViewsClient(httpClient *http.Client) *ResourceViewsClient {
	return &ResourceViewsClient{
		httpClient: httpClient,
	}
}

// Show implements ckan.ResourceViewsClient.Show.
func (c *ResourceViewsClient) Show(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "resource_view_show", id)
}

// List implements ckan.ResourceViewsClient.List.
func (c *ResourceViewsClient) List(ctx context.Context, resourceID string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "resource_view_list", resourceID)
}

// Create implements ckan.ResourceViewsClient.Create.
func (c *ResourceViewsClient) Create(ctx context.Context, params *ckan.ResourceViewCreateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("resource_view_create")
	}

	b := body.New().
		String("resource_id", params.ResourceID).
		String("title", params.Title).
		OptString("description", params.Description).
		String("view_type", params.ViewType).
		OptString("config", params.Config)

	return postAction(ctx, c.httpClient, "resource_view_create", b)
}

// Update implements ckan.ResourceViewsClient.Update.
func (c *ResourceViewsClient) Update(ctx context.Context, params *ckan.ResourceViewUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("resource_view_update")
	}

	b := body.New().
		String("id", params.ID).
		String("resource_id", params.ResourceID).
		String("title", params.Title).
		OptString("description", params.Description).
		String("view_type", params.ViewType).
		OptString("config", params.Config)

	return postAction(ctx, c.httpClient, "resource_view_update", b)
}

// Reorder implements ckan.ResourceViewsClient.Reorder.
func (c *ResourceViewsClient) Reorder(ctx context.Context, resourceID string, order []string) (*ckan.Response, error) {
	b := body.New().
		String("id", resourceID).
		Strings("order", order)

	return postAction(ctx, c.httpClient, "resource_view_reorder", b)
}

// Delete implements ckan.ResourceViewsClient.Delete.
func (c *ResourceViewsClient) Delete(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "resource_view_delete", id)
}

// Clear implements ckan.ResourceViewsClient.Clear. A nil viewTypes clears
// views of every type.
func (c *ResourceViewsClient) Clear(ctx context.Context, viewTypes []string) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, "resource_view_clear", body.New().OptStrings("view_types", viewTypes))
}

// CreateDefaults implements ckan.ResourceViewsClient.CreateDefaults.
func (c *ResourceViewsClient) CreateDefaults(ctx context.Context, params *ckan.DefaultResourceViewsParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("create_default_resource_views")
	}

	b := body.New().
		Value("resource", params.Resource).
		OptObject("package", params.Package).
		OptBool("create_datastore_views", params.CreateDatastoreViews)

	return postAction(ctx, c.httpClient, "create_default_resource_views", b)
}
