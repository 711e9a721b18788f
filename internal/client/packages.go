package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// PackagesClient implements ckan.PackagesClient.
type PackagesClient struct {
	httpClient *http.Client
}

// NewPackagesClient creates a new packages client.
func NewPackagesClient(httpClient *http.Client) *PackagesClient {
	return &PackagesClient{
		httpClient: httpClient,
	}
}

// List implements ckan.PackagesClient.List.
func (c *PackagesClient) List(ctx context.Context, params *ckan.PackageListParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		b.OptInt("limit", params.Limit).
			OptInt("offset", params.Offset)
	}

	return postAction(ctx, c.httpClient, "package_list", b)
}

// ListWithResources implements ckan.PackagesClient.ListWithResources.
func (c *PackagesClient) ListWithResources(ctx context.Context, params *ckan.CurrentPackageListParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		b.OptInt("limit", params.Limit).
			OptInt("offset", params.Offset).
			OptInt("page", params.Page)
	}

	return postAction(ctx, c.httpClient, "current_package_list_with_resources", b)
}

// Show implements ckan.PackagesClient.Show.
func (c *PackagesClient) Show(ctx context.Context, params *ckan.PackageShowParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_show")
	}

	b := body.New().
		String("id", params.ID).
		OptBool("use_default_schema", params.UseDefaultSchema).
		OptBool("include_plugin_data", params.IncludePluginData)

	return postAction(ctx, c.httpClient, "package_show", b)
}

// Search implements ckan.PackagesClient.Search.
func (c *PackagesClient) Search(ctx context.Context, params *ckan.PackageSearchParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		b.OptString("q", params.Q).
			OptString("fq", params.FQ).
			OptStrings("fq_list", params.FQList).
			OptString("sort", params.Sort).
			OptInt("rows", params.Rows).
			OptInt("start", params.Start).
			OptString("facet", params.Facet).
			OptInt("facet.mincount", params.FacetMinCount).
			OptInt("facet.limit", params.FacetLimit).
			OptStrings("facet.field", params.FacetField).
			OptBool("include_drafts", params.IncludeDrafts).
			OptBool("include_private", params.IncludePrivate).
			OptBool("use_default_schema", params.UseDefaultSchema)
	}

	return postAction(ctx, c.httpClient, "package_search", b)
}

// Autocomplete implements ckan.PackagesClient.Autocomplete.
func (c *PackagesClient) Autocomplete(ctx context.Context, params *ckan.AutocompleteParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_autocomplete")
	}

	return postAction(ctx, c.httpClient, "package_autocomplete", autocompleteBody(params))
}

// Create implements ckan.PackagesClient.Create.
func (c *PackagesClient) Create(ctx context.Context, params *ckan.PackageCreateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_create")
	}

	b := body.New().String("name", params.Name)

	return postAction(ctx, c.httpClient, "package_create", packageFields(b, &params.PackageFields))
}

// Update implements ckan.PackagesClient.Update.
func (c *PackagesClient) Update(ctx context.Context, params *ckan.PackageUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_update")
	}

	b := body.New().
		String("id", params.ID).
		String("name", params.Name)

	return postAction(ctx, c.httpClient, "package_update", packageFields(b, &params.PackageFields))
}

// Patch implements ckan.PackagesClient.Patch.
func (c *PackagesClient) Patch(ctx context.Context, params *ckan.PackagePatchParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_patch")
	}

	b := body.New().
		String("id", params.ID).
		OptString("name", params.Name)

	return postAction(ctx, c.httpClient, "package_patch", packageFields(b, &params.PackageFields))
}

// packageFields appends the shared dataset fields and merges the custom
// fields last.
func packageFields(b *body.Builder, fields *ckan.PackageFields) *body.Builder {
	return b.OptString("title", fields.Title).
		OptBool("private", fields.Private).
		OptString("author", fields.Author).
		OptString("author_email", fields.AuthorEmail).
		OptString("maintainer", fields.Maintainer).
		OptString("maintainer_email", fields.MaintainerEmail).
		OptString("license_id", fields.LicenseID).
		OptString("notes", fields.Notes).
		OptString("url", fields.URL).
		OptString("version", fields.Version).
		OptString("state", fields.State).
		OptString("type", fields.Type).
		OptObjects("resources", fields.Resources).
		OptObjects("tags", fields.Tags).
		OptObjects("extras", fields.Extras).
		OptObject("plugin_data", fields.PluginData).
		OptObjects("relationships_as_object", fields.RelationshipsAsObject).
		OptObjects("relationships_as_subject", fields.RelationshipsAsSubject).
		OptObjects("groups", fields.Groups).
		OptString("owner_org", fields.OwnerOrg).
		Merge(fields.CustomFields)
}

// Revise implements ckan.PackagesClient.Revise.
func (c *PackagesClient) Revise(ctx context.Context, params *ckan.PackageReviseParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_revise")
	}

	b := body.New().
		Value("match", params.Match).
		OptStrings("filter", params.Filter).
		OptObject("update", params.Update).
		OptStrings("include", params.Include)

	return postAction(ctx, c.httpClient, "package_revise", b)
}

// Delete implements ckan.PackagesClient.Delete.
func (c *PackagesClient) Delete(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "package_delete", id)
}

// Purge implements ckan.PackagesClient.Purge.
func (c *PackagesClient) Purge(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "dataset_purge", id)
}

// ReorderResources implements ckan.PackagesClient.ReorderResources.
func (c *PackagesClient) ReorderResources(ctx context.Context, id string, order []string) (*ckan.Response, error) {
	b := body.New().
		String("id", id).
		Strings("order", order)

	return postAction(ctx, c.httpClient, "package_resource_reorder", b)
}

// UpdateOwnerOrg implements ckan.PackagesClient.UpdateOwnerOrg.
func (c *PackagesClient) UpdateOwnerOrg(ctx context.Context, id, organizationID string) (*ckan.Response, error) {
	b := body.New().
		String("id", id).
		String("organization_id", organizationID)

	return postAction(ctx, c.httpClient, "package_owner_org_update", b)
}

// CreateDefaultResourceViews implements ckan.PackagesClient.CreateDefaultResourceViews.
func (c *PackagesClient) CreateDefaultResourceViews(ctx context.Context, params *ckan.PackageDefaultViewsParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_create_default_resource_views")
	}

	b := body.New().
		Value("package", params.Package).
		OptBool("create_datastore_views", params.CreateDatastoreViews)

	return postAction(ctx, c.httpClient, "package_create_default_resource_views", b)
}

// CollaboratorList implements ckan.PackagesClient.CollaboratorList.
func (c *PackagesClient) CollaboratorList(ctx context.Context, params *ckan.CollaboratorListParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_collaborator_list")
	}

	return postAction(ctx, c.httpClient, "package_collaborator_list", collaboratorListBody(params))
}

// CollaboratorListForUser implements ckan.PackagesClient.CollaboratorListForUser.
func (c *PackagesClient) CollaboratorListForUser(ctx context.Context, params *ckan.CollaboratorListParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_collaborator_list_for_user")
	}

	return postAction(ctx, c.httpClient, "package_collaborator_list_for_user", collaboratorListBody(params))
}

func collaboratorListBody(params *ckan.CollaboratorListParams) *body.Builder {
	return body.New().
		String("id", params.ID).
		OptString("capacity", params.Capacity)
}

// CollaboratorCreate implements ckan.PackagesClient.CollaboratorCreate.
func (c *PackagesClient) CollaboratorCreate(ctx context.Context, params *ckan.CollaboratorCreateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_collaborator_create")
	}

	b := body.New().
		String("id", params.ID).
		String("user_id", params.UserID).
		String("capacity", params.Capacity)

	return postAction(ctx, c.httpClient, "package_collaborator_create", b)
}

// CollaboratorDelete implements ckan.PackagesClient.CollaboratorDelete.
func (c *PackagesClient) CollaboratorDelete(ctx context.Context, id, userID string) (*ckan.Response, error) {
	b := body.New().
		String("id", id).
		String("user_id", userID)

	return postAction(ctx, c.httpClient, "package_collaborator_delete", b)
}

// RelationshipsList implements ckan.PackagesClient.RelationshipsList.
func (c *PackagesClient) RelationshipsList(ctx context.Context, params *ckan.RelationshipsListParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_relationships_list")
	}

	b := body.New().
		String("id", params.ID).
		OptString("id2", params.ID2).
		OptString("rel", params.Rel)

	return postAction(ctx, c.httpClient, "package_relationships_list", b)
}

// RelationshipCreate implements ckan.PackagesClient.RelationshipCreate.
func (c *PackagesClient) RelationshipCreate(ctx context.Context, params *ckan.RelationshipParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_relationship_create")
	}

	b := relationshipBody(params).OptString("comment", params.Comment)

	return postAction(ctx, c.httpClient, "package_relationship_create", b)
}

// RelationshipUpdate implements ckan.PackagesClient.RelationshipUpdate.
func (c *PackagesClient) RelationshipUpdate(ctx context.Context, params *ckan.RelationshipParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_relationship_update")
	}

	b := relationshipBody(params).OptString("comment", params.Comment)

	return postAction(ctx, c.httpClient, "package_relationship_update", b)
}

// RelationshipDelete implements ckan.PackagesClient.RelationshipDelete.
func (c *PackagesClient) RelationshipDelete(ctx context.Context, params *ckan.RelationshipParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("package_relationship_delete")
	}

	return postAction(ctx, c.httpClient, "package_relationship_delete", relationshipBody(params))
}

func relationshipBody(params *ckan.RelationshipParams) *body.Builder {
	return body.New().
		String("subject", params.Subject).
		String("object", params.Object).
		String("type", params.Type)
}

// BulkUpdatePrivate implements ckan.PackagesClient.BulkUpdatePrivate.
func (c *PackagesClient) BulkUpdatePrivate(ctx context.Context, params *ckan.BulkUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("bulk_update_private")
	}

	return postAction(ctx, c.httpClient, "bulk_update_private", bulkUpdateBody(params))
}

// BulkUpdatePublic implements ckan.PackagesClient.BulkUpdatePublic.
func (c *PackagesClient) BulkUpdatePublic(ctx context.Context, params *ckan.BulkUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("bulk_update_public")
	}

	return postAction(ctx, c.httpClient, "bulk_update_public", bulkUpdateBody(params))
}

// BulkUpdateDelete implements ckan.PackagesClient.BulkUpdateDelete.
func (c *PackagesClient) BulkUpdateDelete(ctx context.Context, params *ckan.BulkUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("bulk_update_delete")
	}

	return postAction(ctx, c.httpClient, "bulk_update_delete", bulkUpdateBody(params))
}

func bulkUpdateBody(params *ckan.BulkUpdateParams) *body.Builder {
	return body.New().
		Strings("datasets", params.Datasets).
		String("org_id", params.OrgID)
}

func autocompleteBody(params *ckan.AutocompleteParams) *body.Builder {
	return body.New().
		String("q", params.Q).
		OptInt("limit", params.Limit)
}
