package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// TagsClient implements ckan.TagsClient.
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
	}
}

// List implements ckan.TagsClient.List.
func (c *TagsClient) List(ctx context.Context, params *ckan.TagListParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		b.OptString("query", params.Query).
			OptString("vocabulary_id", params.VocabularyID).
			OptBool("all_fields", params.AllFields)
	}

	return postAction(ctx, c.httpClient, "tag_list", b)
}

// Show implements ckan.TagsClient.Show.
func (c *TagsClient) Show(ctx context.Context, params *ckan.TagShowParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("tag_show")
	}

	b := body.New().
		String("id", params.ID).
		OptString("vocabulary_id", params.VocabularyID).
		OptBool("include_datasets", params.IncludeDatasets)

	return postAction(ctx, c.httpClient, "tag_show", b)
}

// Search implements ckan.TagsClient.Search.
func (c *TagsClient) Search(ctx context.Context, params *ckan.TagSearchParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		b.OptRaw("query", params.Query).
			OptString("vocabulary_id", params.VocabularyID).
			OptInt("limit", params.Limit).
			OptInt("offset", params.Offset)
	}

	return postAction(ctx, c.httpClient, "tag_search", b)
}

// Autocomplete implements ckan.TagsClient.Autocomplete.
func (c *TagsClient) Autocomplete(ctx context.Context, params *ckan.TagAutocompleteParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("tag_autocomplete")
	}

	b := body.New().
		String("query", params.Query).
		OptString("vocabulary_id", params.VocabularyID).
		OptInt("limit", params.Limit).
		OptInt("offset", params.Offset)

	return postAction(ctx, c.httpClient, "tag_autocomplete", b)
}

// Create implements ckan.TagsClient.Create.
func (c *TagsClient) Create(ctx context.Context, name, vocabularyID string) (*ckan.Response, error) {
	b := body.New().
		String("name", name).
		String("vocabulary_id", vocabularyID)

	return postAction(ctx, c.httpClient, "tag_create", b)
}

// Delete implements ckan.TagsClient.Delete.
func (c *TagsClient) Delete(ctx context.Context, params *ckan.TagDeleteParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("tag_delete")
	}

	b := body.New().
		String("id", params.ID).
		OptString("vocabulary_id", params.VocabularyID)

	return postAction(ctx, c.httpClient, "tag_delete", b)
}
