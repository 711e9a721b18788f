package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// VocabulariesClient implements ckan.VocabulariesClient.
type VocabulariesClient struct {
	httpClient *http.Client
}

// NewVocabulariesClient creates a new vocabularies client.
func NewVocabulariesClient(httpClient *http.Client) *VocabulariesClient {
	return &VocabulariesClient{
		httpClient: httpClient,
	}
}

// List implements ckan.VocabulariesClient.List.
func (c *VocabulariesClient) List(ctx context.Context) (*ckan.Response, error) {
	return getAction(ctx, c.httpClient, "vocabulary_list")
}

// Show implements ckan.VocabulariesClient.Show.
func (c *VocabulariesClient) Show(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "vocabulary_show", id)
}

// Create implements ckan.VocabulariesClient.Create.
func (c *VocabulariesClient) Create(ctx context.Context, params *ckan.VocabularyCreateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("vocabulary_create")
	}

	b := body.New().
		String("name", params.Name).
		Objects("tags", params.Tags)

	return postAction(ctx, c.httpClient, "vocabulary_create", b)
}

// Update implements ckan.VocabulariesClient.Update.
func (c *VocabulariesClient) Update(ctx context.Context, params *ckan.VocabularyUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("vocabulary_update")
	}

	b := body.New().
		String("id", params.ID).
		String("name", params.Name).
		Objects("tags", params.Tags)

	return postAction(ctx, c.httpClient, "vocabulary_update", b)
}

// Delete implements ckan.VocabulariesClient.Delete.
func (c *VocabulariesClient) Delete(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "vocabulary_delete", id)
}
