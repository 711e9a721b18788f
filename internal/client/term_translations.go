package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// TermTranslationsClient implements ckan.TermTranslationsClient.
type TermTranslationsClient struct {
	httpClient *http.Client
}

// NewTermTranslationsClient creates a new term translations client.
func NewTermTranslationsClient(httpClient *http.Client) *TermTranslationsClient {
	return &TermTranslationsClient{
		httpClient: httpClient,
	}
}

// Show implements ckan.TermTranslationsClient.Show.
func (c *TermTranslationsClient) Show(ctx context.Context, params *ckan.TermTranslationShowParams) (*ckan.Response, error) {
	b := body.New()

	if params != nil {
		b.OptStrings("terms", params.Terms).
			OptStrings("lang_codes", params.LangCodes)
	}

	return postAction(ctx, c.httpClient, "term_translation_show", b)
}

// Update implements ckan.TermTranslationsClient.Update.
func (c *TermTranslationsClient) Update(ctx context.Context, params *ckan.TermTranslationParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("term_translation_update")
	}

	b := body.New().
		String("term", params.Term).
		String("term_translation", params.TermTranslation).
		String("lang_code", params.LangCode)

	return postAction(ctx, c.httpClient, "term_translation_update", b)
}

// UpdateMany implements ckan.TermTranslationsClient.UpdateMany.
func (c *TermTranslationsClient) UpdateMany(ctx context.Context, data []map[string]any) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, "term_translation_update_many", body.New().Objects("data", data))
}
