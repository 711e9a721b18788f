package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// APITokensClient implements ckan.APITokensClient.
type APITokensClient struct {
	httpClient *http.Client
}

// NewAPITokensClient creates a new API tokens client.
func NewAPITokensClient(httpClient *http.Client) *APITokensClient {
	return &APITokensClient{
		httpClient: httpClient,
	}
}

// List implements ckan.APITokensClient.List.
func (c *APITokensClient) List(ctx context.Context, userID string) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, "api_token_list", body.New().String("user_id", userID))
}

// Create implements ckan.APITokensClient.Create.
func (c *APITokensClient) Create(ctx context.Context, user, name string) (*ckan.Response, error) {
	b := body.New().
		String("user", user).
		String("name", name)

	return postAction(ctx, c.httpClient, "api_token_create", b)
}

// Revoke implements ckan.APITokensClient.Revoke.
func (c *APITokensClient) Revoke(ctx context.Context, params *ckan.APITokenRevokeParams) (*ckan.Response, error) {
	if params == nil {
		params = &ckan.APITokenRevokeParams{}
	}

	b := body.New().
		OptString("token", params.Token).
		OptString("jti", params.JTI)

	return postAction(ctx, c.httpClient, "api_token_revoke", b)
}
