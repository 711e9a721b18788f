// Package ckanclient provides the main entry point for creating CKAN Action API clients
package ckanclient

import (
	"fmt"

	"github.com/fivetwenty-io/ckan-client/internal/client"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// New creates a new CKAN client from config. Only BaseURL is required; a
// trailing slash is dropped.
func New(config *ckan.Config) (ckan.Client, error) {
	if config == nil {
		return nil, ckan.ErrConfigRequired
	}

	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithURL creates an anonymous client.
func NewWithURL(baseURL string) (ckan.Client, error) {
	return New(&ckan.Config{
		BaseURL: baseURL,
	})
}

// NewWithToken creates a client that sends token in the Authorization header.
func NewWithToken(baseURL, token string) (ckan.Client, error) {
	return New(&ckan.Config{
		BaseURL: baseURL,
		Token:   token,
	})
}
