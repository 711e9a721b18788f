package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// JobsClient implements ckan.JobsClient.
type JobsClient struct {
	httpClient *http.Client
}

// NewJobsClient creates a new jobs client.
func NewJobsClient(httpClient *http.Client) *JobsClient {
	return &JobsClient{
		httpClient: httpClient,
	}
}

// List implements ckan.JobsClient.List. A nil queues lists every queue.
func (c *JobsClient) List(ctx context.Context, queues []string) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, "job_list", body.New().OptStrings("queues", queues))
}

// Show implements ckan.JobsClient.Show.
func (c *JobsClient) Show(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "job_show", id)
}

// Clear implements ckan.JobsClient.Clear. A nil queues clears every queue.
func (c *JobsClient) Clear(ctx context.Context, queues []string) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, "job_clear", body.New().OptStrings("queues", queues))
}

// Cancel implements ckan.JobsClient.Cancel.
func (c *JobsClient) Cancel(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "job_cancel", id)
}
