package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// TaskStatusesClient implements ckan.TaskStatusesClient.
type TaskStatusesClient struct {
	httpClient *http.Client
}

// NewTaskStatusesClient creates a new task statuses client.
func NewTaskStatusesClient(httpClient *http.Client) *TaskStatusesClient {
	return &TaskStatusesClient{
		httpClient: httpClient,
	}
}

// Show implements ckan.TaskStatusesClient.Show. Either ID or the
// EntityID/TaskType/Key triple identifies the task.
func (c *TaskStatusesClient) Show(ctx context.Context, params *ckan.TaskStatusShowParams) (*ckan.Response, error) {
	if params == nil {
		params = &ckan.TaskStatusShowParams{}
	}

	b := body.New().
		OptString("id", params.ID).
		OptString("entity_id", params.EntityID).
		OptString("task_type", params.TaskType).
		OptString("key", params.Key)

	return postAction(ctx, c.httpClient, "task_status_show", b)
}

// Update implements ckan.TaskStatusesClient.Update.
func (c *TaskStatusesClient) Update(ctx context.Context, params *ckan.TaskStatusUpdateParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("task_status_update")
	}

	b := body.New().
		OptString("id", params.ID).
		String("entity_id", params.EntityID).
		String("entity_type", params.EntityType).
		String("task_type", params.TaskType).
		String("key", params.Key).
		OptString("value", params.Value).
		OptString("state", params.State).
		OptString("last_updated", params.LastUpdated).
		OptString("error", params.Error)

	return postAction(ctx, c.httpClient, "task_status_update", b)
}

// UpdateMany implements ckan.TaskStatusesClient.UpdateMany.
func (c *TaskStatusesClient) UpdateMany(ctx context.Context, data []map[string]any) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, "task_status_update_many", body.New().Objects("data", data))
}

// Delete implements ckan.TaskStatusesClient.Delete.
func (c *TaskStatusesClient) Delete(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "task_status_delete", id)
}
