package client

import (
	"context"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// FollowsClient implements ckan.FollowsClient. Every action except
// followee_list takes a single id (or name).
type FollowsClient struct {
	httpClient *http.Client
}

// NewFollowsClient creates a new follows client.
func NewFollowsClient(httpClient *http.Client) *FollowsClient {
	return &FollowsClient{
		httpClient: httpClient,
	}
}

// FollowUser implements ckan.FollowsClient.FollowUser.
func (c *FollowsClient) FollowUser(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "follow_user", id)
}

// FollowDataset implements ckan.FollowsClient.FollowDataset.
func (c *FollowsClient) FollowDataset(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "follow_dataset", id)
}

// FollowGroup implements ckan.FollowsClient.FollowGroup.
func (c *FollowsClient) FollowGroup(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "follow_group", id)
}

// UnfollowUser implements ckan.FollowsClient.UnfollowUser.
func (c *FollowsClient) UnfollowUser(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "unfollow_user", id)
}

// UnfollowDataset implements ckan.FollowsClient.UnfollowDataset.
func (c *FollowsClient) UnfollowDataset(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "unfollow_dataset", id)
}

// UnfollowGroup implements ckan.FollowsClient.UnfollowGroup.
func (c *FollowsClient) UnfollowGroup(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "unfollow_group", id)
}

// AmFollowingUser implements ckan.FollowsClient.AmFollowingUser.
func (c *FollowsClient) AmFollowingUser(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "am_following_user", id)
}

// AmFollowingDataset implements ckan.FollowsClient.AmFollowingDataset.
func (c *FollowsClient) AmFollowingDataset(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "am_following_dataset", id)
}

// AmFollowingGroup implements ckan.FollowsClient.AmFollowingGroup.
func (c *FollowsClient) AmFollowingGroup(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "am_following_group", id)
}

// UserFollowerCount implements ckan.FollowsClient.UserFollowerCount.
func (c *FollowsClient) UserFollowerCount(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "user_follower_count", id)
}

// DatasetFollowerCount implements ckan.FollowsClient.DatasetFollowerCount.
func (c *FollowsClient) DatasetFollowerCount(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "dataset_follower_count", id)
}

// GroupFollowerCount implements ckan.FollowsClient.GroupFollowerCount.
func (c *FollowsClient) GroupFollowerCount(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "group_follower_count", id)
}

// OrganizationFollowerCount implements ckan.FollowsClient.OrganizationFollowerCount.
func (c *FollowsClient) OrganizationFollowerCount(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "organization_follower_count", id)
}

// UserFollowerList implements ckan.FollowsClient.UserFollowerList.
func (c *FollowsClient) UserFollowerList(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "user_follower_list", id)
}

// DatasetFollowerList implements ckan.FollowsClient.DatasetFollowerList.
func (c *FollowsClient) DatasetFollowerList(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "dataset_follower_list", id)
}

// GroupFollowerList implements ckan.FollowsClient.GroupFollowerList.
func (c *FollowsClient) GroupFollowerList(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "group_follower_list", id)
}

// OrganizationFollowerList implements ckan.FollowsClient.OrganizationFollowerList.
func (c *FollowsClient) OrganizationFollowerList(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "organization_follower_list", id)
}

// FolloweeCount implements ckan.FollowsClient.FolloweeCount.
func (c *FollowsClient) FolloweeCount(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "followee_count", id)
}

// UserFolloweeCount implements ckan.FollowsClient.UserFolloweeCount.
func (c *FollowsClient) UserFolloweeCount(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "user_followee_count", id)
}

// DatasetFolloweeCount implements ckan.FollowsClient.DatasetFolloweeCount.
func (c *FollowsClient) DatasetFolloweeCount(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "dataset_followee_count", id)
}

// GroupFolloweeCount implements ckan.FollowsClient.GroupFolloweeCount.
func (c *FollowsClient) GroupFolloweeCount(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "group_followee_count", id)
}

// OrganizationFolloweeCount implements ckan.FollowsClient.OrganizationFolloweeCount.
func (c *FollowsClient) OrganizationFolloweeCount(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "organization_followee_count", id)
}

// FolloweeList implements ckan.FollowsClient.FolloweeList.
func (c *FollowsClient) FolloweeList(ctx context.Context, params *ckan.FolloweeListParams) (*ckan.Response, error) {
	if params == nil {
		return nil, paramsRequired("followee_list")
	}

	b := body.New().
		String("id", params.ID).
		OptString("q", params.Q)

	return postAction(ctx, c.httpClient, "followee_list", b)
}

// UserFolloweeList implements ckan.FollowsClient.UserFolloweeList.
func (c *FollowsClient) UserFolloweeList(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "user_followee_list", id)
}

// DatasetFolloweeList implements ckan.FollowsClient.DatasetFolloweeList.
func (c *FollowsClient) DatasetFolloweeList(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "dataset_followee_list", id)
}

// GroupFolloweeList implements ckan.FollowsClient.GroupFolloweeList.
func (c *FollowsClient) GroupFolloweeList(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "group_followee_list", id)
}

// OrganizationFolloweeList implements ckan.FollowsClient.OrganizationFolloweeList.
func (c *FollowsClient) OrganizationFolloweeList(ctx context.Context, id string) (*ckan.Response, error) {
	return postID(ctx, c.httpClient, "organization_followee_list", id)
}
