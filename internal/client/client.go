package client

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/constants"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// Client implements the ckan.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     ckan.Logger

	// Resource clients
	packages         ckan.PackagesClient
	resources        ckan.ResourcesClient
	resourceViews    ckan.ResourceViewsClient
	groups           ckan.GroupsClient
	organizations    ckan.OrganizationsClient
	members          ckan.MembersClient
	users            ckan.UsersClient
	tags             ckan.TagsClient
	vocabularies     ckan.VocabulariesClient
	follows          ckan.FollowsClient
	taskStatuses     ckan.TaskStatusesClient
	termTranslations ckan.TermTranslationsClient
	jobs             ckan.JobsClient
	apiTokens        ckan.APITokensClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *ckan.Config) []http.Option {
	var httpOpts []http.Option

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = constants.UserAgent
	}

	httpOpts = append(httpOpts, http.WithUserAgent(userAgent))

	return httpOpts
}

// New creates a new CKAN client.
func New(config *ckan.Config) (*Client, error) {
	if config == nil {
		return nil, ckan.ErrConfigRequired
	}

	baseURL := normalizeBaseURL(config.BaseURL)
	if baseURL == "" {
		return nil, ckan.ErrBaseURLRequired
	}

	httpClient := http.NewClient(baseURL, config.Token, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// normalizeBaseURL trims whitespace and trailing slashes. The URL is not
// otherwise checked: a malformed or unreachable URL surfaces as
// ckan.ErrTransport on the first call.
func normalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// initializeResourceClients creates all resource clients.
func (c *Client) initializeResourceClients() {
	c.packages = NewPackagesClient(c.httpClient)
	c.resources = NewResourcesClient(c.httpClient)
	c.resourceViews = NewResourceViewsClient(c.httpClient)
	c.groups = NewGroupsClient(c.httpClient)
	c.organizations = NewOrganizationsClient(c.httpClient)
	c.members = NewMembersClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.vocabularies = NewVocabulariesClient(c.httpClient)
	c.follows = NewFollowsClient(c.httpClient)
	c.taskStatuses = NewTaskStatusesClient(c.httpClient)
	c.termTranslations = NewTermTranslationsClient(c.httpClient)
	c.jobs = NewJobsClient(c.httpClient)
	c.apiTokens = NewAPITokensClient(c.httpClient)
}

// BaseURL returns the normalized site root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Status implements ckan.Client.Status.
func (c *Client) Status(ctx context.Context) (*ckan.Response, error) {
	return getAction(ctx, c.httpClient, "status_show")
}

// Licenses implements ckan.Client.Licenses.
func (c *Client) Licenses(ctx context.Context) (*ckan.Response, error) {
	return getAction(ctx, c.httpClient, "license_list")
}

// Help implements ckan.Client.Help.
func (c *Client) Help(ctx context.Context, name string) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, "help_show", body.New().String("name", name))
}

// ConfigOptionShow implements ckan.Client.ConfigOptionShow.
func (c *Client) ConfigOptionShow(ctx context.Context, key string) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, "config_option_show", body.New().String("key", key))
}

// ConfigOptionList implements ckan.Client.ConfigOptionList.
func (c *Client) ConfigOptionList(ctx context.Context) (*ckan.Response, error) {
	return getAction(ctx, c.httpClient, "config_option_list")
}

// ConfigOptionUpdate implements ckan.Client.ConfigOptionUpdate.
func (c *Client) ConfigOptionUpdate(ctx context.Context, options map[string]any) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, "config_option_update", body.New().Merge(options))
}

// Call implements ckan.Client.Call.
func (c *Client) Call(ctx context.Context, action string, fields map[string]any) (*ckan.Response, error) {
	return postAction(ctx, c.httpClient, action, body.New().Merge(fields))
}

// CallWithUpload implements ckan.Client.CallWithUpload.
func (c *Client) CallWithUpload(ctx context.Context, action string, fields map[string]any, uploadPath string) (*ckan.Response, error) {
	return sendAction(ctx, c.httpClient, action, body.New().Merge(fields), uploadPath)
}

// Packages implements ckan.Client.Packages.
func (c *Client) Packages() ckan.PackagesClient {
	return c.packages
}

// Resources implements ckan.Client.Resources.
func (c *Client) Resources() ckan.ResourcesClient {
	return c.resources
}

// ResourceViews implements ckan.Client.ResourceViews.
func (c *Client) ResourceViews() ckan.ResourceViewsClient {
	return c.resourceViews
}

// Groups implements ckan.Client.Groups.
func (c *Client) Groups() ckan.GroupsClient {
	return c.groups
}

// Organizations implements ckan.Client.Organizations.
func (c *Client) Organizations() ckan.OrganizationsClient {
	return c.organizations
}

// Members implements ckan.Client.Members.
func (c *Client) Members() ckan.MembersClient {
	return c.members
}

// Users implements ckan.Client.Users.
func (c *Client) Users() ckan.UsersClient {
	return c.users
}

// Tags implements ckan.Client.Tags.
func (c *Client) Tags() ckan.TagsClient {
	return c.tags
}

// Vocabularies implements ckan.Client.Vocabularies.
func (c *Client) Vocabularies() ckan.VocabulariesClient {
	return c.vocabularies
}

// Follows implements ckan.Client.Follows.
func (c *Client) Follows() ckan.FollowsClient {
	return c.follows
}

// TaskStatuses implements ckan.Client.TaskStatuses.
func (c *Client) TaskStatuses() ckan.TaskStatusesClient {
	return c.taskStatuses
}

// TermTranslations implements ckan.Client.TermTranslations.
func (c *Client) TermTranslations() ckan.TermTranslationsClient {
	return c.termTranslations
}

// Jobs implements ckan.Client.Jobs.
func (c *Client) Jobs() ckan.JobsClient {
	return c.jobs
}

// APITokens implements ckan.Client.APITokens.
func (c *Client) APITokens() ckan.APITokensClient {
	return c.apiTokens
}

// loggerAdapter adapts ckan.Logger to http.Logger.
type loggerAdapter struct {
	logger ckan.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
