package ckan

import (
	"context"
	"net/http"
	"time"
)

// Client is a handle on one CKAN site. It is immutable after construction
// and safe for concurrent use.
type Client interface {
	// Status calls status_show.
	Status(ctx context.Context) (*Response, error)
	// Licenses calls license_list.
	Licenses(ctx context.Context) (*Response, error)
	// Help calls help_show for the named action.
	Help(ctx context.Context, name string) (*Response, error)

	ConfigOptionShow(ctx context.Context, key string) (*Response, error)
	ConfigOptionList(ctx context.Context) (*Response, error)
	// ConfigOptionUpdate sends every key of options as a top-level field.
	ConfigOptionUpdate(ctx context.Context, options map[string]any) (*Response, error)

	// Call posts body to any action by name. A nil body is sent as {}.
	Call(ctx context.Context, action string, body map[string]any) (*Response, error)
	// CallWithUpload posts body as multipart/form-data with the file at
	// uploadPath in the "upload" part.
	CallWithUpload(ctx context.Context, action string, body map[string]any, uploadPath string) (*Response, error)

	ResourceClients
}

// ResourceClients provides access to the per-entity action groups.
type ResourceClients interface {
	Packages() PackagesClient
	Resources() ResourcesClient
	ResourceViews() ResourceViewsClient
	Groups() GroupsClient
	Organizations() OrganizationsClient
	Members() MembersClient
	Users() UsersClient
	Tags() TagsClient
	Vocabularies() VocabulariesClient
	Follows() FollowsClient
	TaskStatuses() TaskStatusesClient
	TermTranslations() TermTranslationsClient
	Jobs() JobsClient
	APITokens() APITokensClient
}

// PackagesClient covers dataset actions.
type PackagesClient interface {
	List(ctx context.Context, params *PackageListParams) (*Response, error)
	ListWithResources(ctx context.Context, params *CurrentPackageListParams) (*Response, error)
	Show(ctx context.Context, params *PackageShowParams) (*Response, error)
	Search(ctx context.Context, params *PackageSearchParams) (*Response, error)
	Autocomplete(ctx context.Context, params *AutocompleteParams) (*Response, error)
	Create(ctx context.Context, params *PackageCreateParams) (*Response, error)
	Update(ctx context.Context, params *PackageUpdateParams) (*Response, error)
	Patch(ctx context.Context, params *PackagePatchParams) (*Response, error)
	Revise(ctx context.Context, params *PackageReviseParams) (*Response, error)
	Delete(ctx context.Context, id string) (*Response, error)
	Purge(ctx context.Context, id string) (*Response, error)
	ReorderResources(ctx context.Context, id string, order []string) (*Response, error)
	UpdateOwnerOrg(ctx context.Context, id, organizationID string) (*Response, error)
	CreateDefaultResourceViews(ctx context.Context, params *PackageDefaultViewsParams) (*Response, error)

	CollaboratorList(ctx context.Context, params *CollaboratorListParams) (*Response, error)
	CollaboratorListForUser(ctx context.Context, params *CollaboratorListParams) (*Response, error)
	CollaboratorCreate(ctx context.Context, params *CollaboratorCreateParams) (*Response, error)
	CollaboratorDelete(ctx context.Context, id, userID string) (*Response, error)

	RelationshipsList(ctx context.Context, params *RelationshipsListParams) (*Response, error)
	RelationshipCreate(ctx context.Context, params *RelationshipParams) (*Response, error)
	RelationshipUpdate(ctx context.Context, params *RelationshipParams) (*Response, error)
	RelationshipDelete(ctx context.Context, params *RelationshipParams) (*Response, error)

	BulkUpdatePrivate(ctx context.Context, params *BulkUpdateParams) (*Response, error)
	BulkUpdatePublic(ctx context.Context, params *BulkUpdateParams) (*Response, error)
	BulkUpdateDelete(ctx context.Context, params *BulkUpdateParams) (*Response, error)
}

// ResourcesClient covers resource actions.
type ResourcesClient interface {
	Show(ctx context.Context, id string) (*Response, error)
	Search(ctx context.Context, params *ResourceSearchParams) (*Response, error)
	Create(ctx context.Context, params *ResourceCreateParams) (*Response, error)
	Update(ctx context.Context, params *ResourceUpdateParams) (*Response, error)
	Patch(ctx context.Context, params *ResourceUpdateParams) (*Response, error)
	Delete(ctx context.Context, id string) (*Response, error)
	FormatAutocomplete(ctx context.Context, params *AutocompleteParams) (*Response, error)
}

// ResourceViewsClient covers resource view actions.
type ResourceViewsClient interface {
	Show(ctx context.Context, id string) (*Response, error)
	List(ctx context.Context, resourceID string) (*Response, error)
	Create(ctx context.Context, params *ResourceViewCreateParams) (*Response, error)
	Update(ctx context.Context, params *ResourceViewUpdateParams) (*Response, error)
	Reorder(ctx context.Context, resourceID string, order []string) (*Response, error)
	Delete(ctx context.Context, id string) (*Response, error)
	Clear(ctx context.Context, viewTypes []string) (*Response, error)
	CreateDefaults(ctx context.Context, params *DefaultResourceViewsParams) (*Response, error)
}

// GroupsClient covers group actions.
type GroupsClient interface {
	List(ctx context.Context, params *GroupListParams) (*Response, error)
	ListAuthz(ctx context.Context, params *GroupListAuthzParams) (*Response, error)
	Show(ctx context.Context, params *GroupShowParams) (*Response, error)
	PackageShow(ctx context.Context, params *GroupPackageShowParams) (*Response, error)
	Autocomplete(ctx context.Context, params *AutocompleteParams) (*Response, error)
	Create(ctx context.Context, params *GroupCreateParams) (*Response, error)
	Update(ctx context.Context, params *GroupUpdateParams) (*Response, error)
	Patch(ctx context.Context, params *GroupPatchParams) (*Response, error)
	Delete(ctx context.Context, id string) (*Response, error)
	Purge(ctx context.Context, id string) (*Response, error)
	MemberCreate(ctx context.Context, params *GroupMemberParams) (*Response, error)
	MemberDelete(ctx context.Context, id, username string) (*Response, error)
}

// OrganizationsClient covers organization actions.
type OrganizationsClient interface {
	List(ctx context.Context, params *OrganizationListParams) (*Response, error)
	ListForUser(ctx context.Context, params *OrganizationListForUserParams) (*Response, error)
	Show(ctx context.Context, params *GroupShowParams) (*Response, error)
	Autocomplete(ctx context.Context, params *AutocompleteParams) (*Response, error)
	Create(ctx context.Context, params *GroupCreateParams) (*Response, error)
	Update(ctx context.Context, params *GroupUpdateParams) (*Response, error)
	Patch(ctx context.Context, params *GroupPatchParams) (*Response, error)
	Delete(ctx context.Context, id string) (*Response, error)
	Purge(ctx context.Context, id string) (*Response, error)
	MemberCreate(ctx context.Context, params *GroupMemberParams) (*Response, error)
	MemberDelete(ctx context.Context, id, username string) (*Response, error)
}

// MembersClient covers the generic member actions.
type MembersClient interface {
	List(ctx context.Context, params *MemberListParams) (*Response, error)
	Create(ctx context.Context, params *MemberCreateParams) (*Response, error)
	Delete(ctx context.Context, params *MemberDeleteParams) (*Response, error)
	RolesList(ctx context.Context, groupType *string) (*Response, error)
}

// UsersClient covers user actions.
type UsersClient interface {
	List(ctx context.Context, params *UserListParams) (*Response, error)
	Show(ctx context.Context, params *UserShowParams) (*Response, error)
	Autocomplete(ctx context.Context, params *AutocompleteParams) (*Response, error)
	Create(ctx context.Context, params *UserCreateParams) (*Response, error)
	Invite(ctx context.Context, params *UserInviteParams) (*Response, error)
	Update(ctx context.Context, params *UserUpdateParams) (*Response, error)
	Patch(ctx context.Context, params *UserPatchParams) (*Response, error)
	Delete(ctx context.Context, id string) (*Response, error)
	SiteUser(ctx context.Context, deferCommit *bool) (*Response, error)
}

// TagsClient covers tag actions.
type TagsClient interface {
	List(ctx context.Context, params *TagListParams) (*Response, error)
	Show(ctx context.Context, params *TagShowParams) (*Response, error)
	Search(ctx context.Context, params *TagSearchParams) (*Response, error)
	Autocomplete(ctx context.Context, params *TagAutocompleteParams) (*Response, error)
	Create(ctx context.Context, name, vocabularyID string) (*Response, error)
	Delete(ctx context.Context, params *TagDeleteParams) (*Response, error)
}

// VocabulariesClient covers tag vocabulary actions.
type VocabulariesClient interface {
	List(ctx context.Context) (*Response, error)
	Show(ctx context.Context, id string) (*Response, error)
	Create(ctx context.Context, params *VocabularyCreateParams) (*Response, error)
	Update(ctx context.Context, params *VocabularyUpdateParams) (*Response, error)
	Delete(ctx context.Context, id string) (*Response, error)
}

// FollowsClient covers follow, unfollow, follower and followee actions.
// Datasets are addressed by id or name throughout.
type FollowsClient interface {
	FollowUser(ctx context.Context, id string) (*Response, error)
	FollowDataset(ctx context.Context, id string) (*Response, error)
	FollowGroup(ctx context.Context, id string) (*Response, error)
	UnfollowUser(ctx context.Context, id string) (*Response, error)
	UnfollowDataset(ctx context.Context, id string) (*Response, error)
	UnfollowGroup(ctx context.Context, id string) (*Response, error)

	AmFollowingUser(ctx context.Context, id string) (*Response, error)
	AmFollowingDataset(ctx context.Context, id string) (*Response, error)
	AmFollowingGroup(ctx context.Context, id string) (*Response, error)

	UserFollowerCount(ctx context.Context, id string) (*Response, error)
	DatasetFollowerCount(ctx context.Context, id string) (*Response, error)
	GroupFollowerCount(ctx context.Context, id string) (*Response, error)
	OrganizationFollowerCount(ctx context.Context, id string) (*Response, error)

	UserFollowerList(ctx context.Context, id string) (*Response, error)
	DatasetFollowerList(ctx context.Context, id string) (*Response, error)
	GroupFollowerList(ctx context.Context, id string) (*Response, error)
	OrganizationFollowerList(ctx context.Context, id string) (*Response, error)

	FolloweeCount(ctx context.Context, id string) (*Response, error)
	UserFolloweeCount(ctx context.Context, id string) (*Response, error)
	DatasetFolloweeCount(ctx context.Context, id string) (*Response, error)
	GroupFolloweeCount(ctx context.Context, id string) (*Response, error)
	OrganizationFolloweeCount(ctx context.Context, id string) (*Response, error)

	FolloweeList(ctx context.Context, params *FolloweeListParams) (*Response, error)
	UserFolloweeList(ctx context.Context, id string) (*Response, error)
	DatasetFolloweeList(ctx context.Context, id string) (*Response, error)
	GroupFolloweeList(ctx context.Context, id string) (*Response, error)
	OrganizationFolloweeList(ctx context.Context, id string) (*Response, error)
}

// TaskStatusesClient covers task status actions.
type TaskStatusesClient interface {
	Show(ctx context.Context, params *TaskStatusShowParams) (*Response, error)
	Update(ctx context.Context, params *TaskStatusUpdateParams) (*Response, error)
	UpdateMany(ctx context.Context, data []map[string]any) (*Response, error)
	Delete(ctx context.Context, id string) (*Response, error)
}

// TermTranslationsClient covers term translation actions.
type TermTranslationsClient interface {
	Show(ctx context.Context, params *TermTranslationShowParams) (*Response, error)
	Update(ctx context.Context, params *TermTranslationParams) (*Response, error)
	UpdateMany(ctx context.Context, data []map[string]any) (*Response, error)
}

// JobsClient covers background job actions.
type JobsClient interface {
	List(ctx context.Context, queues []string) (*Response, error)
	Show(ctx context.Context, id string) (*Response, error)
	Clear(ctx context.Context, queues []string) (*Response, error)
	Cancel(ctx context.Context, id string) (*Response, error)
}

// APITokensClient covers API token actions.
type APITokensClient interface {
	List(ctx context.Context, userID string) (*Response, error)
	Create(ctx context.Context, user, name string) (*Response, error)
	Revoke(ctx context.Context, params *APITokenRevokeParams) (*Response, error)
}

// Config holds client configuration.
type Config struct {
	// BaseURL is the site root, e.g. https://demo.ckan.org. Required.
	BaseURL string

	// Token is sent verbatim in the Authorization header when non-empty.
	Token string

	HTTPTimeout time.Duration
	UserAgent   string
	Debug       bool
	Logger      Logger

	// HTTPClient replaces the default *http.Client (TLS, proxies).
	HTTPClient *http.Client
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
