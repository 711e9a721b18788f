package ckan

import "encoding/json"

// Optional fields are pointers (or nil slices and maps); a nil value is left
// out of the request body entirely. Required fields are plain values and are
// always sent, even when zero.

// String returns a pointer to v.
func String(v string) *string { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// AutocompleteParams is shared by the *_autocomplete actions that take "q".
type AutocompleteParams struct {
	Q     string
	Limit *int
}

// PackageListParams for package_list.
type PackageListParams struct {
	Limit  *int
	Offset *int
}

// CurrentPackageListParams for current_package_list_with_resources.
type CurrentPackageListParams struct {
	Limit  *int
	Offset *int
	Page   *int
}

// PackageShowParams for package_show.
type PackageShowParams struct {
	ID                string
	UseDefaultSchema  *bool
	IncludePluginData *bool
}

// PackageSearchParams for package_search. The facet fields are sent as
// "facet.mincount", "facet.limit" and "facet.field".
type PackageSearchParams struct {
	Q                *string
	FQ               *string
	FQList           []string
	Sort             *string
	Rows             *int
	Start            *int
	Facet            *string
	FacetMinCount    *int
	FacetLimit       *int
	FacetField       []string
	IncludeDrafts    *bool
	IncludePrivate   *bool
	UseDefaultSchema *bool
}

// PackageFields are the optional dataset fields accepted by package_create,
// package_update and package_patch.
type PackageFields struct {
	Title                  *string
	Private                *bool
	Author                 *string
	AuthorEmail            *string
	Maintainer             *string
	MaintainerEmail        *string
	LicenseID              *string
	Notes                  *string
	URL                    *string
	Version                *string
	State                  *string
	Type                   *string
	Resources              []map[string]any
	Tags                   []map[string]any
	Extras                 []map[string]any
	PluginData             map[string]any
	RelationshipsAsObject  []map[string]any
	RelationshipsAsSubject []map[string]any
	Groups                 []map[string]any
	OwnerOrg               *string

	// CustomFields are merged into the body last and replace any named
	// field with the same key.
	CustomFields map[string]any
}

// PackageCreateParams for package_create.
type PackageCreateParams struct {
	Name string
	PackageFields
}

// PackageUpdateParams for package_update.
type PackageUpdateParams struct {
	ID   string
	Name string
	PackageFields
}

// PackagePatchParams for package_patch.
type PackagePatchParams struct {
	ID   string
	Name *string
	PackageFields
}

// PackageReviseParams for package_revise. Match is sent as "match".
type PackageReviseParams struct {
	Match   map[string]any
	Filter  []string
	Update  map[string]any
	Include []string
}

// PackageDefaultViewsParams for package_create_default_resource_views.
type PackageDefaultViewsParams struct {
	Package              map[string]any
	CreateDatastoreViews *bool
}

// CollaboratorListParams for package_collaborator_list and
// package_collaborator_list_for_user.
type CollaboratorListParams struct {
	ID       string
	Capacity *string
}

// CollaboratorCreateParams for package_collaborator_create.
type CollaboratorCreateParams struct {
	ID       string
	UserID   string
	Capacity string
}

// RelationshipsListParams for package_relationships_list.
type RelationshipsListParams struct {
	ID  string
	ID2 *string
	Rel *string
}

// RelationshipParams for package_relationship_create, _update and _delete.
// Type is sent as "type". Comment is ignored by delete.
type RelationshipParams struct {
	Subject string
	Object  string
	Type    string
	Comment *string
}

// BulkUpdateParams for bulk_update_private, bulk_update_public and
// bulk_update_delete.
type BulkUpdateParams struct {
	Datasets []string
	OrgID    string
}

// ResourceSearchParams for resource_search. Query is passed through as-is.
type ResourceSearchParams struct {
	Query   json.RawMessage
	OrderBy *string
	Offset  *int
	Limit   *int
}

// ResourceFields are the optional fields accepted by resource_create,
// resource_update and resource_patch.
type ResourceFields struct {
	URL              *string
	Description      *string
	Format           *string
	Hash             *string
	Name             *string
	ResourceType     *string
	Mimetype         *string
	MimetypeInner    *string
	CacheURL         *string
	Size             *int
	Created          *string
	LastModified     *string
	CacheLastUpdated *string

	// CustomFields are merged into the body last.
	CustomFields map[string]any

	// Upload is a local file path. When set the request is sent as
	// multipart/form-data with the file in the "upload" part.
	Upload string
}

// ResourceCreateParams for resource_create.
type ResourceCreateParams struct {
	PackageID string
	ResourceFields
}

// ResourceUpdateParams for resource_update and resource_patch.
type ResourceUpdateParams struct {
	ID        string
	PackageID *string
	ResourceFields
}

// ResourceViewCreateParams for resource_view_create. Config is a JSON string.
type ResourceViewCreateParams struct {
	ResourceID  string
	Title       string
	ViewType    string
	Description *string
	Config      *string
}

// ResourceViewUpdateParams for resource_view_update.
type ResourceViewUpdateParams struct {
	ID          string
	ResourceID  string
	Title       string
	ViewType    string
	Description *string
	Config      *string
}

// DefaultResourceViewsParams for create_default_resource_views.
type DefaultResourceViewsParams struct {
	Resource             map[string]any
	Package              map[string]any
	CreateDatastoreViews *bool
}

// GroupListFields are shared by group_list and organization_list. Type is
// sent as "type".
type GroupListFields struct {
	Type                *string
	OrderBy             *string
	Sort                *string
	Limit               *int
	Offset              *int
	AllFields           *bool
	IncludeDatasetCount *bool
	IncludeExtras       *bool
	IncludeTags         *bool
	IncludeGroups       *bool
	IncludeUsers        *bool
}

// GroupListParams for group_list.
type GroupListParams struct {
	GroupListFields
	Groups []string
}

// OrganizationListParams for organization_list.
type OrganizationListParams struct {
	GroupListFields
	Organizations []string
}

// GroupListAuthzParams for group_list_authz.
type GroupListAuthzParams struct {
	AvailableOnly *bool
	AmMember      *bool
}

// OrganizationListForUserParams for organization_list_for_user.
type OrganizationListForUserParams struct {
	ID                  *string
	Permission          *string
	IncludeDatasetCount *bool
}

// GroupShowParams for group_show and organization_show.
type GroupShowParams struct {
	ID                  string
	IncludeDatasets     *bool
	IncludeDatasetCount *bool
	IncludeExtras       *bool
	IncludeUsers        *bool
	IncludeGroups       *bool
	IncludeTags         *bool
	IncludeFollowers    *bool
}

// GroupPackageShowParams for group_package_show.
type GroupPackageShowParams struct {
	ID    string
	Limit *int
}

// GroupFields are the optional fields of group and organization writes.
// Type is sent as "type". Organizations ignore Type and Groups.
type GroupFields struct {
	Title          *string
	Description    *string
	ImageURL       *string
	Type           *string
	State          *string
	ApprovalStatus *string
	Extras         []map[string]any
	Packages       []map[string]any
	Groups         []map[string]any
	Users          []map[string]any
}

// GroupCreateParams for group_create and organization_create.
type GroupCreateParams struct {
	Name string
	ID   *string
	GroupFields
}

// GroupUpdateParams for group_update and organization_update.
type GroupUpdateParams struct {
	ID   string
	Name string
	GroupFields
}

// GroupPatchParams for group_patch and organization_patch.
type GroupPatchParams struct {
	ID   string
	Name *string
	GroupFields
}

// GroupMemberParams for group_member_create and organization_member_create.
type GroupMemberParams struct {
	ID       string
	Username string
	Role     string
}

// MemberListParams for member_list.
type MemberListParams struct {
	ID         string
	ObjectType *string
	Capacity   *string
}

// MemberCreateParams for member_create.
type MemberCreateParams struct {
	ID         string
	Object     string
	ObjectType string
	Capacity   string
}

// MemberDeleteParams for member_delete.
type MemberDeleteParams struct {
	ID         string
	Object     string
	ObjectType string
}

// UserListParams for user_list.
type UserListParams struct {
	Q               *string
	Email           *string
	OrderBy         *string
	AllFields       *bool
	IncludeSiteUser *bool
}

// UserShowParams for user_show.
type UserShowParams struct {
	ID                  string
	IncludeDatasets     *bool
	IncludeNumFollowers *bool
	IncludePasswordHash *bool
	IncludePluginExtras *bool
}

// UserFields are the optional profile fields of user writes.
type UserFields struct {
	Fullname     *string
	About        *string
	ImageURL     *string
	PluginExtras map[string]any
	WithAPIToken *bool
}

// UserCreateParams for user_create.
type UserCreateParams struct {
	Name     string
	Email    string
	Password string
	ID       *string
	UserFields
}

// UserUpdateParams for user_update.
type UserUpdateParams struct {
	ID       string
	Name     string
	Email    string
	Password *string
	UserFields
}

// UserPatchParams for user_patch.
type UserPatchParams struct {
	ID       string
	Name     *string
	Email    *string
	Password *string
	UserFields
}

// UserInviteParams for user_invite.
type UserInviteParams struct {
	Email   string
	GroupID string
	Role    string
}

// TagListParams for tag_list.
type TagListParams struct {
	Query        *string
	VocabularyID *string
	AllFields    *bool
}

// TagShowParams for tag_show.
type TagShowParams struct {
	ID              string
	VocabularyID    *string
	IncludeDatasets *bool
}

// TagSearchParams for tag_search. Query is passed through as-is.
type TagSearchParams struct {
	Query        json.RawMessage
	VocabularyID *string
	Limit        *int
	Offset       *int
}

// TagAutocompleteParams for tag_autocomplete.
type TagAutocompleteParams struct {
	Query        string
	VocabularyID *string
	Limit        *int
	Offset       *int
}

// TagDeleteParams for tag_delete.
type TagDeleteParams struct {
	ID           string
	VocabularyID *string
}

// VocabularyCreateParams for vocabulary_create.
type VocabularyCreateParams struct {
	Name string
	Tags []map[string]any
}

// VocabularyUpdateParams for vocabulary_update.
type VocabularyUpdateParams struct {
	ID   string
	Name string
	Tags []map[string]any
}

// FolloweeListParams for followee_list.
type FolloweeListParams struct {
	ID string
	Q  *string
}

// TaskStatusShowParams for task_status_show.
type TaskStatusShowParams struct {
	ID       *string
	EntityID *string
	TaskType *string
	Key      *string
}

// TaskStatusUpdateParams for task_status_update.
type TaskStatusUpdateParams struct {
	ID          *string
	EntityID    string
	EntityType  string
	TaskType    string
	Key         string
	Value       *string
	State       *string
	LastUpdated *string
	Error       *string
}

// TermTranslationShowParams for term_translation_show.
type TermTranslationShowParams struct {
	Terms     []string
	LangCodes []string
}

// TermTranslationParams for term_translation_update.
type TermTranslationParams struct {
	Term            string
	TermTranslation string
	LangCode        string
}

// APITokenRevokeParams for api_token_revoke. Either field identifies the token.
type APITokenRevokeParams struct {
	Token *string
	JTI   *string
}
