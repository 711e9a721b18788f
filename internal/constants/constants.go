package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used by the CLI for quick reads such as status_show.
	ShortHTTPTimeout = 10 * time.Second
)

// Action API wire constants.
const (
	// ActionPathPrefix is prepended to every action name.
	ActionPathPrefix = "/api/3/action/"

	// UploadFieldName is the multipart part that carries a resource file.
	UploadFieldName = "upload"

	// UserAgent is sent when the caller does not configure one.
	UserAgent = "ckan-client/1.0"
)

// FieldResult is the response envelope member holding an action's result.
const FieldResult = "result"

// CLI configuration.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".ckan"

	// ConfigFileName is the CLI config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the viper config type.
	ConfigFileType = "yml"

	// EnvPrefix is the prefix for environment overrides.
	EnvPrefix = "CKAN"
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of rows requested by list commands.
	DefaultPageSize = 10

	// StringTruncationLimit is used when truncating strings in tables.
	StringTruncationLimit = 60

	// MinimumKeyValueParts is the number of parts in a key=value flag.
	MinimumKeyValueParts = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)
