package constants

import "errors"

// Configuration errors.
var (
	ErrNoBaseURL         = errors.New("no CKAN URL configured, use --url or 'ckan config set url <url>'")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrEmptyToken        = errors.New("token must not be empty")
	ErrNotATerminal      = errors.New("stdin is not a terminal, pass the token as an argument")
	ErrInvalidOutputType = errors.New("invalid output format, use table, json or yaml")
)

// Command errors.
var (
	ErrInvalidKeyValue = errors.New("expected key=value")
	ErrInvalidJSONData = errors.New("--data is not valid JSON")
	ErrInvalidJSONSet  = errors.New("--set-json value is not valid JSON")
	ErrActionFailed    = errors.New("action failed")
)

// File system errors.
var (
	ErrNotRegularFile = errors.New("path is not a regular file")
)
