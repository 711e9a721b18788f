package ckan

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

// Failures raised by the client itself. They are always wrapped with the
// action name and the underlying cause, so match them with errors.Is.
var (
	ErrRequestEncoding  = errors.New("encoding request body")
	ErrTransport        = errors.New("sending request")
	ErrUploadFile       = errors.New("reading upload file")
	ErrResponseDecoding = errors.New("decoding response")
	ErrParamsRequired   = errors.New("params are required")
)

// Construction errors.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrNoResult        = errors.New("response has no result")
)

// Error types reported by CKAN in the "__type" member of an error object.
const (
	ErrorTypeNotFound      = "Not Found Error"
	ErrorTypeAuthorization = "Authorization Error"
	ErrorTypeValidation    = "Validation Error"
)

// ActionError is the "error" object of a response whose success flag is
// false. It is only produced by Response.Err; the client never returns it.
type ActionError struct {
	Type    string              `json:"__type"  yaml:"__type"`
	Message string              `json:"message" yaml:"message"`
	Fields  map[string][]string `json:"fields"  yaml:"fields"`
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)

	if b.Len() == 0 {
		b.WriteString("action failed")
	}

	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	for _, name := range slices.Sorted(maps.Keys(e.Fields)) {
		fmt.Fprintf(&b, "; %s: %s", name, strings.Join(e.Fields[name], ", "))
	}

	return b.String()
}

func parseActionError(obj gjson.Result) *ActionError {
	actionErr := &ActionError{}

	if obj.Type == gjson.String {
		actionErr.Message = obj.String()

		return actionErr
	}

	obj.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "__type":
			actionErr.Type = value.String()
		case "message":
			actionErr.Message = value.String()
		default:
			if actionErr.Fields == nil {
				actionErr.Fields = make(map[string][]string)
			}

			actionErr.Fields[key.String()] = fieldMessages(value)
		}

		return true
	})

	return actionErr
}

func fieldMessages(value gjson.Result) []string {
	if !value.IsArray() {
		return []string{value.String()}
	}

	var messages []string

	for _, item := range value.Array() {
		messages = append(messages, item.String())
	}

	return messages
}

// IsNotFound checks if the error is a CKAN "Not Found Error".
func IsNotFound(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

// IsNotAuthorized checks if the error is a CKAN "Authorization Error".
func IsNotAuthorized(err error) bool {
	return hasType(err, ErrorTypeAuthorization)
}

// IsValidationError checks if the error is a CKAN "Validation Error".
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

func hasType(err error, errorType string) bool {
	actionErr := &ActionError{}
	if errors.As(err, &actionErr) {
		return actionErr.Type == errorType
	}

	return false
}
