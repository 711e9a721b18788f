package ckan

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Response is the decoded JSON document returned by an action, kept
// verbatim. CKAN wraps results in {"help", "success", "result"|"error"};
// the accessors below read that envelope but nothing enforces it.
type Response struct {
	// StatusCode is the HTTP status. It is informational only.
	StatusCode int

	// Raw is the response body. It is always valid JSON.
	Raw json.RawMessage
}

// NewResponse wraps an already validated JSON document.
func NewResponse(statusCode int, raw []byte) *Response {
	return &Response{
		StatusCode: statusCode,
		Raw:        raw,
	}
}

// Value returns the whole document.
func (r *Response) Value() gjson.Result {
	return gjson.ParseBytes(r.Raw)
}

// Get returns the value at a gjson path, e.g. "result.resources.#.url".
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Raw, path)
}

// Success reports the "success" flag. A missing flag reads as false.
func (r *Response) Success() bool {
	return r.Get("success").Bool()
}

// Result returns the "result" member.
func (r *Response) Result() gjson.Result {
	return r.Get("result")
}

// Help returns the "help" member, the URL of the action's documentation.
func (r *Response) Help() string {
	return r.Get("help").String()
}

// Decode unmarshals the whole document into v.
func (r *Response) Decode(v any) error {
	err := json.Unmarshal(r.Raw, v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResponseDecoding, err)
	}

	return nil
}

// DecodeResult unmarshals the "result" member into v.
func (r *Response) DecodeResult(v any) error {
	result := r.Result()
	if !result.Exists() {
		return ErrNoResult
	}

	err := json.Unmarshal([]byte(result.Raw), v)
	if err != nil {
		return fmt.Errorf("%w: result: %w", ErrResponseDecoding, err)
	}

	return nil
}

// Err returns an *ActionError when the success flag is not true, nil otherwise.
func (r *Response) Err() error {
	if r.Success() {
		return nil
	}

	return parseActionError(r.Get("error"))
}

// MarshalJSON returns the document unchanged.
func (r *Response) MarshalJSON() ([]byte, error) {
	if len(r.Raw) == 0 {
		return []byte("null"), nil
	}

	return r.Raw, nil
}

// String returns the document as text.
func (r *Response) String() string {
	return string(r.Raw)
}
