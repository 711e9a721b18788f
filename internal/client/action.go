package client

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/internal/constants"
	"github.com/fivetwenty-io/ckan-client/internal/http"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

func actionPath(action string) string {
	return constants.ActionPathPrefix + action
}

// getAction sends a body-less GET to a parameterless read action.
func getAction(ctx context.Context, httpClient *http.Client, action string) (*ckan.Response, error) {
	resp, err := httpClient.Get(ctx, actionPath(action), nil)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", action, err)
	}

	return decodeResponse(action, resp)
}

// postAction sends b as the JSON body of action.
func postAction(ctx context.Context, httpClient *http.Client, action string, b *body.Builder) (*ckan.Response, error) {
	payload, err := b.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w: %w", action, ckan.ErrRequestEncoding, err)
	}

	resp, err := httpClient.Post(ctx, actionPath(action), json.RawMessage(payload))
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", action, err)
	}

	return decodeResponse(action, resp)
}

// sendAction posts b as JSON, or as multipart/form-data with the file at
// uploadPath when uploadPath is not empty.
func sendAction(ctx context.Context, httpClient *http.Client, action string, b *body.Builder, uploadPath string) (*ckan.Response, error) {
	if uploadPath == "" {
		return postAction(ctx, httpClient, action, b)
	}

	fields, err := b.FormFields()
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w: %w", action, ckan.ErrRequestEncoding, err)
	}

	resp, err := httpClient.PostMultipart(ctx, actionPath(action), fields, constants.UploadFieldName, uploadPath)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", action, err)
	}

	return decodeResponse(action, resp)
}

// postID sends {"id": id}, the body of most show, delete and follow actions.
func postID(ctx context.Context, httpClient *http.Client, action, id string) (*ckan.Response, error) {
	return postAction(ctx, httpClient, action, body.New().String("id", id))
}

func paramsRequired(action string) error {
	return fmt.Errorf("calling %s: %w", action, ckan.ErrParamsRequired)
}

func decodeResponse(action string, resp *http.Response) (*ckan.Response, error) {
	if !utf8.Valid(resp.Body) {
		return nil, fmt.Errorf("calling %s: %w: body is not valid UTF-8", action, ckan.ErrResponseDecoding)
	}

	if !gjson.ValidBytes(resp.Body) {
		return nil, fmt.Errorf("calling %s: %w: body is not valid JSON (status %d)", action, ckan.ErrResponseDecoding, resp.StatusCode)
	}

	return ckan.NewResponse(resp.StatusCode, resp.Body), nil
}
