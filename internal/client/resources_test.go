package client

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestResourcesClient_Show(t *testing.T) {
	reply := `{"success": true, "result": {"id": "abc-123", "format": "CSV"}}`
	server, rec := newRecordingServer(t, reply)
	c := NewTestClient(t, server.URL, "")

	resp, err := c.Resources().Show(context.Background(), "abc-123")
	require.NoError(t, err)

	assert.Equal(t, `{"id":"abc-123"}`, string(rec.last(t).Body))
	assert.JSONEq(t, reply, string(resp.Raw))

	var result struct {
		ID     string `json:"id"`
		Format string `json:"format"`
	}

	require.NoError(t, resp.DecodeResult(&result))
	assert.Equal(t, "CSV", result.Format)
}

func TestResourcesClient_Create_WithUpload(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "secret-token")

	content := "station,level\nleeds,1.42\nyork,2.07\n"
	path := writeTempFile(t, "levels.csv", content)

	_, err := c.Resources().Create(context.Background(), &ckan.ResourceCreateParams{
		PackageID: "p-1",
		ResourceFields: ckan.ResourceFields{
			Name:   ckan.String("Levels"),
			Format: ckan.String("CSV"),
			Size:   ckan.Int(42),
			Upload: path,
		},
	})
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "/api/3/action/resource_create", req.Path)
	assert.Equal(t, "secret-token", req.Header.Get("Authorization"))

	fields, files, fileNames := multipartParts(t, req)
	assert.Equal(t, map[string]string{
		"package_id": "p-1",
		"name":       "Levels",
		"format":     "CSV",
		"size":       "42",
	}, fields)
	assert.Equal(t, content, files["upload"])
	assert.Equal(t, "levels.csv", fileNames["upload"])
	assert.Len(t, files, 1)
}

func TestResourcesClient_Update_WithUpload(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	path := writeTempFile(t, "report.pdf", "%PDF-1.7 fake")

	_, err := c.Resources().Update(context.Background(), &ckan.ResourceUpdateParams{
		ID: "r-1",
		ResourceFields: ckan.ResourceFields{
			CustomFields: map[string]any{"language": []string{"en", "cy"}},
			Upload:       path,
		},
	})
	require.NoError(t, err)

	fields, files, _ := multipartParts(t, rec.last(t))
	assert.Equal(t, "r-1", fields["id"])
	assert.JSONEq(t, `["en","cy"]`, fields["language"])
	assert.Equal(t, "%PDF-1.7 fake", files["upload"])
}

func TestResourcesClient_Patch_WithoutUploadIsJSON(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	_, err := c.Resources().Patch(context.Background(), &ckan.ResourceUpdateParams{
		ID:             "r-1",
		ResourceFields: ckan.ResourceFields{Size: ckan.Int(42)},
	})
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"id": "r-1", "size": 42}`, string(req.Body))
}

func TestResourcesClient_Upload_MissingFile(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	resp, err := c.Resources().Create(context.Background(), &ckan.ResourceCreateParams{
		PackageID:      "p-1",
		ResourceFields: ckan.ResourceFields{Upload: filepath.Join(t.TempDir(), "missing.csv")},
	})
	require.ErrorIs(t, err, ckan.ErrUploadFile)
	assert.Nil(t, resp)
	assert.Empty(t, rec.requests)
}

func TestResourcesClient_Upload_Directory(t *testing.T) {
	server, _ := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	_, err := c.Resources().Update(context.Background(), &ckan.ResourceUpdateParams{
		ID:             "r-1",
		ResourceFields: ckan.ResourceFields{Upload: t.TempDir()},
	})
	require.ErrorIs(t, err, ckan.ErrUploadFile)
}

func TestResourcesClient_Search_RawQuery(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	_, err := c.Resources().Search(context.Background(), &ckan.ResourceSearchParams{
		Query:   json.RawMessage(`"format:CSV"`),
		OrderBy: ckan.String("name"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"query": "format:CSV", "order_by": "name"}`, string(rec.last(t).Body))

	_, err = c.Resources().Search(context.Background(), &ckan.ResourceSearchParams{
		Query: json.RawMessage(`{not json`),
	})
	require.ErrorIs(t, err, ckan.ErrRequestEncoding)
}
