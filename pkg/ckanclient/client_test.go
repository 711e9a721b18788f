package ckanclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
	"github.com/fivetwenty-io/ckan-client/pkg/ckanclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := ckanclient.New(&ckan.Config{BaseURL: "https://demo.ckan.org"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := ckanclient.New(nil)
		require.ErrorIs(t, err, ckan.ErrConfigRequired)
	})

	t.Run("empty base URL", func(t *testing.T) {
		t.Parallel()

		_, err := ckanclient.NewWithURL("  ")
		require.ErrorIs(t, err, ckan.ErrBaseURLRequired)
	})
}

func TestNewWithURL(t *testing.T) {
	t.Parallel()

	client, err := ckanclient.NewWithURL("https://demo.ckan.org/")
	require.NoError(t, err)
	assert.NotNil(t, client.Packages())
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := ckanclient.NewWithToken("https://demo.ckan.org", "test-token")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/api/3/action/package_show":
			assert.Equal(t, "tok", request.Header.Get("Authorization"))
			_, _ = writer.Write([]byte(`{"success": true, "result": {"name": "river-levels", "title": "River levels"}}`))
		default:
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"success": false, "error": {"__type": "Not Found Error", "message": "Not found"}}`))
		}
	}))
	defer server.Close()

	client, err := ckanclient.NewWithToken(server.URL+"/", "tok")
	require.NoError(t, err)

	resp, err := client.Packages().Show(context.Background(), &ckan.PackageShowParams{ID: "river-levels"})
	require.NoError(t, err)
	require.NoError(t, resp.Err())
	assert.Equal(t, "River levels", resp.Result().Get("title").String())

	resp, err = client.Groups().Show(context.Background(), &ckan.GroupShowParams{ID: "missing"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.True(t, ckan.IsNotFound(resp.Err()))
}
