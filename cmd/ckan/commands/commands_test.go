package commands

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// capturedRequest is what the fake site saw.
type capturedRequest struct {
	Method      string
	Path        string
	Auth        string
	ContentType string
	Body        string
}

type fakeSite struct {
	mu       sync.Mutex
	requests []capturedRequest
	server   *httptest.Server
}

func newFakeSite(t *testing.T, replies map[string]string) *fakeSite {
	t.Helper()

	site := &fakeSite{}
	site.server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		raw, _ := io.ReadAll(request.Body)

		site.mu.Lock()
		site.requests = append(site.requests, capturedRequest{
			Method:      request.Method,
			Path:        request.URL.Path,
			Auth:        request.Header.Get("Authorization"),
			ContentType: request.Header.Get("Content-Type"),
			Body:        string(raw),
		})
		site.mu.Unlock()

		action := strings.TrimPrefix(request.URL.Path, constants.ActionPathPrefix)

		reply, ok := replies[action]
		if !ok {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"success": false, "error": {"__type": "Not Found Error", "message": "Not found"}}`))

			return
		}

		_, _ = writer.Write([]byte(reply))
	}))
	t.Cleanup(site.server.Close)

	return site
}

func (s *fakeSite) last(t *testing.T) capturedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	require.NotEmpty(t, s.requests, "no request reached the site")

	return s.requests[len(s.requests)-1]
}

// executeCommand runs the full command tree with an isolated viper state,
// home directory and config file.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CKAN_URL", "")
	t.Setenv("CKAN_TOKEN", "")

	var out bytes.Buffer

	root := NewRootCommand("1.2.3", "abc123", "2026-01-01")
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand("dev", "none", "unknown")
	assert.Equal(t, "ckan", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"version", "config", "status", "licenses", "packages", "resources", "orgs", "groups", "users", "tags", "call"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"url", "token", "output", "verbose", "config"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %s should exist", flag)
	}

	assert.Equal(t, "u", cmd.PersistentFlags().Lookup("url").Shorthand)
	assert.Equal(t, "t", cmd.PersistentFlags().Lookup("token").Shorthand)
}

func TestPackagesCommand(t *testing.T) {
	t.Parallel()

	cmd := NewPackagesCommand()
	assert.Equal(t, "packages", cmd.Use)
	assert.Contains(t, cmd.Aliases, "datasets")
	assert.Len(t, cmd.Commands(), 5)

	create := findSubcommand(cmd, "create")
	require.NotNil(t, create)

	for _, flag := range []string{"title", "notes", "org", "license", "private", "tag", "extra"} {
		assert.NotNil(t, create.Flags().Lookup(flag), "flag %s should exist", flag)
	}

	deleteCmd := findSubcommand(cmd, "delete")
	require.NotNil(t, deleteCmd)
	assert.Equal(t, "false", deleteCmd.Flags().Lookup("purge").DefValue)
}

func TestGroupKindCommands(t *testing.T) {
	t.Parallel()

	orgs := NewOrgsCommand()
	assert.Equal(t, "orgs", orgs.Use)
	assert.Equal(t, "Manage organizations", orgs.Short)
	assert.NotNil(t, findSubcommand(orgs, "list"))
	assert.NotNil(t, findSubcommand(orgs, "show"))

	groups := NewGroupsCommand()
	assert.Equal(t, "groups", groups.Use)
	assert.Equal(t, "List groups", findSubcommand(groups, "list").Short)
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version", "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version": "1.2.3", "commit": "abc123", "built": "2026-01-01"}`, out)
}

func TestCommandsRequireURL(t *testing.T) {
	_, err := executeCommand(t, "status")
	require.ErrorIs(t, err, constants.ErrNoBaseURL)
}

func TestInvalidOutputFormat(t *testing.T) {
	site := newFakeSite(t, map[string]string{"status_show": `{"success": true, "result": {}}`})

	_, err := executeCommand(t, "status", "--url", site.server.URL, "--output", "xml")
	require.ErrorIs(t, err, constants.ErrInvalidOutputType)
}

func TestStatusCommand(t *testing.T) {
	site := newFakeSite(t, map[string]string{
		"status_show": `{"success": true, "result": {"ckan_version": "2.11.0", "site_title": "Demo", "extensions": ["stats"]}}`,
	})

	out, err := executeCommand(t, "status", "-u", site.server.URL+"/", "-t", "tok-1")
	require.NoError(t, err)
	assert.Contains(t, out, "2.11.0")
	assert.Contains(t, out, "Demo")

	req := site.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/3/action/status_show", req.Path)
	assert.Equal(t, "tok-1", req.Auth)
}

func TestLicensesCommandYAML(t *testing.T) {
	site := newFakeSite(t, map[string]string{
		"license_list": `{"success": true, "result": [{"id": "cc-by", "title": "CC BY"}]}`,
	})

	out, err := executeCommand(t, "licenses", "--url", site.server.URL, "--output", "yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, true, doc["success"])
}

func TestPackagesShowCommand(t *testing.T) {
	site := newFakeSite(t, map[string]string{
		"package_show": `{"success": true, "result": {"id": "p-1", "name": "river-levels", "tags": [{"name": "water"}, {"name": "flood"}]}}`,
	})

	out, err := executeCommand(t, "packages", "show", "river-levels", "--url", site.server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "river-levels")
	assert.Contains(t, out, "water, flood")

	req := site.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.JSONEq(t, `{"id": "river-levels"}`, req.Body)
}

func TestPackagesListCommand(t *testing.T) {
	site := newFakeSite(t, map[string]string{
		"package_list": `{"success": true, "result": ["a", "b"]}`,
	})

	_, err := executeCommand(t, "packages", "list", "--url", site.server.URL, "--limit", "2", "--offset", "4")
	require.NoError(t, err)
	assert.JSONEq(t, `{"limit": 2, "offset": 4}`, site.last(t).Body)

	_, err = executeCommand(t, "packages", "list", "--url", site.server.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"limit": 10}`, site.last(t).Body)
}

func TestPackagesSearchCommand(t *testing.T) {
	site := newFakeSite(t, map[string]string{
		"package_search": `{"success": true, "result": {"count": 1, "results": [{"name": "river-levels", "num_resources": 2}]}}`,
	})

	out, err := executeCommand(t, "packages", "search", "water", "--url", site.server.URL, "--fq", "res_format:CSV", "--rows", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 datasets")
	assert.Contains(t, out, "river-levels")
	assert.JSONEq(t, `{"q": "water", "fq_list": ["res_format:CSV"], "rows": 5}`, site.last(t).Body)
}

func TestPackagesCreateCommand(t *testing.T) {
	site := newFakeSite(t, map[string]string{
		"package_create": `{"success": true, "result": {"id": "p-1", "name": "river-levels"}}`,
	})

	_, err := executeCommand(t, "packages", "create", "river-levels", "--url", site.server.URL,
		"--title", "River levels", "--org", "env-agency", "--private=false", "--tag", "water", "--extra", "source=gauges")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "river-levels",
		"title": "River levels",
		"owner_org": "env-agency",
		"private": false,
		"tags": [{"name": "water"}],
		"extras": [{"key": "source", "value": "gauges"}]
	}`, site.last(t).Body)
}

func TestPackagesDeleteFailure(t *testing.T) {
	site := newFakeSite(t, map[string]string{})

	_, err := executeCommand(t, "packages", "delete", "missing", "--url", site.server.URL, "--purge")
	require.ErrorIs(t, err, constants.ErrActionFailed)
	assert.True(t, ckan.IsNotFound(err))
	assert.Equal(t, "/api/3/action/dataset_purge", site.last(t).Path)
}

func TestResourcesCreateUpload(t *testing.T) {
	site := newFakeSite(t, map[string]string{
		"resource_create": `{"success": true, "result": {"id": "r-1", "url_type": "upload"}}`,
	})

	path := filepath.Join(t.TempDir(), "levels.csv")
	require.NoError(t, os.WriteFile(path, []byte("station,level\n"), 0o600))

	out, err := executeCommand(t, "resources", "create", "p-1", "--url", site.server.URL, "--format", "CSV", "--upload", path)
	require.NoError(t, err)
	assert.Contains(t, out, "r-1")

	req := site.last(t)
	assert.True(t, strings.HasPrefix(req.ContentType, "multipart/form-data"))
	assert.Contains(t, req.Body, `name="upload"; filename="levels.csv"`)
	assert.Contains(t, req.Body, "station,level")
}

func TestResourcesCreateLink(t *testing.T) {
	site := newFakeSite(t, map[string]string{
		"resource_create": `{"success": true, "result": {"id": "r-2", "url": "https://example.org/a.csv"}}`,
	})

	out, err := executeCommand(t, "resources", "create", "p-1", "--url", site.server.URL,
		"--resource-url", "https://example.org/a.csv", "--name", "levels")
	require.NoError(t, err)
	assert.Contains(t, out, "r-2")

	req := site.last(t)
	assert.Equal(t, "/api/3/action/resource_create", req.Path)
	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"package_id": "p-1", "name": "levels", "url": "https://example.org/a.csv"}`, req.Body)
}

func TestResourcesCreateRejectsDirectory(t *testing.T) {
	site := newFakeSite(t, map[string]string{})

	_, err := executeCommand(t, "resources", "create", "p-1", "--url", site.server.URL, "--upload", t.TempDir())
	require.ErrorIs(t, err, constants.ErrNotRegularFile)
	assert.Empty(t, site.requests)
}

func TestOrgsListCommand(t *testing.T) {
	site := newFakeSite(t, map[string]string{
		"organization_list": `{"success": true, "result": [{"name": "env-agency", "package_count": 12}]}`,
	})

	out, err := executeCommand(t, "orgs", "list", "--url", site.server.URL, "--all-fields")
	require.NoError(t, err)
	assert.Contains(t, out, "env-agency")
	assert.JSONEq(t, `{"limit": 10, "all_fields": true}`, site.last(t).Body)
}

func TestCallCommand(t *testing.T) {
	site := newFakeSite(t, map[string]string{
		"package_search": `{"success": true, "result": {"count": 0, "results": []}}`,
	})

	out, err := executeCommand(t, "call", "package_search", "--url", site.server.URL, "--output", "json",
		"--set", "q=water", "--set-json", "rows=5", "--set-json", `facet\.limit=3`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "result": {"count": 0, "results": []}}`, out)
	assert.JSONEq(t, `{"q": "water", "rows": 5, "facet.limit": 3}`, site.last(t).Body)
}

func TestCallCommandVerboseLogsToStderr(t *testing.T) {
	site := newFakeSite(t, map[string]string{
		"status_show": `{"success": true, "result": {}}`,
	})

	_, err := executeCommand(t, "call", "status_show", "--url", site.server.URL, "--verbose")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, site.last(t).Method)
}

func TestConfigSetAndShow(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "ckan", "config.yml")

	_, err := executeCommand(t, "config", "set", "url", "https://demo.ckan.org/", "--config", configFile)
	require.NoError(t, err)

	_, err = executeCommand(t, "config", "set-token", "secret-token", "--config", configFile)
	require.NoError(t, err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, "https://demo.ckan.org", saved.URL)
	assert.Equal(t, "secret-token", saved.Token)

	info, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	out, err := executeCommand(t, "config", "show", "--config", configFile, "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"url": "https://demo.ckan.org", "token": "***", "output": "json"}`, out)
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	_, err := executeCommand(t, "config", "set", "colour", "blue", "--config", filepath.Join(t.TempDir(), "c.yml"))
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	_, err = executeCommand(t, "config", "set", "output", "xml", "--config", filepath.Join(t.TempDir(), "c.yml"))
	require.ErrorIs(t, err, constants.ErrInvalidOutputType)
}

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}
