package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
)

func TestBuildCallBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts callOptions
		want string
		err  error
	}{
		{
			name: "empty",
			want: `{}`,
		},
		{
			name: "data only",
			opts: callOptions{data: `{"id": "abc-123"}`},
			want: `{"id": "abc-123"}`,
		},
		{
			name: "set strings and json",
			opts: callOptions{
				data:    `{"q": "old"}`,
				sets:    []string{"q=water", "fq=res_format:CSV"},
				setJSON: []string{"rows=5", `facet\.field=["tags"]`, "include_private=true"},
			},
			want: `{"q":"water","fq":"res_format:CSV","rows":5,"facet.field":["tags"],"include_private":true}`,
		},
		{
			name: "nested path",
			opts: callOptions{sets: []string{"extras.owner=me"}},
			want: `{"extras":{"owner":"me"}}`,
		},
		{
			name: "value with equals sign",
			opts: callOptions{sets: []string{"fq=name:a=b"}},
			want: `{"fq":"name:a=b"}`,
		},
		{
			name: "invalid data",
			opts: callOptions{data: `{"id":`},
			err:  constants.ErrInvalidJSONData,
		},
		{
			name: "data not an object",
			opts: callOptions{data: `[1, 2]`},
			err:  constants.ErrInvalidJSONData,
		},
		{
			name: "invalid set-json",
			opts: callOptions{setJSON: []string{"rows=five"}},
			err:  constants.ErrInvalidJSONSet,
		},
		{
			name: "missing equals",
			opts: callOptions{sets: []string{"q"}},
			err:  constants.ErrInvalidKeyValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := tt.opts

			got, err := buildCallBody(&opts)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, tt.want, got)
		})
	}
}

func TestParseKeyValue(t *testing.T) {
	t.Parallel()

	key, value, err := parseKeyValue("owner=")
	require.NoError(t, err)
	assert.Equal(t, "owner", key)
	assert.Empty(t, value)

	_, _, err = parseKeyValue("=value")
	require.ErrorIs(t, err, constants.ErrInvalidKeyValue)
}

func TestRenderResult(t *testing.T) {
	t.Parallel()

	t.Run("scalars", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		require.NoError(t, renderResult(&buf, gjson.Parse(`["river-levels", "rainfall"]`), nil))
		assert.Contains(t, buf.String(), "river-levels")
		assert.Contains(t, buf.String(), "rainfall")
	})

	t.Run("rows with columns", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		rows := gjson.Parse(`[{"name": "a", "organization": {"name": "env-agency"}}, {"name": "b", "organization": null}]`)
		require.NoError(t, renderResult(&buf, rows, packageColumns))
		assert.Contains(t, buf.String(), "env-agency")
		assert.Contains(t, buf.String(), constants.NotAvailable)
	})

	t.Run("rows with inferred columns", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		rows := gjson.Parse(`[{"id": "cc-by", "title": "Creative Commons Attribution", "nested": {"x": 1}}]`)
		require.NoError(t, renderResult(&buf, rows, nil))
		assert.Contains(t, buf.String(), "cc-by")
		assert.NotContains(t, buf.String(), `"x"`)
	})

	t.Run("properties", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		obj := gjson.Parse(`{"ckan_version": "2.11.0", "extensions": ["stats", "datastore"]}`)
		require.NoError(t, renderResult(&buf, obj, statusColumns))
		assert.Contains(t, buf.String(), "2.11.0")
		assert.Contains(t, buf.String(), "stats, datastore")
	})

	t.Run("scalar result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		require.NoError(t, renderResult(&buf, gjson.Parse(`true`), nil))
		assert.Equal(t, "true\n", buf.String())
	})
}

func TestCell(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("é", constants.StringTruncationLimit+10)
	got := cell(gjson.Parse(`"` + long + `"`))

	assert.Len(t, []rune(got), constants.StringTruncationLimit)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, constants.NotAvailable, cell(gjson.Result{}))
}

func TestEscapePath(t *testing.T) {
	t.Parallel()

	obj := gjson.Parse(`{"facet.limit": 5, "a": {"b": 1}}`)
	assert.Equal(t, int64(5), obj.Get(escapePath("facet.limit")).Int())
	assert.False(t, obj.Get(escapePath("a.b")).Exists())
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewLogger(&buf, true)
	logger.Debug("HTTP Request", map[string]interface{}{"method": "POST", "auth": true})

	line := gjson.Parse(buf.String())
	assert.Equal(t, "debug", line.Get("level").String())
	assert.Equal(t, "HTTP Request", line.Get("message").String())
	assert.Equal(t, "POST", line.Get("method").String())
	assert.Equal(t, "ckan", line.Get("component").String())

	buf.Reset()
	NewLogger(&buf, false).Debug("hidden", nil)
	assert.Empty(t, buf.String())
}
