package body_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ckan-client/internal/body"
)

func marshal(t *testing.T, b *body.Builder) string {
	t.Helper()

	encoded, err := b.MarshalJSON()
	require.NoError(t, err)

	return string(encoded)
}

func TestBuilder_RequiredSetters(t *testing.T) {
	t.Parallel()

	b := body.New().
		String("name", "").
		Int("limit", 0).
		Bool("private", false).
		Strings("datasets", nil).
		Objects("extras", nil).
		Value("query", map[string]string{"q": "x"})

	assert.Equal(t, 6, b.Len())
	assert.JSONEq(t, `{"name":"","limit":0,"private":false,"datasets":[],"extras":[],"query":{"q":"x"}}`, marshal(t, b))
}

func TestBuilder_OptionalSetters(t *testing.T) {
	t.Parallel()

	t.Run("absent values are omitted", func(t *testing.T) {
		t.Parallel()

		b := body.New().
			OptString("q", nil).
			OptInt("rows", nil).
			OptBool("private", nil).
			OptStrings("fields", nil).
			OptObject("filters", nil).
			OptObjects("extras", nil).
			OptRaw("query", nil)

		assert.Zero(t, b.Len())
		assert.Equal(t, `{}`, marshal(t, b))
	})

	t.Run("supplied zero values are sent", func(t *testing.T) {
		t.Parallel()

		empty := ""
		zero := 0
		no := false

		b := body.New().
			OptString("q", &empty).
			OptInt("rows", &zero).
			OptBool("private", &no).
			OptStrings("fields", []string{}).
			OptObject("filters", map[string]any{}).
			OptObjects("extras", []map[string]any{}).
			OptRaw("query", json.RawMessage(`"name:x"`))

		assert.JSONEq(t, `{"q":"","rows":0,"private":false,"fields":[],"filters":{},"extras":[],"query":"name:x"}`, marshal(t, b))
	})

	t.Run("dotted wire names are kept", func(t *testing.T) {
		t.Parallel()

		limit := 5

		b := body.New().OptInt("facet.limit", &limit)
		assert.True(t, b.Has("facet.limit"))
		assert.Equal(t, `{"facet.limit":5}`, marshal(t, b))
	})
}

func TestBuilder_Merge(t *testing.T) {
	t.Parallel()

	b := body.New().
		String("name", "river-levels").
		String("title", "River levels").
		Merge(map[string]any{"title": "Override", "notes": "n", "author": "a"})

	assert.Equal(t, []string{"name", "title", "author", "notes"}, b.Keys())
	assert.Equal(t, `{"name":"river-levels","title":"Override","author":"a","notes":"n"}`, marshal(t, b))

	b.Merge(nil)
	assert.Equal(t, 4, b.Len())
}

func TestBuilder_KeysIsACopy(t *testing.T) {
	t.Parallel()

	b := body.New().String("id", "1")
	keys := b.Keys()
	keys[0] = "changed"

	assert.Equal(t, []string{"id"}, b.Keys())
}

func TestBuilder_MarshalJSONErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		b    *body.Builder
	}{
		{"NaN", body.New().Value("size", math.NaN())},
		{"Inf in merge", body.New().Merge(map[string]any{"x": math.Inf(1)})},
		{"invalid raw", body.New().OptRaw("query", json.RawMessage(`{"broken"`))},
		{"unsupported type", body.New().Value("ch", make(chan int))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.b.MarshalJSON()
			require.ErrorIs(t, err, body.ErrEncodeField)
		})
	}
}

func TestBuilder_EncodesThroughJSONMarshal(t *testing.T) {
	t.Parallel()

	encoded, err := json.Marshal(body.New().String("id", "abc-123"))
	require.NoError(t, err)
	assert.Equal(t, `{"id":"abc-123"}`, string(encoded))
}

func TestBuilder_FormFields(t *testing.T) {
	t.Parallel()

	size := 42

	fields, err := body.New().
		String("package_id", "p-1").
		OptInt("size", &size).
		Bool("private", true).
		Strings("tags", []string{"a", "b"}).
		Merge(map[string]any{"extra": map[string]any{"k": "v"}}).
		FormFields()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"package_id": "p-1",
		"size":       "42",
		"private":    "true",
		"tags":       `["a","b"]`,
		"extra":      `{"k":"v"}`,
	}, fields)

	_, err = body.New().Value("bad", math.NaN()).FormFields()
	require.ErrorIs(t, err, body.ErrEncodeField)
}
