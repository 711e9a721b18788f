package client

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/fivetwenty-io/ckan-client/internal/body"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

func TestPackagesClient_List_OnlySuppliedFilters(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	_, err := c.Packages().List(context.Background(), &ckan.PackageListParams{
		Limit:  ckan.Int(10),
		Offset: ckan.Int(5),
	})
	require.NoError(t, err)

	assert.Equal(t, `{"limit":10,"offset":5}`, string(rec.last(t).Body))
}

func TestPackagesClient_List_NilParams(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	_, err := c.Packages().List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, `{}`, string(rec.last(t).Body))
}

func TestPackagesClient_Create_OmitsAbsentOptionals(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	_, err := c.Packages().Create(context.Background(), &ckan.PackageCreateParams{Name: "river-levels"})
	require.NoError(t, err)

	sent := gjson.ParseBytes(rec.last(t).Body)
	assert.Equal(t, `{"name":"river-levels"}`, sent.Raw)

	for _, key := range []string{"title", "private", "type", "resources", "custom_fields"} {
		assert.False(t, sent.Get(key).Exists(), "unexpected key %q", key)
	}
}

func TestPackagesClient_Create_ZeroValuesAreSent(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	_, err := c.Packages().Create(context.Background(), &ckan.PackageCreateParams{
		Name: "",
		PackageFields: ckan.PackageFields{
			Private:   ckan.Bool(false),
			Notes:     ckan.String(""),
			Resources: []map[string]any{},
		},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name": "", "private": false, "notes": "", "resources": []}`, string(rec.last(t).Body))
}

func TestPackagesClient_CustomFieldsWinOnConflict(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	_, err := c.Packages().Update(context.Background(), &ckan.PackageUpdateParams{
		ID:   "p-1",
		Name: "river-levels",
		PackageFields: ckan.PackageFields{
			Title: ckan.String("Named title"),
			CustomFields: map[string]any{
				"title":          "Custom title",
				"spatial":        map[string]any{"type": "Point", "coordinates": []float64{-1.5, 53.8}},
				"update_cadence": "daily",
			},
		},
	})
	require.NoError(t, err)

	sent := gjson.ParseBytes(rec.last(t).Body)
	assert.Equal(t, "Custom title", sent.Get("title").String())
	assert.Equal(t, "daily", sent.Get("update_cadence").String())
	assert.Equal(t, "Point", sent.Get("spatial.type").String())
	assert.Equal(t, "p-1", sent.Get("id").String())
}

func TestPackagesClient_Search_WireNames(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	_, err := c.Packages().Search(context.Background(), &ckan.PackageSearchParams{
		FQList:        []string{"organization:city", "res_format:CSV"},
		Facet:         ckan.String("true"),
		FacetMinCount: ckan.Int(1),
		FacetLimit:    ckan.Int(50),
		FacetField:    []string{"tags"},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"fq_list": ["organization:city", "res_format:CSV"],
		"facet": "true",
		"facet.mincount": 1,
		"facet.limit": 50,
		"facet.field": ["tags"]
	}`, string(rec.last(t).Body))
}

func TestPackagesClient_EncodingFailure(t *testing.T) {
	server, rec := newRecordingServer(t, okReply)
	c := NewTestClient(t, server.URL, "")

	resp, err := c.Packages().Create(context.Background(), &ckan.PackageCreateParams{
		Name: "bad",
		PackageFields: ckan.PackageFields{
			CustomFields: map[string]any{"quality_score": math.Inf(1)},
		},
	})
	require.ErrorIs(t, err, ckan.ErrRequestEncoding)
	require.ErrorIs(t, err, body.ErrEncodeField)
	assert.Nil(t, resp)
	assert.Empty(t, rec.requests)
}
