package meli_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadoflow/meli-gateway/internal/meli"
	"github.com/mercadoflow/meli-gateway/internal/meli/mocks"
)

func TestListSizeCharts(t *testing.T) {
	t.Parallel()

	var gotPath, gotLimit, gotOffset string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		gotOffset = r.URL.Query().Get("offset")
		w.Write([]byte(`{
			"size_charts": [{"id": 111}, {"id": 222}],
			"paging": {"total": 7, "limit": 2, "offset": 4}
		}`))
	}))
	defer srv.Close()

	client := meli.NewClient(
		storeWithCredential(t, "token-abc"),
		mocks.NewMockTokenRefresher(t),
		meli.WithBaseURL(srv.URL),
	)

	result, err := client.ListSizeCharts(context.Background(), testShopID, 2, 4)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("/users/%d/size_charts", testOwnerID), gotPath)
	assert.Equal(t, "2", gotLimit)
	assert.Equal(t, "4", gotOffset)

	require.NotNil(t, result.Paging)
	assert.Equal(t, 7, result.Paging.Total)
	assert.Equal(t, 4, result.Paging.Offset)
	assert.True(t, json.Valid(result.SizeCharts))
}

func TestListSizeCharts_DefaultLimit(t *testing.T) {
	t.Parallel()

	var gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`{"size_charts": []}`))
	}))
	defer srv.Close()

	client := meli.NewClient(
		storeWithCredential(t, "token-abc"),
		mocks.NewMockTokenRefresher(t),
		meli.WithBaseURL(srv.URL),
	)

	result, err := client.ListSizeCharts(context.Background(), testShopID, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, "50", gotLimit)
	assert.Nil(t, result.Paging, "no paging block means no pagination lifted")
}

func TestGetSizeChart(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/size_charts/387878", r.URL.Path)
		w.Write([]byte(`{"id": 387878, "domain_id": "SHIRTS"}`))
	}))
	defer srv.Close()

	client := meli.NewClient(
		storeWithCredential(t, "token-abc"),
		mocks.NewMockTokenRefresher(t),
		meli.WithBaseURL(srv.URL),
	)

	result, err := client.GetSizeChart(context.Background(), testShopID, "387878")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 387878, "domain_id": "SHIRTS"}`, string(result.SizeChart))

	_, err = client.GetSizeChart(context.Background(), testShopID, "")
	var valErr *meli.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestCreateSizeChart_RequiresDomainID(t *testing.T) {
	t.Parallel()

	client := meli.NewClient(
		mocks.NewMockCredentialStore(t),
		mocks.NewMockTokenRefresher(t),
	)

	_, err := client.CreateSizeChart(context.Background(), testShopID, meli.SizeChartPayload{
		Names:  map[string]string{"MLM": "Tallas"},
		SiteID: "MLM",
	})

	var valErr *meli.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestAssociateSizeChart(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"item_id": "MLM12345", "chart_id": 387878}`))
	}))
	defer srv.Close()

	client := meli.NewClient(
		storeWithCredential(t, "token-abc"),
		mocks.NewMockTokenRefresher(t),
		meli.WithBaseURL(srv.URL),
	)

	result, err := client.AssociateSizeChart(context.Background(), testShopID, "MLM12345", "387878")
	require.NoError(t, err)

	assert.Equal(t, "/items/MLM12345/size_charts/387878", gotPath)
	assert.JSONEq(t, `{"item_id": "MLM12345", "chart_id": 387878}`, string(result.Association))

	_, err = client.AssociateSizeChart(context.Background(), testShopID, "", "387878")
	var valErr *meli.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestDomainRequiredAttributes_IsAnonymous(t *testing.T) {
	t.Parallel()

	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`{
			"input": {"groups": [{"components": [{
				"component": "FORM",
				"attributes": [
					{"id": "GENDER", "name": "Genero", "value_type": "list",
						"tags": ["grid_template_required"],
						"values": [{"id":"339666","name":"Hombre"},{"id":"339667","name":"Mujer"}]},
					{"id": "BRAND", "name": "Marca", "value_type": "string", "tags": []}
				]
			}]}]}
		}`))
	}))
	defer srv.Close()

	// No credential store lookup happens for public endpoints.
	client := meli.NewClient(
		mocks.NewMockCredentialStore(t),
		mocks.NewMockTokenRefresher(t),
		meli.WithBaseURL(srv.URL),
		meli.WithSiteID("MLM"),
	)

	result, err := client.DomainRequiredAttributes(context.Background(), "SHIRTS", "")
	require.NoError(t, err)

	assert.Empty(t, gotAuth, "public endpoint must not carry an Authorization header")
	assert.Equal(t, "/domains/MLM-SHIRTS/technical_specs", gotPath)

	assert.Equal(t, "SHIRTS", result.DomainID)
	assert.Equal(t, "MLM", result.SiteID)
	assert.Equal(t, 1, result.Total)
	require.Len(t, result.RequiredAttributes, 1)

	attr := result.RequiredAttributes[0]
	assert.Equal(t, "GENDER", attr.ID)
	assert.True(t, attr.Required)
	require.Len(t, attr.Values, 2)
	assert.Equal(t, "Hombre", attr.Values[0].Name)
}

func TestDomainRequiredAttributes_NestedComponents(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"input": {"groups": [{"components": [{
				"component": "OUTER",
				"components": [{
					"component": "INNER",
					"attributes": [
						{"id": "AGE_GROUP", "name": "Edad", "value_type": "list",
							"tags": ["grid_template_required"]}
					]
				}]
			}]}]}
		}`))
	}))
	defer srv.Close()

	client := meli.NewClient(
		mocks.NewMockCredentialStore(t),
		mocks.NewMockTokenRefresher(t),
		meli.WithBaseURL(srv.URL),
	)

	result, err := client.DomainRequiredAttributes(context.Background(), "PANTS", "MLA")
	require.NoError(t, err)

	assert.Equal(t, "MLA", result.SiteID)
	require.Len(t, result.RequiredAttributes, 1)
	assert.Equal(t, "AGE_GROUP", result.RequiredAttributes[0].ID)
	assert.Empty(t, result.RequiredAttributes[0].Values, "missing values default to empty, not null")
}
