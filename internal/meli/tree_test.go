package meli_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadoflow/meli-gateway/internal/meli"
	"github.com/mercadoflow/meli-gateway/internal/meli/mocks"
	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

func TestParseMaxDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"", 3},
		{"abc", 3},
		{"2.5", 3},
		{"3", 3},
		{"1", 1},
		{"5", 5},
		{"8", 5},
		{"100", 5},
		{"0", 1},
		{"-2", 1},
		{" 4 ", 4},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, meli.ParseMaxDepth(tt.input))
		})
	}
}

// fakeCategoryAPI serves a three-level hierarchy:
//
//	MLM1430 (Ropa) -> MLM1430-1 (Hombre) -> MLM1430-1-1 (Camisas)
//	              -> MLM1430-2 (Mujer)
type fakeCategoryAPI struct {
	categoryFetches map[string]int
	pathFromRootErr bool
}

func newFakeCategoryAPI() *fakeCategoryAPI {
	return &fakeCategoryAPI{categoryFetches: make(map[string]int)}
}

func (f *fakeCategoryAPI) handler() http.HandlerFunc {
	children := map[string][]domain.PathEntry{
		"MLM1430": {
			{ID: "MLM1430-1", Name: "Hombre"},
			{ID: "MLM1430-2", Name: "Mujer"},
		},
		"MLM1430-1": {
			{ID: "MLM1430-1-1", Name: "Camisas"},
		},
	}
	names := map[string]string{
		"MLM1430":     "Ropa",
		"MLM1430-1":   "Hombre",
		"MLM1430-2":   "Mujer",
		"MLM1430-1-1": "Camisas",
	}

	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/sites/MLM/categories":
			json.NewEncoder(w).Encode([]domain.PathEntry{{ID: "MLM1430", Name: "Ropa"}})

		case strings.HasSuffix(r.URL.Path, "/path_from_root"):
			if f.pathFromRootErr {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"message":"boom"}`))
				return
			}
			json.NewEncoder(w).Encode([]domain.PathEntry{
				{ID: "MLM1430", Name: "Ropa"},
				{ID: "MLM1430-1", Name: "Hombre"},
			})

		case strings.HasPrefix(r.URL.Path, "/categories/"):
			id := strings.TrimPrefix(r.URL.Path, "/categories/")
			f.categoryFetches[id]++
			json.NewEncoder(w).Encode(map[string]any{
				"id":                  id,
				"name":                names[id],
				"children_categories": children[id],
			})

		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"unknown path"}`))
		}
	}
}

func treeClient(t *testing.T, api *fakeCategoryAPI) (*meli.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	return meli.NewClient(
		storeWithCredential(t, "token-abc"),
		mocks.NewMockTokenRefresher(t),
		meli.WithBaseURL(srv.URL),
		meli.WithSiteID("MLM"),
	), srv
}

func TestCategoryTree_FromSiteRoot(t *testing.T) {
	t.Parallel()

	api := newFakeCategoryAPI()
	client, _ := treeClient(t, api)

	tree, err := client.CategoryTree(context.Background(), testShopID, meli.TreeRequest{MaxDepth: 2})
	require.NoError(t, err)

	assert.Equal(t, "MLM", tree.SiteID)
	require.Len(t, tree.Tree, 1)

	root := tree.Tree[0]
	assert.Equal(t, "MLM1430", root.ID)
	assert.Equal(t, "Ropa", root.Name)
	assert.Empty(t, root.Path)
	assert.Empty(t, root.Breadcrumb)

	require.Len(t, root.Children, 2)
	hombre := root.Children[0]
	assert.Equal(t, "MLM1430-1", hombre.ID)
	assert.Equal(t, []domain.PathEntry{{ID: "MLM1430", Name: "Ropa"}}, hombre.Path)
	assert.Equal(t, "Ropa", hombre.Breadcrumb)
	assert.Empty(t, hombre.Children, "expansion must stop at the depth bound")
}

func TestCategoryTree_DepthOneNeverExpands(t *testing.T) {
	t.Parallel()

	api := newFakeCategoryAPI()
	client, _ := treeClient(t, api)

	tree, err := client.CategoryTree(context.Background(), testShopID, meli.TreeRequest{MaxDepth: 1})
	require.NoError(t, err)

	require.Len(t, tree.Tree, 1)
	assert.Empty(t, tree.Tree[0].Children)
	assert.Empty(t, api.categoryFetches, "depth 1 needs no per-category fetches")
}

func TestCategoryTree_FromNamedCategory(t *testing.T) {
	t.Parallel()

	api := newFakeCategoryAPI()
	client, _ := treeClient(t, api)

	tree, err := client.CategoryTree(context.Background(), testShopID, meli.TreeRequest{
		CategoryID: "MLM1430",
		MaxDepth:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, "MLM1430", tree.CategoryID)
	assert.Equal(t, "Ropa", tree.CategoryName)
	require.Len(t, tree.Tree, 2)

	// Without upstream ancestors the starting category seeds the path.
	hombre := tree.Tree[0]
	assert.Equal(t, "MLM1430-1", hombre.ID)
	assert.Equal(t, []domain.PathEntry{{ID: "MLM1430", Name: "Ropa"}}, hombre.Path)
	assert.Equal(t, "Ropa", hombre.Breadcrumb)

	require.Len(t, hombre.Children, 1)
	camisas := hombre.Children[0]
	assert.Equal(t, "MLM1430-1-1", camisas.ID)
	assert.Equal(t, "Ropa > Hombre", camisas.Breadcrumb)
}

func TestCategoryTree_IncludeAncestors(t *testing.T) {
	t.Parallel()

	api := newFakeCategoryAPI()
	client, _ := treeClient(t, api)

	tree, err := client.CategoryTree(context.Background(), testShopID, meli.TreeRequest{
		CategoryID:       "MLM1430-1",
		MaxDepth:         1,
		IncludeAncestors: true,
	})
	require.NoError(t, err)

	require.Len(t, tree.PathFromRoot, 2)
	assert.Equal(t, "MLM1430", tree.PathFromRoot[0].ID)

	require.Len(t, tree.Tree, 1)
	assert.Equal(t, "Ropa > Hombre", tree.Tree[0].Breadcrumb,
		"upstream ancestors should seed the breadcrumb")
}

func TestCategoryTree_AncestorEnrichmentFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	api := newFakeCategoryAPI()
	api.pathFromRootErr = true
	client, _ := treeClient(t, api)

	tree, err := client.CategoryTree(context.Background(), testShopID, meli.TreeRequest{
		CategoryID:       "MLM1430-1",
		MaxDepth:         1,
		IncludeAncestors: true,
	})
	require.NoError(t, err, "enrichment failure must not fail the expansion")

	assert.Empty(t, tree.PathFromRoot)
	require.Len(t, tree.Tree, 1)
	assert.Equal(t, "Hombre", tree.Tree[0].Breadcrumb,
		"starting category still seeds the path")
}

func TestCategoryTree_InvalidDepthFallsBack(t *testing.T) {
	t.Parallel()

	api := newFakeCategoryAPI()
	client, _ := treeClient(t, api)

	// MaxDepth 0 is out of range and falls back to the default (3); the
	// fake hierarchy is only 3 levels deep so everything gets expanded.
	tree, err := client.CategoryTree(context.Background(), testShopID, meli.TreeRequest{MaxDepth: 0})
	require.NoError(t, err)

	require.Len(t, tree.Tree, 1)
	require.Len(t, tree.Tree[0].Children, 2)
	assert.Len(t, tree.Tree[0].Children[0].Children, 1)
}
