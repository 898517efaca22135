package meli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mercadoflow/meli-gateway/internal/metrics"
	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

const (
	// minTreeDepth..maxTreeDepth bound the recursive expansion; every
	// visited node costs one upstream call, so depth is capped hard.
	minTreeDepth     = 1
	maxTreeDepth     = 5
	defaultTreeDepth = 3
)

// ParseMaxDepth interprets a caller-supplied depth string. Non-numeric
// input (including empty) falls back to the default; numeric input is
// clamped into [1,5].
func ParseMaxDepth(s string) int {
	depth, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultTreeDepth
	}
	if depth < minTreeDepth {
		return minTreeDepth
	}
	if depth > maxTreeDepth {
		return maxTreeDepth
	}
	return depth
}

// TreeRequest describes one category-tree expansion.
type TreeRequest struct {
	SiteID           string
	CategoryID       string // empty means start at the site's root categories
	MaxDepth         int
	IncludeAncestors bool
}

// CategoryTree is the result of a tree expansion.
type CategoryTree struct {
	SiteID       string                `json:"site_id"`
	CategoryID   string                `json:"category_id,omitempty"`
	CategoryName string                `json:"category_name,omitempty"`
	PathFromRoot []domain.PathEntry    `json:"path_from_root,omitempty"`
	Tree         []domain.CategoryNode `json:"tree"`
}

// categoryDoc is the subset of GET /categories/{id} the builder needs.
type categoryDoc struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Children []domain.PathEntry `json:"children_categories"`
	Path     []domain.PathEntry `json:"path_from_root"`
}

// CategoryTree recursively expands a category hierarchy to the requested
// depth, carrying an ancestor path and breadcrumb into every node. When the
// expansion starts at a named category and ancestors were requested, one
// extra call resolves the root-to-category path up front; that enrichment
// failing is logged and the tree is still returned without upstream
// ancestors.
func (c *Client) CategoryTree(ctx context.Context, shopID string, req TreeRequest) (*CategoryTree, error) {
	timer := prometheus.NewTimer(metrics.CategoryTreeDuration)
	defer timer.ObserveDuration()

	cred, err := c.credentialForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	siteID := req.SiteID
	if siteID == "" {
		siteID = c.siteID
	}
	maxDepth := req.MaxDepth
	if maxDepth < minTreeDepth || maxDepth > maxTreeDepth {
		maxDepth = defaultTreeDepth
	}

	result := &CategoryTree{SiteID: siteID, CategoryID: req.CategoryID}

	var ancestors []domain.PathEntry
	if req.CategoryID != "" {
		doc, err := c.fetchCategory(ctx, cred, req.CategoryID)
		if err != nil {
			return nil, err
		}
		result.CategoryName = doc.Name

		if req.IncludeAncestors {
			path, pathErr := c.pathFromRoot(ctx, cred, req.CategoryID)
			if pathErr != nil {
				c.log.Warn("path_from_root enrichment failed",
					"category_id", req.CategoryID, "error", pathErr)
			} else {
				result.PathFromRoot = path
				ancestors = path
			}
		}
		if ancestors == nil {
			ancestors = []domain.PathEntry{{ID: doc.ID, Name: doc.Name}}
		}

		result.Tree, err = c.expandChildren(ctx, cred, doc.Children, 0, maxDepth, ancestors)
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	roots, err := c.fetchSiteRoots(ctx, cred, siteID)
	if err != nil {
		return nil, err
	}

	result.Tree, err = c.expandChildren(ctx, cred, roots, 0, maxDepth, nil)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// expandChildren turns a list of child references into CategoryNodes at the
// given depth, recursing while depth < maxDepth-1. The ancestor slice is
// copied per node so siblings never share backing arrays.
func (c *Client) expandChildren(
	ctx context.Context,
	cred *domain.Credential,
	children []domain.PathEntry,
	depth, maxDepth int,
	ancestors []domain.PathEntry,
) ([]domain.CategoryNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nodes := make([]domain.CategoryNode, 0, len(children))
	for _, child := range children {
		metrics.CategoryTreeNodesVisited.Inc()

		node := domain.CategoryNode{
			ID:         child.ID,
			Name:       child.Name,
			Path:       append([]domain.PathEntry(nil), ancestors...),
			Breadcrumb: breadcrumb(ancestors),
			Children:   []domain.CategoryNode{},
		}

		if depth < maxDepth-1 {
			doc, err := c.fetchCategory(ctx, cred, child.ID)
			if err != nil {
				return nil, err
			}
			sub, err := c.expandChildren(ctx, cred, doc.Children, depth+1, maxDepth,
				append(append([]domain.PathEntry(nil), ancestors...), child))
			if err != nil {
				return nil, err
			}
			node.Children = sub
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

func breadcrumb(path []domain.PathEntry) string {
	names := make([]string, len(path))
	for i, entry := range path {
		names[i] = entry.Name
	}
	return strings.Join(names, " > ")
}

func (c *Client) fetchSiteRoots(ctx context.Context, cred *domain.Credential, siteID string) ([]domain.PathEntry, error) {
	raw, err := c.get(ctx, cred, fmt.Sprintf("/sites/%s/categories", siteID), nil)
	if err != nil {
		return nil, err
	}

	var roots []domain.PathEntry
	if err := json.Unmarshal(raw, &roots); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("parsing site categories: %w", err)}
	}
	return roots, nil
}

func (c *Client) fetchCategory(ctx context.Context, cred *domain.Credential, categoryID string) (*categoryDoc, error) {
	raw, err := c.get(ctx, cred, fmt.Sprintf("/categories/%s", categoryID), nil)
	if err != nil {
		return nil, err
	}

	var doc categoryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("parsing category %s: %w", categoryID, err)}
	}
	return &doc, nil
}

func (c *Client) pathFromRoot(ctx context.Context, cred *domain.Credential, categoryID string) ([]domain.PathEntry, error) {
	raw, err := c.get(ctx, cred, fmt.Sprintf("/categories/%s/path_from_root", categoryID), nil)
	if err != nil {
		return nil, err
	}

	var path []domain.PathEntry
	if err := json.Unmarshal(raw, &path); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("parsing path_from_root: %w", err)}
	}
	return path, nil
}
