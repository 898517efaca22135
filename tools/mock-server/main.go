// Package main implements a mock MercadoLibre API server for local development.
// It serves canned responses from JSON fixtures to simulate domain discovery,
// category lookups and the OAuth token endpoint without real credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type domainSuggestion struct {
	DomainID     string `json:"domain_id"`
	DomainName   string `json:"domain_name"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type categoryFixture struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	ChildrenIDs  []string          `json:"children_ids"`
	PathFromRoot []json.RawMessage `json:"path_from_root"`
}

type fixtureSet struct {
	Suggestions []domainSuggestion         `json:"suggestions"`
	Categories  map[string]categoryFixture `json:"categories"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/fixtures.json", "path to fixture file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "suggestions", len(fixture.Suggestions), "categories", len(fixture.Categories))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", tokenHandler(logger))
	mux.HandleFunc("GET /sites/{site}/domain_discovery/search", discoveryHandler(logger, fixture))
	mux.HandleFunc("GET /categories/{id}", categoryHandler(logger, fixture))
	mux.HandleFunc("POST /pictures/items/upload", uploadHandler(logger))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock MercadoLibre server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixtureSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fs fixtureSet
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fs, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "refresh_token" {
			logger.Warn("token request with bad grant type", "grant_type", r.PostForm.Get("grant_type"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_grant",
				"error_description": "grant_type must be refresh_token",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "APP_USR-mock-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"refresh_token": "TG-mock-" + strconv.FormatInt(time.Now().Unix(), 16),
			"expires_in":    21600,
			"token_type":    "Bearer",
		})
		logger.Info("issued mock token")
	}
}

func discoveryHandler(logger *slog.Logger, fixture *fixtureSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]any{
				"message": "invalid access token",
				"error":   "unauthorized",
				"status":  401,
			})
			return
		}

		q := strings.ToLower(r.URL.Query().Get("q"))

		// Filter suggestions by substring match on the domain name.
		matched := make([]domainSuggestion, 0)
		for _, s := range fixture.Suggestions {
			if q != "" && strings.Contains(strings.ToLower(s.DomainName), q) {
				matched = append(matched, s)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(matched)
		logger.Info("domain discovery", "site", r.PathValue("site"), "query", q, "matched", len(matched))
	}
}

func categoryHandler(logger *slog.Logger, fixture *fixtureSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		cat, ok := fixture.Categories[id]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]any{
				"message": "Category with id " + id + " not found",
				"error":   "not_found",
				"status":  404,
			})
			return
		}

		// Expand children_ids into the children_categories shape the real
		// API returns.
		children := make([]map[string]string, 0, len(cat.ChildrenIDs))
		for _, cid := range cat.ChildrenIDs {
			name := cid
			if child, ok := fixture.Categories[cid]; ok {
				name = child.Name
			}
			children = append(children, map[string]string{"id": cid, "name": name})
		}

		pathFromRoot := cat.PathFromRoot
		if pathFromRoot == nil {
			pathFromRoot = []json.RawMessage{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"id":                  cat.ID,
			"name":                cat.Name,
			"children_categories": children,
			"path_from_root":      pathFromRoot,
		})
		logger.Info("category lookup", "id", id, "children", len(children))
	}
}

func uploadHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "bad_request", "message": "expected multipart form"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"id":         "mock-pic-" + strconv.FormatInt(time.Now().UnixNano(), 36),
			"max_size":   "1200x1200",
			"variations": []any{},
		})
		logger.Info("accepted mock picture upload")
	}
}
