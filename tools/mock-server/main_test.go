package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func loadTestFixture(t *testing.T) *fixtureSet {
	t.Helper()
	path := filepath.Join("testdata", "fixtures.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	var fs fixtureSet
	if err := json.Unmarshal(data, &fs); err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return &fs
}

func TestLoadFixture(t *testing.T) {
	fixture := loadTestFixture(t)
	if len(fixture.Suggestions) == 0 {
		t.Fatal("expected suggestions in fixture")
	}
	if len(fixture.Categories) == 0 {
		t.Fatal("expected categories in fixture")
	}
}

func TestTokenHandler_Success(t *testing.T) {
	handler := tokenHandler(testLogger())
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", "12345")
	form.Set("client_secret", "secret")
	form.Set("refresh_token", "TG-old")
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	access, _ := resp["access_token"].(string)
	if !strings.HasPrefix(access, "APP_USR-mock-") {
		t.Errorf("access_token=%q, want APP_USR-mock- prefix", access)
	}
	if resp["token_type"] != "Bearer" {
		t.Errorf("token_type=%v, want Bearer", resp["token_type"])
	}
	if resp["expires_in"] != float64(21600) {
		t.Errorf("expires_in=%v, want 21600", resp["expires_in"])
	}
}

func TestTokenHandler_WrongGrantType(t *testing.T) {
	handler := tokenHandler(testLogger())
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["error"] != "invalid_grant" {
		t.Errorf("error=%s, want invalid_grant", resp["error"])
	}
}

func TestDiscoveryHandler_QueryFilter(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := discoveryHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/sites/MLM/domain_discovery/search?q=camisa", http.NoBody)
	req.Header.Set("Authorization", "Bearer APP_USR-mock-token")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp []domainSuggestion
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("matches=%d, want 1", len(resp))
	}
	if resp[0].DomainID != "MLM-SHIRTS" {
		t.Errorf("domain_id=%s, want MLM-SHIRTS", resp[0].DomainID)
	}
}

func TestDiscoveryHandler_NoResults(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := discoveryHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/sites/MLM/domain_discovery/search?q=nonexistent_xyz", http.NoBody)
	req.Header.Set("Authorization", "Bearer APP_USR-mock-token")
	w := httptest.NewRecorder()

	handler(w, req)

	body := strings.TrimSpace(w.Body.String())
	if body != "[]" {
		t.Errorf("body=%s, want empty array", body)
	}
}

func TestDiscoveryHandler_MissingAuth(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := discoveryHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/sites/MLM/domain_discovery/search?q=camisa", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestCategoryHandler_ExpandsChildren(t *testing.T) {
	fixture := loadTestFixture(t)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories/{id}", categoryHandler(testLogger(), fixture))

	req := httptest.NewRequest(http.MethodGet, "/categories/MLM1430", http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Children []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"children_categories"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Name != "Ropa, Bolsas y Calzado" {
		t.Errorf("name=%s, want Ropa, Bolsas y Calzado", resp.Name)
	}
	if len(resp.Children) != 2 {
		t.Fatalf("children=%d, want 2", len(resp.Children))
	}
	// Child names come from the referenced category fixtures.
	if resp.Children[0].Name != "Camisas" {
		t.Errorf("child name=%s, want Camisas", resp.Children[0].Name)
	}
}

func TestCategoryHandler_NotFound(t *testing.T) {
	fixture := loadTestFixture(t)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories/{id}", categoryHandler(testLogger(), fixture))

	req := httptest.NewRequest(http.MethodGet, "/categories/MLM999999", http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusNotFound)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["error"] != "not_found" {
		t.Errorf("error=%v, want not_found", resp["error"])
	}
}

func TestUploadHandler(t *testing.T) {
	handler := uploadHandler(testLogger())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "product.jpg")
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write([]byte("fake-jpeg-bytes")); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/pictures/items/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusCreated)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	id, _ := resp["id"].(string)
	if !strings.HasPrefix(id, "mock-pic-") {
		t.Errorf("id=%q, want mock-pic- prefix", id)
	}
}

func TestUploadHandler_NotMultipart(t *testing.T) {
	handler := uploadHandler(testLogger())
	req := httptest.NewRequest(http.MethodPost, "/pictures/items/upload", strings.NewReader(`{"source":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
