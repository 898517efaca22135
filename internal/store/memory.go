package store

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

// MemoryStore is an in-memory Store for tests and local development.
// It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	creds map[int64]domain.Credential
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{creds: make(map[int64]domain.Credential)}
}

// CreateCredential inserts or replaces the credential for an owner.
func (s *MemoryStore) CreateCredential(_ context.Context, c *domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := s.creds[c.OwnerID]; ok {
		c.CreatedAt = existing.CreatedAt
	} else {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	s.creds[c.OwnerID] = *c
	return nil
}

// GetByShopID returns all credentials bound to a shop, newest first.
func (s *MemoryStore) GetByShopID(_ context.Context, shopID string) ([]domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Credential
	for _, c := range s.creds {
		if c.ShopID == shopID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// GetByOwnerID retrieves the credential for a marketplace user ID.
func (s *MemoryStore) GetByOwnerID(_ context.Context, ownerID int64) (*domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.creds[ownerID]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// ListCredentials returns every stored credential ordered by owner ID.
func (s *MemoryStore) ListCredentials(_ context.Context) ([]domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Credential, 0, len(s.creds))
	for _, c := range s.creds {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OwnerID < out[j].OwnerID
	})
	return out, nil
}

// UpdateTokens replaces the token pair for an owner after a refresh.
func (s *MemoryStore) UpdateTokens(
	_ context.Context,
	ownerID int64,
	accessToken, refreshToken string,
	expiresIn int,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.creds[ownerID]
	if !ok {
		return ErrNotFound
	}
	c.AccessToken = accessToken
	c.RefreshToken = refreshToken
	c.ExpiresIn = expiresIn
	c.UpdatedAt = time.Now().UTC()
	s.creds[ownerID] = c
	return nil
}

// DeleteCredential removes the credential for an owner.
func (s *MemoryStore) DeleteCredential(_ context.Context, ownerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.creds, ownerID)
	return nil
}

// Migrate is a no-op for the in-memory store.
func (s *MemoryStore) Migrate(_ context.Context) error { return nil }

// Ping always succeeds.
func (s *MemoryStore) Ping(_ context.Context) error { return nil }
