// Package store defines the datastore abstraction for meli-gateway.
// Handlers and the marketplace client depend on the Store interface, never
// on concrete implementations. This enables mock-based testing without a
// running database.
package store

import (
	"context"

	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

// Store defines all data access operations for meli-gateway.
type Store interface {
	// Credentials
	CreateCredential(ctx context.Context, c *domain.Credential) error
	GetByShopID(ctx context.Context, shopID string) ([]domain.Credential, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Credential, error)
	ListCredentials(ctx context.Context) ([]domain.Credential, error)
	UpdateTokens(ctx context.Context, ownerID int64, accessToken, refreshToken string, expiresIn int) error
	DeleteCredential(ctx context.Context, ownerID int64) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
