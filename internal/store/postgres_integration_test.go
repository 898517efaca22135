//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mercadoflow/meli-gateway/internal/store"
	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("meligw_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testCredential(ownerID int64, shopID string) *domain.Credential {
	return &domain.Credential{
		OwnerID:      ownerID,
		ShopID:       shopID,
		AccessToken:  "APP_USR-access-token",
		RefreshToken: "TG-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    21600,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_CreateCredential(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("insert new credential", func(t *testing.T) {
		c := testCredential(126526290, "shop-1")
		err := s.CreateCredential(ctx, c)
		require.NoError(t, err)
		assert.False(t, c.CreatedAt.IsZero())
		assert.False(t, c.UpdatedAt.IsZero())
	})

	t.Run("upsert replaces tokens for the same owner", func(t *testing.T) {
		c := testCredential(200, "shop-upsert")
		require.NoError(t, s.CreateCredential(ctx, c))
		firstCreated := c.CreatedAt

		c2 := testCredential(200, "shop-upsert")
		c2.AccessToken = "APP_USR-replaced"
		require.NoError(t, s.CreateCredential(ctx, c2))
		assert.Equal(t, firstCreated, c2.CreatedAt)

		got, err := s.GetByOwnerID(ctx, 200)
		require.NoError(t, err)
		assert.Equal(t, "APP_USR-replaced", got.AccessToken)
	})
}

func TestPostgresStore_GetByShopID(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		c := testCredential(300, "shop-get")
		require.NoError(t, s.CreateCredential(ctx, c))

		got, err := s.GetByShopID(ctx, "shop-get")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(300), got[0].OwnerID)
		assert.Equal(t, "APP_USR-access-token", got[0].AccessToken)
	})

	t.Run("unknown shop yields empty slice without error", func(t *testing.T) {
		got, err := s.GetByShopID(ctx, "nonexistent")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("newest credential first", func(t *testing.T) {
		older := testCredential(401, "shop-multi")
		require.NoError(t, s.CreateCredential(ctx, older))

		time.Sleep(10 * time.Millisecond)

		newer := testCredential(402, "shop-multi")
		require.NoError(t, s.CreateCredential(ctx, newer))

		got, err := s.GetByShopID(ctx, "shop-multi")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(402), got[0].OwnerID)
	})
}

func TestPostgresStore_GetByOwnerID(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	c := testCredential(500, "shop-owner")
	require.NoError(t, s.CreateCredential(ctx, c))

	got, err := s.GetByOwnerID(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, "shop-owner", got.ShopID)

	_, err = s.GetByOwnerID(ctx, 999999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_UpdateTokens(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	c := testCredential(600, "shop-tokens")
	require.NoError(t, s.CreateCredential(ctx, c))

	err := s.UpdateTokens(ctx, 600, "APP_USR-new-access", "TG-new-refresh", 10800)
	require.NoError(t, err)

	got, err := s.GetByOwnerID(ctx, 600)
	require.NoError(t, err)
	assert.Equal(t, "APP_USR-new-access", got.AccessToken)
	assert.Equal(t, "TG-new-refresh", got.RefreshToken)
	assert.Equal(t, 10800, got.ExpiresIn)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))

	t.Run("unknown owner", func(t *testing.T) {
		err := s.UpdateTokens(ctx, 999999, "a", "r", 1)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPostgresStore_DeleteCredential(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	c := testCredential(700, "shop-delete")
	require.NoError(t, s.CreateCredential(ctx, c))

	require.NoError(t, s.DeleteCredential(ctx, 700))

	_, err := s.GetByOwnerID(ctx, 700)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_ListCredentials(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		require.NoError(t, s.CreateCredential(ctx, testCredential(800+i, "shop-list")))
	}

	got, err := s.ListCredentials(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, int64(801), got[0].OwnerID)
}
