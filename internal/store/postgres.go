package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

const defaultPoolSize = 10

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateCredential inserts or replaces the credential for an owner.
func (s *PostgresStore) CreateCredential(ctx context.Context, c *domain.Credential) error {
	args := pgx.NamedArgs{
		"owner_id":      c.OwnerID,
		"shop_id":       c.ShopID,
		"access_token":  c.AccessToken,
		"refresh_token": c.RefreshToken,
		"token_type":    c.TokenType,
		"expires_in":    c.ExpiresIn,
	}

	if err := s.pool.QueryRow(ctx, queryCreateCredential, args).Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("creating credential: %w", err)
	}
	return nil
}

// GetByShopID returns all credentials bound to a shop, newest first.
// A shop with no credentials yields an empty slice, not an error.
func (s *PostgresStore) GetByShopID(ctx context.Context, shopID string) ([]domain.Credential, error) {
	rows, err := s.pool.Query(ctx, queryGetCredentialsByShopID, shopID)
	if err != nil {
		return nil, fmt.Errorf("querying credentials: %w", err)
	}
	defer rows.Close()

	var creds []domain.Credential
	for rows.Next() {
		var c domain.Credential
		if err := scanCredentialRow(rows, &c); err != nil {
			return nil, fmt.Errorf("scanning credential: %w", err)
		}
		creds = append(creds, c)
	}

	return creds, rows.Err()
}

// GetByOwnerID retrieves the credential for a marketplace user ID.
func (s *PostgresStore) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Credential, error) {
	c := &domain.Credential{}
	err := scanCredential(s.pool.QueryRow(ctx, queryGetCredentialByOwnerID, ownerID), c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying credential: %w", err)
	}
	return c, nil
}

// ListCredentials returns every stored credential.
func (s *PostgresStore) ListCredentials(ctx context.Context) ([]domain.Credential, error) {
	rows, err := s.pool.Query(ctx, queryListCredentials)
	if err != nil {
		return nil, fmt.Errorf("querying credentials: %w", err)
	}
	defer rows.Close()

	var creds []domain.Credential
	for rows.Next() {
		var c domain.Credential
		if err := scanCredentialRow(rows, &c); err != nil {
			return nil, fmt.Errorf("scanning credential: %w", err)
		}
		creds = append(creds, c)
	}

	return creds, rows.Err()
}

// UpdateTokens replaces the token pair for an owner after a refresh.
func (s *PostgresStore) UpdateTokens(
	ctx context.Context,
	ownerID int64,
	accessToken, refreshToken string,
	expiresIn int,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateTokens, ownerID, accessToken, refreshToken, expiresIn)
	if err != nil {
		return fmt.Errorf("updating tokens: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCredential removes the credential for an owner.
func (s *PostgresStore) DeleteCredential(ctx context.Context, ownerID int64) error {
	_, err := s.pool.Exec(ctx, queryDeleteCredential, ownerID)
	if err != nil {
		return fmt.Errorf("deleting credential: %w", err)
	}
	return nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanCredential(row scannable, c *domain.Credential) error {
	return row.Scan(
		&c.OwnerID, &c.ShopID, &c.AccessToken, &c.RefreshToken,
		&c.TokenType, &c.ExpiresIn, &c.CreatedAt, &c.UpdatedAt,
	)
}

func scanCredentialRow(rows pgx.Rows, c *domain.Credential) error {
	return rows.Scan(
		&c.OwnerID, &c.ShopID, &c.AccessToken, &c.RefreshToken,
		&c.TokenType, &c.ExpiresIn, &c.CreatedAt, &c.UpdatedAt,
	)
}
