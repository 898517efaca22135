package store

// SQL query constants.
// All SQL lives here; PostgresStore methods reference these constants.

// Credential queries.
const (
	queryCreateCredential = `
		INSERT INTO credentials (
			owner_id, shop_id, access_token, refresh_token,
			token_type, expires_in, created_at, updated_at
		) VALUES (
			@owner_id, @shop_id, @access_token, @refresh_token,
			@token_type, @expires_in, now(), now()
		)
		ON CONFLICT (owner_id) DO UPDATE SET
			shop_id = EXCLUDED.shop_id,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_type = EXCLUDED.token_type,
			expires_in = EXCLUDED.expires_in,
			updated_at = now()
		RETURNING created_at, updated_at`

	queryGetCredentialsByShopID = `
		SELECT owner_id, shop_id, access_token, refresh_token,
			COALESCE(token_type, 'Bearer'), expires_in, created_at, updated_at
		FROM credentials
		WHERE shop_id = $1
		ORDER BY updated_at DESC`

	queryGetCredentialByOwnerID = `
		SELECT owner_id, shop_id, access_token, refresh_token,
			COALESCE(token_type, 'Bearer'), expires_in, created_at, updated_at
		FROM credentials
		WHERE owner_id = $1`

	queryListCredentials = `
		SELECT owner_id, shop_id, access_token, refresh_token,
			COALESCE(token_type, 'Bearer'), expires_in, created_at, updated_at
		FROM credentials
		ORDER BY owner_id`

	queryUpdateTokens = `
		UPDATE credentials SET
			access_token = $2,
			refresh_token = $3,
			expires_in = $4,
			updated_at = now()
		WHERE owner_id = $1`

	queryDeleteCredential = `
		DELETE FROM credentials
		WHERE owner_id = $1`
)
