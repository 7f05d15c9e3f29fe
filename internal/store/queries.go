package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Product queries.
const (
	queryListProducts = `
		SELECT id, name, base_url, channel_id, activated_channel_id,
			client_price, client_checked_at, created_at, updated_at
		FROM products
		ORDER BY created_at, id`

	queryGetProduct = `
		SELECT id, name, base_url, channel_id, activated_channel_id,
			client_price, client_checked_at, created_at, updated_at
		FROM products
		WHERE id = $1`

	queryCreateProduct = `
		INSERT INTO products (name, base_url, channel_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	// The WHERE clause on activated_channel_id is the optimistic
	// concurrency check: zero rows affected means another run advanced
	// the channel since it was read.
	queryCommitProductChannel = `
		UPDATE products
		SET activated_channel_id = $3, updated_at = now()
		WHERE id = $1 AND activated_channel_id = $2`

	queryUpdateClientPrice = `
		UPDATE products
		SET client_price = $2, client_checked_at = $3, updated_at = now()
		WHERE id = $1`
)

// Competitor queries.
const (
	queryListCompetitors = `
		SELECT id, product_id, name, url, last_price, last_checked_at,
			created_at, updated_at
		FROM competitors
		ORDER BY product_id, created_at, id`

	queryListCompetitorsByProduct = `
		SELECT id, product_id, name, url, last_price, last_checked_at,
			created_at, updated_at
		FROM competitors
		WHERE product_id = $1
		ORDER BY created_at, id`

	queryCreateCompetitor = `
		INSERT INTO competitors (product_id, name, url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	// IS NOT DISTINCT FROM makes the expected-value check work for the
	// unobserved (NULL) baseline case as well.
	queryCommitCompetitorPrice = `
		UPDATE competitors
		SET last_price = $3, last_checked_at = $4, updated_at = now()
		WHERE id = $1 AND last_price IS NOT DISTINCT FROM $2`
)

// Run queries.
const (
	queryInsertRun = `
		INSERT INTO runs (status, started_at)
		VALUES ('running', now())
		RETURNING id`

	queryCompleteRun = `
		UPDATE runs
		SET completed_at = now(), status = $2, error_text = $3,
			products_checked = $4, competitors_checked = $5,
			price_changes = $6, baselines = $7,
			notifications_sent = $8, fetch_failures = $9,
			notify_failures = $10, conflicts = $11
		WHERE id = $1`

	queryListRuns = `
		SELECT id, started_at, completed_at, status, error_text,
			products_checked, competitors_checked, price_changes, baselines,
			notifications_sent, fetch_failures, notify_failures, conflicts
		FROM runs
		ORDER BY started_at DESC
		LIMIT $1`
)
