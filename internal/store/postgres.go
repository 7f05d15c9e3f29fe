package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// PostgresStore methods require live Postgres; they are covered by the
// integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize)

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

// ListProducts returns all products with their competitors attached, in
// insertion order.
func (s *PostgresStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, queryListProducts)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	index := make(map[string]int)
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		index[p.ID] = len(products)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	crows, err := s.pool.Query(ctx, queryListCompetitors)
	if err != nil {
		return nil, fmt.Errorf("listing competitors: %w", err)
	}
	defer crows.Close()

	for crows.Next() {
		var c domain.Competitor
		if err := scanCompetitor(crows, &c); err != nil {
			return nil, fmt.Errorf("scanning competitor: %w", err)
		}
		if i, ok := index[c.ProductID]; ok {
			products[i].Competitors = append(products[i].Competitors, c)
		}
	}
	if err := crows.Err(); err != nil {
		return nil, fmt.Errorf("iterating competitors: %w", err)
	}

	return products, nil
}

// GetProduct returns a single product with its competitors.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	err := scanProduct(s.pool.QueryRow(ctx, queryGetProduct, id), p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting product %s: %w", id, err)
	}

	rows, err := s.pool.Query(ctx, queryListCompetitorsByProduct, id)
	if err != nil {
		return nil, fmt.Errorf("listing competitors for %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Competitor
		if err := scanCompetitor(rows, &c); err != nil {
			return nil, fmt.Errorf("scanning competitor: %w", err)
		}
		p.Competitors = append(p.Competitors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating competitors: %w", err)
	}

	return p, nil
}

// CreateProduct inserts a new product.
func (s *PostgresStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	err := s.pool.QueryRow(ctx, queryCreateProduct, p.Name, p.BaseURL, p.ChannelID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

// CreateCompetitor inserts a new competitor for a product.
func (s *PostgresStore) CreateCompetitor(ctx context.Context, c *domain.Competitor) error {
	err := s.pool.QueryRow(ctx, queryCreateCompetitor, c.ProductID, c.Name, c.URL).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating competitor: %w", err)
	}
	return nil
}

// CommitProductChannel advances the activated channel under an optimistic
// concurrency check on the previously read value.
func (s *PostgresStore) CommitProductChannel(ctx context.Context, productID, oldChannelID, newChannelID string) error {
	tag, err := s.pool.Exec(ctx, queryCommitProductChannel, productID, oldChannelID, newChannelID)
	if err != nil {
		return fmt.Errorf("committing product channel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

// CommitCompetitorPrice advances the recorded competitor price under an
// optimistic concurrency check on the previously read value.
func (s *PostgresStore) CommitCompetitorPrice(ctx context.Context, competitorID string, oldPrice *float64, newPrice float64, checkedAt time.Time) error {
	tag, err := s.pool.Exec(ctx, queryCommitCompetitorPrice, competitorID, oldPrice, newPrice, checkedAt)
	if err != nil {
		return fmt.Errorf("committing competitor price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

// UpdateClientPrice records the current client price on the product.
func (s *PostgresStore) UpdateClientPrice(ctx context.Context, productID string, price float64, checkedAt time.Time) error {
	tag, err := s.pool.Exec(ctx, queryUpdateClientPrice, productID, price, checkedAt)
	if err != nil {
		return fmt.Errorf("updating client price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertRun records the start of a monitoring run.
func (s *PostgresStore) InsertRun(ctx context.Context) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertRun).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// CompleteRun records the outcome and counters of a monitoring run.
func (s *PostgresStore) CompleteRun(ctx context.Context, id, status, errText string, stats domain.RunStats) error {
	_, err := s.pool.Exec(ctx, queryCompleteRun, id, status, errText,
		stats.ProductsChecked, stats.CompetitorsChecked,
		stats.PriceChanges, stats.Baselines,
		stats.NotificationsSent, stats.FetchFailures,
		stats.NotifyFailures, stats.Conflicts,
	)
	if err != nil {
		return fmt.Errorf("completing run %s: %w", id, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *PostgresStore) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx, queryListRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		var r domain.Run
		err := rows.Scan(
			&r.ID, &r.StartedAt, &r.CompletedAt, &r.Status, &r.ErrorText,
			&r.ProductsChecked, &r.CompetitorsChecked, &r.PriceChanges, &r.Baselines,
			&r.NotificationsSent, &r.FetchFailures, &r.NotifyFailures, &r.Conflicts,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.BaseURL, &p.ChannelID, &p.ActivatedChannelID,
		&p.ClientPrice, &p.ClientCheckedAt, &p.CreatedAt, &p.UpdatedAt,
	)
}

func scanCompetitor(row pgx.Row, c *domain.Competitor) error {
	return row.Scan(
		&c.ID, &c.ProductID, &c.Name, &c.URL, &c.LastPrice, &c.LastCheckedAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
}
