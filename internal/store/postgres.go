package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/basecamp-gear/outfitter/internal/catalog"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const productColumns = `product_id, name, category, color, retailer, price, delivery_days, rating, specs`

func (s *PostgresStore) CreateProduct(ctx context.Context, p *catalog.Product) error {
	var specsJSON []byte
	if p.Specs != nil {
		specsJSON, _ = json.Marshal(p.Specs)
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO gear_products (name, category, color, retailer, price, delivery_days, rating, specs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING product_id`,
		p.Name, p.Category, p.Color, p.Retailer, p.Price, p.DeliveryDays, p.Rating, specsJSON,
	).Scan(&p.ID)
}

func (s *PostgresStore) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM gear_products WHERE product_id = $1`, id)
	p, err := scanProduct(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostgresStore) ListProducts(ctx context.Context, filter ProductFilter) ([]catalog.Product, error) {
	query := `SELECT ` + productColumns + ` FROM gear_products WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Category != "" {
		n++
		query += fmt.Sprintf(" AND category = $%d", n)
		args = append(args, filter.Category)
	}
	if filter.Retailer != "" {
		n++
		query += fmt.Sprintf(" AND retailer = $%d", n)
		args = append(args, filter.Retailer)
	}
	if filter.MaxPrice > 0 {
		n++
		query += fmt.Sprintf(" AND price <= $%d", n)
		args = append(args, filter.MaxPrice)
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		n++
		query += fmt.Sprintf(" LIMIT $%d", n)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (s *PostgresStore) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM gear_products WHERE product_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", id)
	}
	return nil
}

func (s *PostgresStore) CreateRankSnapshot(ctx context.Context, snap *RankSnapshot) error {
	prefsJSON, _ := json.Marshal(snap.Preferences)
	resultsJSON, _ := json.Marshal(snap.Results)
	return s.pool.QueryRow(ctx, `
		INSERT INTO rank_snapshots (preferences, results)
		VALUES ($1, $2)
		RETURNING ranking_id, created_at`,
		prefsJSON, resultsJSON,
	).Scan(&snap.ID, &snap.CreatedAt)
}

func (s *PostgresStore) GetRankSnapshot(ctx context.Context, id uuid.UUID) (*RankSnapshot, error) {
	snap := &RankSnapshot{}
	var prefsJSON, resultsJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT ranking_id, preferences, results, created_at
		FROM rank_snapshots WHERE ranking_id = $1`, id,
	).Scan(&snap.ID, &prefsJSON, &resultsJSON, &snap.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if prefsJSON != nil {
		_ = json.Unmarshal(prefsJSON, &snap.Preferences)
	}
	if resultsJSON != nil {
		_ = json.Unmarshal(resultsJSON, &snap.Results)
	}
	return snap, nil
}

func (s *PostgresStore) GetCatalogStats(ctx context.Context) (*CatalogStats, error) {
	stats := &CatalogStats{ByCategory: map[string]int{}}

	var avgPrice sql.NullFloat64
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*), AVG(price) FROM gear_products`,
	).Scan(&stats.TotalProducts, &avgPrice)
	if err != nil {
		return nil, err
	}
	if avgPrice.Valid {
		stats.AvgPrice = avgPrice.Float64
	}

	rows, err := s.pool.Query(ctx, `
		SELECT category, COUNT(*) FROM gear_products GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		stats.ByCategory[category] = count
	}
	return stats, rows.Err()
}

// scanProduct reads one product row. specs is a nullable jsonb column.
func scanProduct(row pgx.Row) (*catalog.Product, error) {
	p := &catalog.Product{}
	var color, retailer sql.NullString
	var specsJSON []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &color, &retailer,
		&p.Price, &p.DeliveryDays, &p.Rating, &specsJSON,
	)
	if err != nil {
		return nil, err
	}
	if color.Valid {
		p.Color = color.String
	}
	if retailer.Valid {
		p.Retailer = retailer.String
	}
	if specsJSON != nil {
		specs := &catalog.Specs{}
		if err := json.Unmarshal(specsJSON, specs); err == nil {
			p.Specs = specs
		}
	}
	return p, nil
}
