package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/basecamp-gear/outfitter/internal/catalog"
)

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	Category string
	Retailer string
	MaxPrice float64
	Limit    int
	Offset   int
}

// RankSnapshot is a persisted ranking run: the preferences used and the
// scored results, kept so a ranking can be explained after the fact.
type RankSnapshot struct {
	ID          uuid.UUID              `json:"ranking_id"`
	Preferences catalog.Preferences    `json:"preferences"`
	Results     map[string]interface{} `json:"results"`
	CreatedAt   time.Time              `json:"created_at"`
}

// CatalogStats summarizes the product catalog.
type CatalogStats struct {
	TotalProducts int            `json:"total_products"`
	ByCategory    map[string]int `json:"by_category"`
	AvgPrice      float64        `json:"avg_price"`
}

// Store is the persistence boundary for the catalog and rank history.
type Store interface {
	CreateProduct(ctx context.Context, p *catalog.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]catalog.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateRankSnapshot(ctx context.Context, snap *RankSnapshot) error
	GetRankSnapshot(ctx context.Context, id uuid.UUID) (*RankSnapshot, error)

	GetCatalogStats(ctx context.Context) (*CatalogStats, error)

	Close() error
}
