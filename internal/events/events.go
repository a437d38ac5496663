package events

import "time"

type RankCompletedEvent struct {
	RankingID    string  `json:"ranking_id"`
	ProductCount int     `json:"product_count"`
	TopScore     float64 `json:"top_score,omitempty"`
	Prioritize   string  `json:"prioritize,omitempty"`
}

type OutfitAssembledEvent struct {
	RankingID         string   `json:"ranking_id"`
	ItemCount         int      `json:"item_count"`
	TotalCost         float64  `json:"total_cost"`
	WithinBudget      bool     `json:"within_budget"`
	MissingCategories []string `json:"missing_categories,omitempty"`
}

type ProductEvent struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Category  string  `json:"category,omitempty"`
	Price     float64 `json:"price,omitempty"`
}

type CatalogStatsEvent struct {
	TotalProducts int            `json:"total_products"`
	ByCategory    map[string]int `json:"by_category"`
	AvgPrice      float64        `json:"avg_price"`
	Timestamp     time.Time      `json:"timestamp"`
}
