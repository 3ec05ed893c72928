package models

import "github.com/shopspring/decimal"

// CategorySummary is one row of the per-category aggregation over a
// date range. It is computed fresh on every call and never persisted.
type CategorySummary struct {
	CategoryID       int64           `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int64           `json:"transaction_count"`
}
