package dto

// CategorySummaryResponse is one aggregated row of the category
// summary report.
type CategorySummaryResponse struct {
	CategoryID       int64   `json:"category_id"`
	CategoryName     string  `json:"category_name"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int64   `json:"transaction_count"`
}

// CategorySummaryReportResponse is the full report over a date range.
type CategorySummaryReportResponse struct {
	StartDate string                    `json:"start_date"`
	EndDate   string                    `json:"end_date"`
	Summaries []CategorySummaryResponse `json:"summaries"`
}

// SeedResponse reports what the development seeder created.
type SeedResponse struct {
	CategoriesCreated   int `json:"categories_created"`
	TransactionsCreated int `json:"transactions_created"`
}
