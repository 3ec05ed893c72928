package dto

import "time"

// CreateTransactionRequest is the payload for creating a transaction.
// Amounts arrive as JSON numbers and are converted to exact decimals at
// this boundary; dates arrive as YYYY-MM-DD strings.
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" validate:"required"`
	Description string  `json:"description" validate:"required,max=500"`
	Date        string  `json:"date" validate:"required,calendar_date"`
	CategoryID  int64   `json:"category_id" validate:"required,positive_amount"`
}

// UpdateTransactionRequest fully replaces the mutable fields of a
// transaction.
type UpdateTransactionRequest struct {
	Amount      float64 `json:"amount" validate:"required"`
	Description string  `json:"description" validate:"required,max=500"`
	Date        string  `json:"date" validate:"required,calendar_date"`
	CategoryID  int64   `json:"category_id" validate:"required,positive_amount"`
}

// TransactionResponse is the wire shape of a transaction. Amount is a
// float projection of the stored exact decimal.
type TransactionResponse struct {
	ID           int64      `json:"id"`
	Amount       float64    `json:"amount"`
	Description  string     `json:"description"`
	Date         string     `json:"date"`
	CategoryID   int64      `json:"category_id"`
	CategoryName string     `json:"category_name,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}
