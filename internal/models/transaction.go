package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionDescriptionRequired = errors.New("transaction description is required")
	ErrTransactionDateRequired        = errors.New("transaction date is required")
	ErrTransactionCategoryRequired    = errors.New("transaction category is required")
)

// Transaction is a single spend record tied to exactly one category.
// Amounts are exact decimals; they never pass through float64 inside
// the service.
type Transaction struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Date        Date            `json:"date" gorm:"type:date;not null;index:idx_transactions_date"`
	CategoryID  int64           `json:"category_id" gorm:"not null;index:idx_transactions_category_id"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`

	// CategoryName is a read-only projection of categories.name, filled
	// by the join every repository read performs. It is never stored.
	CategoryName string `json:"category_name,omitempty" gorm:"->;-:migration"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate stamps timestamps and validates before insert.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if t.CreatedAt == nil {
		t.CreatedAt = &now
	}
	if t.UpdatedAt == nil {
		t.UpdatedAt = &now
	}
	return t.Validate()
}

// Validate checks the fields storage cannot enforce by type alone.
func (t *Transaction) Validate() error {
	if t.Description == "" {
		return ErrTransactionDescriptionRequired
	}
	if t.Date.IsZero() {
		return ErrTransactionDateRequired
	}
	if t.CategoryID <= 0 {
		return ErrTransactionCategoryRequired
	}
	return nil
}
