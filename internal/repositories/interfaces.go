package repositories

import (
	"finance-ledger/internal/models"
)

// CategoryRepositoryInterface is the contract for category storage.
// Categories are append-and-update only; there is no delete.
type CategoryRepositoryInterface interface {
	// ListAll returns every category ordered by name ascending.
	ListAll() ([]models.Category, error)
	// FindByName returns the category with the exact given name, or
	// ErrCategoryNotFound when no such category exists.
	FindByName(name string) (*models.Category, error)
	// Create inserts a new category and fills in its generated id and
	// timestamps. Returns ErrDuplicateCategoryName when the name is
	// already taken.
	Create(category *models.Category) error
	// Update overwrites every mutable field of the category with the
	// given id and refreshes updated_at. Returns ErrCategoryNotFound
	// when the id does not exist; it never inserts.
	Update(category *models.Category) error
}

// TransactionRepositoryInterface is the contract for transaction
// storage and the per-category aggregation. Every read joins
// categories so CategoryName is always current.
type TransactionRepositoryInterface interface {
	// ListAll returns every transaction ordered by date descending,
	// with id ascending as a stable tie-break for equal dates.
	ListAll() ([]models.Transaction, error)
	// Create inserts a new transaction. Returns
	// ErrCategoryReferenceInvalid when category_id does not name an
	// existing category.
	Create(transaction *models.Transaction) error
	// Update overwrites amount, description, date and category_id of
	// the transaction with the given id. Returns
	// ErrTransactionNotFound when the id does not exist and
	// ErrCategoryReferenceInvalid when the new category is missing;
	// it never inserts.
	Update(transaction *models.Transaction) error
	// ListByCategoryID returns the transactions of one category,
	// date descending. An unknown category yields an empty slice,
	// not an error.
	ListByCategoryID(categoryID int64) ([]models.Transaction, error)
	// ListByDateRange returns the transactions whose date falls in
	// the inclusive [start, end] range, date descending. An inverted
	// range (start after end) yields an empty slice.
	ListByDateRange(start, end models.Date) ([]models.Transaction, error)
	// SumByCategory aggregates the inclusive [start, end] range into
	// one row per category with at least one matching transaction,
	// ordered by category name ascending. Categories with no activity
	// in the range are omitted. An inverted range yields an empty
	// slice.
	SumByCategory(start, end models.Date) ([]models.CategorySummary, error)
}
