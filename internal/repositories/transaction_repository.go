package repositories

import (
	"errors"
	"fmt"
	"time"

	"finance-ledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrCategoryReferenceInvalid = errors.New("transaction references a nonexistent category")
)

// transactionColumns is the projection every transaction read uses:
// all stored columns plus the joined category name.
const transactionColumns = "transactions.id, transactions.amount, transactions.description, " +
	"transactions.date, transactions.category_id, transactions.created_at, " +
	"transactions.updated_at, categories.name AS category_name"

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a gorm-backed transaction repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) ListAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.joined().
		Order("transactions.date DESC, transactions.id ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.ensureCategoryExists(transaction.CategoryID); err != nil {
		return err
	}

	if err := r.db.Create(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrCategoryReferenceInvalid
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return r.reload(transaction)
}

func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := r.ensureCategoryExists(transaction.CategoryID); err != nil {
		return err
	}

	result := r.db.Model(&models.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]interface{}{
			"amount":      transaction.Amount,
			"description": transaction.Description,
			"date":        transaction.Date,
			"category_id": transaction.CategoryID,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return ErrCategoryReferenceInvalid
		}
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	// Zero rows means the id does not exist; an update never inserts.
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return r.reload(transaction)
}

func (r *transactionRepository) ListByCategoryID(categoryID int64) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.joined().
		Where("transactions.category_id = ?", categoryID).
		Order("transactions.date DESC, transactions.id ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by category: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) ListByDateRange(start, end models.Date) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.joined().
		Where("transactions.date BETWEEN ? AND ?", start, end).
		Order("transactions.date DESC, transactions.id ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by date range: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) SumByCategory(start, end models.Date) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary

	query := `
		SELECT
			c.id AS category_id,
			COALESCE(c.name, 'Uncategorized') AS category_name,
			COALESCE(SUM(t.amount), 0) AS total_amount,
			COUNT(t.id) AS transaction_count
		FROM categories c
		JOIN transactions t ON t.category_id = c.id
		WHERE t.date BETWEEN ? AND ?
		GROUP BY c.id, c.name
		HAVING COUNT(t.id) > 0
		ORDER BY category_name ASC
	`

	if err := r.db.Raw(query, start, end).Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to sum transactions by category: %w", err)
	}

	return summaries, nil
}

// joined is the base query for all transaction reads. CategoryName is
// never stored, so every read recomputes it from the join.
func (r *transactionRepository) joined() *gorm.DB {
	return r.db.Model(&models.Transaction{}).
		Select(transactionColumns).
		Joins("JOIN categories ON categories.id = transactions.category_id")
}

// ensureCategoryExists gives writes a deterministic foreign-key check
// instead of relying solely on the constraint error of the driver.
func (r *transactionRepository) ensureCategoryExists(categoryID int64) error {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check category reference: %w", err)
	}
	if count == 0 {
		return ErrCategoryReferenceInvalid
	}
	return nil
}

// reload refreshes the struct from storage with the joined category
// name, so callers always see what a subsequent read would return.
func (r *transactionRepository) reload(transaction *models.Transaction) error {
	var loaded models.Transaction
	err := r.joined().
		Where("transactions.id = ?", transaction.ID).
		First(&loaded).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to reload transaction: %w", err)
	}
	*transaction = loaded
	return nil
}
