package services

import (
	"fmt"
	"log/slog"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// SeedSummary reports what one seeding run created.
type SeedSummary struct {
	CategoriesCreated   int
	TransactionsCreated int
}

// sampleDataGenerator writes fake categories and transactions through
// the repository contracts. Development use only.
type sampleDataGenerator struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewSampleDataGenerator creates a fake-data seeder.
func NewSampleDataGenerator(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          slog.Default().With("component", "sample_data"),
	}
}

var seedCategoryNames = []string{
	"Groceries", "Transport", "Entertainment", "Utilities",
	"Dining", "Healthcare", "Travel", "Shopping",
}

func (s *sampleDataGenerator) Seed(categories, transactionsPerCategory int) (*SeedSummary, error) {
	if categories <= 0 {
		categories = len(seedCategoryNames)
	}
	if categories > len(seedCategoryNames) {
		categories = len(seedCategoryNames)
	}
	if transactionsPerCategory <= 0 {
		transactionsPerCategory = 10
	}

	summary := &SeedSummary{}
	today := models.DateOf(time.Now().UTC())

	for _, name := range seedCategoryNames[:categories] {
		category, err := s.ensureCategory(name, summary)
		if err != nil {
			return summary, err
		}

		for i := 0; i < transactionsPerCategory; i++ {
			txn := &models.Transaction{
				Amount:      decimal.NewFromFloat(gofakeit.Price(1, 500)),
				Description: gofakeit.ProductName(),
				Date:        today.AddDays(-gofakeit.Number(0, 90)),
				CategoryID:  category.ID,
			}
			if err := s.transactionRepo.Create(txn); err != nil {
				return summary, fmt.Errorf("failed to seed transaction: %w", err)
			}
			summary.TransactionsCreated++
			s.metrics.IncrementCounter("transaction.created", nil)
		}
	}

	s.logger.Info("seeded sample data",
		"categories_created", summary.CategoriesCreated,
		"transactions_created", summary.TransactionsCreated,
	)

	return summary, nil
}

// ensureCategory reuses an existing category of the same name so
// seeding is idempotent across runs.
func (s *sampleDataGenerator) ensureCategory(name string, summary *SeedSummary) (*models.Category, error) {
	existing, err := s.categoryRepo.FindByName(name)
	if err == nil {
		return existing, nil
	}
	if err != repositories.ErrCategoryNotFound {
		return nil, fmt.Errorf("failed to look up seed category %q: %w", name, err)
	}

	description := gofakeit.Sentence(6)
	category := &models.Category{
		Name:        name,
		Description: &description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to seed category %q: %w", name, err)
	}
	summary.CategoriesCreated++
	s.metrics.IncrementCounter("category.created", nil)

	return category, nil
}
