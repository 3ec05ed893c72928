package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// ImportSummary reports the outcome of one CSV import run.
type ImportSummary struct {
	Created           int
	Skipped           int
	CategoriesCreated int
	LineErrors        []string
}

// csvImporter reads date,amount,description,category rows and writes
// them through the repository contracts. Categories are resolved by
// name and created on first sight.
type csvImporter struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewCSVImporter creates a CSV transaction importer.
func NewCSVImporter(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionImporterInterface {
	return &csvImporter{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          slog.Default().With("component", "csv_importer"),
	}
}

func (s *csvImporter) ImportFile(path string) (*ImportSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	return s.Import(f)
}

func (s *csvImporter) Import(r io.Reader) (*ImportSummary, error) {
	start := time.Now()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return &ImportSummary{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	summary := &ImportSummary{}
	categoryIDs := make(map[string]int64)
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			s.skip(summary, line, "unreadable row")
			continue
		}

		if err := s.importRow(record, categoryIDs, summary); err != nil {
			s.skip(summary, line, err.Error())
			continue
		}
		summary.Created++
		s.metrics.IncrementCounter("import.row", map[string]string{"status": "created"})
	}

	s.metrics.RecordProcessingTime("import.run", time.Since(start))
	s.logger.Info("import finished",
		"created", summary.Created,
		"skipped", summary.Skipped,
		"categories_created", summary.CategoriesCreated,
	)

	return summary, nil
}

func (s *csvImporter) importRow(record []string, categoryIDs map[string]int64, summary *ImportSummary) error {
	if len(record) < 4 {
		return fmt.Errorf("expected 4 fields, got %d", len(record))
	}

	date, err := models.ParseDate(strings.TrimSpace(record[0]))
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", record[0])
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[1]))
	if err != nil {
		return fmt.Errorf("invalid amount %q", record[1])
	}

	description := strings.TrimSpace(record[2])
	if description == "" {
		return fmt.Errorf("description is required")
	}

	categoryName := strings.TrimSpace(record[3])
	if categoryName == "" {
		return fmt.Errorf("category is required")
	}

	categoryID, err := s.resolveCategory(categoryName, categoryIDs, summary)
	if err != nil {
		return err
	}

	txn := &models.Transaction{
		Amount:      amount,
		Description: description,
		Date:        date,
		CategoryID:  categoryID,
	}
	if err := s.transactionRepo.Create(txn); err != nil {
		return fmt.Errorf("failed to store transaction: %v", err)
	}
	s.metrics.IncrementCounter("transaction.created", nil)

	return nil
}

// resolveCategory finds or creates the named category, caching ids for
// the duration of the run.
func (s *csvImporter) resolveCategory(name string, cache map[string]int64, summary *ImportSummary) (int64, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}

	category, err := s.categoryRepo.FindByName(name)
	if err == nil {
		cache[name] = category.ID
		return category.ID, nil
	}
	if err != repositories.ErrCategoryNotFound {
		return 0, fmt.Errorf("failed to look up category %q: %v", name, err)
	}

	created := &models.Category{Name: name}
	if err := s.categoryRepo.Create(created); err != nil {
		// A concurrent import may have won the race; re-resolve once.
		if err == repositories.ErrDuplicateCategoryName {
			existing, findErr := s.categoryRepo.FindByName(name)
			if findErr != nil {
				return 0, fmt.Errorf("failed to resolve category %q: %v", name, findErr)
			}
			cache[name] = existing.ID
			return existing.ID, nil
		}
		return 0, fmt.Errorf("failed to create category %q: %v", name, err)
	}

	s.metrics.IncrementCounter("category.created", nil)
	summary.CategoriesCreated++
	cache[name] = created.ID
	return created.ID, nil
}

func validateHeader(header []string) error {
	expected := []string{"date", "amount", "description", "category"}
	if len(header) < len(expected) {
		return fmt.Errorf("invalid CSV header: expected date,amount,description,category")
	}
	for i, want := range expected {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("invalid CSV header: expected column %d to be %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

func (s *csvImporter) skip(summary *ImportSummary, line int, reason string) {
	summary.Skipped++
	summary.LineErrors = append(summary.LineErrors, fmt.Sprintf("line %d: %s", line, reason))
	s.metrics.IncrementCounter("import.row", map[string]string{"status": "skipped"})
}
