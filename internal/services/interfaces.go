package services

import (
	"io"
	"time"
)

// MetricsRecorderInterface defines the contract for recording
// operational metrics.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// TransactionImporterInterface defines the contract for bulk CSV
// import of transactions.
type TransactionImporterInterface interface {
	// ImportFile imports a CSV file of date,amount,description,category
	// rows. Malformed lines are reported in the summary and skipped.
	ImportFile(path string) (*ImportSummary, error)
	// Import imports CSV rows from a reader.
	Import(r io.Reader) (*ImportSummary, error)
}

// SampleDataGeneratorInterface defines the contract for development
// seed data generation.
type SampleDataGeneratorInterface interface {
	// Seed creates fake categories and transactions and reports how
	// many of each were created.
	Seed(categories, transactionsPerCategory int) (*SeedSummary, error)
}
