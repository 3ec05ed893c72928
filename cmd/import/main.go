package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"finance-ledger/internal/config"
	"finance-ledger/internal/database"
	"finance-ledger/internal/repositories"
	"finance-ledger/internal/services"

	"github.com/joho/godotenv"
)

// Bulk CSV import. Reads date,amount,description,category rows,
// creating categories on first sight. Malformed lines are reported and
// skipped.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	file := flag.String("file", "", "path to CSV file (date,amount,description,category)")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: import -file transactions.csv")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	categoryRepo := repositories.NewCategoryRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	importer := services.NewCSVImporter(categoryRepo, transactionRepo, services.NewLedgerMetrics())

	summary, err := importer.ImportFile(*file)
	if err != nil {
		logger.Error("Import failed", "error", err)
		os.Exit(1)
	}

	for _, lineErr := range summary.LineErrors {
		fmt.Fprintln(os.Stderr, lineErr)
	}

	fmt.Printf("imported %d transactions (%d categories created, %d lines skipped)\n",
		summary.Created, summary.CategoriesCreated, summary.Skipped)

	if summary.Skipped > 0 {
		os.Exit(1)
	}
}
