package handlers

import (
	"net/http"

	"finance-ledger/internal/dto"
	"finance-ledger/internal/errors"
	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler exposes transaction storage over HTTP. It holds
// no business logic; every operation delegates to the repository.
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionRepo repositories.TransactionRepositoryInterface) *TransactionHandler {
	return &TransactionHandler{transactionRepo: transactionRepo}
}

// List returns all transactions, newest first
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	transactions, err := h.transactionRepo.ListAll()
	if err != nil {
		return SendStorageError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: toTransactionResponses(transactions),
		Total:        len(transactions),
	})
}

// Create inserts a new transaction
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_002 - unknown category"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationFailed,
			errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.toModel(0, &req.Amount, req.Description, req.Date, req.CategoryID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		if err == repositories.ErrCategoryReferenceInvalid {
			return SendError(c, errors.TransactionInvalidCategory)
		}
		return SendStorageError(c, err)
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// Update replaces the transaction with the given id
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Transaction"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_002 - unknown category"
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails("id: must be a positive integer"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationFailed,
			errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.toModel(id, &req.Amount, req.Description, req.Date, req.CategoryID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	if err := h.transactionRepo.Update(transaction); err != nil {
		switch err {
		case repositories.ErrTransactionNotFound:
			return SendError(c, errors.TransactionNotFound)
		case repositories.ErrCategoryReferenceInvalid:
			return SendError(c, errors.TransactionInvalidCategory)
		default:
			return SendStorageError(c, err)
		}
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// ListByCategory returns the transactions of one category
// @Summary List transactions by category
// @Tags Transactions
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {object} dto.ListTransactionsResponse
// @Router /api/v1/transactions/by-category/{categoryId} [get]
func (h *TransactionHandler) ListByCategory(c echo.Context) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails("categoryId: must be a positive integer"))
	}

	transactions, err := h.transactionRepo.ListByCategoryID(categoryID)
	if err != nil {
		return SendStorageError(c, err)
	}

	// Unknown categories yield an empty list, not a 404
	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: toTransactionResponses(transactions),
		Total:        len(transactions),
	})
}

// ListByDateRange returns transactions in an inclusive date range
// @Summary List transactions by date range
// @Tags Transactions
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD, inclusive)"
// @Param end_date query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - bad date"
// @Router /api/v1/transactions/by-date-range [get]
func (h *TransactionHandler) ListByDateRange(c echo.Context) error {
	start, end, ok, respErr := parseDateRange(c)
	if !ok {
		return respErr
	}

	transactions, err := h.transactionRepo.ListByDateRange(start, end)
	if err != nil {
		return SendStorageError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: toTransactionResponses(transactions),
		Total:        len(transactions),
	})
}

// toModel converts request fields to a storage model. The float amount
// is converted through its shortest decimal representation, so 42.50
// stays exactly 42.5.
func (h *TransactionHandler) toModel(id int64, amount *float64, description, date string, categoryID int64) (*models.Transaction, error) {
	parsedDate, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}

	return &models.Transaction{
		ID:          id,
		Amount:      decimal.NewFromFloat(*amount),
		Description: description,
		Date:        parsedDate,
		CategoryID:  categoryID,
	}, nil
}
