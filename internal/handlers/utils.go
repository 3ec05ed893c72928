package handlers

import (
	"fmt"
	"strconv"

	"finance-ledger/internal/dto"
	"finance-ledger/internal/errors"
	"finance-ledger/internal/models"

	"github.com/labstack/echo/v4"
)

// toCategoryResponse converts a stored category to its wire shape.
func toCategoryResponse(category *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Icon:        category.Icon,
		Color:       category.Color,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// toTransactionResponse converts a stored transaction to its wire
// shape. The exact decimal amount becomes a float projection here and
// nowhere else.
func toTransactionResponse(transaction *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:           transaction.ID,
		Amount:       transaction.Amount.InexactFloat64(),
		Description:  transaction.Description,
		Date:         transaction.Date.String(),
		CategoryID:   transaction.CategoryID,
		CategoryName: transaction.CategoryName,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}

func toTransactionResponses(transactions []models.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, toTransactionResponse(&transactions[i]))
	}
	return responses
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return id, nil
}

// parseDateRange parses the start_date/end_date query parameters,
// replying with a VALIDATION_004 error itself when either is invalid.
// The bool result reports whether parsing succeeded.
func parseDateRange(c echo.Context) (start, end models.Date, ok bool, respErr error) {
	start, err := models.ParseDate(c.QueryParam("start_date"))
	if err != nil {
		return start, end, false, SendError(c, errors.ValidationInvalidDate,
			errors.WithMessage(fmt.Sprintf("Invalid start date format: %s, expected YYYY-MM-DD", c.QueryParam("start_date"))))
	}

	end, err = models.ParseDate(c.QueryParam("end_date"))
	if err != nil {
		return start, end, false, SendError(c, errors.ValidationInvalidDate,
			errors.WithMessage(fmt.Sprintf("Invalid end date format: %s, expected YYYY-MM-DD", c.QueryParam("end_date"))))
	}

	return start, end, true, nil
}
