package handlers

import (
	"net/http"
	"strconv"

	"finance-ledger/internal/dto"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler exposes development-only endpoints. It is only mounted
// when the environment is not production.
type DevHandler struct {
	seeder services.SampleDataGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(seeder services.SampleDataGeneratorInterface) *DevHandler {
	return &DevHandler{seeder: seeder}
}

// Seed fills the ledger with fake categories and transactions
// @Summary Seed sample data (development only)
// @Tags Development
// @Produce json
// @Param categories query int false "Number of categories (default 8)"
// @Param transactions query int false "Transactions per category (default 10)"
// @Success 200 {object} dto.SeedResponse
// @Router /api/v1/dev/seed [post]
func (h *DevHandler) Seed(c echo.Context) error {
	categories, _ := strconv.Atoi(c.QueryParam("categories"))
	transactions, _ := strconv.Atoi(c.QueryParam("transactions"))

	summary, err := h.seeder.Seed(categories, transactions)
	if err != nil {
		return SendStorageError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SeedResponse{
		CategoriesCreated:   summary.CategoriesCreated,
		TransactionsCreated: summary.TransactionsCreated,
	})
}
