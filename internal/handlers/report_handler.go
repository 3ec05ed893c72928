package handlers

import (
	"net/http"
	"time"

	"finance-ledger/internal/dto"
	"finance-ledger/internal/repositories"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the aggregation endpoints.
type ReportHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         services.MetricsRecorderInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(transactionRepo repositories.TransactionRepositoryInterface, metrics services.MetricsRecorderInterface) *ReportHandler {
	return &ReportHandler{transactionRepo: transactionRepo, metrics: metrics}
}

// CategorySummary returns per-category totals over a date range
// @Summary Category summary report
// @Description Sums and counts transactions per category over an inclusive date range. Categories with no activity in the range are omitted.
// @Tags Reports
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD, inclusive)"
// @Param end_date query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.CategorySummaryReportResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - bad date"
// @Router /api/v1/reports/category-summary [get]
func (h *ReportHandler) CategorySummary(c echo.Context) error {
	start, end, ok, respErr := parseDateRange(c)
	if !ok {
		return respErr
	}

	began := time.Now()
	summaries, err := h.transactionRepo.SumByCategory(start, end)
	if err != nil {
		return SendStorageError(c, err)
	}
	h.metrics.IncrementCounter("summary.query", nil)
	h.metrics.RecordProcessingTime("summary.query", time.Since(began))

	responses := make([]dto.CategorySummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, dto.CategorySummaryResponse{
			CategoryID:       summary.CategoryID,
			CategoryName:     summary.CategoryName,
			TotalAmount:      summary.TotalAmount.InexactFloat64(),
			TransactionCount: summary.TransactionCount,
		})
	}

	return c.JSON(http.StatusOK, dto.CategorySummaryReportResponse{
		StartDate: start.String(),
		EndDate:   end.String(),
		Summaries: responses,
	})
}
