package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-ledger/internal/dto"
	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories/repository_mocks"
	"finance-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ReportHandlerTestSuite is the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	mockMetrics         *service_mocks.MockMetricsRecorderInterface
	handler             *ReportHandler
	echo                *echo.Echo
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.handler = NewReportHandler(s.mockTransactionRepo, s.mockMetrics)
	s.echo = echo.New()
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) TestCategorySummary_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/category-summary?start_date=2023-03-01&end_date=2023-03-31", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockTransactionRepo.EXPECT().
		SumByCategory(models.MustDate(2023, time.March, 1), models.MustDate(2023, time.March, 31)).
		Return([]models.CategorySummary{
			{
				CategoryID:       1,
				CategoryName:     "Groceries",
				TotalAmount:      decimal.RequireFromString("123.45"),
				TransactionCount: 3,
			},
			{
				CategoryID:       2,
				CategoryName:     "Transport",
				TotalAmount:      decimal.RequireFromString("40.00"),
				TransactionCount: 2,
			},
		}, nil)

	err := s.handler.CategorySummary(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CategorySummaryReportResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("2023-03-01", response.StartDate)
	s.Equal("2023-03-31", response.EndDate)
	s.Len(response.Summaries, 2)
	s.Equal("Groceries", response.Summaries[0].CategoryName)
	s.Equal(123.45, response.Summaries[0].TotalAmount)
	s.Equal(int64(3), response.Summaries[0].TransactionCount)
}

func (s *ReportHandlerTestSuite) TestCategorySummary_EmptyRange() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/category-summary?start_date=2023-03-01&end_date=2023-03-31", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockTransactionRepo.EXPECT().
		SumByCategory(gomock.Any(), gomock.Any()).
		Return([]models.CategorySummary{}, nil)

	err := s.handler.CategorySummary(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CategorySummaryReportResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Empty(response.Summaries)
}

func (s *ReportHandlerTestSuite) TestCategorySummary_InvalidDate() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/category-summary?start_date=2023-02-30&end_date=2023-03-31", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.CategorySummary(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("VALIDATION_004", string(errorResp.Error.Code))
}

func (s *ReportHandlerTestSuite) TestCategorySummary_StorageError() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/category-summary?start_date=2023-03-01&end_date=2023-03-31", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockTransactionRepo.EXPECT().
		SumByCategory(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	err := s.handler.CategorySummary(c)

	s.NoError(err)
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("SYSTEM_002", string(errorResp.Error.Code))
}
