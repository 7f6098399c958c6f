package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mcbank/mc_bank_app/internal/core/domain"
	portssvc "github.com/mcbank/mc_bank_app/internal/core/ports/services"
	"github.com/mcbank/mc_bank_app/internal/dto"
	"github.com/mcbank/mc_bank_app/internal/handlers"
	"github.com/mcbank/mc_bank_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	mockExportService    *MockExportService
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockReportingService = new(MockReportingService)
	suite.mockExportService = new(MockExportService)

	container := &portssvc.ServiceContainer{
		Account:     new(MockAccountService),
		Transaction: new(MockTransactionService),
		Ledger:      new(MockLedgerService),
		Reporting:   suite.mockReportingService,
		Export:      suite.mockExportService,
	}
	handlers.RegisterRoutes(suite.router, &config.Config{}, container)
}

func (suite *ReportingHandlerTestSuite) TestGetSummary_Success() {
	summary := domain.Summary{
		TotalBalance:     decimal.NewFromInt(100),
		TotalDeposits:    decimal.NewFromInt(50),
		TotalWithdrawals: decimal.NewFromInt(20),
		AccountCount:     1,
		TransactionCount: 2,
	}
	rows := []domain.AccountActivityRow{
		{AccountID: "a1", Name: "Alice", Balance: decimal.NewFromInt(100), TransactionCount: 2},
	}
	suite.mockReportingService.On("Summary", mock.Anything).Return(summary).Once()
	suite.mockReportingService.On("AccountActivity", mock.Anything).Return(rows).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.SummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.TotalBalance.Equal(decimal.NewFromInt(100)))
	suite.Equal(1, body.AccountCount)
	suite.Equal(2, body.TransactionCount)
	suite.Len(body.Accounts, 1)
	suite.Equal("Alice", body.Accounts[0].Name)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestExportCSV_SetsDownloadHeaders() {
	doc := "\"Account Name\",\"Balance\",\"Transaction Count\"\r\n\r\n\"Account\",\"Type\",\"Amount\",\"Description\",\"Date\""
	suite.mockExportService.On("ExportCSV", mock.Anything).Return(doc).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/export", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(`attachment; filename="bank-summary.csv"`, w.Header().Get("Content-Disposition"))
	suite.Equal("text/csv", w.Header().Get("Content-Type"))
	suite.Equal(doc, w.Body.String())
	suite.mockExportService.AssertExpectations(suite.T())
}

func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
