package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/handlers"
	"github.com/finbooks/finbooks_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByCode(ctx context.Context, ownerID string, code string) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByIDs(ctx context.Context, ownerID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, ownerID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, ownerID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalService = (*MockJournalService)(nil)

func (m *MockJournalService) CreateJournal(ctx context.Context, ownerID string, req dto.CreateJournalRequest) (*domain.Journal, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) GetJournalByID(ctx context.Context, ownerID string, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, ownerID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) ListJournals(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Journal, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) IncomeStatement(ctx context.Context, ownerID string, from, to time.Time) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context, ownerID string, asOf time.Time) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, ownerID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}
func (m *MockReportingService) OwnersEquity(ctx context.Context, ownerID string, from, to time.Time) (*domain.OwnersEquityStatement, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnersEquityStatement), args.Error(1)
}
func (m *MockReportingService) CashFlow(ctx context.Context, ownerID string, from, to time.Time) (*domain.CashFlowStatement, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowStatement), args.Error(1)
}
func (m *MockReportingService) TrialBalance(ctx context.Context, ownerID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, ownerID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}
func (m *MockReportingService) AccountBalance(ctx context.Context, ownerID string, accountID string, from *time.Time, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, accountID, from, asOf)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockAccountService   *MockAccountService
	mockJournalService   *MockJournalService
	mockReportingService *MockReportingService
	ownerID              string
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAccountService = new(MockAccountService)
	suite.mockJournalService = new(MockJournalService)
	suite.mockReportingService = new(MockReportingService)
	suite.ownerID = uuid.NewString()

	cfg := &config.Config{IsProduction: true} // skip swagger routes
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Account:   suite.mockAccountService,
		Journal:   suite.mockJournalService,
		Reporting: suite.mockReportingService,
	})
}

func (suite *AccountHandlerTestSuite) serve(method, url string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, reqBody)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	reqBody := dto.CreateAccountRequest{
		Code:        "101",
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	created := &domain.Account{
		AccountID:     uuid.NewString(),
		OwnerID:       suite.ownerID,
		Code:          "101",
		Name:          "Cash",
		AccountType:   domain.Asset,
		NormalBalance: domain.DebitNormal,
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.ownerID, reqBody).Return(created, nil).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/owners/%s/accounts", suite.ownerID), reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal(domain.DebitNormal, resp.NormalBalance)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateCode() {
	reqBody := dto.CreateAccountRequest{
		Code:        "101",
		Name:        "Cash",
		AccountType: domain.Asset,
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.ownerID, reqBody).Return(nil, apperrors.ErrDuplicateAccountCode).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/owners/%s/accounts", suite.ownerID), reqBody)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidAccountType() {
	body := map[string]any{
		"code":        "101",
		"name":        "Cash",
		"accountType": "SOMETHING_ELSE",
	}

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/owners/%s/accounts", suite.ownerID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID", mock.Anything, suite.ownerID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/owners/%s/accounts/%s", suite.ownerID, accountID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateJournal_Unbalanced() {
	reqBody := dto.CreateJournalRequest{
		Description: "Uneven entry",
		Date:        "2025-07-01",
		Transactions: []dto.CreateTransactionRequest{
			{AccountID: uuid.NewString(), Amount: decimal.NewFromInt(500), TransactionType: domain.Debit},
			{AccountID: uuid.NewString(), Amount: decimal.NewFromInt(499), TransactionType: domain.Credit},
		},
	}

	suite.mockJournalService.On("CreateJournal", mock.Anything, suite.ownerID, mock.AnythingOfType("dto.CreateJournalRequest")).Return(nil, apperrors.ErrJournalUnbalanced).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/owners/%s/journals", suite.ownerID), reqBody)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateJournal_Success() {
	journalID := uuid.NewString()
	cashID := uuid.NewString()
	revenueID := uuid.NewString()
	reqBody := dto.CreateJournalRequest{
		Description: "Cash sale",
		Date:        "2025-07-01",
		Transactions: []dto.CreateTransactionRequest{
			{AccountID: cashID, Amount: decimal.NewFromInt(500), TransactionType: domain.Debit},
			{AccountID: revenueID, Amount: decimal.NewFromInt(500), TransactionType: domain.Credit},
		},
	}
	posted := &domain.Journal{
		JournalID:   journalID,
		OwnerID:     suite.ownerID,
		Description: "Cash sale",
		Status:      domain.Posted,
		Transactions: []domain.Transaction{
			{TransactionID: uuid.NewString(), JournalID: journalID, AccountID: cashID, Amount: decimal.NewFromInt(500), TransactionType: domain.Debit},
			{TransactionID: uuid.NewString(), JournalID: journalID, AccountID: revenueID, Amount: decimal.NewFromInt(500), TransactionType: domain.Credit},
		},
	}

	suite.mockJournalService.On("CreateJournal", mock.Anything, suite.ownerID, mock.AnythingOfType("dto.CreateJournalRequest")).Return(posted, nil).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/owners/%s/journals", suite.ownerID), reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(journalID, resp.JournalID)
	suite.Len(resp.Transactions, 2)
}

func (suite *AccountHandlerTestSuite) TestIncomeStatement_Success() {
	from, _ := time.Parse(dto.JournalDateFormat, "2025-07-01")
	to, _ := time.Parse(dto.JournalDateFormat, "2025-07-31")
	report := &domain.IncomeStatement{
		FromDate:      from,
		ToDate:        to,
		Revenue:       []domain.StatementLine{{Code: "401", Name: "Service Revenue", Amount: decimal.NewFromInt(1000)}},
		Expenses:      []domain.StatementLine{},
		TotalRevenue:  decimal.NewFromInt(1000),
		TotalExpenses: decimal.Zero,
		NetIncome:     decimal.NewFromInt(1000),
	}

	suite.mockReportingService.On("IncomeStatement", mock.Anything, suite.ownerID, from, to).Return(report, nil).Once()

	url := fmt.Sprintf("/api/v1/owners/%s/reports/income-statement?fromDate=2025-07-01&toDate=2025-07-31", suite.ownerID)
	w := suite.serve(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestIncomeStatement_BadDateFormat() {
	url := fmt.Sprintf("/api/v1/owners/%s/reports/income-statement?fromDate=07-01-2025", suite.ownerID)
	w := suite.serve(http.MethodGet, url, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "IncomeStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestOwnersEquity_MissingCapitalAccount() {
	suite.mockReportingService.On("OwnersEquity", mock.Anything, suite.ownerID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrMissingCapitalAccount).Once()

	url := fmt.Sprintf("/api/v1/owners/%s/reports/owners-equity?fromDate=2025-07-01&toDate=2025-07-31", suite.ownerID)
	w := suite.serve(http.MethodGet, url, nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
