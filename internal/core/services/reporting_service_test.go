package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountReader ---
type MockAccountReader struct {
	mock.Mock
}

var _ portsrepo.AccountReader = (*MockAccountReader)(nil)

func (m *MockAccountReader) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReader) FindAccountByCode(ctx context.Context, ownerID string, code string) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReader) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountReader) ListAccounts(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) FindTransactionsThroughDate(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockReportingRepository) FindTransactionsInWindow(ctx context.Context, ownerID string, from time.Time, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockReportingRepository) FindJournalsForAccountInWindow(ctx context.Context, ownerID string, accountID string, from time.Time, to time.Time) ([]domain.Journal, error) {
	args := m.Called(ctx, ownerID, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo   *MockAccountReader
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
	ownerID           string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountReader)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockReportingRepo)
	suite.ownerID = uuid.NewString()
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestIncomeStatement_InvalidDateRange() {
	ctx := context.Background()

	report, err := suite.service.IncomeStatement(ctx, suite.ownerID, date("2025-07-31"), date("2025-07-01"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
	suite.Nil(report)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	ctx := context.Background()
	asOf := date("2025-07-31")
	accounts := []domain.Account{cashAcc, revenueAcc, expenseAcc}
	txns := []domain.Transaction{
		line("acc-cash", "1000.00", domain.Debit),
		line("acc-rev", "1000.00", domain.Credit),
		line("acc-exp", "300.00", domain.Debit),
		line("acc-cash", "300.00", domain.Credit),
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.ownerID, 0, 0).Return(accounts, nil).Once()
	suite.mockReportingRepo.On("FindTransactionsThroughDate", ctx, suite.ownerID, asOf).Return(txns, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.ownerID, asOf)

	suite.Require().NoError(err)
	suite.True(report.TotalAssets.Equal(dec("700")), "got %s", report.TotalAssets)
	suite.True(report.TotalEquity.Equal(dec("700")))
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestOwnersEquity() {
	ctx := context.Background()
	from := date("2025-07-01")
	to := date("2025-07-31")
	dayBefore := from.AddDate(0, 0, -1)

	accounts := []domain.Account{cashAcc, capitalAcc, drawingAcc, revenueAcc, expenseAcc}

	// Capital stood at 1000 before the period.
	priorTxns := []domain.Transaction{
		line("acc-cash", "1000.00", domain.Debit),
		line("acc-cap", "1000.00", domain.Credit),
	}
	// During the period: a 500 contribution, 1000 revenue, 700 expense and a
	// 200 drawing.
	windowTxns := []domain.Transaction{
		line("acc-cash", "500.00", domain.Debit),
		line("acc-cap", "500.00", domain.Credit),
		line("acc-cash", "1000.00", domain.Debit),
		line("acc-rev", "1000.00", domain.Credit),
		line("acc-exp", "700.00", domain.Debit),
		line("acc-cash", "700.00", domain.Credit),
		line("acc-draw", "200.00", domain.Debit),
		line("acc-cash", "200.00", domain.Credit),
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.ownerID, services.CapitalAccountCode).Return(&capitalAcc, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.ownerID, services.DrawingAccountCode).Return(&drawingAcc, nil).Once()
	suite.mockReportingRepo.On("FindTransactionsThroughDate", ctx, suite.ownerID, dayBefore).Return(priorTxns, nil).Once()
	suite.mockReportingRepo.On("FindTransactionsInWindow", ctx, suite.ownerID, from, to).Return(windowTxns, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, suite.ownerID, 0, 0).Return(accounts, nil).Once()

	report, err := suite.service.OwnersEquity(ctx, suite.ownerID, from, to)

	suite.Require().NoError(err)
	suite.True(report.BeginningCapital.Equal(dec("1000")), "got %s", report.BeginningCapital)
	suite.True(report.Contributions.Equal(dec("500")))
	suite.True(report.NetIncome.Equal(dec("300")))
	suite.True(report.Drawings.Equal(dec("200")))
	suite.True(report.EndingCapital.Equal(dec("1600")), "got %s", report.EndingCapital)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestOwnersEquity_MissingCapitalAccount() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.ownerID, services.CapitalAccountCode).Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.OwnersEquity(ctx, suite.ownerID, date("2025-07-01"), date("2025-07-31"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingCapitalAccount)
	suite.Nil(report)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByCode", mock.Anything, mock.Anything, services.DrawingAccountCode)
}

func (suite *ReportingServiceTestSuite) TestOwnersEquity_MissingDrawingAccount() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.ownerID, services.CapitalAccountCode).Return(&capitalAcc, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.ownerID, services.DrawingAccountCode).Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.OwnersEquity(ctx, suite.ownerID, date("2025-07-01"), date("2025-07-31"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingDrawingAccount)
	suite.Nil(report)
}

func (suite *ReportingServiceTestSuite) TestCashFlow() {
	ctx := context.Background()
	from := date("2025-07-01")
	to := date("2025-07-31")
	dayBefore := from.AddDate(0, 0, -1)

	accounts := []domain.Account{cashAcc, revenueAcc, capitalAcc}
	priorTxns := []domain.Transaction{
		line("acc-cash", "100.00", domain.Debit),
		line("acc-cap", "100.00", domain.Credit),
	}
	journals := []domain.Journal{
		{
			JournalID:   uuid.NewString(),
			JournalDate: date("2025-07-05"),
			Description: "Cash sale",
			Transactions: []domain.Transaction{
				line("acc-cash", "1000.00", domain.Debit),
				line("acc-rev", "1000.00", domain.Credit),
			},
		},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.ownerID, 0, 0).Return(accounts, nil).Once()
	suite.mockReportingRepo.On("FindTransactionsThroughDate", ctx, suite.ownerID, dayBefore).Return(priorTxns, nil).Once()
	suite.mockReportingRepo.On("FindJournalsForAccountInWindow", ctx, suite.ownerID, cashAcc.AccountID, from, to).Return(journals, nil).Once()

	report, err := suite.service.CashFlow(ctx, suite.ownerID, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Operating, 1)
	suite.True(report.BeginningCash.Equal(dec("100")))
	suite.True(report.NetCashChange.Equal(dec("1000")))
	suite.True(report.EndingCash.Equal(dec("1100")), "got %s", report.EndingCash)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCashFlow_NoCashAccount() {
	ctx := context.Background()
	accounts := []domain.Account{revenueAcc, capitalAcc}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.ownerID, 0, 0).Return(accounts, nil).Once()

	report, err := suite.service.CashFlow(ctx, suite.ownerID, date("2025-07-01"), date("2025-07-31"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCashAccountNotFound)
	suite.Nil(report)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "FindJournalsForAccountInWindow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance() {
	ctx := context.Background()
	asOf := date("2025-07-31")
	accounts := []domain.Account{cashAcc, revenueAcc}
	txns := []domain.Transaction{
		line("acc-cash", "1000.00", domain.Debit),
		line("acc-rev", "1000.00", domain.Credit),
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.ownerID, 0, 0).Return(accounts, nil).Once()
	suite.mockReportingRepo.On("FindTransactionsThroughDate", ctx, suite.ownerID, asOf).Return(txns, nil).Once()

	rows, err := suite.service.TrialBalance(ctx, suite.ownerID, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.True(rows[0].Debit.Equal(dec("1000")))
	suite.True(rows[1].Credit.Equal(dec("1000")))
}

func (suite *ReportingServiceTestSuite) TestAccountBalance_Cumulative() {
	ctx := context.Background()
	asOf := date("2025-07-31")
	txns := []domain.Transaction{
		line(cashAcc.AccountID, "1000.00", domain.Debit),
		line(cashAcc.AccountID, "300.00", domain.Credit),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, cashAcc.AccountID).Return(&cashAcc, nil).Once()
	suite.mockReportingRepo.On("FindTransactionsThroughDate", ctx, cashAcc.OwnerID, asOf).Return(txns, nil).Once()

	balance, err := suite.service.AccountBalance(ctx, cashAcc.OwnerID, cashAcc.AccountID, nil, asOf)

	suite.Require().NoError(err)
	suite.True(balance.Equal(dec("700")), "got %s", balance)
}

func (suite *ReportingServiceTestSuite) TestAccountBalance_PeriodDelta() {
	ctx := context.Background()
	from := date("2025-07-01")
	asOf := date("2025-07-31")
	txns := []domain.Transaction{
		line(cashAcc.AccountID, "250.00", domain.Debit),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, cashAcc.AccountID).Return(&cashAcc, nil).Once()
	suite.mockReportingRepo.On("FindTransactionsInWindow", ctx, cashAcc.OwnerID, from, asOf).Return(txns, nil).Once()

	balance, err := suite.service.AccountBalance(ctx, cashAcc.OwnerID, cashAcc.AccountID, &from, asOf)

	suite.Require().NoError(err)
	suite.True(balance.Equal(dec("250")))
}

func (suite *ReportingServiceTestSuite) TestAccountBalance_WrongOwner() {
	ctx := context.Background()
	foreignAccount := domain.Account{
		AccountID:     uuid.NewString(),
		OwnerID:       uuid.NewString(),
		Code:          "101",
		Name:          "Cash",
		AccountType:   domain.Asset,
		NormalBalance: domain.DebitNormal,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, foreignAccount.AccountID).Return(&foreignAccount, nil).Once()

	balance, err := suite.service.AccountBalance(ctx, suite.ownerID, foreignAccount.AccountID, nil, date("2025-07-31"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.True(balance.IsZero())
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "FindTransactionsThroughDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
