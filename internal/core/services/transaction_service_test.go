package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mcbank/mc_bank_app/internal/apperrors"
	"github.com/mcbank/mc_bank_app/internal/core/domain"
	"github.com/mcbank/mc_bank_app/internal/core/services"
	"github.com/mcbank/mc_bank_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) LoadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error {
	args := m.Called(ctx, transactions)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  *services.TransactionService
}

var fixedNow = time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockRepo.On("LoadTransactions", mock.Anything).Return([]domain.Transaction{}, nil).Once()

	var err error
	suite.service, err = services.NewTransactionService(context.Background(), suite.mockRepo,
		services.WithTransactionIDGenerator(seqIDGen("txn")),
		services.WithClock(func() time.Time { return fixedNow }))
	suite.Require().NoError(err)
}

func (suite *TransactionServiceTestSuite) addTransaction(accountID, txnType string, amount int64) *domain.Transaction {
	suite.mockRepo.On("ReplaceTransactions", mock.Anything, mock.Anything).Return(nil).Once()
	txn, err := suite.service.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		AccountID: accountID,
		Type:      txnType,
		Amount:    decimal.NewFromInt(amount),
	})
	suite.Require().NoError(err)
	return txn
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	suite.mockRepo.On("ReplaceTransactions", ctx, mock.AnythingOfType("[]domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:   "a1",
		Type:        "deposit",
		Amount:      decimal.NewFromInt(50),
		Description: "Allowance",
	})

	suite.Require().NoError(err)
	suite.Equal("txn-1", txn.TransactionID)
	suite.Equal("a1", txn.AccountID)
	suite.Equal(domain.Deposit, txn.Type)
	suite.Equal("Allowance", txn.Description)
	// Date defaults to the clock when the caller leaves it empty
	suite.Equal(fixedNow.Format(time.RFC3339), txn.Date)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_KeepsCallerDate() {
	ctx := context.Background()
	suite.mockRepo.On("ReplaceTransactions", ctx, mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID: "a1",
		Type:      "withdraw",
		Amount:    decimal.NewFromInt(-20),
		Date:      "2023-01-01T00:00:00Z",
	})

	suite.Require().NoError(err)
	suite.Equal("2023-01-01T00:00:00Z", txn.Date)
	// The store keeps whatever sign the caller chose
	suite.True(txn.Amount.IsNegative())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ZeroAmount() {
	ctx := context.Background()

	txn, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID: "a1",
		Type:      "deposit",
		Amount:    decimal.Zero,
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownType() {
	ctx := context.Background()

	txn, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID: "a1",
		Type:      "wire",
		Amount:    decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DanglingAccountAllowed() {
	// No foreign-key check: transactions may reference accounts that never
	// existed; they simply never resolve.
	ctx := context.Background()
	suite.mockRepo.On("ReplaceTransactions", ctx, mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID: "never-existed",
		Type:      "transfer",
		Amount:    decimal.NewFromInt(5),
	})

	suite.Require().NoError(err)
	suite.Equal("never-existed", txn.AccountID)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByAccount() {
	ctx := context.Background()
	suite.addTransaction("a1", "deposit", 50)
	suite.addTransaction("a2", "deposit", 10)
	suite.addTransaction("a1", "withdraw", -20)

	a1 := suite.service.ListTransactionsByAccount(ctx, "a1")
	suite.Require().Len(a1, 2)
	suite.Equal("txn-1", a1[0].TransactionID)
	suite.Equal("txn-3", a1[1].TransactionID)

	suite.Empty(suite.service.ListTransactionsByAccount(ctx, "nope"))
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Idempotent() {
	ctx := context.Background()
	txn := suite.addTransaction("a1", "deposit", 50)

	suite.mockRepo.On("ReplaceTransactions", ctx, mock.Anything).Return(nil).Times(2)

	suite.Require().NoError(suite.service.DeleteTransaction(ctx, txn.TransactionID))
	suite.Empty(suite.service.ListTransactions(ctx))

	suite.Require().NoError(suite.service.DeleteTransaction(ctx, txn.TransactionID))
	suite.Empty(suite.service.ListTransactions(ctx))
}

func (suite *TransactionServiceTestSuite) TestDeleteTransactionsByAccount_BatchPersist() {
	ctx := context.Background()
	suite.addTransaction("a1", "deposit", 50)
	suite.addTransaction("a1", "withdraw", -20)
	suite.addTransaction("a2", "deposit", 10)

	// The cascade persists once, not once per removed row
	suite.mockRepo.On("ReplaceTransactions", ctx, mock.Anything).Return(nil).Once()
	suite.Require().NoError(suite.service.DeleteTransactionsByAccount(ctx, "a1"))

	remaining := suite.service.ListTransactions(ctx)
	suite.Require().Len(remaining, 1)
	suite.Equal("a2", remaining[0].AccountID)
	suite.Empty(suite.service.ListTransactionsByAccount(ctx, "a1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSubscribe_NotifiedAfterMutation() {
	ctx := context.Background()
	notified := 0
	suite.service.Subscribe(func() { notified++ })

	suite.addTransaction("a1", "deposit", 50)
	suite.Equal(1, notified)

	suite.mockRepo.On("ReplaceTransactions", ctx, mock.Anything).Return(nil).Once()
	suite.Require().NoError(suite.service.DeleteTransactionsByAccount(ctx, "a1"))
	suite.Equal(2, notified)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
