package bank

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"xyzbank/internal/domain"
	"xyzbank/internal/repository/ledger_repo"
	"xyzbank/internal/util"
)

// BankService is the single entry point drivers use. Every operation is
// atomic from the caller's perspective: it either applies fully or leaves
// the ledger untouched.
type BankService interface {
	RegisterClient(ctx context.Context, firstName, lastName, nationalID, email string) error
	OpenAccount(ctx context.Context, nationalID string, kind domain.AccountKind) (*domain.Account, error)
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) error
	CheckBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	ListClients(ctx context.Context) []ClientReport
}

// AccountReport is one account row in the reporting view.
type AccountReport struct {
	AccountID string
	Kind      domain.AccountKind
	Balance   decimal.Decimal
}

// ClientReport is the reporting view of one client and their accounts.
type ClientReport struct {
	FirstName  string
	LastName   string
	NationalID string
	Email      string
	Accounts   []AccountReport
}

type bankService struct {
	// mu serializes every operation. Operations are cheap in-memory
	// computations, so one exclusive lock keeps the floor check and the
	// balance mutation atomic together without finer-grained locking.
	mu     sync.Mutex
	ledger ledger_repo.LedgerRepository
	logger *zap.Logger
}

func NewBankService(ledger ledger_repo.LedgerRepository, logger *zap.Logger) BankService {
	return &bankService{
		ledger: ledger,
		logger: logger,
	}
}

func (s *bankService) RegisterClient(ctx context.Context, firstName, lastName, nationalID, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := domain.NewClient(firstName, lastName, nationalID, email)
	if err != nil {
		s.logger.Warn("Client registration rejected", zap.String("national_id", nationalID), zap.Error(err))
		return err
	}
	if err := s.ledger.AddClient(ctx, client); err != nil {
		s.logger.Warn("Client registration rejected", zap.String("national_id", nationalID), zap.Error(err))
		return err
	}
	s.logger.Info("Client registered", zap.String("national_id", nationalID))
	return nil
}

func (s *bankService) OpenAccount(ctx context.Context, nationalID string, kind domain.AccountKind) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.ledger.FindByNationalID(ctx, nationalID)
	if !ok {
		s.logger.Warn("Account opening rejected, client not found", zap.String("national_id", nationalID))
		return nil, fmt.Errorf("%w: client with national id %s", domain.ErrNotFound, nationalID)
	}

	account, err := domain.NewAccount(util.NewAccountNumber(), kind)
	if err != nil {
		s.logger.Warn("Account opening rejected", zap.String("national_id", nationalID), zap.Error(err))
		return nil, err
	}
	if err := client.AddAccount(account); err != nil {
		return nil, err
	}

	s.logger.Info("Account opened",
		zap.String("national_id", nationalID),
		zap.String("account_id", account.ID),
		zap.String("kind", string(kind)))
	return account, nil
}

func (s *bankService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if err := account.Deposit(amount); err != nil {
		s.logger.Warn("Deposit rejected", zap.String("account_id", accountID), zap.String("amount", amount.String()), zap.Error(err))
		return err
	}
	s.logger.Info("Deposit applied",
		zap.String("account_id", accountID),
		zap.String("amount", amount.String()),
		zap.String("balance", account.Balance().String()))
	return nil
}

func (s *bankService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if err := account.Withdraw(amount); err != nil {
		s.logger.Warn("Withdrawal rejected", zap.String("account_id", accountID), zap.String("amount", amount.String()), zap.Error(err))
		return err
	}
	s.logger.Info("Withdrawal applied",
		zap.String("account_id", accountID),
		zap.String("amount", amount.String()),
		zap.String("balance", account.Balance().String()))
	return nil
}

func (s *bankService) CheckBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return account.Balance(), nil
}

func (s *bankService) ListClients(ctx context.Context) []ClientReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients := s.ledger.AllClients(ctx)
	report := make([]ClientReport, 0, len(clients))
	for _, client := range clients {
		cr := ClientReport{
			FirstName:  client.FirstName,
			LastName:   client.LastName,
			NationalID: client.NationalID,
			Email:      client.Email,
		}
		for _, account := range client.Accounts() {
			cr.Accounts = append(cr.Accounts, AccountReport{
				AccountID: account.ID,
				Kind:      account.Kind,
				Balance:   account.Balance(),
			})
		}
		report = append(report, cr)
	}
	return report
}

// findAccount resolves an account by scanning every client's accounts.
// There is no secondary accountId index at this data scale.
func (s *bankService) findAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	for _, client := range s.ledger.AllClients(ctx) {
		if account, ok := client.Account(accountID); ok {
			return account, nil
		}
	}
	s.logger.Warn("Account not found", zap.String("account_id", accountID))
	return nil, fmt.Errorf("%w: account %s", domain.ErrNotFound, accountID)
}
