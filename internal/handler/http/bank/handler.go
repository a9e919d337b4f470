package bank_http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"xyzbank/internal/app/bank"
	"xyzbank/internal/domain"
)

type BankHandler struct {
	service bank.BankService
	logger  *zap.Logger
}

func NewBankHandler(s bank.BankService, l *zap.Logger) *BankHandler {
	return &BankHandler{service: s, logger: l}
}

type RegisterClientRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id"`
	Email      string `json:"email"`
}

type OpenAccountRequest struct {
	Kind string `json:"kind"`
}

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type AccountResponse struct {
	AccountID string          `json:"account_id"`
	Kind      string          `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
}

type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

type ClientReportResponse struct {
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	NationalID string            `json:"national_id"`
	Email      string            `json:"email"`
	Accounts   []AccountResponse `json:"accounts"`
}

func (h *BankHandler) RegisterClientHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Invalid request body for RegisterClient", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.RegisterClient(r.Context(), req.FirstName, req.LastName, req.NationalID, req.Email); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *BankHandler) OpenAccountHandler(w http.ResponseWriter, r *http.Request) {
	nationalID := chi.URLParam(r, "nationalID")

	var req OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Invalid request body for OpenAccount", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	kind, err := domain.ParseAccountKind(req.Kind)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	account, err := h.service.OpenAccount(r.Context(), nationalID, kind)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, AccountResponse{
		AccountID: account.ID,
		Kind:      string(account.Kind),
		Balance:   account.Balance(),
	})
}

func (h *BankHandler) DepositHandler(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, h.service.Deposit)
}

func (h *BankHandler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, h.service.Withdraw)
}

func (h *BankHandler) CheckBalanceHandler(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	balance, err := h.service.CheckBalance(r.Context(), accountID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, BalanceResponse{AccountID: accountID, Balance: balance})
}

func (h *BankHandler) ListClientsHandler(w http.ResponseWriter, r *http.Request) {
	report := h.service.ListClients(r.Context())
	resp := make([]ClientReportResponse, 0, len(report))
	for _, client := range report {
		cr := ClientReportResponse{
			FirstName:  client.FirstName,
			LastName:   client.LastName,
			NationalID: client.NationalID,
			Email:      client.Email,
			Accounts:   make([]AccountResponse, 0, len(client.Accounts)),
		}
		for _, account := range client.Accounts {
			cr.Accounts = append(cr.Accounts, AccountResponse{
				AccountID: account.AccountID,
				Kind:      string(account.Kind),
				Balance:   account.Balance,
			})
		}
		resp = append(resp, cr)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// applyAmount is the shared deposit/withdraw path: decode the amount, run
// the operation, respond with the resulting balance.
func (h *BankHandler) applyAmount(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, accountID string, amount decimal.Decimal) error) {
	accountID := chi.URLParam(r, "accountID")

	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Invalid request body for amount operation", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := op(r.Context(), accountID, req.Amount); err != nil {
		h.writeDomainError(w, err)
		return
	}

	balance, err := h.service.CheckBalance(r.Context(), accountID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, BalanceResponse{AccountID: accountID, Balance: balance})
}

// writeDomainError maps the failure kinds onto HTTP status codes.
func (h *BankHandler) writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateKey):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrRuleViolation):
		status = http.StatusUnprocessableEntity
	default:
		h.logger.Error("Unexpected error", zap.Error(err))
	}
	http.Error(w, err.Error(), status)
}

func (h *BankHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to write JSON response", zap.Error(err))
	}
}
