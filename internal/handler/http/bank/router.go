package bank_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go.uber.org/zap"

	"xyzbank/internal/app/bank"
)

func RegisterRoutes(r chi.Router, s bank.BankService, l *zap.Logger) {
	handler := NewBankHandler(s, l.With(zap.String("component", "BankHTTPHandler")))

	r.Route("/health", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("Banking service is healthy!"))
		})
	})

	r.Route("/clients", func(r chi.Router) {
		r.Post("/", handler.RegisterClientHandler)
		r.Get("/", handler.ListClientsHandler)
		r.Post("/{nationalID}/accounts", handler.OpenAccountHandler)
	})

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/{accountID}/deposit", handler.DepositHandler)
		r.Post("/{accountID}/withdraw", handler.WithdrawHandler)
		r.Get("/{accountID}/balance", handler.CheckBalanceHandler)
	})
}
