package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bancoverde/banking-service/internal/application/service"
	"github.com/bancoverde/banking-service/internal/config"
	"github.com/bancoverde/banking-service/internal/domain"
	"github.com/bancoverde/banking-service/internal/infrastructure/repository/memory"
	"github.com/bancoverde/banking-service/internal/interface/cli"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:          "bank",
		Short:        "in-memory retail banking driven by an interactive menu",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(demo)
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "seed sample customers and accounts before starting")

	return cmd
}

func run(demo bool) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	customers := memory.NewCustomerRepository()
	accounts := memory.NewAccountRepository()

	policy := domain.CheckingPolicy{
		WithdrawalLimit: cfg.Bank.WithdrawalLimit,
		MaxWithdrawals:  cfg.Bank.MaxWithdrawals,
	}
	svc := service.NewBankService(customers, accounts, cfg.Bank.BranchCode, policy, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if demo {
		if err := seed(ctx, svc); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
		logger.Info("demo data seeded")
	}

	menu := cli.NewMenu(svc, os.Stdin, os.Stdout, logger)
	return menu.Run(ctx)
}

// seed registers a few customers, opens one account each and funds them,
// so every menu action has data to work with out of the box.
func seed(ctx context.Context, svc *service.BankService) error {
	samples := []struct {
		customer service.RegisterCustomerRequest
		deposit  int64
	}{
		{
			customer: service.RegisterCustomerRequest{
				Name:      "Maria Oliveira",
				BirthDate: time.Date(1991, time.March, 14, 0, 0, 0, 0, time.Local),
				CPF:       "12345678901",
				Address:   "Rua das Flores, 100 - Centro - Sao Paulo/SP",
			},
			deposit: 150000,
		},
		{
			customer: service.RegisterCustomerRequest{
				Name:      "Joao Santos",
				BirthDate: time.Date(1985, time.July, 2, 0, 0, 0, 0, time.Local),
				CPF:       "98765432100",
				Address:   "Av. Atlantica, 2000 - Copacabana - Rio de Janeiro/RJ",
			},
			deposit: 80000,
		},
		{
			customer: service.RegisterCustomerRequest{
				Name:      "Ana Costa",
				BirthDate: time.Date(2000, time.December, 25, 0, 0, 0, 0, time.Local),
				CPF:       "11122233344",
				Address:   "Rua XV de Novembro, 15 - Centro - Curitiba/PR",
			},
			deposit: 30000,
		},
	}

	for _, sample := range samples {
		if _, err := svc.RegisterCustomer(ctx, sample.customer); err != nil {
			return fmt.Errorf("failed to register %s: %w", sample.customer.CPF, err)
		}
		account, err := svc.OpenAccount(ctx, sample.customer.CPF)
		if err != nil {
			return fmt.Errorf("failed to open account for %s: %w", sample.customer.CPF, err)
		}
		if _, err := svc.Deposit(ctx, sample.customer.CPF, account.Number, sample.deposit); err != nil {
			return fmt.Errorf("failed to fund account %d: %w", account.Number, err)
		}
	}

	return nil
}
