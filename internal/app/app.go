package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"teller/internal/bank"
	"teller/internal/config"
)

type App struct {
	Bank   *bank.Directory
	Logger *slog.Logger
}

// NewApp builds the bank directory and seeds it from config. Seeding is the
// single-threaded setup phase; once NewApp returns, the directory is only
// mutated through account operations.
func NewApp(cfg *config.Config) (*App, error) {
	logger := newLogger(cfg.Verbose)

	directory := bank.NewDirectory(logger)
	if err := seed(directory, cfg); err != nil {
		return nil, fmt.Errorf("failed to seed bank directory: %w", err)
	}

	return &App{
		Bank:   directory,
		Logger: logger,
	}, nil
}

func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func seed(directory *bank.Directory, cfg *config.Config) error {
	users := cfg.Seed.Users
	if len(users) == 0 && cfg.Seed.Demo {
		users = DemoUsers()
	}

	for _, su := range users {
		user := bank.NewUser(su.Name, su.PIN)

		for _, sa := range su.Accounts {
			// The front-end uppercases account-number input before login, so
			// seeded numbers are normalized the same way or they would be
			// listed yet unreachable.
			number := strings.ToUpper(strings.TrimSpace(sa.Number))
			if number == "" {
				return fmt.Errorf("user %s: account number can't be empty", su.Name)
			}

			balance := decimal.Zero

			if sa.Balance != "" {
				parsed, err := decimal.NewFromString(sa.Balance)
				if err != nil {
					return fmt.Errorf("account %s: invalid opening balance %q", number, sa.Balance)
				}
				if parsed.IsNegative() {
					return fmt.Errorf("account %s: opening balance can't be negative", number)
				}
				balance = parsed
			}

			user.AddAccount(bank.NewAccount(number, balance))
		}

		if err := directory.RegisterUser(user); err != nil {
			return err
		}
	}

	return nil
}

// DemoUsers returns the built-in fixtures used when no seed users are
// configured.
func DemoUsers() []config.SeedUser {
	return []config.SeedUser{
		{
			Name: "Alice",
			PIN:  "1234",
			Accounts: []config.SeedAccount{
				{Number: "ACC1001", Balance: "1000"},
			},
		},
		{
			Name: "Bob",
			PIN:  "4321",
			Accounts: []config.SeedAccount{
				{Number: "ACC2001", Balance: "500"},
			},
		},
	}
}
