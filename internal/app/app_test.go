package app

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teller/internal/atm"
	"teller/internal/config"
)

func TestNewAppSeedsDemoUsers(t *testing.T) {
	a, err := NewApp(config.NewDefault())
	require.NoError(t, err)

	balance, err := a.Bank.Balance("ACC1001")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(1000)))

	user, ok := a.Bank.UserByAccount("ACC2001")
	require.True(t, ok)
	assert.Equal(t, "Bob", user.Name())
	assert.True(t, user.Authenticate("4321"))
}

func TestNewAppSeedsConfiguredUsersInsteadOfDemo(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Seed.Users = []config.SeedUser{
		{
			Name: "Carol",
			PIN:  "9999",
			Accounts: []config.SeedAccount{
				{Number: "ACC7001", Balance: "250.75"},
				{Number: "ACC7002"},
			},
		},
	}

	a, err := NewApp(cfg)
	require.NoError(t, err)

	balance, err := a.Bank.Balance("ACC7001")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("250.75")))

	// Omitted balance defaults to zero.
	balance, err = a.Bank.Balance("ACC7002")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	// Demo users are not loaded when users are configured.
	_, ok := a.Bank.Account("ACC1001")
	assert.False(t, ok)
}

func TestNewAppDemoDisabled(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Seed.Demo = false

	a, err := NewApp(cfg)
	require.NoError(t, err)

	assert.Empty(t, a.Bank.Numbers())
}

func TestNewAppNormalizesSeededAccountNumbers(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Seed.Users = []config.SeedUser{
		{
			Name:     "Carol",
			PIN:      "9999",
			Accounts: []config.SeedAccount{{Number: " acc7001 ", Balance: "100"}},
		},
	}

	a, err := NewApp(cfg)
	require.NoError(t, err)

	// The front-end uppercases account-number input before login; a
	// lowercase-seeded number must authenticate with exact credentials.
	session := atm.NewSession(a.Bank, nil)
	require.NoError(t, session.Login("ACC7001", "9999"))

	balance, err := a.Bank.Balance("ACC7001")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(100)))

	// Only the normalized form is registered.
	assert.Equal(t, []string{"ACC7001"}, a.Bank.Numbers())
	_, ok := a.Bank.Account("acc7001")
	assert.False(t, ok)
}

func TestNewAppRejectsEmptyAccountNumber(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Seed.Users = []config.SeedUser{
		{Name: "Carol", PIN: "9999", Accounts: []config.SeedAccount{{Number: "   "}}},
	}

	_, err := NewApp(cfg)
	assert.Error(t, err)
}

func TestNewAppRejectsBadOpeningBalance(t *testing.T) {
	tests := []struct {
		name    string
		balance string
	}{
		{"not a number", "lots"},
		{"negative", "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefault()
			cfg.Seed.Users = []config.SeedUser{
				{
					Name:     "Carol",
					PIN:      "9999",
					Accounts: []config.SeedAccount{{Number: "ACC7001", Balance: tt.balance}},
				},
			}

			_, err := NewApp(cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewAppRejectsDuplicateSeedAccounts(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Seed.Users = []config.SeedUser{
		{Name: "Carol", PIN: "9999", Accounts: []config.SeedAccount{{Number: "ACC7001"}}},
		{Name: "Dave", PIN: "8888", Accounts: []config.SeedAccount{{Number: "ACC7001"}}},
	}

	_, err := NewApp(cfg)
	assert.Error(t, err)
}
