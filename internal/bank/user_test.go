package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUserAuthenticate(t *testing.T) {
	user := NewUser("Alice", "1234")

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"exact match", "1234", true},
		{"wrong pin", "4321", false},
		{"leading whitespace", " 1234", false},
		{"trailing whitespace", "1234 ", false},
		{"empty", "", false},
		{"prefix only", "123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, user.Authenticate(tt.candidate))
		})
	}
}

func TestUserAuthenticateIsCaseSensitive(t *testing.T) {
	user := NewUser("Alice", "ab12")

	assert.True(t, user.Authenticate("ab12"))
	assert.False(t, user.Authenticate("AB12"))
}

func TestUserAccountsReturnsCopy(t *testing.T) {
	user := NewUser("Alice", "1234")
	acc := NewAccount("ACC1001", decimal.Zero)
	user.AddAccount(acc)

	accounts := user.Accounts()
	accounts[0] = NewAccount("EVIL", decimal.Zero)

	assert.Equal(t, "ACC1001", user.Accounts()[0].Number(), "callers must not be able to mutate the membership list")
}
