package bank

// User is a bank customer: a name, a PIN and the accounts they hold. Users
// are assembled during setup and not mutated afterwards, except through the
// accounts themselves.
type User struct {
	name     string
	pin      string
	accounts []*Account
}

func NewUser(name, pin string) *User {
	return &User{name: name, pin: pin}
}

func (u *User) Name() string {
	return u.name
}

// Authenticate reports whether candidate matches the stored PIN exactly.
// The comparison is case-sensitive and applies no normalization.
func (u *User) Authenticate(candidate string) bool {
	return u.pin == candidate
}

// AddAccount appends a non-owning account reference. Setup-time only.
func (u *User) AddAccount(acc *Account) {
	u.accounts = append(u.accounts, acc)
}

// Accounts returns a copy of the account list so callers cannot mutate the
// user's membership through the returned slice.
func (u *User) Accounts() []*Account {
	out := make([]*Account, len(u.accounts))
	copy(out, u.accounts)
	return out
}
