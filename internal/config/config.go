package config

type Config struct {
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Seed       SeedConfig     `mapstructure:"seed"`
	ConfigPath string         `mapstructure:"-"`
	Verbose    bool           `mapstructure:"-"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

// SeedConfig describes the users loaded into the in-memory directory at
// startup. When no users are configured and Demo is true, the built-in demo
// fixtures are used.
type SeedConfig struct {
	Demo  bool       `mapstructure:"demo"`
	Users []SeedUser `mapstructure:"users"`
}

type SeedUser struct {
	Name     string        `mapstructure:"name"`
	PIN      string        `mapstructure:"pin"`
	Accounts []SeedAccount `mapstructure:"accounts"`
}

type SeedAccount struct {
	Number  string `mapstructure:"number"`
	Balance string `mapstructure:"balance"`
}

func NewDefault() *Config {
	return &Config{
		Defaults: DefaultsConfig{Currency: "USD"},
		Seed:     SeedConfig{Demo: true},
	}
}
