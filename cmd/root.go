/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"teller/internal/app"
	"teller/internal/config"
)

var (
	cfgFile     string
	verbose     bool
	cfg         *config.Config
	application *app.App
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd := NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "teller",
		Short: "teller is a CLI based ATM simulator",
		Long: `teller simulates an ATM talking to an in-memory bank backend.

Start an interactive session with 'teller session', or run one-shot
operations like 'teller balance -a ACC1001 -p 1234'. The directory is
seeded from config (or with demo users) on every run; nothing persists.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			cfg.Verbose = verbose

			a, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			application = a

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log operations to stderr")

	rootCmd.AddCommand(NewSessionCmd())
	rootCmd.AddCommand(NewBalanceCmd())
	rootCmd.AddCommand(NewDepositCmd())
	rootCmd.AddCommand(NewWithdrawCmd())
	rootCmd.AddCommand(NewHistoryCmd())
	rootCmd.AddCommand(NewAccountsCmd())

	return rootCmd
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("defaults.currency", "USD")
	viper.SetDefault("seed.demo", true)

	viper.SetEnvPrefix("TELLER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".teller"), nil
	}

	return filepath.Join(configDir, "teller"), nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
