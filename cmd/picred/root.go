package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zx06/picred/internal/config"
	"github.com/zx06/picred/internal/errors"
	"github.com/zx06/picred/internal/log"
	"github.com/zx06/picred/internal/prompt"
	"github.com/zx06/picred/internal/secret"
)

// Build-time variables (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Config holds the resolved configuration
type Config struct {
	FormatStr  string
	ConfigStr  string
	AccountStr string
	ServiceStr string
	Verbose    bool
	Resolved   config.Resolved
	Logger     *slog.Logger
}

// GlobalConfig holds the global configuration state
var GlobalConfig = &Config{}

// newPrompter returns the interactive prompter; replaced in tests.
var newPrompter = func() secret.Prompter {
	return prompt.New(os.Stdin, os.Stderr)
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "picred",
		Short:         "Resolve and store PI basic-auth credentials (env vars or OS keyring)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if GlobalConfig.Verbose {
				level = slog.LevelDebug
			}
			GlobalConfig.Logger = log.NewWithLevel(os.Stderr, level)

			// CLI > ENV > Config
			configSet := cmd.Flags().Changed("config")
			if configSet && GlobalConfig.ConfigStr == "" {
				return errors.New(errors.CodeCfgInvalid, "config path is empty", nil)
			}

			r, xe := config.Resolve(config.Options{
				ConfigPath:    GlobalConfig.ConfigStr,
				CLIAccount:    GlobalConfig.AccountStr,
				CLIAccountSet: cmd.Flags().Changed("account"),
				CLIService:    GlobalConfig.ServiceStr,
				CLIServiceSet: cmd.Flags().Changed("service"),
				CLIFormat:     GlobalConfig.FormatStr,
				CLIFormatSet:  cmd.Flags().Changed("format"),
				EnvService:    os.Getenv("KEYRING_SERVICE"),
				EnvAccount:    os.Getenv("KEYRING_ACCOUNT"),
				EnvFormat:     os.Getenv("PICRED_FORMAT"),
			})
			if xe != nil {
				return xe
			}
			GlobalConfig.Resolved = r
			GlobalConfig.FormatStr = r.Format
			GlobalConfig.AccountStr = r.Account
			GlobalConfig.ServiceStr = r.Service
			GlobalConfig.Logger.Debug("config resolved", "config_path", r.ConfigPath, "service", r.Service, "account", r.Account)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&GlobalConfig.ConfigStr, "config", "", "Config file path (YAML); default: ./picred.yaml or $HOME/.config/picred/picred.yaml")
	root.PersistentFlags().StringVarP(&GlobalConfig.AccountStr, "account", "a", "", "Credential set name (default: prod; env: KEYRING_ACCOUNT)")
	root.PersistentFlags().StringVar(&GlobalConfig.ServiceStr, "service", "", "Keyring service name (default: pi-weblogger; env: KEYRING_SERVICE)")
	root.PersistentFlags().StringVarP(&GlobalConfig.FormatStr, "format", "f", "auto", "Output format: json|yaml|table|auto")
	root.PersistentFlags().BoolVarP(&GlobalConfig.Verbose, "verbose", "v", false, "Enable debug logging on stderr")

	return root
}

// secretOptions builds resolver options from the resolved global config
func secretOptions() secret.Options {
	return secret.Options{
		Service: GlobalConfig.Resolved.Service,
		Logger:  GlobalConfig.Logger,
	}
}
