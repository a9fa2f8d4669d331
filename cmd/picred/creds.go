package main

import (
	"github.com/spf13/cobra"

	"github.com/zx06/picred/internal/output"
	"github.com/zx06/picred/internal/secret"
)

// credentialInfo is the redacted view of resolved credentials
type credentialInfo struct {
	Service  string `json:"service" yaml:"service"`
	Account  string `json:"account" yaml:"account"`
	Source   string `json:"source" yaml:"source"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// NewGetCommand creates the get command
func NewGetCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Resolve credentials (PI_USER/PI_PASS first, then the OS keyring)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(w)
		},
	}
}

func runGet(w *output.Writer) error {
	format, err := parseOutputFormat(GlobalConfig.FormatStr)
	if err != nil {
		return err
	}
	r, xe := secret.Resolve(GlobalConfig.AccountStr, secretOptions())
	if xe != nil {
		return xe
	}
	return w.WriteOK(format, credentialInfo{
		Service:  r.Service,
		Account:  r.Account,
		Source:   string(r.Source),
		Username: r.Username,
		Password: "***",
	})
}

// SetFlags holds the flags for the set command
type SetFlags struct {
	Username string
}

// NewSetCommand creates the set command
func NewSetCommand(w *output.Writer) *cobra.Command {
	flags := &SetFlags{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Prompt for credentials and store them in the OS keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(flags, w)
		},
	}

	cmd.Flags().StringVarP(&flags.Username, "username", "u", "", "Username (prompted when empty)")

	return cmd
}

func runSet(flags *SetFlags, w *output.Writer) error {
	format, err := parseOutputFormat(GlobalConfig.FormatStr)
	if err != nil {
		return err
	}
	opts := secretOptions()
	opts.Prompter = newPrompter()
	if xe := secret.SetBasicAuth(GlobalConfig.AccountStr, secret.Credentials{Username: flags.Username}, opts); xe != nil {
		return xe
	}
	return w.WriteOK(format, keysResult(true))
}

// NewDeleteCommand creates the delete command
func NewDeleteCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete stored credentials from the OS keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(w)
		},
	}
}

func runDelete(w *output.Writer) error {
	format, err := parseOutputFormat(GlobalConfig.FormatStr)
	if err != nil {
		return err
	}
	if xe := secret.Delete(GlobalConfig.AccountStr, secretOptions()); xe != nil {
		return xe
	}
	return w.WriteOK(format, map[string]any{
		"service": serviceName(),
		"account": accountName(),
		"deleted": true,
	})
}

// NewKeysCommand creates the keys command
func NewKeysCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the keyring service and key names used for an account",
		Long: "Show the keyring service and key names used for an account.\n" +
			"Entries can also be removed by hand with the OS keyring tool, one key at a time.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			return w.WriteOK(format, keysResult(false))
		},
	}
}

func keysResult(stored bool) map[string]any {
	userKey, passKey := secret.KeyNames(accountName())
	m := map[string]any{
		"service":  serviceName(),
		"account":  accountName(),
		"user_key": userKey,
		"pass_key": passKey,
	}
	if stored {
		m["stored"] = true
	}
	return m
}

func serviceName() string {
	if GlobalConfig.ServiceStr == "" {
		return secret.DefaultService
	}
	return GlobalConfig.ServiceStr
}

func accountName() string {
	if GlobalConfig.AccountStr == "" {
		return secret.DefaultAccount
	}
	return GlobalConfig.AccountStr
}
