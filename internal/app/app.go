package app

import (
	"github.com/zx06/picred/internal/errors"
	"github.com/zx06/picred/internal/output"
	"github.com/zx06/picred/internal/secret"
	"github.com/zx06/picred/internal/spec"
)

type App struct {
	Version string
	Commit  string
	Date    string
}

func New(version, commit, date string) App {
	return App{Version: version, Commit: commit, Date: date}
}

func (a App) BuildSpec() spec.Spec {
	globalFlags := []spec.FlagSpec{
		{Name: "config", Default: "", Description: "Config file path (YAML); default: ./picred.yaml or $HOME/.config/picred/picred.yaml"},
		{Name: "account", Shorthand: "a", Env: "KEYRING_ACCOUNT", Default: secret.DefaultAccount, Description: "Credential set name (prod/test/...)"},
		{Name: "service", Env: "KEYRING_SERVICE", Default: secret.DefaultService, Description: "Keyring service name"},
		{Name: "format", Shorthand: "f", Env: "PICRED_FORMAT", Default: "auto", Description: "Output format: json|yaml|table|auto"},
		{Name: "verbose", Shorthand: "v", Default: "false", Description: "Enable debug logging on stderr"},
	}
	return spec.Spec{
		SchemaVersion: output.SchemaVersion,
		Commands: []spec.CommandSpec{
			{Name: "spec", Description: "Export tool spec for scripts/agents", Flags: globalFlags},
			{Name: "version", Description: "Print version information", Flags: globalFlags},
			{Name: "get", Description: "Resolve credentials (env first, then keyring); password is redacted", Flags: globalFlags},
			{
				Name:        "set",
				Description: "Prompt for credentials and store them in the OS keyring",
				Flags: append(globalFlags,
					spec.FlagSpec{Name: "username", Shorthand: "u", Default: "", Description: "Username (prompted when empty)"},
				),
			},
			{Name: "delete", Description: "Delete stored credentials from the OS keyring", Flags: globalFlags},
			{Name: "keys", Description: "Show the keyring service and key names for an account", Flags: globalFlags},
			{
				Name:        "request",
				Description: "Send one authenticated GET request",
				Flags: append(globalFlags,
					spec.FlagSpec{Name: "bootstrap", Default: "false", Description: "Prompt and store credentials when none are found"},
					spec.FlagSpec{Name: "timeout", Default: "30s", Description: "Request timeout"},
				),
			},
		},
		CredentialEnv: []string{secret.EnvUser, secret.EnvPass},
		ErrorCodes:    errors.AllCodes(),
	}
}

type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

func (a App) VersionInfo() VersionInfo {
	return VersionInfo{Version: a.Version, Commit: a.Commit, Date: a.Date}
}
