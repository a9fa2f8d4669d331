package config

import (
	"github.com/zx06/picred/internal/errors"
	"github.com/zx06/picred/internal/secret"
)

// Resolve 合并 service/account/format：CLI > ENV > Config > 默认值。
func Resolve(opts Options) (Resolved, *errors.XError) {
	cfg, cfgPath, xe := LoadConfig(opts)
	if xe != nil {
		return Resolved{}, xe
	}

	service := pick(secret.DefaultService, cfg.Service, opts.EnvService, opts.CLIService, opts.CLIServiceSet)
	account := pick(secret.DefaultAccount, cfg.DefaultAccount, opts.EnvAccount, opts.CLIAccount, opts.CLIAccountSet)
	format := pick("auto", cfg.Format, opts.EnvFormat, opts.CLIFormat, opts.CLIFormatSet)

	if opts.CLIServiceSet && opts.CLIService == "" {
		return Resolved{}, errors.New(errors.CodeCfgInvalid, "service name is empty", nil)
	}
	if opts.CLIAccountSet && opts.CLIAccount == "" {
		return Resolved{}, errors.New(errors.CodeCfgInvalid, "account name is empty", nil)
	}

	return Resolved{
		ConfigPath: cfgPath,
		Service:    service,
		Account:    account,
		BaseURL:    cfg.BaseURL,
		Format:     format,
	}, nil
}

// pick 按 CLI（显式设置）> ENV（非空）> Config（非空）> 默认值 选择。
func pick(def, fromConfig, fromEnv, fromCLI string, cliSet bool) string {
	v := def
	if fromConfig != "" {
		v = fromConfig
	}
	if fromEnv != "" {
		v = fromEnv
	}
	if cliSet {
		v = fromCLI
	}
	return v
}
