package secret

import (
	"log/slog"
	"os"

	"github.com/zx06/picred/internal/errors"
	"github.com/zx06/picred/internal/log"
)

// Credentials 是一组 basic auth 用户名/密码。
type Credentials struct {
	Username string
	Password string
}

// Complete 报告用户名与密码是否都非空。
func (c Credentials) Complete() bool {
	return c.Username != "" && c.Password != ""
}

// Source 标识凭据来自哪里。
type Source string

const (
	SourceEnv     Source = "env"
	SourceKeyring Source = "keyring"
)

// Resolved 是 Resolve 的结果：凭据本身 + 来源信息（用于输出/日志，不含密码）。
type Resolved struct {
	Credentials
	Source  Source
	Service string
	Account string
}

// Prompter 交互式读取用户名与密码；实现见 internal/prompt。
type Prompter interface {
	PromptUsername(label string) (string, error)
	PromptPassword(label string) (string, error)
}

// Options 控制凭据解析与存储行为。零值可用。
type Options struct {
	Service   string              // keyring service name（空则 DefaultService）
	Keyring   KeyringAPI          // 可注入的 keyring 实现（nil 则用默认）
	Getenv    func(string) string // 可注入的环境变量读取（nil 则 os.Getenv）
	Bootstrap bool                // keyring 缺失时交互输入并写入（需要 Prompter）
	Prompter  Prompter
	Logger    *slog.Logger
}

func (o Options) service() string {
	if o.Service == "" {
		return DefaultService
	}
	return o.Service
}

func (o Options) keyring() KeyringAPI {
	if o.Keyring == nil {
		return defaultKeyring()
	}
	return o.Keyring
}

func (o Options) getenv(key string) string {
	if o.Getenv == nil {
		return os.Getenv(key)
	}
	return o.Getenv(key)
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return log.Discard()
	}
	return o.Logger
}

// Resolve 返回 account 的凭据，顺序：
//  1. 环境变量 PI_USER/PI_PASS（两者都非空）
//  2. OS keyring 中的 {account}_user / {account}_pass（两者都非空）
//  3. 若 Bootstrap 且有 Prompter → 交互输入、写入 keyring 后重读
//  4. 否则报 CodeCredentialsUnavailable
func Resolve(account string, opts Options) (Resolved, *errors.XError) {
	account = normalizeAccount(account)
	service := opts.service()
	lg := opts.logger().With("account", account, "service", service)

	if c, ok := envCredentials(opts); ok {
		lg.Debug("credentials resolved", "source", SourceEnv)
		return Resolved{Credentials: c, Source: SourceEnv, Service: service, Account: account}, nil
	}

	c, err := keyringCredentials(account, opts)
	if err == nil && !c.Complete() && opts.Bootstrap && opts.Prompter != nil {
		lg.Info("credentials missing in keyring, prompting")
		if xe := SetBasicAuth(account, Credentials{}, opts); xe != nil {
			return Resolved{}, xe
		}
		c, err = keyringCredentials(account, opts)
	}
	if err != nil {
		lg.Warn("keyring read failed", "err", err)
		return Resolved{}, errors.Wrap(errors.CodeCredentialsUnavailable, unavailableMessage, unavailableDetails(service, account), err)
	}
	if !c.Complete() {
		return Resolved{}, errors.New(errors.CodeCredentialsUnavailable, unavailableMessage, unavailableDetails(service, account))
	}

	lg.Debug("credentials resolved", "source", SourceKeyring)
	return Resolved{Credentials: c, Source: SourceKeyring, Service: service, Account: account}, nil
}

const unavailableMessage = "credentials not found; set env vars " + EnvUser + "/" + EnvPass + " or store them with `picred set`"

func unavailableDetails(service, account string) map[string]any {
	return map[string]any{
		"env":     []string{EnvUser, EnvPass},
		"service": service,
		"account": account,
	}
}

func envCredentials(opts Options) (Credentials, bool) {
	c := Credentials{Username: opts.getenv(EnvUser), Password: opts.getenv(EnvPass)}
	return c, c.Complete()
}

// keyringCredentials 读取两个 key；不存在的 key 视为空值，其它错误原样返回。
func keyringCredentials(account string, opts Options) (Credentials, error) {
	kr := opts.keyring()
	service := opts.service()
	userKey, passKey := KeyNames(account)

	user, err := getOptional(kr, service, userKey)
	if err != nil {
		return Credentials{}, err
	}
	pass, err := getOptional(kr, service, passKey)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Username: user, Password: pass}, nil
}

func getOptional(kr KeyringAPI, service, key string) (string, error) {
	val, err := kr.Get(service, key)
	if isNotFound(err) {
		return "", nil
	}
	return val, err
}
