package secret

import (
	"strings"

	"github.com/zx06/picred/internal/errors"
)

// Store 将凭据写入 OS keyring（{account}_user / {account}_pass）。
func Store(account string, c Credentials, opts Options) *errors.XError {
	account = normalizeAccount(account)
	if !c.Complete() {
		return errors.New(errors.CodeCfgInvalid, "username and password are both required", map[string]any{"account": account})
	}
	kr := opts.keyring()
	service := opts.service()
	userKey, passKey := KeyNames(account)

	// 记下旧用户名：密码写入失败时恢复，避免新用户名与旧密码配对
	prevUser, prevErr := getOptional(kr, service, userKey)

	if err := kr.Set(service, userKey, c.Username); err != nil {
		return errors.Wrap(errors.CodeKeyringFailed, "failed to write username to keyring", map[string]any{"service": service, "key": userKey}, err)
	}
	if err := kr.Set(service, passKey, c.Password); err != nil {
		rolledBack := prevErr == nil && restoreUser(kr, service, userKey, prevUser) == nil
		return errors.Wrap(errors.CodeKeyringFailed, "failed to write password to keyring", map[string]any{
			"service":     service,
			"key":         passKey,
			"rolled_back": rolledBack,
		}, err)
	}
	opts.logger().Info("credentials stored", "account", account, "service", service)
	return nil
}

// restoreUser 将 userKey 恢复为 prev；prev 为空表示原本不存在，直接删除。
func restoreUser(kr KeyringAPI, service, userKey, prev string) error {
	if prev == "" {
		if err := kr.Delete(service, userKey); err != nil && !isNotFound(err) {
			return err
		}
		return nil
	}
	return kr.Set(service, userKey, prev)
}

// SetBasicAuth 交互式输入凭据并写入 keyring。preset 中已给出的字段不再提示。
// 每台机器/用户（或服务账号）执行一次即可。
func SetBasicAuth(account string, preset Credentials, opts Options) *errors.XError {
	c := Credentials{Username: strings.TrimSpace(preset.Username), Password: preset.Password}
	if (c.Username == "" || c.Password == "") && opts.Prompter == nil {
		return errors.New(errors.CodePromptFailed, "interactive input is not available", nil)
	}
	if c.Username == "" {
		u, err := opts.Prompter.PromptUsername("PI Username: ")
		if err != nil {
			return errors.Wrap(errors.CodePromptFailed, "failed to read username", nil, err)
		}
		c.Username = strings.TrimSpace(u)
	}
	if c.Password == "" {
		p, err := opts.Prompter.PromptPassword("PI Password: ")
		if err != nil {
			return errors.Wrap(errors.CodePromptFailed, "failed to read password", nil, err)
		}
		c.Password = p
	}
	return Store(account, c, opts)
}

// Delete 从 keyring 删除 account 的两个条目；条目不存在不视为错误。
func Delete(account string, opts Options) *errors.XError {
	account = normalizeAccount(account)
	kr := opts.keyring()
	service := opts.service()
	userKey, passKey := KeyNames(account)

	for _, key := range []string{userKey, passKey} {
		if err := kr.Delete(service, key); err != nil && !isNotFound(err) {
			return errors.Wrap(errors.CodeKeyringFailed, "failed to delete keyring entry", map[string]any{"service": service, "key": key}, err)
		}
	}
	opts.logger().Info("credentials deleted", "account", account, "service", service)
	return nil
}
