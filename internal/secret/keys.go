package secret

const (
	// DefaultService 是 keyring 中的 service name，可由配置或 KEYRING_SERVICE 覆盖。
	DefaultService = "pi-weblogger"

	// DefaultAccount 是未指定 account 时使用的凭据集（prod/test 等）。
	DefaultAccount = "prod"

	// 环境变量覆盖（CI/应急用），两者都非空时优先于 keyring。
	EnvUser = "PI_USER"
	EnvPass = "PI_PASS"
)

const (
	userKeySuffix = "_user"
	passKeySuffix = "_pass"
)

// KeyNames 返回 account 对应的 keyring key 名：{account}_user / {account}_pass。
// 纯函数：相同输入总是得到相同输出。
func KeyNames(account string) (userKey, passKey string) {
	return account + userKeySuffix, account + passKeySuffix
}

func normalizeAccount(account string) string {
	if account == "" {
		return DefaultAccount
	}
	return account
}
