package errors

// Code 是稳定错误码（字符串），供脚本与调用方判断。
// 只增不改、不复用旧含义。
type Code string

const (
	// Config / args
	CodeCfgNotFound Code = "PICRED_CFG_NOT_FOUND"
	CodeCfgInvalid  Code = "PICRED_CFG_INVALID"

	// Credentials：env 与 keyring 均未给出完整的用户名/密码
	CodeCredentialsUnavailable Code = "PICRED_CREDENTIALS_UNAVAILABLE"

	// 外部存储 / 交互
	CodeKeyringFailed Code = "PICRED_KEYRING_FAILED"
	CodePromptFailed  Code = "PICRED_PROMPT_FAILED"

	// HTTP
	CodeHTTPFailed Code = "PICRED_HTTP_FAILED"

	// Internal
	CodeInternal Code = "PICRED_INTERNAL"
)

func AllCodes() []Code {
	return []Code{
		CodeCfgNotFound,
		CodeCfgInvalid,
		CodeCredentialsUnavailable,
		CodeKeyringFailed,
		CodePromptFailed,
		CodeHTTPFailed,
		CodeInternal,
	}
}
