package errors

// ExitCode 是进程退出码（稳定契约）。
type ExitCode int

const (
	ExitOK ExitCode = 0

	// 2: 参数/配置错误，或凭据不可用
	ExitConfig ExitCode = 2

	// 3: keyring 读写或交互输入失败
	ExitStore ExitCode = 3

	// 4: HTTP 请求失败
	ExitHTTP ExitCode = 4

	// 10: 内部错误
	ExitInternal ExitCode = 10
)

func ExitCodeFor(code Code) ExitCode {
	switch code {
	case CodeCfgNotFound, CodeCfgInvalid, CodeCredentialsUnavailable:
		return ExitConfig
	case CodeKeyringFailed, CodePromptFailed:
		return ExitStore
	case CodeHTTPFailed:
		return ExitHTTP
	case CodeInternal:
		fallthrough
	default:
		return ExitInternal
	}
}
