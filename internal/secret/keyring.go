package secret

import (
	stderrors "errors"

	"github.com/zalando/go-keyring"
)

// KeyringAPI 是对 OS keyring 的最小抽象，便于测试与跨平台。
// service 对应 keyring 的 service name，account 对应 user/account（即派生出的 key 名）。
type KeyringAPI interface {
	Get(service, account string) (string, error)
	Set(service, account, value string) error
	Delete(service, account string) error
}

// ErrNotFound 是 keyring 中不存在条目时返回的错误。
// 自定义 KeyringAPI 实现应返回它（或包装它），以便与其它失败区分。
var ErrNotFound = keyring.ErrNotFound

// 默认 keyring 实现（使用 zalando/go-keyring）
// 本文件仅定义接口；实现见 keyring_*.go（按平台编译）。
func defaultKeyring() KeyringAPI {
	return &osKeyring{}
}

type osKeyring struct{}

func isNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}
