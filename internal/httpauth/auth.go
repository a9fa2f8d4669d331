package httpauth

import (
	"encoding/base64"
	"net/http"

	"github.com/zx06/picred/internal/errors"
	"github.com/zx06/picred/internal/secret"
)

// BasicAuth 是附加到单个 HTTP 请求上的 basic auth 凭据。
type BasicAuth struct {
	Username string
	Password string
}

// FromCredentials 将解析出的凭据包装为 BasicAuth。
func FromCredentials(c secret.Credentials) BasicAuth {
	return BasicAuth{Username: c.Username, Password: c.Password}
}

// Credentials 返回对应的用户名/密码对。
func (a BasicAuth) Credentials() secret.Credentials {
	return secret.Credentials{Username: a.Username, Password: a.Password}
}

// Apply 在 req 上设置 Authorization: Basic 头。
func (a BasicAuth) Apply(req *http.Request) {
	req.SetBasicAuth(a.Username, a.Password)
}

// Header 返回 Authorization 头的值（"Basic <base64>"）。
func (a BasicAuth) Header() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(a.Username+":"+a.Password))
}

// String 不输出密码，避免误打进日志。
func (a BasicAuth) String() string {
	return "BasicAuth{" + a.Username + ":***}"
}

// RequestsAuth 解析 account 的凭据并返回 BasicAuth，
// 用法：auth.Apply(req) 后发送单个请求。
func RequestsAuth(account string, opts secret.Options) (BasicAuth, *errors.XError) {
	r, xe := secret.Resolve(account, opts)
	if xe != nil {
		return BasicAuth{}, xe
	}
	return FromCredentials(r.Credentials), nil
}
