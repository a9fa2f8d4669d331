package httpauth

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/zx06/picred/internal/errors"
	"github.com/zx06/picred/internal/secret"
)

// DefaultTimeout 是 Session 的默认请求超时。
const DefaultTimeout = 30 * time.Second

// transport 为请求附加 basic auth；重定向时只发给最初请求的同一 host。
type transport struct {
	auth BasicAuth
	base http.RoundTripper
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !sameOrigin(req) {
		return t.base.RoundTrip(req)
	}
	// RoundTripper 不得修改原始请求
	r := req.Clone(req.Context())
	t.auth.Apply(r)
	return t.base.RoundTrip(r)
}

// sameOrigin 沿重定向链找到最初的请求，比较 host，并拒绝 https→http 降级。
// 非重定向请求（req.Response == nil）总是同源。
func sameOrigin(req *http.Request) bool {
	first := req
	for first.Response != nil && first.Response.Request != nil {
		first = first.Response.Request
	}
	if first == req {
		return true
	}
	if req.URL.Host != first.URL.Host {
		return false
	}
	return !(first.URL.Scheme == "https" && req.URL.Scheme != "https")
}

// Session 是预先绑定了凭据的 HTTP 客户端，可复用于多次请求。
type Session struct {
	*http.Client
	auth BasicAuth
}

// Auth 返回 Session 使用的凭据。
func (s *Session) Auth() BasicAuth {
	return s.auth
}

// NewSession 用 auth 构造 Session；base 为 nil 时使用 http.DefaultTransport。
func NewSession(auth BasicAuth, base http.RoundTripper) *Session {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Session{
		Client: &http.Client{
			Transport: &transport{auth: auth, base: base},
			Timeout:   DefaultTimeout,
		},
		auth: auth,
	}
}

// RequestsSession 解析 account 的凭据并返回预认证的 Session。
func RequestsSession(account string, opts secret.Options) (*Session, *errors.XError) {
	auth, xe := RequestsAuth(account, opts)
	if xe != nil {
		return nil, xe
	}
	return NewSession(auth, nil), nil
}

// Response 是一次 GET 的结果摘要。
type Response struct {
	URL         string `json:"url" yaml:"url"`
	Status      int    `json:"status" yaml:"status"`
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Body        string `json:"body" yaml:"body"`
}

// maxBody 限制读取的响应体大小。
const maxBody = 1 << 20

// maxErrorBody 限制放进错误 details 的响应体长度。
const maxErrorBody = 512

// Get 用 client 发送一次 GET；非 2xx 状态返回 CodeHTTPFailed，但仍附带 Response。
func Get(ctx context.Context, client *http.Client, url string) (Response, *errors.XError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, errors.Wrap(errors.CodeCfgInvalid, "invalid request url", map[string]any{"url": url}, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return Response{}, errors.Wrap(errors.CodeHTTPFailed, "request failed", map[string]any{"url": url}, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Response{}, errors.Wrap(errors.CodeHTTPFailed, "failed to read response body", map[string]any{"url": url}, err)
	}
	out := Response{
		URL:         url,
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(b),
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, errors.New(errors.CodeHTTPFailed, "unexpected http status", map[string]any{
			"url":    url,
			"status": resp.StatusCode,
			"body":   truncate(out.Body, maxErrorBody),
		})
	}
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "...(truncated)"
}
