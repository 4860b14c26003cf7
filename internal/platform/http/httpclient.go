// Package http は外部 API 呼び出し用の HTTP 基盤をまとめます。
package http

import (
	"net"
	"net/http"
	"time"
)

// 送信先はメール API の1ホストのみなので、アイドル接続は少なくてよい
const (
	dialTimeout     = 5 * time.Second
	idleConnsPerAPI = 4
)

// NewHTTPClient は外部 API 用の HTTP クライアントを生成します。リクエストの各段階に
// 上限を設け、timeout はやり取り全体の上限です。
func NewHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: dialTimeout, KeepAlive: 30 * time.Second}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          idleConnsPerAPI,
			MaxIdleConnsPerHost:   idleConnsPerAPI,
			IdleConnTimeout:       60 * time.Second,
			TLSHandshakeTimeout:   dialTimeout,
			ResponseHeaderTimeout: timeout,
		},
	}
}
