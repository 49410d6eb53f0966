// Package testutil 提供测试辅助工具
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
)

// Request 构造请求交给 handler 处理并返回响应记录
// target 可以是绝对地址，此时 Host 取自地址
func Request(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// Bearer 生成 Authorization 头
func Bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
