package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"InventoryManagement/internal/errs"
)

// DoJSON sends a request with an optional JSON body. If token is non-empty it is
// passed as the Cookie header. Connection failures are wrapped in errs.ErrTransport.
// The response body is fully read and closed.
func DoJSON(ctx context.Context, client *http.Client, method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Cookie", token)
	}
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s %s: %v", errs.ErrTransport, method, url, err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("%w: read body: %v", errs.ErrTransport, err)
	}
	return resp, respBody, nil
}

// SessionTokenFromResponse извлекает cookie сессии из ответа и возвращает его в виде "name=value",
// готовом для заголовка Cookie. Пустое name означает первый непустой cookie.
func SessionTokenFromResponse(resp *http.Response, name string) (string, error) {
	for _, c := range resp.Cookies() {
		if c.Value == "" {
			continue
		}
		if name == "" || c.Name == name {
			return c.Name + "=" + c.Value, nil
		}
	}
	return "", fmt.Errorf("no session cookie %q in response", name)
}

// MessageFromBody возвращает текст ошибки из тела ответа сервера: поле "error"/"message"
// JSON-объекта или само тело как текст.
func MessageFromBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return ""
	}
	var m map[string]any
	if json.Unmarshal(body, &m) == nil {
		for _, k := range []string{"error", "message"} {
			if v, ok := m[k].(string); ok && v != "" {
				return v
			}
		}
	}
	return s
}
