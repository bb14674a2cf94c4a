package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"InventoryManagement/internal/errs"
)

func TestDoJSON_SendsToken_And_ParsesBody(t *testing.T) {
	// test server проверяет cookie и JSON
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c := r.Header.Get("Cookie"); !strings.Contains(c, "auth_token=tok123") {
			t.Errorf("Cookie header missing token, got: %q", c)
		}
		if r.Method != http.MethodPut {
			t.Errorf("unexpected method %s", r.Method)
		}
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Errorf("bad json: %v", err)
		}
		if m["x"] != float64(1) { // JSON number → float64
			t.Errorf("unexpected payload: %#v", m)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	resp, body, err := DoJSON(context.Background(), ts.Client(), http.MethodPut, ts.URL+"/api", map[string]any{"x": 1}, "auth_token=tok123")
	if err != nil {
		t.Fatalf("DoJSON err: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != `{"ok":true}` {
		t.Fatalf("body: %s", string(body))
	}
}

func TestDoJSON_NoToken_NoBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c := r.Header.Get("Cookie"); c != "" {
			t.Errorf("Cookie must be empty when token not provided, got: %q", c)
		}
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Errorf("Content-Type must be empty without payload, got %q", ct)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	resp, body, err := DoJSON(context.Background(), nil, http.MethodDelete, ts.URL, nil, "")
	if err != nil {
		t.Fatalf("DoJSON err: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent || len(body) != 0 {
		t.Fatalf("unexpected response: %d %q", resp.StatusCode, body)
	}
}

func TestDoJSON_Errors(t *testing.T) {
	// chan в payload вызовет ошибку json.Marshal
	if _, _, err := DoJSON(context.Background(), nil, http.MethodPost, "http://example.invalid", map[string]any{"c": make(chan int)}, ""); err == nil {
		t.Fatalf("expected marshal error")
	} else if errors.Is(err, errs.ErrTransport) {
		t.Fatalf("marshal error must not be a transport error")
	}
	// невалидный URL
	if _, _, err := DoJSON(context.Background(), nil, http.MethodGet, "http://[::1", nil, ""); err == nil {
		t.Fatalf("expected new request error for invalid URL")
	}
	// сетевая ошибка
	_, _, err := DoJSON(context.Background(), nil, http.MethodGet, "http://127.0.0.1:1", nil, "")
	if !errors.Is(err, errs.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestSessionTokenFromResponse(t *testing.T) {
	// auth_token вторым — должен найтись
	resp := &http.Response{Header: http.Header{}}
	resp.Header.Add("Set-Cookie", (&http.Cookie{Name: "other", Value: "abc"}).String())
	resp.Header.Add("Set-Cookie", (&http.Cookie{Name: "auth_token", Value: "tok-2", Path: "/"}).String())
	tok, err := SessionTokenFromResponse(resp, "auth_token")
	if err != nil || tok != "auth_token=tok-2" {
		t.Fatalf("got %q err=%v", tok, err)
	}
	// без имени — первый непустой
	tok, err = SessionTokenFromResponse(resp, "")
	if err != nil || tok != "other=abc" {
		t.Fatalf("got %q err=%v", tok, err)
	}
	// пустое значение — ошибка
	empty := &http.Response{Header: http.Header{}}
	empty.Header.Add("Set-Cookie", "auth_token=")
	if _, err := SessionTokenFromResponse(empty, "auth_token"); err == nil {
		t.Fatalf("expected error for empty auth_token cookie value")
	}
	if _, err := SessionTokenFromResponse(&http.Response{Header: http.Header{}}, "auth_token"); err == nil {
		t.Fatalf("expected error when no cookie")
	}
}

func TestMessageFromBody(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"  Invalid password \n":     "Invalid password",
		`{"error":"bad upc"}`:       "bad upc",
		`{"message":"not allowed"}`: "not allowed",
		`{"other":1}`:               `{"other":1}`,
	}
	for in, want := range cases {
		if got := MessageFromBody([]byte(in)); got != want {
			t.Fatalf("MessageFromBody(%q) = %q, want %q", in, got, want)
		}
	}
}
