package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart_fridge/internal/service"
)

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlers_SignIn(t *testing.T) {
	auth := &mockAuth{enabled: true, signInTok: "tok123"}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/auth/sign-in", `{"password":"p"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("sign-in status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}
	if auth.lastSignIn != "p" {
		t.Fatalf("expected password p, got %q", auth.lastSignIn)
	}

	// invalid body → 400
	w = postJSON(r, "/auth/sign-in", `{"password":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}

	// missing password → 400
	w = postJSON(r, "/auth/sign-in", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", w.Code)
	}
}

func TestAuthHandlers_SignInErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"wrong password", service.ErrInvalidPassword, http.StatusUnauthorized},
		{"other failure", errors.New("boom"), http.StatusUnauthorized},
		{"auth disabled", service.ErrAuthDisabled, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: &mockAuth{signInErr: tc.err}})
			w := postJSON(r, "/auth/sign-in", `{"password":"p"}`)
			if w.Code != tc.code {
				t.Fatalf("status=%d, want %d", w.Code, tc.code)
			}
		})
	}
}
