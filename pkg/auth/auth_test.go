package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/menu-lab/pkg/auth"
	"github.com/JaimeStill/menu-lab/pkg/logging"
)

const secret = "0123456789abcdef0123456789abcdef"

func newAuth(enabled bool, issuer string) *auth.Authenticator {
	return auth.New(&auth.Config{Enabled: enabled, Secret: secret, Issuer: issuer}, logging.Discard())
}

func echoSubject(w http.ResponseWriter, r *http.Request) {
	subject, _ := auth.Subject(r.Context())
	w.Write([]byte(subject))
}

func TestAuthenticator_Protect(t *testing.T) {
	a := newAuth(true, "menu-lab")

	valid, err := a.Issue("r1", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	expired, _ := a.Issue("r1", -time.Minute)
	foreign, _ := newAuth(true, "someone-else").Issue("r1", time.Hour)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, "r1"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, ""},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, ""},
		{"wrong issuer", "Bearer " + foreign, http.StatusUnauthorized, ""},
		{"garbage", "Bearer not-a-token", http.StatusUnauthorized, ""},
	}

	handler := a.Protect(echoSubject)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/sections", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}

func TestAuthenticator_Protect_Disabled(t *testing.T) {
	a := newAuth(false, "")

	w := httptest.NewRecorder()
	a.Protect(echoSubject)(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if a.Enabled() {
		t.Error("Enabled() = true")
	}
}

func TestAuthenticator_Verify_RejectsOtherAlgorithms(t *testing.T) {
	a := newAuth(true, "")

	// alg "none" token with subject r1
	raw := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJyMSIsImV4cCI6NDEwMjQ0NDgwMH0."
	if _, err := a.Verify(raw); err == nil {
		t.Error("Verify() should reject unsigned tokens")
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		rid     string
		wantErr error
	}{
		{"no subject", context.Background(), "r1", nil},
		{"matching subject", auth.WithSubject(context.Background(), "r1"), "r1", nil},
		{"other restaurant", auth.WithSubject(context.Background(), "r1"), "r2", auth.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.Authorize(tt.ctx, tt.rid)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Run("disabled needs no secret", func(t *testing.T) {
		cfg := &auth.Config{}
		if err := cfg.Finalize(nil); err != nil {
			t.Errorf("Finalize() error = %v", err)
		}
	})

	t.Run("short secret rejected", func(t *testing.T) {
		cfg := &auth.Config{Enabled: true, Secret: "short"}
		if err := cfg.Finalize(nil); err == nil {
			t.Error("Finalize() should reject a short secret")
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("TEST_AUTH_ENABLED", "true")
		t.Setenv("TEST_AUTH_SECRET", strings.Repeat("s", 32))

		cfg := &auth.Config{}
		err := cfg.Finalize(&auth.Env{Enabled: "TEST_AUTH_ENABLED", Secret: "TEST_AUTH_SECRET"})
		if err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if !cfg.Enabled || len(cfg.Secret) != 32 {
			t.Errorf("cfg = %+v", cfg)
		}
	})
}
