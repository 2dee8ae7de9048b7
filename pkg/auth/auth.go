// Package auth verifies HS256 bearer tokens and scopes requests to the
// restaurant named by the token subject.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/JaimeStill/menu-lab/pkg/handlers"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnauthorized = errors.New("missing or invalid token")
	ErrForbidden    = errors.New("token does not grant access to this restaurant")
)

type subjectKey struct{}

// Authenticator validates bearer tokens on protected routes.
// A disabled Authenticator passes every request through.
type Authenticator struct {
	cfg    *Config
	logger *slog.Logger
}

func New(cfg *Config, logger *slog.Logger) *Authenticator {
	return &Authenticator{
		cfg:    cfg,
		logger: logger.With("system", "auth"),
	}
}

func (a *Authenticator) Enabled() bool {
	return a.cfg.Enabled
}

// Protect wraps next so it only runs for requests carrying a valid token.
// The token subject is placed in the request context for Authorize.
func (a *Authenticator) Protect(next http.HandlerFunc) http.HandlerFunc {
	if !a.cfg.Enabled {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			handlers.RespondError(w, a.logger, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		subject, err := a.Verify(raw)
		if err != nil {
			a.logger.Debug("token rejected", "error", err)
			handlers.RespondError(w, a.logger, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		next(w, r.WithContext(WithSubject(r.Context(), subject)))
	}
}

// Verify parses raw and returns its subject.
func (a *Authenticator) Verify(raw string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.cfg.Issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(a.cfg.Secret), nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return claims.Subject, nil
}

// Issue signs a token for subject valid for ttl.
func (a *Authenticator) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    a.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.cfg.Secret))
}

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

func Subject(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey{}).(string)
	return s, ok
}

// Authorize checks that the authenticated subject owns restaurantID.
// Requests without a subject are allowed; Protect is responsible for
// rejecting unauthenticated requests when auth is enabled.
func Authorize(ctx context.Context, restaurantID string) error {
	subject, ok := Subject(ctx)
	if !ok {
		return nil
	}
	if subject != restaurantID {
		return ErrForbidden
	}
	return nil
}
