package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

// SessionCookieName cookie с токеном администратора
const SessionCookieName = "admin_session"

const (
	msgUnauthorized = "требуется авторизация администратора"
	issuer          = "salon-booking"
)

var ErrInvalidToken = errors.New("invalid admin token")

type contextKey string

const adminContextKey contextKey = "admin"

// AdminAuth выдаёт и проверяет подписанные HS256 токены сессии администратора
type AdminAuth struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAdminAuth(secret string, ttl time.Duration) *AdminAuth {
	return &AdminAuth{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL время жизни сессии
func (a *AdminAuth) TTL() time.Duration {
	return a.ttl
}

// IssueToken выпускает токен для subject, возвращает токен и время истечения
func (a *AdminAuth) IssueToken(subject string) (string, time.Time, error) {
	now := a.now()
	expiresAt := now.Add(a.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign admin token: %w", err)
	}

	return signed, expiresAt, nil
}

// ParseToken проверяет подпись и срок действия, возвращает subject
func (a *AdminAuth) ParseToken(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return claims.Subject, nil
}

// Middleware пропускает запрос только с валидной сессией администратора
// Токен берётся из cookie admin_session или заголовка Authorization: Bearer
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := tokenFromRequest(r)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		subject, err := a.ParseToken(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdmin извлекает subject администратора из контекста
func GetAdmin(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(adminContextKey).(string)
	return subject, ok
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	return ""
}
