package session_adapter

import (
	"errors"
	"fmt"
	"listing-portal/internal/core/domain"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenCookie = "token"
	UserCookie  = "user"

	issuer = "listing-portal"
)

// CookieStore хранит сессию в двух HttpOnly cookie: токен backend-а как есть
// и профиль пользователя, подписанный HS256, чтобы его нельзя было подменить в браузере.
type CookieStore struct {
	signingKey []byte
	secure     bool
	ttl        time.Duration
}

func NewCookieStore(signingKey string, secure bool, ttl time.Duration) (*CookieStore, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("session signing key cannot be empty")
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &CookieStore{signingKey: []byte(signingKey), secure: secure, ttl: ttl}, nil
}

type userClaims struct {
	User domain.User `json:"user"`
	jwt.RegisteredClaims
}

// Load читает сессию из запроса. Нет cookie или подпись не сошлась - domain.ErrNoSession.
func (s *CookieStore) Load(r *http.Request) (*domain.Session, error) {
	tokenCookie, err := r.Cookie(TokenCookie)
	if err != nil || tokenCookie.Value == "" {
		return nil, domain.ErrNoSession
	}
	userCookie, err := r.Cookie(UserCookie)
	if err != nil || userCookie.Value == "" {
		return nil, domain.ErrNoSession
	}

	claims := &userClaims{}
	token, err := jwt.ParseWithClaims(userCookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNoSession, err)
	}
	if !token.Valid {
		return nil, domain.ErrNoSession
	}

	return &domain.Session{Token: tokenCookie.Value, User: claims.User}, nil
}

// Save записывает обе cookie.
func (s *CookieStore) Save(w http.ResponseWriter, session *domain.Session) error {
	if session == nil || session.Token == "" {
		return errors.New("session token is required")
	}

	now := time.Now()
	claims := &userClaims{
		User: session.User,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   session.User.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return fmt.Errorf("failed to sign session profile: %w", err)
	}

	http.SetCookie(w, s.cookie(TokenCookie, session.Token, int(s.ttl.Seconds())))
	http.SetCookie(w, s.cookie(UserCookie, signed, int(s.ttl.Seconds())))
	return nil
}

// Clear удаляет обе cookie (выход из системы).
func (s *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(TokenCookie, "", -1))
	http.SetCookie(w, s.cookie(UserCookie, "", -1))
}

func (s *CookieStore) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
