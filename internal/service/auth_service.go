package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL = time.Hour
	operatorSubject = "operator"
)

// Domain errors for auth flows.
var (
	ErrAuthDisabled    = errors.New("authentication is disabled")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthConfig describes the single operator account. An empty password
// turns authentication off.
type AuthConfig struct {
	Password   string
	SigningKey string
	TokenTTL   time.Duration
}

// AuthService signs in the dashboard operator and checks bearer tokens.
type AuthService struct {
	hash       []byte
	signingKey []byte
	ttl        time.Duration
	clock      Clock
}

func NewAuthService(cfg AuthConfig, clock Clock) (*AuthService, error) {
	if clock == nil {
		clock = time.Now
	}
	s := &AuthService{clock: clock, ttl: cfg.TokenTTL}
	if s.ttl <= 0 {
		s.ttl = defaultTokenTTL
	}
	if cfg.Password == "" {
		return s, nil
	}
	if strings.TrimSpace(cfg.SigningKey) == "" {
		return nil, errors.New("auth: signing key is required when a password is set")
	}

	hash, err := hashPassword(cfg.Password)
	if err != nil {
		return nil, err
	}
	s.hash = hash
	s.signingKey = []byte(cfg.SigningKey)
	return s, nil
}

// Enabled reports whether requests must carry a token.
func (s *AuthService) Enabled() bool { return len(s.hash) > 0 }

// SignIn checks the operator password and returns a signed JWT.
func (s *AuthService) SignIn(password string) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	now := s.clock()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   operatorSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	return token.SignedString(s.signingKey)
}

// ParseToken validates the token and returns its subject.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.clock))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject != operatorSubject {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func hashPassword(password string) ([]byte, error) {
	if strings.TrimSpace(password) == "" {
		return nil, errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}
