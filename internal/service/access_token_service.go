package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenIssuer = "carbon-edu"

var (
	ErrTokenInvalid = errors.New("access token invalid")
	ErrTokenExpired = errors.New("access token expired")
)

// AccessClaims identifica al cliente (frontend, kiosco, script) que consume el endpoint de IA.
type AccessClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// AccessTokenService emite y valida tokens para el endpoint de insights con LLM.
type AccessTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAccessTokenService(secret string, ttl time.Duration) *AccessTokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AccessTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Enabled indica si hay secreto configurado; sin secreto el endpoint queda abierto.
func (s *AccessTokenService) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

// Issue firma un token para el sujeto dado.
func (s *AccessTokenService) Issue(subject string) (string, time.Time, error) {
	subject = strings.TrimSpace(subject)
	if !s.Enabled() || subject == "" {
		return "", time.Time{}, ErrTokenInvalid
	}
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := AccessClaims{
		Scope: "insights:ai",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    accessTokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *AccessTokenService) Parse(token string) (AccessClaims, error) {
	if !s.Enabled() || strings.TrimSpace(token) == "" {
		return AccessClaims{}, ErrTokenInvalid
	}
	var claims AccessClaims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(accessTokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	_, err := parser.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return AccessClaims{}, ErrTokenExpired
		}
		return AccessClaims{}, ErrTokenInvalid
	}
	if strings.TrimSpace(claims.Subject) == "" || claims.Scope != "insights:ai" {
		return AccessClaims{}, ErrTokenInvalid
	}
	return claims, nil
}
