package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/99minutos/wms-console/internal/core/domain"
)

// SessionToken is the bearer credential handed to a client instance.
type SessionToken struct {
	Token     string
	SessionID string
	TokenID   string
	ExpiresAt time.Time
}

// TokenService signs and verifies client instance tokens (HS256).
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewTokenService(jwtSecret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{secret: []byte(jwtSecret), tokenTTL: tokenTTL, now: time.Now}
}

// Issue signs a token bound to sessionID.
func (s *TokenService) Issue(sessionID string) (*SessionToken, error) {
	exp := s.now().Add(s.tokenTTL).UTC()
	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"jti": jti,
		"exp": exp.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &SessionToken{Token: signed, SessionID: sessionID, TokenID: jti, ExpiresAt: exp}, nil
}

// Parse verifies raw and returns its claims. Any failure is ErrInvalidToken.
func (s *TokenService) Parse(raw string) (*SessionToken, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sid, _ := claims["sid"].(string)
	jti, _ := claims["jti"].(string)
	if sid == "" || jti == "" {
		return nil, domain.ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrInvalidToken
	}
	return &SessionToken{Token: raw, SessionID: sid, TokenID: jti, ExpiresAt: exp.Time.UTC()}, nil
}
