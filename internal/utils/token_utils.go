package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Defaults for the claims of tokens accepted by the reporting API.
const (
	DefaultTokenIssuer   = "financial-reports-app"
	DefaultTokenAudience = "financial-reports-api"
)

// TokenSettings describes the HS256 bearer tokens the API accepts. An empty
// Issuer or Audience disables that claim check.
type TokenSettings struct {
	Secret   string
	Issuer   string
	Audience string
}

// Issue signs a token for subject valid for ttl. Used by operators and tests; the
// API itself never mints tokens.
func (s TokenSettings) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	if s.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.Audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
}

// Parse validates signature, algorithm, expiry, issuer and audience and returns
// the registered claims. Errors wrap the jwt sentinel errors (jwt.ErrTokenExpired,
// jwt.ErrTokenInvalidAudience, ...).
func (s TokenSettings) Parse(tokenString string) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.Issuer))
	}
	if s.Audience != "" {
		opts = append(opts, jwt.WithAudience(s.Audience))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(s.Secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
