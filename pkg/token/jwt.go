package token

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenExpiry is how long issued tokens stay valid.
const DefaultTokenExpiry = 14 * 24 * time.Hour

// Claims carries the identity encoded in a Chatr token.
type Claims struct {
	Email    string `json:"email"`
	MemberID int64  `json:"memberid"`
	jwt.RegisteredClaims
}

// Service issues and parses HMAC-signed JWTs.
type Service struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// Option configures a Service.
type Option func(*Service)

// WithExpiry overrides the token lifetime.
func WithExpiry(expiry time.Duration) Option {
	return func(s *Service) {
		s.expiry = expiry
	}
}

// WithIssuer sets the iss claim on issued tokens.
func WithIssuer(issuer string) Option {
	return func(s *Service) {
		s.issuer = issuer
	}
}

// NewService creates a token service signing with the shared secret.
func NewService(secret string, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		expiry: DefaultTokenExpiry,
		issuer: "chatr",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueToken signs a token carrying the member's email and id.
func (s *Service) IssueToken(email string, memberID int64) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email:    email,
		MemberID: memberID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns the decoded claims.
func (s *Service) ParseToken(tokenStr string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return &claims, nil
}

// JWTAuth returns a jwtauth verifier configured with the same secret, for
// use by the route guard middleware.
func (s *Service) JWTAuth() *jwtauth.JWTAuth {
	return jwtauth.New("HS256", s.secret, nil)
}
