package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	customErrors "github.com/yatradesk/yatradesk-backend/internal/domain/errors"
	"github.com/yatradesk/yatradesk-backend/internal/infra/config"
)

// Claims carried by a session token. Role rides alongside the registered
// claim set so the HTTP middleware can authorize without a store round trip.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenIssuer mints and verifies session tokens. Stateless: nothing is
// stored server-side, expiry is enforced on Verify.
type TokenIssuer interface {
	Issue(userID uuid.UUID, role string) (token string, exp time.Time, err error)
	Verify(token string) (Claims, error)
}

type tokenIssuer struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	audience string
}

func NewTokenIssuer(cfg *config.Config) (*tokenIssuer, error) {
	if cfg.JWTSecret == "" {
		return nil, customErrors.WrapInternal(errors.New("empty JWT secret"), "NewTokenIssuer")
	}
	return &tokenIssuer{
		secret:   []byte(cfg.JWTSecret),
		ttl:      cfg.AccessTokenTTL,
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
	}, nil
}

func (t *tokenIssuer) Issue(userID uuid.UUID, role string) (string, time.Time, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			ID:        uuid.NewString(),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, customErrors.WrapInternal(err, "sign session token")
	}

	return signed, claims.ExpiresAt.Time, nil
}

func (t *tokenIssuer) Verify(raw string) (Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return t.secret, nil
	},
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.audience),
		jwt.WithExpirationRequired(),
	)

	if err != nil || !token.Valid {
		return Claims{}, customErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Claims{}, customErrors.WrapInternal(errors.New("claims not Claims"), "Verify")
	}

	return *claims, nil
}
