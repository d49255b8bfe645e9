package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/nearfix/internal/pkg/models"
)

// Claims carries the acting identity
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for actor, returning it with its expiry as unix seconds
func GenerateToken(actor models.Actor, cfg models.JWTConfig) (string, int64, error) {
	if actor.ID == "" || !actor.Role.Valid() {
		return "", 0, fmt.Errorf("%w: token needs a subject and a known role", models.ErrInvalidInput)
	}
	if cfg.Secret == "" {
		return "", 0, errors.New("jwt secret is not configured")
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := Claims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateToken verifies signature, expiry and issuer, and returns the actor the token names
func ValidateToken(tokenString string, cfg models.JWTConfig) (models.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return models.Actor{}, err
	}
	if !token.Valid {
		return models.Actor{}, errors.New("invalid token")
	}
	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return models.Actor{}, errors.New("invalid token issuer")
	}

	actor := models.Actor{ID: claims.Subject, Role: models.Role(claims.Role)}
	if actor.ID == "" {
		return models.Actor{}, errors.New("token has no subject")
	}
	if !actor.Role.Valid() {
		return models.Actor{}, fmt.Errorf("token has unknown role %q", claims.Role)
	}
	return actor, nil
}
