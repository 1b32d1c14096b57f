package utils

import (
	"errors"
	"time"

	"cardoctor/config"

	"github.com/golang-jwt/jwt"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 4 * time.Hour

// ErrMissingSecret indicates the signing secret was never configured.
var ErrMissingSecret = errors.New("jwt secret is not configured")

func secretKey() ([]byte, error) {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return []byte(secret), nil
}

// GenerateToken signs the caller-supplied claims with the server secret.
// The claims are treated opaquely; only "iat" and "exp" are added on top.
func GenerateToken(claims map[string]interface{}) (string, error) {
	key, err := secretKey()
	if err != nil {
		return "", err
	}

	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["iat"] = time.Now().Unix()
	mapClaims["exp"] = time.Now().Add(TokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(key)
}

// ValidateToken parses and validates a token string and returns its claims.
// Expired or tampered tokens fail here.
func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	key, err := secretKey()
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
