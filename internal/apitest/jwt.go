package apitest

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errStaleToken = errors.New("token generation revoked")

// Claims mirrors what the real API puts into access tokens, plus the
// generation counter used to revoke every outstanding token at once.
type Claims struct {
	jwt.RegisteredClaims
	UserID     int64  `json:"user_id"`
	TokenType  string `json:"token_type"`
	Generation int    `json:"gen"`
}

func generateToken(userID int64, gen int, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID:     userID,
		TokenType:  "access",
		Generation: gen,
	})
	return token.SignedString(secretKey)
}

func userIDFromToken(tokenString string, gen int, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	if !token.Valid || claims.Generation != gen {
		return 0, errStaleToken
	}
	return claims.UserID, nil
}
