// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Leeway kecil untuk clock skew antar node.
const expLeeway = 30 * time.Second

var ErrTokenInvalid = errors.New("token invalid")

var nowUTC = func() time.Time { return time.Now().UTC() }

// IssueAccessToken menerbitkan JWT HS256 self-contained {sub, iat, exp}.
// Tidak ada state server-side; logout cukup di sisi klien.
func IssueAccessToken(secret string, subject uuid.UUID, ttl time.Duration) (string, error) {
	now := nowUTC()
	claims := jwt.MapClaims{
		"sub": subject.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyAccessToken memverifikasi signature + expiry dan mengembalikan
// subject. Semua bentuk kegagalan (token rusak, signature salah, expired,
// sub bukan UUID) dilebur jadi ErrTokenInvalid — tidak pernah panic.
func VerifyAccessToken(secret, tokenString string) (uuid.UUID, error) {
	return verifyAccessTokenAt(secret, tokenString, nowUTC())
}

func verifyAccessTokenAt(secret, tokenString string, now time.Time) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	// Exp divalidasi manual di bawah supaya leeway konsisten.
	parser := jwt.Parser{SkipClaimsValidation: true}
	tok, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return uuid.Nil, ErrTokenInvalid
	}
	if now.After(time.Unix(int64(expFloat), 0).Add(expLeeway)) {
		return uuid.Nil, ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return id, nil
}
