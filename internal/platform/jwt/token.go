// Package jwtmw はJWTの発行と検証ミドルウェアを提供します。
package jwtmw

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultExpiration はJWT_TTL未指定時のトークン有効期間です。
const DefaultExpiration = 24 * time.Hour

// Issuer は発行するトークンの iss クレームです。検証時にも一致を要求します。
const Issuer = "wellbeing_backend"

var errInvalidSubject = errors.New("token subject is not a user id")

// UserClaims はアクセストークンのクレームです。
// sub にはユーザーIDを10進文字列で格納します。
type UserClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// UserID は sub をユーザーIDとして解釈します。0 や数値以外はエラーです。
func (c *UserClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 || id != uint64(uint(id)) {
		return 0, errInvalidSubject
	}
	return uint(id), nil
}

// issuer はログイン・登録時のアクセストークンを HS256 で発行します。
type issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer は secret で署名し ttl 後に失効するトークンの発行者を返します。
// ttl が0以下の場合は DefaultExpiration を使います。
func NewIssuer(secret string, ttl time.Duration) *issuer {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	return &issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateToken はユーザーIDを主体とする署名済みトークンを返します。
func (i *issuer) GenerateToken(userID uint, email string) (string, error) {
	if userID == 0 {
		return "", errInvalidSubject
	}
	now := i.now()
	claims := UserClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken は署名・発行者・有効期限を検証し、クレームを返します。
// HS256 以外のアルゴリズムは拒否します。
func ParseToken(secret []byte, tokenStr string) (*UserClaims, error) {
	claims := &UserClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims,
		func(*jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return claims, nil
}
