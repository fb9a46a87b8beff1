// Copyright 2026 Campus Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/go-campus/campus/pkg/log"
)

const issuer = "campus"

// AuthClaims is the verified session payload. RoleId is denormalized at login
// time so authorization never needs the user row.
type AuthClaims struct {
	UserId string `json:"userId"`
	RoleId string `json:"roleId"`
	jwt.RegisteredClaims
}

// GenToken issues an access/refresh token pair signed with HS256.
func GenToken(userId, roleId string, secretKey []byte, accessExpire, refreshExpire time.Duration) (aToken, rToken string, err error) {
	now := time.Now()

	aClaims := &AuthClaims{
		UserId: userId,
		RoleId: roleId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(accessExpire * time.Minute)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	aToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, aClaims).SignedString(secretKey)
	if err != nil {
		log.Errorw("failed to sign access token", "error", err)
		return "", "", err
	}

	rClaims := &AuthClaims{
		UserId: userId,
		RoleId: roleId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(refreshExpire * time.Minute)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	rToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, rClaims).SignedString(secretKey)
	if err != nil {
		log.Errorw("failed to sign refresh token", "error", err)
		return "", "", err
	}

	return aToken, rToken, nil
}

// ParseToken verifies a token and returns its claims.
func ParseToken(token, secretKey string) (*AuthClaims, error) {
	claims := new(AuthClaims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, jwt.ErrTokenExpired
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RefreshToken validates a refresh token and issues a fresh pair.
func RefreshToken(rToken, secretKey string, accessExpire, refreshExpire time.Duration) (map[string]string, error) {
	claims, err := ParseToken(rToken, secretKey)
	if err != nil {
		return nil, err
	}

	newAToken, newRToken, err := GenToken(claims.UserId, claims.RoleId, []byte(secretKey), accessExpire, refreshExpire)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"accessToken":  newAToken,
		"refreshToken": newRToken,
	}, nil
}
