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

package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/http/jwt"
)

// ClaimsKey is the fiber locals key holding the verified *jwt.AuthClaims.
const ClaimsKey = "claims"

// Authentication verifies the Bearer token and stores the claims in locals.
// Requests without a valid token are rejected with 401 before any handler
// runs; authentication failures never produce 403.
func Authentication(secretKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return http.Unauthorized(c, "missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return http.Unauthorized(c, "authorization header must be: Bearer <token>")
		}

		claims, err := jwt.ParseToken(parts[1], secretKey)
		if err != nil {
			if errors.Is(err, jwtlib.ErrTokenExpired) {
				return http.TokenExpired(c)
			}
			return http.InvalidToken(c, "session token could not be verified")
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// ClaimsFrom returns the verified claims stored by Authentication,
// or nil when the route was not authenticated.
func ClaimsFrom(c *fiber.Ctx) *jwt.AuthClaims {
	claims, _ := c.Locals(ClaimsKey).(*jwt.AuthClaims)
	return claims
}
