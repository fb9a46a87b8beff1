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
	"github.com/gofiber/fiber/v2"

	"github.com/go-campus/campus/pkg/authz"
	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/log"
)

// Resolver decides whether a role may perform a capability on a resource.
type Resolver interface {
	Resolve(roleId, path string, cap authz.Capability) (bool, error)
}

// RequirePermission guards a route with a grant check against the given
// resource path. The capability defaults to the one derived from the HTTP
// method; pass an explicit capability to override, e.g. a POST search
// endpoint that only reads.
//
// The resource path is pinned at registration, never read from the request
// URL, so route parameters cannot widen access. Resolver failures reject the
// request: an unanswerable permission question is never an allow.
func RequirePermission(resolver Resolver, resource string, caps ...authz.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return http.Unauthorized(c, "missing authorization header")
		}

		var cap authz.Capability
		if len(caps) > 0 {
			cap = caps[0]
		} else {
			var ok bool
			cap, ok = authz.CapabilityForMethod(c.Method())
			if !ok {
				return http.Forbidden(c)
			}
		}

		allowed, err := resolver.Resolve(claims.RoleId, resource, cap)
		if err != nil {
			log.Errorw("permission resolution failed",
				"userId", claims.UserId, "roleId", claims.RoleId,
				"resource", resource, "capability", cap, "error", err)
			return http.InternalError(c)
		}
		if !allowed {
			return http.Forbidden(c)
		}
		return c.Next()
	}
}
