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

	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/log"
)

// Exception recovers panics and answers with the standard failure envelope.
func Exception() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("panic recovered", "path", c.Path(), "method", c.Method(), "panic", r)
				_ = http.InternalError(c)
			}
		}()
		return c.Next()
	}
}
