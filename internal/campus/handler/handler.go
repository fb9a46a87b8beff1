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

package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/go-campus/campus/internal/campus/service"
	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/log"
)

var validate = validator.New()

// Handler carries the services behind every route.
type Handler struct {
	svc *service.Services
}

func NewHandler(svc *service.Services) *Handler {
	return &Handler{svc: svc}
}

// parseBody decodes and validates the JSON request body into out.
// It writes the 400 envelope itself; callers just return on error.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return http.BadRequest(c, "request body is not valid JSON")
	}
	if err := validate.Struct(out); err != nil {
		return http.BadRequest(c, err.Error())
	}
	return nil
}

// replyErr maps service errors onto the failure envelope.
func replyErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.NotFound(c, "resource not found")
	case errors.Is(err, service.ErrRoleNotFound):
		return http.NotFound(c, service.ErrRoleNotFound.Error())
	case errors.Is(err, service.ErrMenuNotFound):
		return http.NotFound(c, service.ErrMenuNotFound.Error())
	case errors.Is(err, service.ErrStudentNotFound):
		return http.NotFound(c, service.ErrStudentNotFound.Error())
	case errors.Is(err, service.ErrRoleInUse):
		return http.BadRequest(c, service.ErrRoleInUse.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.BadRequest(c, "a resource with the same unique value already exists")
	default:
		log.Errorw("request failed", "path", c.Path(), "method", c.Method(), "error", err)
		return http.InternalError(c)
	}
}
