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
	"github.com/gofiber/fiber/v2"

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/http/middleware"
)

// ListClasses GET /classes
// Non-admin callers only see classes they are homeroom teacher of.
func (h *Handler) ListClasses(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return http.Unauthorized(c, "missing authorization header")
	}
	classes, err := h.svc.Class.List(claims.UserId, claims.RoleId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, classes)
}

// GetClass GET /classes/:classId
func (h *Handler) GetClass(c *fiber.Ctx) error {
	class, err := h.svc.Class.Get(c.Params("classId"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, class)
}

// CreateClass POST /classes
func (h *Handler) CreateClass(c *fiber.Ctx) error {
	var req model.CreateClassReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	class, err := h.svc.Class.Create(&req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, class)
}

// UpdateClass PUT /classes/:classId
func (h *Handler) UpdateClass(c *fiber.Ctx) error {
	var req model.UpdateClassReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	class, err := h.svc.Class.Update(c.Params("classId"), &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, class)
}

// DeleteClass DELETE /classes/:classId
func (h *Handler) DeleteClass(c *fiber.Ctx) error {
	if err := h.svc.Class.Delete(c.Params("classId")); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepMsg(c, "class deleted")
}
