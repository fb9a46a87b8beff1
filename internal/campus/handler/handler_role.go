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
)

// ListRoles GET /roles
func (h *Handler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.svc.Role.List()
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, roles)
}

// GetRole GET /roles/:roleId
func (h *Handler) GetRole(c *fiber.Ctx) error {
	role, err := h.svc.Role.Get(c.Params("roleId"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, role)
}

// CreateRole POST /roles
func (h *Handler) CreateRole(c *fiber.Ctx) error {
	var req model.CreateRoleReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	role, err := h.svc.Role.Create(&req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, role)
}

// UpdateRole PUT /roles/:roleId
func (h *Handler) UpdateRole(c *fiber.Ctx) error {
	var req model.UpdateRoleReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	role, err := h.svc.Role.Update(c.Params("roleId"), &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, role)
}

// DeleteRole DELETE /roles/:roleId
func (h *Handler) DeleteRole(c *fiber.Ctx) error {
	if err := h.svc.Role.Delete(c.Params("roleId")); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepMsg(c, "role deleted")
}
