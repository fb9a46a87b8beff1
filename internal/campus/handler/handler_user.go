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

	"github.com/gofiber/fiber/v2"

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/service"
	"github.com/go-campus/campus/pkg/http"
)

// ListUsers GET /users
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	var page model.PageQuery
	if err := c.QueryParser(&page); err != nil {
		return http.BadRequest(c, "invalid query parameters")
	}
	result, err := h.svc.User.List(page)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, result)
}

// GetUser GET /users/:userId
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.svc.User.Get(c.Params("userId"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, user)
}

// CreateUser POST /users
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req model.CreateUserReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.svc.User.Create(&req)
	if err != nil {
		// a nonexistent role in the body is the caller's mistake, not a
		// missing addressed resource
		if errors.Is(err, service.ErrRoleNotFound) {
			return http.BadRequest(c, service.ErrRoleNotFound.Error())
		}
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, user)
}

// UpdateUser PUT /users/:userId
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	var req model.UpdateUserReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.svc.User.Update(c.Params("userId"), &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, user)
}

// DeleteUser DELETE /users/:userId
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := h.svc.User.Delete(c.Params("userId")); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepMsg(c, "user deleted")
}
