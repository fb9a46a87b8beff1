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
	"github.com/go-campus/campus/pkg/http/middleware"
)

// Login POST /auth/login
func (h *Handler) Login(c *fiber.Ctx) error {
	var req model.Login
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.svc.Auth.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return http.Unauthorized(c, service.ErrInvalidCredentials.Error())
		}
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, resp)
}

// Refresh POST /auth/refresh
func (h *Handler) Refresh(c *fiber.Ctx) error {
	var req model.RefreshReq
	if err := parseBody(c, &req); err != nil {
		return err
	}

	token, err := h.svc.Auth.Refresh(req.RefreshToken)
	if err != nil {
		return http.InvalidToken(c, "refresh token could not be verified")
	}
	return http.WithRepJSON(c, token)
}

// Profile GET /auth/profile
func (h *Handler) Profile(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return http.Unauthorized(c, "missing authorization header")
	}

	resp, err := h.svc.Auth.Profile(claims.UserId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, resp)
}

// Grants GET /auth/grants
// Returns the caller's grant set so the UI can hide affordances. Advisory
// only; the server re-checks every request.
func (h *Handler) Grants(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return http.Unauthorized(c, "missing authorization header")
	}

	set, err := h.svc.Permission.GrantSetForRole(claims.RoleId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, set)
}

// Menus GET /auth/menus
// Returns the navigation tree pruned to entries the caller can read.
func (h *Handler) Menus(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return http.Unauthorized(c, "missing authorization header")
	}

	set, err := h.svc.Permission.GrantSetForRole(claims.RoleId)
	if err != nil {
		return replyErr(c, err)
	}
	tree, err := h.svc.Menu.ListTreeGranted(set)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, tree)
}
