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

// ListGrants GET /permissions/:roleId
// Returns the role's full matrix: one row per menu, absent grants
// synthesized as all-false so the client never distinguishes missing from
// denied.
func (h *Handler) ListGrants(c *fiber.Ctx) error {
	rows, err := h.svc.Permission.ListGrants(c.Params("roleId"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, rows)
}

// SetGrant PUT /permissions/:roleId/:menuId
// Overwrites all four capability bits of one cell.
func (h *Handler) SetGrant(c *fiber.Ctx) error {
	var req model.SetGrantReq
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if err := h.svc.Permission.SetGrant(c.Params("roleId"), c.Params("menuId"), &req); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepMsg(c, "permission updated")
}
