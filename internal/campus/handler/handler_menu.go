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

// ListMenus GET /menus
// ?tree=true returns the nested navigation tree instead of the flat list.
func (h *Handler) ListMenus(c *fiber.Ctx) error {
	if c.QueryBool("tree") {
		tree, err := h.svc.Menu.ListTree()
		if err != nil {
			return replyErr(c, err)
		}
		return http.WithRepJSON(c, tree)
	}

	menus, err := h.svc.Menu.List()
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, menus)
}

// GetMenu GET /menus/:menuId
func (h *Handler) GetMenu(c *fiber.Ctx) error {
	menu, err := h.svc.Menu.Get(c.Params("menuId"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, menu)
}

// CreateMenu POST /menus
func (h *Handler) CreateMenu(c *fiber.Ctx) error {
	var req model.CreateMenuReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	menu, err := h.svc.Menu.Create(&req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, menu)
}

// UpdateMenu PUT /menus/:menuId
func (h *Handler) UpdateMenu(c *fiber.Ctx) error {
	var req model.UpdateMenuReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	menu, err := h.svc.Menu.Update(c.Params("menuId"), &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, menu)
}

// DeleteMenu DELETE /menus/:menuId
// Deleting a menu also deletes every grant referencing it.
func (h *Handler) DeleteMenu(c *fiber.Ctx) error {
	if err := h.svc.Menu.Delete(c.Params("menuId")); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepMsg(c, "menu deleted")
}
