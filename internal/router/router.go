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

package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/go-campus/campus/internal/campus/consts"
	"github.com/go-campus/campus/internal/campus/handler"
	"github.com/go-campus/campus/internal/campus/service"
	"github.com/go-campus/campus/pkg/authz"
	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/http/middleware"
)

// New assembles the fiber application and its route table.
//
// Each protected route group is pinned to exactly one resource path constant
// at registration time. The permission check never derives the resource from
// the request URL, so path parameters cannot widen access.
func New(cfg http.Http, h *handler.Handler, svc *service.Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "campus",
		DisableStartupMessage: true,
		ReadTimeout:           time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(cfg.IdleTimeout) * time.Second,
	})

	app.Use(middleware.Exception())
	app.Use(middleware.Cors())
	if cfg.AccessLog {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return http.WithRepMsg(c, "ok")
	})

	api := app.Group(cfg.ContextPath) // e.g. /api/v1

	auth := api.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)

	authn := middleware.Authentication(cfg.Auth.SecretKey)
	auth.Get("/profile", authn, h.Profile)
	auth.Get("/grants", authn, h.Grants)
	auth.Get("/menus", authn, h.Menus)

	users := api.Group(consts.ResourceUsers, authn,
		middleware.RequirePermission(svc.Permission, consts.ResourceUsers))
	users.Get("/", h.ListUsers)
	users.Get("/:userId", h.GetUser)
	users.Post("/", h.CreateUser)
	users.Put("/:userId", h.UpdateUser)
	users.Delete("/:userId", h.DeleteUser)

	roles := api.Group(consts.ResourceRoles, authn,
		middleware.RequirePermission(svc.Permission, consts.ResourceRoles))
	roles.Get("/", h.ListRoles)
	roles.Get("/:roleId", h.GetRole)
	roles.Post("/", h.CreateRole)
	roles.Put("/:roleId", h.UpdateRole)
	roles.Delete("/:roleId", h.DeleteRole)

	menus := api.Group(consts.ResourceMenus, authn,
		middleware.RequirePermission(svc.Permission, consts.ResourceMenus))
	menus.Get("/", h.ListMenus)
	menus.Get("/:menuId", h.GetMenu)
	menus.Post("/", h.CreateMenu)
	menus.Put("/:menuId", h.UpdateMenu)
	menus.Delete("/:menuId", h.DeleteMenu)

	// Reading the matrix and writing cells are both grant administration,
	// so the whole group requires the update capability.
	permissions := api.Group(consts.ResourcePermissions, authn,
		middleware.RequirePermission(svc.Permission, consts.ResourcePermissions, authz.CapUpdate))
	permissions.Get("/:roleId", h.ListGrants)
	permissions.Put("/:roleId/:menuId", h.SetGrant)

	students := api.Group(consts.ResourceStudents, authn,
		middleware.RequirePermission(svc.Permission, consts.ResourceStudents))
	students.Get("/", h.ListStudents)
	students.Get("/:studentId", h.GetStudent)
	students.Post("/", h.CreateStudent)
	students.Put("/:studentId", h.UpdateStudent)
	students.Delete("/:studentId", h.DeleteStudent)

	classes := api.Group(consts.ResourceClasses, authn,
		middleware.RequirePermission(svc.Permission, consts.ResourceClasses))
	classes.Get("/", h.ListClasses)
	classes.Get("/:classId", h.GetClass)
	classes.Post("/", h.CreateClass)
	classes.Put("/:classId", h.UpdateClass)
	classes.Delete("/:classId", h.DeleteClass)

	payments := api.Group(consts.ResourcePayments, authn,
		middleware.RequirePermission(svc.Permission, consts.ResourcePayments))
	payments.Get("/", h.ListPayments)
	payments.Get("/:paymentId", h.GetPayment)
	payments.Post("/", h.CreatePayment)
	payments.Put("/:paymentId", h.UpdatePayment)
	payments.Delete("/:paymentId", h.DeletePayment)

	return app
}
