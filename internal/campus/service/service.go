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

package service

import (
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/pkg/cache"
	"github.com/go-campus/campus/pkg/ctx"
	"github.com/go-campus/campus/pkg/http"
)

// Services aggregates every service for injection.
type Services struct {
	Auth       *AuthService
	Permission *PermissionService
	User       *UserService
	Role       *RoleService
	Menu       *MenuService
	Student    *StudentService
	Class      *ClassService
	Payment    *PaymentService
}

// NewServices wires all services over the repositories.
func NewServices(repos *repo.Repositories, c cache.ICache, auth http.Auth, ctx *ctx.Context) *Services {
	permission := NewPermissionService(repos.Role, repos.Menu, repos.RoleMenu, c, ctx)
	return &Services{
		Auth:       NewAuthService(repos.User, repos.Role, permission, auth, ctx),
		Permission: permission,
		User:       NewUserService(repos.User, repos.Role),
		Role:       NewRoleService(repos.Role, repos.User, permission),
		Menu:       NewMenuService(repos.Menu, permission),
		Student:    NewStudentService(repos.Student),
		Class:      NewClassService(repos.Class, repos.Role),
		Payment:    NewPaymentService(repos.Payment, repos.Student),
	}
}
