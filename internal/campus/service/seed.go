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
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/go-campus/campus/internal/campus/consts"
	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/pkg/id"
	"github.com/go-campus/campus/pkg/log"
)

const (
	seedAdminRoleName = "Super admin"
	seedAdminUsername = "admin"
)

// builtinMenus are created once so a fresh install has every protected
// resource manageable from the permission matrix.
var builtinMenus = []struct {
	name  string
	path  string
	icon  string
	order int
}{
	{"Users", consts.ResourceUsers, "users", 1},
	{"Roles", consts.ResourceRoles, "shield", 2},
	{"Menus", consts.ResourceMenus, "list", 3},
	{"Permissions", consts.ResourcePermissions, "key", 4},
	{"Students", consts.ResourceStudents, "graduation-cap", 5},
	{"Classes", consts.ResourceClasses, "home", 6},
	{"Payments", consts.ResourcePayments, "credit-card", 7},
}

// Seed ensures the builtin admin role, admin account and menus exist.
// It is idempotent and safe to run on every startup.
//
// The admin role is administrator because of its IsAdmin flag, not because
// of its display name; renaming it changes nothing about its access.
func Seed(repos *repo.Repositories, adminPassword string) error {
	role, err := repos.Role.GetRoleByName(seedAdminRoleName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		role = &model.Role{
			RoleId:      id.GetUUID(),
			Name:        seedAdminRoleName,
			Description: "Built-in administrator role",
			IsAdmin:     true,
		}
		if err := repos.Role.CreateRole(role); err != nil {
			return err
		}
		log.Infow("seeded admin role", "roleId", role.RoleId)
	} else if err != nil {
		return err
	}

	if _, err := repos.User.GetUserByUsername(seedAdminUsername); errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.User{
			UserId:   id.GetUUID(),
			Username: seedAdminUsername,
			Password: string(hash),
			Name:     "Administrator",
			RoleId:   role.RoleId,
		}
		if err := repos.User.CreateUser(admin); err != nil {
			return err
		}
		log.Infow("seeded admin account", "userId", admin.UserId)
	} else if err != nil {
		return err
	}

	for _, m := range builtinMenus {
		if _, err := repos.Menu.GetMenuByPath(m.path); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		menu := &model.Menu{
			MenuId: id.GetUUID(),
			Name:   m.name,
			Path:   m.path,
			Icon:   m.icon,
			Order:  m.order,
		}
		if err := repos.Menu.CreateMenu(menu); err != nil {
			return err
		}
	}
	return nil
}
