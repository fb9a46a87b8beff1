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

package repo

import (
	"gorm.io/gorm"

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/pkg/database"
)

type IRoleRepository interface {
	GetRole(roleId string) (*model.Role, error)
	GetRoleByName(name string) (*model.Role, error)
	GetAllRoles() ([]model.Role, error)
	CreateRole(role *model.Role) error
	UpdateRole(role *model.Role) error
	DeleteRole(roleId string) error
}

type RoleRepo struct {
	database.IDatabase
}

func NewRoleRepo(db database.IDatabase) IRoleRepository {
	return &RoleRepo{IDatabase: db}
}

func (r *RoleRepo) GetRole(roleId string) (*model.Role, error) {
	var role model.Role
	if err := r.Database().Where("role_id = ?", roleId).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepo) GetRoleByName(name string) (*model.Role, error) {
	var role model.Role
	if err := r.Database().Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepo) GetAllRoles() ([]model.Role, error) {
	var roles []model.Role
	err := r.Database().Order("name ASC").Find(&roles).Error
	return roles, err
}

func (r *RoleRepo) CreateRole(role *model.Role) error {
	return r.Database().Create(role).Error
}

func (r *RoleRepo) UpdateRole(role *model.Role) error {
	return r.Database().Save(role).Error
}

// DeleteRole removes the role together with its grants. Grants never outlive
// their role.
func (r *RoleRepo) DeleteRole(roleId string) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleId).Delete(&model.RoleMenu{}).Error; err != nil {
			return err
		}
		return tx.Where("role_id = ?", roleId).Delete(&model.Role{}).Error
	})
}
