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
	"gorm.io/gorm/clause"

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/pkg/database"
)

type IRoleMenuRepository interface {
	GetGrantsByRoleId(roleId string) ([]model.RoleMenu, error)
	UpsertGrant(grant *model.RoleMenu) error
	DeleteGrantsByRoleId(roleId string) error
	DeleteGrantsByMenuId(menuId string) error
}

type RoleMenuRepo struct {
	database.IDatabase
}

func NewRoleMenuRepo(db database.IDatabase) IRoleMenuRepository {
	return &RoleMenuRepo{IDatabase: db}
}

func (r *RoleMenuRepo) GetGrantsByRoleId(roleId string) ([]model.RoleMenu, error) {
	var grants []model.RoleMenu
	err := r.Database().Where("role_id = ?", roleId).Find(&grants).Error
	return grants, err
}

// UpsertGrant writes all four capability bits for one (role, menu) pair.
// The unique index on (role_id, menu_id) turns concurrent writes into
// last-write-wins updates instead of duplicate rows.
func (r *RoleMenuRepo) UpsertGrant(grant *model.RoleMenu) error {
	return r.Database().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_id"}, {Name: "menu_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"can_read", "can_write", "can_update", "can_delete", "updated_at"}),
	}).Create(grant).Error
}

func (r *RoleMenuRepo) DeleteGrantsByRoleId(roleId string) error {
	return r.Database().Where("role_id = ?", roleId).Delete(&model.RoleMenu{}).Error
}

func (r *RoleMenuRepo) DeleteGrantsByMenuId(menuId string) error {
	return r.Database().Where("menu_id = ?", menuId).Delete(&model.RoleMenu{}).Error
}
