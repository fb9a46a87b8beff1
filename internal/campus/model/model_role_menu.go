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

package model

// RoleMenu binds one role to one menu with four independent capability bits.
// The composite unique index makes concurrent writes collapse into upserts
// instead of racing into duplicate rows. A missing row means all-false.
type RoleMenu struct {
	BaseModel
	RoleId    string `gorm:"column:role_id;not null;uniqueIndex:idx_role_menu;index" json:"roleId"`
	MenuId    string `gorm:"column:menu_id;not null;uniqueIndex:idx_role_menu;index" json:"menuId"`
	CanRead   bool   `gorm:"column:can_read;not null;default:false" json:"canRead"`
	CanWrite  bool   `gorm:"column:can_write;not null;default:false" json:"canWrite"`
	CanUpdate bool   `gorm:"column:can_update;not null;default:false" json:"canUpdate"`
	CanDelete bool   `gorm:"column:can_delete;not null;default:false" json:"canDelete"`
}

func (RoleMenu) TableName() string {
	return "t_role_menu"
}

// GrantRow is one cell row of the permission matrix for a role: the menu
// plus its (possibly synthesized all-false) capability bits.
type GrantRow struct {
	MenuId    string `json:"menuId"`
	MenuName  string `json:"menuName"`
	Path      string `json:"path"`
	CanRead   bool   `json:"canRead"`
	CanWrite  bool   `json:"canWrite"`
	CanUpdate bool   `json:"canUpdate"`
	CanDelete bool   `json:"canDelete"`
}

// SetGrantReq sets all four bits of one (role, menu) cell. Callers always
// supply every field; there are no partial updates at this layer.
type SetGrantReq struct {
	CanRead   bool `json:"canRead"`
	CanWrite  bool `json:"canWrite"`
	CanUpdate bool `json:"canUpdate"`
	CanDelete bool `json:"canDelete"`
}
