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

// Role groups users under one set of grants. IsAdmin marks system
// administrator roles which bypass grant checks entirely; the flag is set at
// creation and is independent of the display name.
type Role struct {
	BaseModel
	RoleId      string `gorm:"column:role_id;not null;uniqueIndex" json:"roleId"`
	Name        string `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	IsAdmin     bool   `gorm:"column:is_admin;not null;default:false" json:"isAdmin"`
}

func (Role) TableName() string {
	return "t_role"
}

// CreateRoleReq request for creating a role.
type CreateRoleReq struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description"`
	IsAdmin     bool   `json:"isAdmin"`
}

// UpdateRoleReq request for updating a role. The admin flag is deliberately
// not updatable here; promoting a role is a seeding/ops concern.
type UpdateRoleReq struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
