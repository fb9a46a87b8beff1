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

import "gorm.io/datatypes"

// Menu is a protected resource doubling as a navigation entry. Path is the
// canonical authorization key; ParentId only groups entries for display and
// carries no permission inheritance.
type Menu struct {
	BaseModel
	MenuId      string         `gorm:"column:menu_id;not null;uniqueIndex" json:"menuId"`
	ParentId    string         `gorm:"column:parent_id;index" json:"parentId"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	Path        string         `gorm:"column:path;not null;uniqueIndex" json:"path"`
	Icon        string         `gorm:"column:icon" json:"icon"`
	Order       int            `gorm:"column:order;default:0" json:"order"`
	Meta        datatypes.JSON `gorm:"column:meta;type:json" json:"meta,omitempty"`
	Description string         `gorm:"column:description" json:"description"`
}

func (Menu) TableName() string {
	return "t_menu"
}

// MenuDTO is a menu node with its children, for navigation rendering.
type MenuDTO struct {
	MenuId      string    `json:"menuId"`
	ParentId    string    `json:"parentId"`
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Icon        string    `json:"icon"`
	Order       int       `json:"order"`
	Description string    `json:"description"`
	Children    []MenuDTO `json:"children"`
}

// CreateMenuReq request for creating a menu.
type CreateMenuReq struct {
	ParentId    string `json:"parentId"`
	Name        string `json:"name" validate:"required,max=100"`
	Path        string `json:"path" validate:"required,startswith=/"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
	Description string `json:"description"`
}

// UpdateMenuReq request for updating a menu.
type UpdateMenuReq struct {
	ParentId    *string `json:"parentId,omitempty"`
	Name        *string `json:"name,omitempty"`
	Path        *string `json:"path,omitempty" validate:"omitempty,startswith=/"`
	Icon        *string `json:"icon,omitempty"`
	Order       *int    `json:"order,omitempty"`
	Description *string `json:"description,omitempty"`
}
