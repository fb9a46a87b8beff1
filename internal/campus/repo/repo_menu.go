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

type IMenuRepository interface {
	GetMenu(menuId string) (*model.Menu, error)
	GetMenuByPath(path string) (*model.Menu, error)
	GetAllMenus() ([]model.Menu, error)
	CreateMenu(menu *model.Menu) error
	UpdateMenu(menu *model.Menu) error
	DeleteMenu(menuId string) error
}

type MenuRepo struct {
	database.IDatabase
}

func NewMenuRepo(db database.IDatabase) IMenuRepository {
	return &MenuRepo{IDatabase: db}
}

func (r *MenuRepo) GetMenu(menuId string) (*model.Menu, error) {
	var menu model.Menu
	if err := r.Database().Where("menu_id = ?", menuId).First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepo) GetMenuByPath(path string) (*model.Menu, error) {
	var menu model.Menu
	if err := r.Database().Where("path = ?", path).First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepo) GetAllMenus() ([]model.Menu, error) {
	var menus []model.Menu
	err := r.Database().Order("`order` ASC").Find(&menus).Error
	return menus, err
}

func (r *MenuRepo) CreateMenu(menu *model.Menu) error {
	return r.Database().Create(menu).Error
}

func (r *MenuRepo) UpdateMenu(menu *model.Menu) error {
	return r.Database().Save(menu).Error
}

// DeleteMenu removes the menu together with every grant referencing it, so
// no orphaned grant rows remain.
func (r *MenuRepo) DeleteMenu(menuId string) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menuId).Delete(&model.RoleMenu{}).Error; err != nil {
			return err
		}
		return tx.Where("menu_id = ?", menuId).Delete(&model.Menu{}).Error
	})
}
