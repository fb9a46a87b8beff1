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
	"sort"

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/pkg/authz"
	"github.com/go-campus/campus/pkg/id"
)

// MenuService manages menus. Every mutation invalidates all cached grant
// sets because grant sets are keyed by menu path.
type MenuService struct {
	menuRepo   repo.IMenuRepository
	permission *PermissionService
}

func NewMenuService(menuRepo repo.IMenuRepository, permission *PermissionService) *MenuService {
	return &MenuService{
		menuRepo:   menuRepo,
		permission: permission,
	}
}

func (s *MenuService) List() ([]model.Menu, error) {
	return s.menuRepo.GetAllMenus()
}

// ListTree returns menus as a tree grouped by ParentId. Grouping is display
// only; it carries no permission inheritance.
func (s *MenuService) ListTree() ([]model.MenuDTO, error) {
	menus, err := s.menuRepo.GetAllMenus()
	if err != nil {
		return nil, err
	}
	return BuildMenuTree(menus, ""), nil
}

// BuildMenuTree assembles children under parentId recursively, ordered by
// each node's Order field.
func BuildMenuTree(menus []model.Menu, parentId string) []model.MenuDTO {
	var nodes []model.MenuDTO
	for _, m := range menus {
		if m.ParentId != parentId {
			continue
		}
		nodes = append(nodes, model.MenuDTO{
			MenuId:      m.MenuId,
			ParentId:    m.ParentId,
			Name:        m.Name,
			Path:        m.Path,
			Icon:        m.Icon,
			Order:       m.Order,
			Description: m.Description,
			Children:    BuildMenuTree(menus, m.MenuId),
		})
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Order < nodes[j].Order
	})
	return nodes
}

// ListTreeGranted returns the navigation tree pruned to entries the grant
// set can read. A grouping node survives when any descendant is readable.
func (s *MenuService) ListTreeGranted(set *authz.GrantSet) ([]model.MenuDTO, error) {
	tree, err := s.ListTree()
	if err != nil {
		return nil, err
	}
	return pruneTree(tree, set), nil
}

func pruneTree(nodes []model.MenuDTO, set *authz.GrantSet) []model.MenuDTO {
	var out []model.MenuDTO
	for _, n := range nodes {
		children := pruneTree(n.Children, set)
		if set.Allows(n.Path, authz.CapRead) || len(children) > 0 {
			n.Children = children
			out = append(out, n)
		}
	}
	return out
}

func (s *MenuService) Get(menuId string) (*model.Menu, error) {
	return s.menuRepo.GetMenu(menuId)
}

func (s *MenuService) Create(req *model.CreateMenuReq) (*model.Menu, error) {
	menu := &model.Menu{
		MenuId:      id.GetUUID(),
		ParentId:    req.ParentId,
		Name:        req.Name,
		Path:        req.Path,
		Icon:        req.Icon,
		Order:       req.Order,
		Description: req.Description,
	}
	if err := s.menuRepo.CreateMenu(menu); err != nil {
		return nil, err
	}
	s.permission.InvalidateAllRoles()
	return menu, nil
}

func (s *MenuService) Update(menuId string, req *model.UpdateMenuReq) (*model.Menu, error) {
	menu, err := s.menuRepo.GetMenu(menuId)
	if err != nil {
		return nil, err
	}
	if req.ParentId != nil {
		menu.ParentId = *req.ParentId
	}
	if req.Name != nil {
		menu.Name = *req.Name
	}
	if req.Path != nil {
		menu.Path = *req.Path
	}
	if req.Icon != nil {
		menu.Icon = *req.Icon
	}
	if req.Order != nil {
		menu.Order = *req.Order
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if err := s.menuRepo.UpdateMenu(menu); err != nil {
		return nil, err
	}
	s.permission.InvalidateAllRoles()
	return menu, nil
}

// Delete removes a menu and cascades to every grant referencing it.
func (s *MenuService) Delete(menuId string) error {
	if _, err := s.menuRepo.GetMenu(menuId); err != nil {
		return err
	}
	if err := s.menuRepo.DeleteMenu(menuId); err != nil {
		return err
	}
	s.permission.InvalidateAllRoles()
	return nil
}
