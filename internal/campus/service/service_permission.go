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
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"github.com/go-campus/campus/internal/campus/consts"
	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/pkg/authz"
	"github.com/go-campus/campus/pkg/cache"
	"github.com/go-campus/campus/pkg/ctx"
	"github.com/go-campus/campus/pkg/log"
)

var (
	// ErrRoleNotFound is returned when a role id resolves to no role row.
	// Callers must treat it as a fault, never as a deny decision.
	ErrRoleNotFound = errors.New("role not found")
	// ErrMenuNotFound is returned when a menu id resolves to no menu row.
	ErrMenuNotFound = errors.New("menu not found")
)

const grantSetTTL = 10 * time.Minute

// PermissionService evaluates and administers role grants.
type PermissionService struct {
	roleRepo     repo.IRoleRepository
	menuRepo     repo.IMenuRepository
	roleMenuRepo repo.IRoleMenuRepository
	cache        cache.ICache
	ctx          *ctx.Context
}

func NewPermissionService(roleRepo repo.IRoleRepository, menuRepo repo.IMenuRepository,
	roleMenuRepo repo.IRoleMenuRepository, c cache.ICache, ctx *ctx.Context) *PermissionService {
	return &PermissionService{
		roleRepo:     roleRepo,
		menuRepo:     menuRepo,
		roleMenuRepo: roleMenuRepo,
		cache:        c,
		ctx:          ctx,
	}
}

// GrantSetForRole returns the full authorization state of a role, keyed by
// resource path. Results are cached per role; any grant, role or menu
// mutation invalidates the cache.
//
// A dangling role id is an integrity fault and surfaces as ErrRoleNotFound.
func (s *PermissionService) GrantSetForRole(roleId string) (*authz.GrantSet, error) {
	key := consts.GrantSetKeyPrefix + roleId

	if raw, err := s.cache.Get(s.ctx.GetCtx(), key).Result(); err == nil {
		var set authz.GrantSet
		if err := sonic.UnmarshalString(raw, &set); err == nil {
			return &set, nil
		}
		log.Warnw("dropping undecodable grant set cache entry", "key", key)
		s.cache.Del(s.ctx.GetCtx(), key)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warnw("grant set cache read failed, falling back to database", "key", key, "error", err)
	}

	set, err := s.buildGrantSet(roleId)
	if err != nil {
		return nil, err
	}

	if raw, err := sonic.MarshalString(set); err == nil {
		if err := s.cache.Set(s.ctx.GetCtx(), key, raw, grantSetTTL).Err(); err != nil {
			log.Warnw("grant set cache write failed", "key", key, "error", err)
		}
	}
	return set, nil
}

func (s *PermissionService) buildGrantSet(roleId string) (*authz.GrantSet, error) {
	role, err := s.roleRepo.GetRole(roleId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	set := &authz.GrantSet{
		IsAdmin: role.IsAdmin,
		Grants:  map[string]authz.Grant{},
	}

	grants, err := s.roleMenuRepo.GetGrantsByRoleId(roleId)
	if err != nil {
		return nil, err
	}
	if len(grants) == 0 {
		return set, nil
	}

	menus, err := s.menuRepo.GetAllMenus()
	if err != nil {
		return nil, err
	}
	pathById := make(map[string]string, len(menus))
	for _, m := range menus {
		pathById[m.MenuId] = m.Path
	}

	for _, g := range grants {
		path, ok := pathById[g.MenuId]
		if !ok {
			// Grant rows are deleted together with their menu; a leftover
			// row points at nothing and cannot be keyed, so skip it.
			log.Warnw("grant references missing menu", "roleId", roleId, "menuId", g.MenuId)
			continue
		}
		set.Grants[path] = authz.Grant{
			CanRead:   g.CanRead,
			CanWrite:  g.CanWrite,
			CanUpdate: g.CanUpdate,
			CanDelete: g.CanDelete,
		}
	}
	return set, nil
}

// Resolve decides whether the role may perform cap on the resource path.
// Errors mean the decision could not be made, not that access is denied;
// the transport layer fails closed on them.
func (s *PermissionService) Resolve(roleId, path string, cap authz.Capability) (bool, error) {
	set, err := s.GrantSetForRole(roleId)
	if err != nil {
		return false, err
	}
	return set.Allows(path, cap), nil
}

// ListGrants returns the role's full permission matrix: one row per menu,
// with all-false bits synthesized for menus the role has no stored row for.
func (s *PermissionService) ListGrants(roleId string) ([]model.GrantRow, error) {
	if _, err := s.roleRepo.GetRole(roleId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	menus, err := s.menuRepo.GetAllMenus()
	if err != nil {
		return nil, err
	}
	grants, err := s.roleMenuRepo.GetGrantsByRoleId(roleId)
	if err != nil {
		return nil, err
	}

	byMenuId := make(map[string]model.RoleMenu, len(grants))
	for _, g := range grants {
		byMenuId[g.MenuId] = g
	}

	rows := make([]model.GrantRow, 0, len(menus))
	for _, m := range menus {
		g := byMenuId[m.MenuId] // zero value denies everything
		rows = append(rows, model.GrantRow{
			MenuId:    m.MenuId,
			MenuName:  m.Name,
			Path:      m.Path,
			CanRead:   g.CanRead,
			CanWrite:  g.CanWrite,
			CanUpdate: g.CanUpdate,
			CanDelete: g.CanDelete,
		})
	}
	return rows, nil
}

// SetGrant overwrites all four capability bits of one (role, menu) cell.
func (s *PermissionService) SetGrant(roleId, menuId string, req *model.SetGrantReq) error {
	if _, err := s.roleRepo.GetRole(roleId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}
	if _, err := s.menuRepo.GetMenu(menuId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuNotFound
		}
		return err
	}

	grant := &model.RoleMenu{
		RoleId:    roleId,
		MenuId:    menuId,
		CanRead:   req.CanRead,
		CanWrite:  req.CanWrite,
		CanUpdate: req.CanUpdate,
		CanDelete: req.CanDelete,
	}
	if err := s.roleMenuRepo.UpsertGrant(grant); err != nil {
		return err
	}
	s.InvalidateRole(roleId)
	return nil
}

// InvalidateRole drops the cached grant set of one role.
func (s *PermissionService) InvalidateRole(roleId string) {
	if err := s.cache.Del(s.ctx.GetCtx(), consts.GrantSetKeyPrefix+roleId).Err(); err != nil {
		log.Warnw("failed to invalidate grant set cache", "roleId", roleId, "error", err)
	}
}

// InvalidateAllRoles drops every cached grant set. Menu mutations change the
// path keys of every role's set, so all of them go at once.
func (s *PermissionService) InvalidateAllRoles() {
	roles, err := s.roleRepo.GetAllRoles()
	if err != nil {
		log.Warnw("failed to enumerate roles for cache invalidation", "error", err)
		return
	}
	if len(roles) == 0 {
		return
	}
	keys := make([]string, 0, len(roles))
	for _, r := range roles {
		keys = append(keys, consts.GrantSetKeyPrefix+r.RoleId)
	}
	if err := s.cache.Del(s.ctx.GetCtx(), keys...).Err(); err != nil {
		log.Warnw("failed to invalidate grant set caches", "error", err)
	}
}
