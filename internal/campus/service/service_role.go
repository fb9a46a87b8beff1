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

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/pkg/id"
)

// ErrRoleInUse is returned when deleting a role that still has users.
var ErrRoleInUse = errors.New("role is assigned to one or more users")

// RoleService manages roles.
type RoleService struct {
	roleRepo   repo.IRoleRepository
	userRepo   repo.IUserRepository
	permission *PermissionService
}

func NewRoleService(roleRepo repo.IRoleRepository, userRepo repo.IUserRepository,
	permission *PermissionService) *RoleService {
	return &RoleService{
		roleRepo:   roleRepo,
		userRepo:   userRepo,
		permission: permission,
	}
}

func (s *RoleService) List() ([]model.Role, error) {
	return s.roleRepo.GetAllRoles()
}

func (s *RoleService) Get(roleId string) (*model.Role, error) {
	return s.roleRepo.GetRole(roleId)
}

func (s *RoleService) Create(req *model.CreateRoleReq) (*model.Role, error) {
	role := &model.Role{
		RoleId:      id.GetUUID(),
		Name:        req.Name,
		Description: req.Description,
		IsAdmin:     req.IsAdmin,
	}
	if err := s.roleRepo.CreateRole(role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Update(roleId string, req *model.UpdateRoleReq) (*model.Role, error) {
	role, err := s.roleRepo.GetRole(roleId)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if err := s.roleRepo.UpdateRole(role); err != nil {
		return nil, err
	}
	s.permission.InvalidateRole(roleId)
	return role, nil
}

// Delete removes a role and its grants. Roles with assigned users cannot be
// deleted; reassign the users first.
func (s *RoleService) Delete(roleId string) error {
	if _, err := s.roleRepo.GetRole(roleId); err != nil {
		return err
	}

	count, err := s.userRepo.CountUsersByRoleId(roleId)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrRoleInUse
	}

	if err := s.roleRepo.DeleteRole(roleId); err != nil {
		return err
	}
	s.permission.InvalidateRole(roleId)
	return nil
}
