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

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/pkg/id"
)

// UserService manages staff accounts.
type UserService struct {
	userRepo repo.IUserRepository
	roleRepo repo.IRoleRepository
}

func NewUserService(userRepo repo.IUserRepository, roleRepo repo.IRoleRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *UserService) List(page model.PageQuery) (*model.PageResult[model.UserInfo], error) {
	page.Normalize()
	users, total, err := s.userRepo.ListUsers(page)
	if err != nil {
		return nil, err
	}

	roles, err := s.roleRepo.GetAllRoles()
	if err != nil {
		return nil, err
	}
	roleNames := make(map[string]string, len(roles))
	for _, r := range roles {
		roleNames[r.RoleId] = r.Name
	}

	items := make([]model.UserInfo, 0, len(users))
	for _, u := range users {
		items = append(items, model.UserInfo{
			UserId:   u.UserId,
			Username: u.Username,
			Name:     u.Name,
			Email:    u.Email,
			Phone:    u.Phone,
			RoleId:   u.RoleId,
			RoleName: roleNames[u.RoleId],
		})
	}
	return &model.PageResult[model.UserInfo]{
		Items: items,
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	}, nil
}

func (s *UserService) Get(userId string) (*model.UserInfo, error) {
	user, err := s.userRepo.GetUser(userId)
	if err != nil {
		return nil, err
	}
	info := &model.UserInfo{
		UserId:   user.UserId,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		RoleId:   user.RoleId,
	}
	if role, err := s.roleRepo.GetRole(user.RoleId); err == nil {
		info.RoleName = role.Name
	}
	return info, nil
}

// Create registers a user under an existing role. The role must exist; a
// user without a resolvable role could never be authorized.
func (s *UserService) Create(req *model.CreateUserReq) (*model.UserInfo, error) {
	if _, err := s.roleRepo.GetRole(req.RoleId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserId:   id.GetUUID(),
		Username: req.Username,
		Password: string(hash),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		RoleId:   req.RoleId,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return &model.UserInfo{
		UserId:   user.UserId,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		RoleId:   user.RoleId,
	}, nil
}

func (s *UserService) Update(userId string, req *model.UpdateUserReq) (*model.UserInfo, error) {
	user, err := s.userRepo.GetUser(userId)
	if err != nil {
		return nil, err
	}
	if req.RoleId != nil {
		if _, err := s.roleRepo.GetRole(*req.RoleId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoleNotFound
			}
			return nil, err
		}
		user.RoleId = *req.RoleId
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return &model.UserInfo{
		UserId:   user.UserId,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		RoleId:   user.RoleId,
	}, nil
}

func (s *UserService) Delete(userId string) error {
	if _, err := s.userRepo.GetUser(userId); err != nil {
		return err
	}
	return s.userRepo.DeleteUser(userId)
}
