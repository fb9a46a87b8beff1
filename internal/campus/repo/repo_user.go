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
	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/pkg/database"
)

type IUserRepository interface {
	GetUser(userId string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	ListUsers(page model.PageQuery) ([]model.User, int64, error)
	CountUsersByRoleId(roleId string) (int64, error)
	CreateUser(user *model.User) error
	UpdateUser(user *model.User) error
	DeleteUser(userId string) error
}

type UserRepo struct {
	database.IDatabase
}

func NewUserRepo(db database.IDatabase) IUserRepository {
	return &UserRepo{IDatabase: db}
}

func (r *UserRepo) GetUser(userId string) (*model.User, error) {
	var user model.User
	if err := r.Database().Where("user_id = ?", userId).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.Database().Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) ListUsers(page model.PageQuery) ([]model.User, int64, error) {
	var (
		users []model.User
		count int64
	)
	if err := r.Database().Model(&model.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	err := r.Database().Order("username ASC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&users).Error
	return users, count, err
}

func (r *UserRepo) CountUsersByRoleId(roleId string) (int64, error) {
	var count int64
	err := r.Database().Model(&model.User{}).Where("role_id = ?", roleId).Count(&count).Error
	return count, err
}

func (r *UserRepo) CreateUser(user *model.User) error {
	return r.Database().Create(user).Error
}

func (r *UserRepo) UpdateUser(user *model.User) error {
	return r.Database().Save(user).Error
}

func (r *UserRepo) DeleteUser(userId string) error {
	return r.Database().Where("user_id = ?", userId).Delete(&model.User{}).Error
}
