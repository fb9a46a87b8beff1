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

// User is a staff account. RoleId is required: a user's effective
// permissions are entirely the role's grants, there are no per-user
// overrides.
type User struct {
	BaseModel
	UserId   string `gorm:"column:user_id;not null;uniqueIndex" json:"userId"`
	Username string `gorm:"column:username;not null;uniqueIndex" json:"username"`
	Password string `gorm:"column:password;not null" json:"-"`
	Name     string `gorm:"column:name" json:"name"`
	Email    string `gorm:"column:email" json:"email"`
	Phone    string `gorm:"column:phone" json:"phone"`
	RoleId   string `gorm:"column:role_id;not null;index" json:"roleId"`
}

func (User) TableName() string {
	return "t_user"
}

// UserInfo is the public projection of a user.
type UserInfo struct {
	UserId   string `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	RoleId   string `json:"roleId"`
	RoleName string `json:"roleName,omitempty"`
}

// Login request.
type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResp is returned on successful login. Grants mirror the server-side
// authorization state so the UI can hide affordances; they are advisory
// only, enforcement stays on the server.
type LoginResp struct {
	UserInfo UserInfo          `json:"user"`
	Token    map[string]string `json:"token"`
	Grants   any               `json:"grants"`
}

// RefreshReq exchanges a refresh token for a new pair.
type RefreshReq struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// CreateUserReq request for creating a user.
type CreateUserReq struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	RoleId   string `json:"roleId" validate:"required"`
}

// UpdateUserReq request for updating a user.
type UpdateUserReq struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	RoleId   *string `json:"roleId,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}
