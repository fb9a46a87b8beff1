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
	"github.com/go-campus/campus/pkg/ctx"
	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/http/jwt"
	"github.com/go-campus/campus/pkg/log"
)

// ErrInvalidCredentials is returned for a bad username or password. The two
// cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles sign-in and session refresh.
type AuthService struct {
	userRepo   repo.IUserRepository
	roleRepo   repo.IRoleRepository
	permission *PermissionService
	auth       http.Auth
	ctx        *ctx.Context
}

func NewAuthService(userRepo repo.IUserRepository, roleRepo repo.IRoleRepository,
	permission *PermissionService, auth http.Auth, ctx *ctx.Context) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		permission: permission,
		auth:       auth,
		ctx:        ctx,
	}
}

// Login verifies credentials and returns the session: user info, token pair
// and the role's grant set. The grant set lets the UI hide affordances the
// user cannot use; the server re-checks every request regardless.
func (s *AuthService) Login(req *model.Login) (*model.LoginResp, error) {
	user, err := s.userRepo.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	aToken, rToken, err := jwt.GenToken(user.UserId, user.RoleId,
		[]byte(s.auth.SecretKey), s.auth.AccessExpire, s.auth.RefreshExpire)
	if err != nil {
		return nil, err
	}

	grants, err := s.permission.GrantSetForRole(user.RoleId)
	if err != nil {
		// A user row pointing at a missing role is an integrity fault and
		// must not produce a half-usable session.
		log.Errorw("failed to resolve grants at login", "userId", user.UserId, "roleId", user.RoleId, "error", err)
		return nil, err
	}

	info := model.UserInfo{
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

	return &model.LoginResp{
		UserInfo: info,
		Token: map[string]string{
			"accessToken":  aToken,
			"refreshToken": rToken,
		},
		Grants: grants,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(refreshToken string) (map[string]string, error) {
	return jwt.RefreshToken(refreshToken, s.auth.SecretKey, s.auth.AccessExpire, s.auth.RefreshExpire)
}

// Profile returns the current user's info and grant set, for session
// restoration after a page reload.
func (s *AuthService) Profile(userId string) (*model.LoginResp, error) {
	user, err := s.userRepo.GetUser(userId)
	if err != nil {
		return nil, err
	}

	grants, err := s.permission.GrantSetForRole(user.RoleId)
	if err != nil {
		return nil, err
	}

	info := model.UserInfo{
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

	return &model.LoginResp{
		UserInfo: info,
		Grants:   grants,
	}, nil
}
