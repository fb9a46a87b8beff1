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

package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/service"
	"github.com/go-campus/campus/pkg/authz"
)

func TestLoginReturnsTokenAndGrants(t *testing.T) {
	env := newTestEnv(t)
	role := env.mustCreateRole(t, "Teacher", false)
	menu := env.mustCreateMenu(t, "Students", "/students")
	require.NoError(t, env.svc.Permission.SetGrant(role.RoleId, menu.MenuId,
		&model.SetGrantReq{CanRead: true}))
	env.mustCreateUser(t, "alice", role.RoleId)

	resp, err := env.svc.Auth.Login(&model.Login{
		Username: "alice",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token["accessToken"])
	assert.NotEmpty(t, resp.Token["refreshToken"])
	assert.Equal(t, "alice", resp.UserInfo.Username)
	assert.Equal(t, "Teacher", resp.UserInfo.RoleName)

	set, ok := resp.Grants.(*authz.GrantSet)
	require.True(t, ok)
	assert.False(t, set.IsAdmin)
	assert.True(t, set.Allows("/students", authz.CapRead))
	assert.False(t, set.Allows("/students", authz.CapWrite))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	role := env.mustCreateRole(t, "Teacher", false)
	env.mustCreateUser(t, "alice", role.RoleId)

	_, err := env.svc.Auth.Login(&model.Login{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = env.svc.Auth.Login(&model.Login{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	env := newTestEnv(t)
	role := env.mustCreateRole(t, "Teacher", false)
	env.mustCreateUser(t, "alice", role.RoleId)

	resp, err := env.svc.Auth.Login(&model.Login{
		Username: "alice",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	pair, err := env.svc.Auth.Refresh(resp.Token["refreshToken"])
	require.NoError(t, err)
	assert.NotEmpty(t, pair["accessToken"])
	assert.NotEmpty(t, pair["refreshToken"])
}

func TestSeedIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, service.Seed(env.repos, "initial-password"))
	require.NoError(t, service.Seed(env.repos, "initial-password"))

	roles, err := env.svc.Role.List()
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.True(t, roles[0].IsAdmin)

	menus, err := env.svc.Menu.List()
	require.NoError(t, err)
	assert.Len(t, menus, 7)

	resp, err := env.svc.Auth.Login(&model.Login{Username: "admin", Password: "initial-password"})
	require.NoError(t, err)
	set, ok := resp.Grants.(*authz.GrantSet)
	require.True(t, ok)
	assert.True(t, set.IsAdmin)
}
