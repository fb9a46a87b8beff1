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
)

func TestRoleDeleteGuardedWhileUsersAssigned(t *testing.T) {
	env := newTestEnv(t)
	role := env.mustCreateRole(t, "Teacher", false)
	env.mustCreateUser(t, "alice", role.RoleId)

	err := env.svc.Role.Delete(role.RoleId)
	assert.ErrorIs(t, err, service.ErrRoleInUse)

	// role still resolvable
	_, err = env.svc.Role.Get(role.RoleId)
	assert.NoError(t, err)
}

func TestRoleDeleteCascadesToGrants(t *testing.T) {
	env := newTestEnv(t)
	role := env.mustCreateRole(t, "Teacher", false)
	menu := env.mustCreateMenu(t, "Students", "/students")
	require.NoError(t, env.svc.Permission.SetGrant(role.RoleId, menu.MenuId,
		&model.SetGrantReq{CanRead: true}))

	require.NoError(t, env.svc.Role.Delete(role.RoleId))

	var count int64
	require.NoError(t, env.db.Model(&model.RoleMenu{}).
		Where("role_id = ?", role.RoleId).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRoleAdminFlagNotUpdatable(t *testing.T) {
	env := newTestEnv(t)
	role := env.mustCreateRole(t, "Clerk", false)

	name := "Senior clerk"
	updated, err := env.svc.Role.Update(role.RoleId, &model.UpdateRoleReq{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Senior clerk", updated.Name)
	assert.False(t, updated.IsAdmin)
}

func TestUserCreateRequiresExistingRole(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.User.Create(&model.CreateUserReq{
		Username: "bob",
		Password: "correct horse battery",
		RoleId:   "ghost-role",
	})
	assert.ErrorIs(t, err, service.ErrRoleNotFound)
}
