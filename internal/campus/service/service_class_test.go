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
)

func TestClassListScopedToHomeroomTeacher(t *testing.T) {
	env := newTestEnv(t)
	admin := env.mustCreateRole(t, "Head office", true)
	teacher := env.mustCreateRole(t, "Teacher", false)
	adminUser := env.mustCreateUser(t, "head", admin.RoleId)
	teacherUser := env.mustCreateUser(t, "alice", teacher.RoleId)

	_, err := env.svc.Class.Create(&model.CreateClassReq{
		Name: "7A", HomeroomUserId: teacherUser.UserId,
	})
	require.NoError(t, err)
	_, err = env.svc.Class.Create(&model.CreateClassReq{Name: "7B"})
	require.NoError(t, err)

	all, err := env.svc.Class.List(adminUser.UserId, admin.RoleId)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := env.svc.Class.List(teacherUser.UserId, teacher.RoleId)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "7A", mine[0].Name)
}
