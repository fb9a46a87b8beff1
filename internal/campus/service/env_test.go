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
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/internal/campus/service"
	"github.com/go-campus/campus/pkg/cache"
	"github.com/go-campus/campus/pkg/ctx"
	"github.com/go-campus/campus/pkg/database"
	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/log"
)

var dbSeq atomic.Int64

type testEnv struct {
	db    *gorm.DB
	redis *miniredis.Miniredis
	repos *repo.Repositories
	svc   *service.Services
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:campus_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Role{},
		&model.Menu{},
		&model.RoleMenu{},
		&model.User{},
		&model.Student{},
		&model.Class{},
		&model.Payment{},
	))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repos := repo.NewRepositories(database.NewGormDB(db))
	appCtx := ctx.NewContext(context.Background(), db, rdb, log.Sugar())
	auth := http.Auth{SecretKey: "test-secret", AccessExpire: 60, RefreshExpire: 120}
	svc := service.NewServices(repos, cache.NewRedisCache(rdb), auth, appCtx)

	return &testEnv{db: db, redis: mr, repos: repos, svc: svc}
}

func (e *testEnv) mustCreateRole(t *testing.T, name string, isAdmin bool) *model.Role {
	t.Helper()
	role, err := e.svc.Role.Create(&model.CreateRoleReq{Name: name, IsAdmin: isAdmin})
	require.NoError(t, err)
	return role
}

func (e *testEnv) mustCreateMenu(t *testing.T, name, path string) *model.Menu {
	t.Helper()
	menu, err := e.svc.Menu.Create(&model.CreateMenuReq{Name: name, Path: path})
	require.NoError(t, err)
	return menu
}

func (e *testEnv) mustCreateUser(t *testing.T, username, roleId string) *model.UserInfo {
	t.Helper()
	user, err := e.svc.User.Create(&model.CreateUserReq{
		Username: username,
		Password: "correct horse battery",
		RoleId:   roleId,
	})
	require.NoError(t, err)
	return user
}
