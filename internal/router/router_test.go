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

package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/go-campus/campus/internal/campus/handler"
	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/internal/campus/service"
	"github.com/go-campus/campus/internal/router"
	"github.com/go-campus/campus/pkg/cache"
	"github.com/go-campus/campus/pkg/ctx"
	"github.com/go-campus/campus/pkg/database"
	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/http/jwt"
	"github.com/go-campus/campus/pkg/log"
)

const testSecret = "router-test-secret"

var dbSeq atomic.Int64

type apiEnv struct {
	app *fiber.App
	db  *gorm.DB
	svc *service.Services
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:campus_router_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Role{}, &model.Menu{}, &model.RoleMenu{},
		&model.User{}, &model.Student{}, &model.Class{}, &model.Payment{},
	))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repos := repo.NewRepositories(database.NewGormDB(db))
	appCtx := ctx.NewContext(context.Background(), db, rdb, log.Sugar())
	cfg := http.Http{
		ContextPath: "/api/v1",
		Auth:        http.Auth{SecretKey: testSecret, AccessExpire: 60, RefreshExpire: 120},
	}
	svc := service.NewServices(repos, cache.NewRedisCache(rdb), cfg.Auth, appCtx)
	app := router.New(cfg, handler.NewHandler(svc), svc)

	return &apiEnv{app: app, db: db, svc: svc}
}

func (e *apiEnv) token(t *testing.T, userId, roleId string) string {
	t.Helper()
	aToken, _, err := jwt.GenToken(userId, roleId, []byte(testSecret), 60, 120)
	require.NoError(t, err)
	return aToken
}

func (e *apiEnv) request(t *testing.T, method, path, token string, body any) (*nethttp.Response, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func (e *apiEnv) setupRole(t *testing.T, name string, isAdmin bool) (*model.Role, *model.UserInfo) {
	t.Helper()
	role, err := e.svc.Role.Create(&model.CreateRoleReq{Name: name, IsAdmin: isAdmin})
	require.NoError(t, err)
	user, err := e.svc.User.Create(&model.CreateUserReq{
		Username: "user-" + role.RoleId[:8],
		Password: "correct horse battery",
		RoleId:   role.RoleId,
	})
	require.NoError(t, err)
	return role, user
}

func TestReadOnlyRoleCanListButNotCreate(t *testing.T) {
	env := newAPIEnv(t)
	role, user := env.setupRole(t, "Teacher", false)
	menu, err := env.svc.Menu.Create(&model.CreateMenuReq{Name: "Students", Path: "/students"})
	require.NoError(t, err)
	require.NoError(t, env.svc.Permission.SetGrant(role.RoleId, menu.MenuId,
		&model.SetGrantReq{CanRead: true}))

	token := env.token(t, user.UserId, role.RoleId)

	resp, body := env.request(t, "GET", "/api/v1/students", token, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = env.request(t, "POST", "/api/v1/students", token,
		model.CreateStudentReq{Nis: "1001", Name: "Budi"})
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Forbidden", body["error"])

	var count int64
	require.NoError(t, env.db.Model(&model.Student{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "denied request must not create anything")
}

func TestAdminWithZeroGrantRowsPassesEveryVerb(t *testing.T) {
	env := newAPIEnv(t)
	role, user := env.setupRole(t, "Head office", true)
	token := env.token(t, user.UserId, role.RoleId)

	resp, _ := env.request(t, "GET", "/api/v1/students", token, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, body := env.request(t, "POST", "/api/v1/students", token,
		model.CreateStudentReq{Nis: "1001", Name: "Budi"})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	studentId := body["data"].(map[string]any)["studentId"].(string)

	name := "Budi Santoso"
	resp, _ = env.request(t, "PUT", "/api/v1/students/"+studentId, token,
		model.UpdateStudentReq{Name: &name})
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, _ = env.request(t, "DELETE", "/api/v1/students/"+studentId, token, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestMissingTokenIsAuthenticationFailure(t *testing.T) {
	env := newAPIEnv(t)

	resp, body := env.request(t, "POST", "/api/v1/students", "",
		model.CreateStudentReq{Nis: "1001", Name: "Budi"})
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Authentication required", body["error"])
	assert.NotEmpty(t, body["message"])

	var count int64
	require.NoError(t, env.db.Model(&model.Student{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "unauthenticated request must not reach the handler")
}

func TestGarbageTokenIsAuthenticationFailure(t *testing.T) {
	env := newAPIEnv(t)

	resp, body := env.request(t, "GET", "/api/v1/students", "not-a-jwt", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid token", body["error"])
}

func TestExplicitAllFalseRowBehavesLikeNoRow(t *testing.T) {
	env := newAPIEnv(t)
	role, user := env.setupRole(t, "Intern", false)
	menu, err := env.svc.Menu.Create(&model.CreateMenuReq{Name: "Students", Path: "/students"})
	require.NoError(t, err)
	require.NoError(t, env.svc.Permission.SetGrant(role.RoleId, menu.MenuId,
		&model.SetGrantReq{}))

	token := env.token(t, user.UserId, role.RoleId)

	for _, tc := range []struct {
		method string
		path   string
		body   any
	}{
		{"GET", "/api/v1/students", nil},
		{"POST", "/api/v1/students", model.CreateStudentReq{Nis: "1", Name: "x"}},
		{"PUT", "/api/v1/students/some-id", model.UpdateStudentReq{}},
		{"DELETE", "/api/v1/students/some-id", nil},
	} {
		resp, body := env.request(t, tc.method, tc.path, token, tc.body)
		assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Forbidden", body["error"])
	}
}

func TestDanglingRoleFailsClosedAs500(t *testing.T) {
	env := newAPIEnv(t)
	token := env.token(t, "ghost-user", "ghost-role")

	resp, body := env.request(t, "GET", "/api/v1/students", token, nil)
	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestPermissionAdminRequiresUpdateCapability(t *testing.T) {
	env := newAPIEnv(t)
	role, user := env.setupRole(t, "Auditor", false)
	menu, err := env.svc.Menu.Create(&model.CreateMenuReq{Name: "Permissions", Path: "/permissions"})
	require.NoError(t, err)

	// read-only on /permissions is not enough, the whole group needs update
	require.NoError(t, env.svc.Permission.SetGrant(role.RoleId, menu.MenuId,
		&model.SetGrantReq{CanRead: true}))
	token := env.token(t, user.UserId, role.RoleId)

	resp, _ := env.request(t, "GET", "/api/v1/permissions/"+role.RoleId, token, nil)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)

	require.NoError(t, env.svc.Permission.SetGrant(role.RoleId, menu.MenuId,
		&model.SetGrantReq{CanUpdate: true}))

	resp, body := env.request(t, "GET", "/api/v1/permissions/"+role.RoleId, token, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestAuthMenusPrunedToReadableEntries(t *testing.T) {
	env := newAPIEnv(t)
	role, user := env.setupRole(t, "Teacher", false)
	students, err := env.svc.Menu.Create(&model.CreateMenuReq{Name: "Students", Path: "/students"})
	require.NoError(t, err)
	_, err = env.svc.Menu.Create(&model.CreateMenuReq{Name: "Payments", Path: "/payments"})
	require.NoError(t, err)
	require.NoError(t, env.svc.Permission.SetGrant(role.RoleId, students.MenuId,
		&model.SetGrantReq{CanRead: true}))

	token := env.token(t, user.UserId, role.RoleId)
	resp, body := env.request(t, "GET", "/api/v1/auth/menus", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	entries := body["data"].([]any)
	require.Len(t, entries, 1)
	assert.Equal(t, "/students", entries[0].(map[string]any)["path"])

	resp, body = env.request(t, "GET", "/api/v1/auth/grants", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	grants := body["data"].(map[string]any)["grants"].(map[string]any)
	assert.Contains(t, grants, "/students")
}

func TestLoginEndToEnd(t *testing.T) {
	env := newAPIEnv(t)
	role, _ := env.setupRole(t, "Teacher", false)
	_, err := env.svc.User.Create(&model.CreateUserReq{
		Username: "alice", Password: "correct horse battery", RoleId: role.RoleId,
	})
	require.NoError(t, err)

	resp, body := env.request(t, "POST", "/api/v1/auth/login", "",
		model.Login{Username: "alice", Password: "correct horse battery"})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	token := data["token"].(map[string]any)
	assert.NotEmpty(t, token["accessToken"])
	grants := data["grants"].(map[string]any)
	assert.Equal(t, false, grants["isAdmin"])

	resp, body = env.request(t, "POST", "/api/v1/auth/login", "",
		model.Login{Username: "alice", Password: "wrong"})
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authentication required", body["error"])
}
