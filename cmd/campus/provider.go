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

package main

import (
	"github.com/gofiber/fiber/v2"

	"github.com/go-campus/campus/internal/bootstrap"
	"github.com/go-campus/campus/internal/campus/conf"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/pkg/cache"
	"github.com/go-campus/campus/pkg/ctx"
	"github.com/go-campus/campus/pkg/database"
	"github.com/go-campus/campus/pkg/http"
)

func provideDatabase(c *ctx.Context) database.IDatabase {
	return database.NewGormDB(c.DB)
}

func provideCache(c *ctx.Context) cache.ICache {
	return cache.NewRedisCache(c.Redis)
}

func provideHttp(cfg *conf.AppConfig) http.Http {
	return cfg.Http
}

func provideAuth(cfg *conf.AppConfig) http.Auth {
	return cfg.Http.Auth
}

func newApp(cfg *conf.AppConfig, c *ctx.Context, repos *repo.Repositories, app *fiber.App) *bootstrap.App {
	return &bootstrap.App{
		Config: cfg,
		Ctx:    c,
		Repos:  repos,
		Fiber:  app,
	}
}
