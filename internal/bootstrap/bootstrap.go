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

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/go-campus/campus/internal/campus/conf"
	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/internal/campus/service"
	"github.com/go-campus/campus/pkg/cache"
	pkgconf "github.com/go-campus/campus/pkg/conf"
	"github.com/go-campus/campus/pkg/ctx"
	"github.com/go-campus/campus/pkg/database"
	"github.com/go-campus/campus/pkg/log"
)

// App is the assembled application with everything it needs to run.
type App struct {
	Config *conf.AppConfig
	Ctx    *ctx.Context
	Repos  *repo.Repositories
	Fiber  *fiber.App
}

// LoadConfig reads the TOML configuration and initializes logging.
func LoadConfig(configFile string) (*conf.AppConfig, error) {
	cfg := &conf.AppConfig{Log: *log.SetDefaults()}
	if err := pkgconf.LoadConfigFile(configFile, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configFile, err)
	}
	if _, err := log.NewLog(&cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Setup connects the backing stores and returns the shared context.
func Setup(cfg *conf.AppConfig) (*ctx.Context, error) {
	rdb, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		return nil, err
	}

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	return ctx.NewContext(context.Background(), db, rdb, log.Sugar()), nil
}

// Migrate creates or updates the schema and seeds builtin records.
func Migrate(db *gorm.DB, repos *repo.Repositories, seed conf.Seed) error {
	if err := db.AutoMigrate(
		&model.Role{},
		&model.Menu{},
		&model.RoleMenu{},
		&model.User{},
		&model.Student{},
		&model.Class{},
		&model.Payment{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	adminPassword := seed.AdminPassword
	if adminPassword == "" {
		adminPassword = "ChangeMe123!"
		log.Warn("seed.adminPassword not set, using the default initial password")
	}
	return service.Seed(repos, adminPassword)
}

// Run serves HTTP until a termination signal arrives, then drains in-flight
// requests within the shutdown timeout.
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.Config.Http.Host, a.Config.Http.Port)

	errCh := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "addr", addr)
		errCh <- a.Fiber.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Infow("shutting down", "signal", sig.String())
	}

	timeout := time.Duration(a.Config.Http.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if err := a.Fiber.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("shutdown did not complete cleanly: %w", err)
	}
	log.Info("server stopped")
	return nil
}
