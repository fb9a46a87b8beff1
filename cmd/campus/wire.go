//go:build wireinject
// +build wireinject

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
	"github.com/google/wire"

	"github.com/go-campus/campus/internal/bootstrap"
	"github.com/go-campus/campus/internal/campus/conf"
	"github.com/go-campus/campus/internal/campus/handler"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/internal/campus/service"
	"github.com/go-campus/campus/internal/router"
)

func initApp(cfg *conf.AppConfig) (*bootstrap.App, error) {
	wire.Build(
		bootstrap.Setup,
		provideDatabase,
		provideCache,
		provideHttp,
		provideAuth,
		repo.NewRepositories,
		service.NewServices,
		handler.NewHandler,
		router.New,
		newApp,
	)
	return nil, nil
}
