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

package conf

import (
	"github.com/go-campus/campus/pkg/cache"
	"github.com/go-campus/campus/pkg/database"
	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/log"
)

// AppConfig is the full application configuration, loaded from TOML.
type AppConfig struct {
	Http     http.Http         `mapstructure:"http"`
	Log      log.Conf          `mapstructure:"log"`
	Database database.Database `mapstructure:"database"`
	Redis    cache.Redis       `mapstructure:"redis"`
	Seed     Seed              `mapstructure:"seed"`
}

// Seed controls first-run provisioning.
type Seed struct {
	// AdminPassword is the initial password of the builtin admin account.
	// Only used when the account does not exist yet.
	AdminPassword string `mapstructure:"adminPassword"`
}
