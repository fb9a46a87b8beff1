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
	"flag"
	"fmt"
	"os"

	"github.com/go-campus/campus/internal/bootstrap"
	"github.com/go-campus/campus/pkg/log"
)

func main() {
	configFile := flag.String("conf", "conf.d/config.toml", "path to the configuration file")
	flag.Parse()

	cfg, err := bootstrap.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "campus: %v\n", err)
		os.Exit(1)
	}

	app, err := initApp(cfg)
	if err != nil {
		log.Fatalf("failed to assemble application: %v", err)
	}

	if err := bootstrap.Migrate(app.Ctx.DB, app.Repos, cfg.Seed); err != nil {
		log.Fatalf("failed to prepare database: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
