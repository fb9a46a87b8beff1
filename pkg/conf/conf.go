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
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/go-campus/campus/pkg/log"
)

func init() {
	viper.AutomaticEnv()
}

// LoadConfigFile reads a TOML config file into cfg and keeps watching it for
// changes, re-unmarshalling on every write.
func LoadConfigFile(configFile string, cfg interface{}) error {
	cfgValue := reflect.ValueOf(cfg)
	if cfgValue.Kind() != reflect.Ptr || cfgValue.IsNil() {
		return errors.New("cfg must be a non-nil pointer")
	}

	vCfg := viper.New()
	vCfg.AddConfigPath(filepath.Dir(configFile))
	vCfg.SetConfigName(strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile)))
	vCfg.SetConfigType("toml")

	if err := vCfg.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}

	vCfg.WatchConfig()
	vCfg.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("configuration changed, reloading: %s", e.Name)
		if err := vCfg.Unmarshal(cfg); err != nil {
			log.Errorf("failed to re-unmarshal configuration file: %v", err)
		}
	})

	if err := vCfg.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file: %w", err)
	}

	return nil
}
