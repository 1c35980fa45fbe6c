// Copyright 2023 The converse Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package converse

import (
	"path/filepath"

	"github.com/kkyr/fig"
	"github.com/ortuman/converse/pkg/presence"
	"github.com/ortuman/converse/pkg/storage"
)

// LoggerConfig defines logger configuration.
type LoggerConfig struct {
	Level  string `fig:"level" default:"debug"`
	Format string `fig:"format"`
}

// CapsConfig defines the entity capabilities announced for this client.
type CapsConfig struct {
	Node     string   `fig:"node" default:"https://github.com/ortuman/converse"`
	Name     string   `fig:"name" default:"converse"`
	Category string   `fig:"category" default:"client"`
	Type     string   `fig:"type" default:"console"`
	Features []string `fig:"features"`
}

// Config defines converse configuration.
type Config struct {
	Logger     LoggerConfig              `fig:"logger"`
	Storage    storage.Config            `fig:"storage"`
	Priorities presence.PrioritiesConfig `fig:"priorities"`
	Caps       CapsConfig                `fig:"caps"`
}

// LoadConfig loads converse configuration from a YAML file.
func LoadConfig(configFile string) (*Config, error) {
	var cfg Config
	file := filepath.Base(configFile)
	dir := filepath.Dir(configFile)

	err := fig.Load(&cfg, fig.File(file), fig.Dirs(dir))
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
