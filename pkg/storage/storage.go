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

package storage

import (
	"fmt"

	kitlog "github.com/go-kit/log"
	"github.com/ortuman/converse/pkg/storage/boltdb"
	measuredrepository "github.com/ortuman/converse/pkg/storage/measured"
	"github.com/ortuman/converse/pkg/storage/memory"
	"github.com/ortuman/converse/pkg/storage/repository"
)

const (
	boltDBRepositoryType = "boltdb"
	memoryRepositoryType = "memory"
)

// Config contains storage configuration value.
type Config struct {
	Type   string        `fig:"type" default:"memory"`
	BoltDB boltdb.Config `fig:"boltdb"`
}

// New returns an initialized repository given a configuration.
func New(cfg Config, logger kitlog.Logger) (repository.Repository, error) {
	var rep repository.Repository
	switch cfg.Type {
	case boltDBRepositoryType:
		rep = boltdb.New(cfg.BoltDB, logger)
	case memoryRepositoryType:
		rep = memory.New()
	default:
		return nil, fmt.Errorf("unrecognized repository type: %s", cfg.Type)
	}
	return measuredrepository.New(rep), nil
}
