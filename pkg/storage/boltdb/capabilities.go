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

package boltdb

import (
	"context"

	capsmodel "github.com/ortuman/converse/pkg/model/caps"
	bolt "go.etcd.io/bbolt"
)

const capsKey = "caps"

// UpsertCapabilities satisfies repository.Capabilities interface.
func (r *Repository) UpsertCapabilities(_ context.Context, key string, caps *capsmodel.Capabilities) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		op := upsertKeyOp{
			tx:     tx,
			bucket: capsBucketKey(key),
			key:    capsKey,
			obj:    caps,
		}
		return op.do()
	})
}

// CapabilitiesExist tells whether key capabilities have already been cached.
func (r *Repository) CapabilitiesExist(_ context.Context, key string) (ok bool, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		op := bucketExistsOp{
			tx:     tx,
			bucket: capsBucketKey(key),
		}
		ok = op.do()
		return nil
	})
	return
}

// FetchCapabilities fetches the capabilities associated to key.
func (r *Repository) FetchCapabilities(_ context.Context, key string) (caps *capsmodel.Capabilities, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		op := fetchKeyOp{
			tx:     tx,
			bucket: capsBucketKey(key),
			key:    capsKey,
			obj:    &capsmodel.Capabilities{},
		}
		obj, err := op.do()
		if err != nil {
			return err
		}
		if obj != nil {
			caps = obj.(*capsmodel.Capabilities)
		}
		return nil
	})
	return
}

func capsBucketKey(key string) string {
	return "caps:" + key
}
