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

package measuredrepository

import (
	"context"
	"testing"

	capsmodel "github.com/ortuman/converse/pkg/model/caps"
	"github.com/ortuman/converse/pkg/storage/memory"
	"github.com/stretchr/testify/require"
)

func TestMeasured_DelegatesToUnderlyingRepository(t *testing.T) {
	// given
	rep := New(memory.New())

	// when
	err := rep.Start(context.Background())
	require.NoError(t, err)

	err = rep.UpsertCapabilities(context.Background(), "http://dino.im#v1", &capsmodel.Capabilities{
		Node: "http://dino.im",
		Ver:  "v1",
	})
	require.NoError(t, err)

	// then
	ok, err := rep.CapabilitiesExist(context.Background(), "http://dino.im#v1")
	require.NoError(t, err)
	require.True(t, ok)

	caps, err := rep.FetchCapabilities(context.Background(), "http://dino.im#v1")
	require.NoError(t, err)
	require.NotNil(t, caps)
	require.Equal(t, "v1", caps.Ver)

	require.NoError(t, rep.Stop(context.Background()))
}
