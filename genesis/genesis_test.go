// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeai-labs/edgeledger/builtin"
	"github.com/edgeai-labs/edgeledger/edge"
	"github.com/edgeai-labs/edgeledger/gateway"
	"github.com/edgeai-labs/edgeledger/genesis"
	"github.com/edgeai-labs/edgeledger/kv"
	"github.com/edgeai-labs/edgeledger/state"
)

const doc = `
admin: "0x00000000000000000000000000000000000000ad"
feeWallet: "0x00000000000000000000000000000000000000fe"
priceNative: 1000
priceStable: 500
durationSeconds: 2592000
feeShareBps: 500
allocations:
  - address: "0x0000000000000000000000000000000000000011"
    native: 1000000
    stable: 2000
  - address: "0x0000000000000000000000000000000000000022"
    native: 500000
`

func TestParse(t *testing.T) {
	parsed, err := genesis.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), parsed.PriceNative)
	assert.Equal(t, int64(2592000), parsed.Duration)
	assert.Len(t, parsed.Allocations, 2)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	_, err := genesis.Parse([]byte("admin: [nope"))
	assert.Error(t, err)

	_, err = genesis.Parse([]byte(`
admin: "0xbad"
feeWallet: "0x00000000000000000000000000000000000000fe"
durationSeconds: 1
`))
	assert.Error(t, err)

	_, err = genesis.Parse([]byte(`
admin: "0x00000000000000000000000000000000000000ad"
feeWallet: "0x00000000000000000000000000000000000000fe"
durationSeconds: 0
`))
	assert.Error(t, err)

	_, err = genesis.Parse([]byte(`
admin: "0x00000000000000000000000000000000000000ad"
feeWallet: "0x00000000000000000000000000000000000000fe"
durationSeconds: 1
feeShareBps: 10001
`))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	parsed, err := genesis.Parse([]byte(doc))
	require.NoError(t, err)

	kvStore, err := kv.NewMem()
	require.NoError(t, err)
	defer kvStore.Close()
	st := state.New(kvStore)

	require.NoError(t, parsed.Build(st))
	require.NoError(t, st.Commit())

	// config landed at its derived address
	st2 := state.New(kvStore)
	cfg, err := builtin.Config.WithState(st2).Get()
	require.NoError(t, err)
	assert.Equal(t, edge.MustParseAddress("0x00000000000000000000000000000000000000ad"), cfg.Admin)
	assert.Equal(t, uint64(2592000), cfg.Duration)

	// allocations landed
	gw := gateway.New(st2)
	first := edge.MustParseAddress("0x0000000000000000000000000000000000000011")
	native, err := gw.NativeBalance(first)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000), native)
	stable, err := gw.Balance(edge.StableAsset, first)
	require.NoError(t, err)
	assert.Equal(t, uint64(2000), stable)

	// the stable asset is registered under the admin
	info, err := gw.Asset(edge.StableAsset)
	require.NoError(t, err)
	assert.Equal(t, cfg.Admin, info.Issuer)
	assert.Equal(t, uint8(6), info.Decimals)
	supply, err := gw.Supply(edge.StableAsset)
	require.NoError(t, err)
	assert.Equal(t, uint64(2000), supply)
}
