// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package appconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeai-labs/edgeledger/builtin/appconfig"
	"github.com/edgeai-labs/edgeledger/edge"
	"github.com/edgeai-labs/edgeledger/errcode"
	"github.com/edgeai-labs/edgeledger/gateway"
	"github.com/edgeai-labs/edgeledger/kv"
	"github.com/edgeai-labs/edgeledger/state"
)

var (
	admin     = edge.MustParseAddress("0x00000000000000000000000000000000000000ad")
	feeWallet = edge.MustParseAddress("0x00000000000000000000000000000000000000fe")
	outsider  = edge.MustParseAddress("0x0000000000000000000000000000000000000099")
)

func newTestStore(t *testing.T) (*appconfig.Store, *gateway.Ledger) {
	kvStore, err := kv.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { kvStore.Close() })
	st := state.New(kvStore)
	return appconfig.New(st), gateway.New(st)
}

func initialize(t *testing.T, s *appconfig.Store) {
	require.NoError(t, s.Initialize(admin, feeWallet, 1000, 500, 2592000, 500))
}

func TestInitialize(t *testing.T) {
	s, _ := newTestStore(t)

	// zero duration
	err := s.Initialize(admin, feeWallet, 1000, 500, 0, 500)
	assert.ErrorIs(t, err, errcode.ErrInvalidDuration)

	// fee share above 100%
	err = s.Initialize(admin, feeWallet, 1000, 500, 2592000, 10001)
	assert.ErrorIs(t, err, errcode.ErrInvalidAmount)

	initialize(t, s)

	cfg, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, admin, cfg.Admin)
	assert.Equal(t, feeWallet, cfg.FeeWallet)
	assert.Equal(t, uint64(1000), cfg.PriceNative)
	assert.Equal(t, uint64(500), cfg.PriceStable)
	assert.Equal(t, uint64(2592000), cfg.Duration)
	assert.Equal(t, uint16(500), cfg.FeeShareBps)
	assert.True(t, cfg.ValueUnit.IsZero())

	// one-shot
	err = s.Initialize(admin, feeWallet, 1, 1, 1, 1)
	assert.ErrorIs(t, err, errcode.ErrAlreadyExists)
}

func TestGetRejectsTamperedRecord(t *testing.T) {
	kvStore, err := kv.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { kvStore.Close() })
	st := state.New(kvStore)
	s := appconfig.New(st)

	_, proof := edge.DeriveAddress(edge.SeedConfig)
	wrongProof := proof + 1
	if wrongProof == 0 {
		wrongProof++
	}
	require.NoError(t, st.SetRecord(s.Address(), &appconfig.Config{
		Admin:     admin,
		FeeWallet: feeWallet,
		Duration:  2592000,
		Proof:     wrongProof,
	}))
	_, err = s.Get()
	assert.ErrorIs(t, err, errcode.ErrRecordMismatch)
}

func TestGetBeforeInitialize(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Get()
	assert.ErrorIs(t, err, errcode.ErrNotInitialized)
}

func TestApplyUpdate(t *testing.T) {
	s, _ := newTestStore(t)
	initialize(t, s)

	newPrice := uint64(2000)
	err := s.ApplyUpdate(outsider, &appconfig.Update{PriceNative: &newPrice})
	assert.ErrorIs(t, err, errcode.ErrUnauthorized)

	// a partial update leaves absent fields untouched
	require.NoError(t, s.ApplyUpdate(admin, &appconfig.Update{PriceNative: &newPrice}))
	cfg, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, uint64(2000), cfg.PriceNative)
	assert.Equal(t, uint64(500), cfg.PriceStable)
	assert.Equal(t, uint64(2592000), cfg.Duration)
	assert.Equal(t, feeWallet, cfg.FeeWallet)

	zero := uint64(0)
	err = s.ApplyUpdate(admin, &appconfig.Update{Duration: &zero})
	assert.ErrorIs(t, err, errcode.ErrInvalidDuration)

	badBps := uint16(10001)
	err = s.ApplyUpdate(admin, &appconfig.Update{FeeShareBps: &badBps})
	assert.ErrorIs(t, err, errcode.ErrInvalidAmount)

	newWallet := outsider
	newDuration := uint64(86400)
	require.NoError(t, s.ApplyUpdate(admin, &appconfig.Update{
		FeeWallet: &newWallet,
		Duration:  &newDuration,
	}))
	cfg, err = s.Get()
	require.NoError(t, err)
	assert.Equal(t, outsider, cfg.FeeWallet)
	assert.Equal(t, uint64(86400), cfg.Duration)
	assert.Equal(t, uint64(2000), cfg.PriceNative)
}

func TestBindValueUnit(t *testing.T) {
	s, gw := newTestStore(t)
	initialize(t, s)

	_, err := s.BindValueUnit(outsider, gw)
	assert.ErrorIs(t, err, errcode.ErrUnauthorized)

	unit, err := s.BindValueUnit(admin, gw)
	require.NoError(t, err)
	wantUnit, _ := edge.DeriveAddress(edge.SeedValueUnit)
	assert.Equal(t, wantUnit, unit)

	cfg, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, unit, cfg.ValueUnit)

	// the asset is issued under the Config record's authority
	info, err := gw.Asset(unit)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), info.Issuer)
	assert.Equal(t, uint8(edge.ValueUnitDecimals), info.Decimals)

	// one-shot
	_, err = s.BindValueUnit(admin, gw)
	assert.ErrorIs(t, err, errcode.ErrAlreadyExists)
}

func TestMint(t *testing.T) {
	s, gw := newTestStore(t)
	initialize(t, s)

	// unbound value unit
	err := s.Mint(admin, edge.Address{}, outsider, 100, gw)
	assert.ErrorIs(t, err, errcode.ErrInvalidAsset)

	unit, err := s.BindValueUnit(admin, gw)
	require.NoError(t, err)

	err = s.Mint(outsider, unit, outsider, 100, gw)
	assert.ErrorIs(t, err, errcode.ErrUnauthorized)

	err = s.Mint(admin, unit, outsider, 0, gw)
	assert.ErrorIs(t, err, errcode.ErrInvalidAmount)

	// asset identity must match the bound unit
	err = s.Mint(admin, feeWallet, outsider, 100, gw)
	assert.ErrorIs(t, err, errcode.ErrInvalidAsset)

	require.NoError(t, s.Mint(admin, unit, outsider, 100, gw))
	bal, err := gw.Balance(unit, outsider)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), bal)
	supply, err := gw.Supply(unit)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), supply)
}
