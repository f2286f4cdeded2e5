// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package edge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x51ab1e00000000000000000000000000000000a1")
	require.NoError(t, err)
	assert.Equal(t, "0x51ab1e00000000000000000000000000000000a1", addr.String())

	// no prefix
	bare, err := ParseAddress("51ab1e00000000000000000000000000000000a1")
	require.NoError(t, err)
	assert.Equal(t, addr, bare)

	_, err = ParseAddress("0x51ab1e")
	assert.Error(t, err)

	_, err = ParseAddress("zz51ab1e00000000000000000000000000000000a1")
	assert.Error(t, err)
}

func TestAddressJSON(t *testing.T) {
	addr := MustParseAddress("0x0123456789012345678901234567890123456789")
	data, err := json.Marshal(&addr)
	require.NoError(t, err)
	assert.Equal(t, `"0x0123456789012345678901234567890123456789"`, string(data))

	var decoded Address
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, addr, decoded)
}

func TestAddressIsZero(t *testing.T) {
	assert.True(t, Address{}.IsZero())
	assert.False(t, MustParseAddress("0x0000000000000000000000000000000000000001").IsZero())
}

func TestDeriveAddress(t *testing.T) {
	user := MustParseAddress("0x0123456789012345678901234567890123456789")

	addr1, proof1 := DeriveAddress(SeedSubscription, user.Bytes())
	addr2, proof2 := DeriveAddress(SeedSubscription, user.Bytes())
	assert.Equal(t, addr1, addr2, "derivation must be deterministic")
	assert.Equal(t, proof1, proof2)

	// different tag, different address
	other, _ := DeriveAddress(SeedStakingVault, user.Bytes())
	assert.NotEqual(t, addr1, other)

	// different key material, different address
	otherUser := MustParseAddress("0x9876543210987654321098765432109876543210")
	third, _ := DeriveAddress(SeedSubscription, otherUser.Bytes())
	assert.NotEqual(t, addr1, third)

	// singleton records derive from the tag alone
	cfg1, _ := DeriveAddress(SeedConfig)
	cfg2, _ := DeriveAddress(SeedConfig)
	assert.Equal(t, cfg1, cfg2)
}

func TestBytesToAddress(t *testing.T) {
	assert.Equal(t,
		MustParseAddress("0x0000000000000000000000000000000000000001"),
		BytesToAddress([]byte{1}))
}
