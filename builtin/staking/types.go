// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"errors"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/edgeai-labs/edgeledger/edge"
	"github.com/edgeai-labs/edgeledger/state"
)

// record discriminators
const (
	vaultRecordTag = 0x03
	stakeRecordTag = 0x04
)

// Vault is the singleton staking pool record. Its TotalStaked always
// equals the sum of every UserStake amount ever accounted against it.
type Vault struct {
	TotalStaked      uint64 // sum of all user stakes
	TotalRewards     uint64 // cumulative rewards routed into the pool
	LastDistribution uint64 // unix seconds of the last fee distribution
	Proof            uint8  // proof byte of the derived address
}

var (
	_ state.StorageEncoder = (*Vault)(nil)
	_ state.StorageDecoder = (*Vault)(nil)
)

// Encode implements state.StorageEncoder.
func (v *Vault) Encode() ([]byte, error) {
	if v.TotalStaked == 0 && v.TotalRewards == 0 && v.LastDistribution == 0 {
		return nil, nil
	}
	body, err := rlp.EncodeToBytes(v)
	if err != nil {
		return nil, err
	}
	return append([]byte{vaultRecordTag}, body...), nil
}

// Decode implements state.StorageDecoder.
func (v *Vault) Decode(data []byte) error {
	if len(data) == 0 {
		*v = Vault{}
		return nil
	}
	if data[0] != vaultRecordTag {
		return errors.New("bad vault record tag")
	}
	return rlp.DecodeBytes(data[1:], v)
}

// UserStake is the per-staker record. It is created on first stake and
// persists even when the amount drops back to zero.
type UserStake struct {
	Owner    edge.Address // the staker, key component of the derived address
	Amount   uint64       // currently staked value units
	StakedAt uint64       // unix seconds of the latest deposit
	Proof    uint8        // proof byte of the derived address
}

var (
	_ state.StorageEncoder = (*UserStake)(nil)
	_ state.StorageDecoder = (*UserStake)(nil)
)

// Encode implements state.StorageEncoder.
func (u *UserStake) Encode() ([]byte, error) {
	if u.IsEmpty() {
		return nil, nil
	}
	body, err := rlp.EncodeToBytes(u)
	if err != nil {
		return nil, err
	}
	return append([]byte{stakeRecordTag}, body...), nil
}

// Decode implements state.StorageDecoder.
func (u *UserStake) Decode(data []byte) error {
	if len(data) == 0 {
		*u = UserStake{}
		return nil
	}
	if data[0] != stakeRecordTag {
		return errors.New("bad stake record tag")
	}
	return rlp.DecodeBytes(data[1:], u)
}

// IsEmpty returns whether the record can be treated as not created.
func (u *UserStake) IsEmpty() bool {
	return u.Owner.IsZero()
}
