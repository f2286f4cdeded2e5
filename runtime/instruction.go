// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/edgeai-labs/edgeledger/edge"
)

// Kind tags an instruction on the wire.
type Kind uint8

const (
	KindInitializeConfig Kind = iota + 1
	KindCreateValueUnit
	KindSubscribeNative
	KindSubscribeStable
	KindStake
	KindUnstake
	KindUpdateConfig
	KindDistributeFees
	KindMintValueUnit
)

func (k Kind) String() string {
	switch k {
	case KindInitializeConfig:
		return "initializeConfig"
	case KindCreateValueUnit:
		return "createValueUnit"
	case KindSubscribeNative:
		return "subscribeNative"
	case KindSubscribeStable:
		return "subscribeStable"
	case KindStake:
		return "stake"
	case KindUnstake:
		return "unstake"
	case KindUpdateConfig:
		return "updateConfig"
	case KindDistributeFees:
		return "distributeFees"
	case KindMintValueUnit:
		return "mintValueUnit"
	default:
		return "unknown"
	}
}

// Instruction is one atomic state transition submitted by an external
// caller.
type Instruction interface {
	Kind() Kind
}

// InitializeConfig creates the Config record.
type InitializeConfig struct {
	FeeWallet   edge.Address
	PriceNative uint64
	PriceStable uint64
	Duration    uint64
	FeeShareBps uint16
}

func (*InitializeConfig) Kind() Kind { return KindInitializeConfig }

// CreateValueUnit binds the value-unit asset to Config.
type CreateValueUnit struct{}

func (*CreateValueUnit) Kind() Kind { return KindCreateValueUnit }

// SubscribeNative issues or renews a subscription paid in the native
// asset.
type SubscribeNative struct{}

func (*SubscribeNative) Kind() Kind { return KindSubscribeNative }

// SubscribeStable issues or renews a subscription paid in the stable
// asset.
type SubscribeStable struct{}

func (*SubscribeStable) Kind() Kind { return KindSubscribeStable }

// Stake deposits value units into the vault.
type Stake struct {
	Amount uint64
}

func (*Stake) Kind() Kind { return KindStake }

// Unstake withdraws value units from the vault.
type Unstake struct {
	Amount uint64
}

func (*Unstake) Kind() Kind { return KindUnstake }

// UpdateConfig partially updates the governance fields; absent fields
// are left untouched.
type UpdateConfig struct {
	PriceNative *uint64       `rlp:"nil"`
	PriceStable *uint64       `rlp:"nil"`
	Duration    *uint64       `rlp:"nil"`
	FeeShareBps *uint16       `rlp:"nil"`
	FeeWallet   *edge.Address `rlp:"nil"`
}

func (*UpdateConfig) Kind() Kind { return KindUpdateConfig }

// DistributeFees routes the stakers' share of a fee payment into the
// vault.
type DistributeFees struct {
	Amount uint64
}

func (*DistributeFees) Kind() Kind { return KindDistributeFees }

// MintValueUnit issues new value units to a destination.
type MintValueUnit struct {
	Asset       edge.Address
	Destination edge.Address
	Amount      uint64
}

func (*MintValueUnit) Kind() Kind { return KindMintValueUnit }

// Encode serializes an instruction as a one-byte kind tag followed by
// the RLP of its payload.
func Encode(instr Instruction) ([]byte, error) {
	body, err := rlp.EncodeToBytes(instr)
	if err != nil {
		return nil, errors.Wrap(err, "encode instruction")
	}
	return append([]byte{byte(instr.Kind())}, body...), nil
}

// Decode deserializes an instruction.
func Decode(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return nil, errors.New("decode instruction: empty data")
	}
	var instr Instruction
	switch Kind(data[0]) {
	case KindInitializeConfig:
		instr = &InitializeConfig{}
	case KindCreateValueUnit:
		instr = &CreateValueUnit{}
	case KindSubscribeNative:
		instr = &SubscribeNative{}
	case KindSubscribeStable:
		instr = &SubscribeStable{}
	case KindStake:
		instr = &Stake{}
	case KindUnstake:
		instr = &Unstake{}
	case KindUpdateConfig:
		instr = &UpdateConfig{}
	case KindDistributeFees:
		instr = &DistributeFees{}
	case KindMintValueUnit:
		instr = &MintValueUnit{}
	default:
		return nil, errors.Errorf("decode instruction: unknown kind %d", data[0])
	}
	if err := rlp.DecodeBytes(data[1:], instr); err != nil {
		return nil, errors.Wrap(err, "decode instruction")
	}
	return instr, nil
}
