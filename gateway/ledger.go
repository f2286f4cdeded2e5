// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gateway

import (
	"errors"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/edgeai-labs/edgeledger/bn"
	"github.com/edgeai-labs/edgeledger/edge"
	"github.com/edgeai-labs/edgeledger/errcode"
	"github.com/edgeai-labs/edgeledger/state"
)

// asset record discriminator
const assetRecordTag = 0x05

func holderKey(holder edge.Address) edge.Bytes32 {
	return edge.BytesToBytes32(append([]byte("h"), holder.Bytes()...))
}

var supplyKey = edge.Bytes32(crypto.Keccak256Hash([]byte("asset-supply")))

// AssetInfo describes a registered asset.
type AssetInfo struct {
	Issuer   edge.Address
	Decimals uint8
}

var (
	_ state.StorageEncoder = (*AssetInfo)(nil)
	_ state.StorageDecoder = (*AssetInfo)(nil)
)

// Encode implements state.StorageEncoder.
func (a *AssetInfo) Encode() ([]byte, error) {
	if a.Issuer.IsZero() && a.Decimals == 0 {
		return nil, nil
	}
	body, err := rlp.EncodeToBytes(a)
	if err != nil {
		return nil, err
	}
	return append([]byte{assetRecordTag}, body...), nil
}

// Decode implements state.StorageDecoder.
func (a *AssetInfo) Decode(data []byte) error {
	if len(data) == 0 {
		*a = AssetInfo{}
		return nil
	}
	if data[0] != assetRecordTag {
		return errors.New("bad asset record tag")
	}
	return rlp.DecodeBytes(data[1:], a)
}

// IsEmpty returns whether the asset is unregistered.
func (a *AssetInfo) IsEmpty() bool {
	return a.Issuer.IsZero()
}

type amount uint64

func (a *amount) Encode() ([]byte, error) {
	if *a == 0 {
		return nil, nil
	}
	return rlp.EncodeToBytes(uint64(*a))
}

func (a *amount) Decode(data []byte) error {
	if len(data) == 0 {
		*a = 0
		return nil
	}
	var v uint64
	if err := rlp.DecodeBytes(data, &v); err != nil {
		return err
	}
	*a = amount(v)
	return nil
}

// Ledger is the state-backed Gateway implementation.
type Ledger struct {
	state *state.State
}

var _ Gateway = (*Ledger)(nil)

// New creates a ledger over the given state.
func New(st *state.State) *Ledger {
	return &Ledger{st}
}

// NativeBalance returns the native balance held by addr.
func (l *Ledger) NativeBalance(addr edge.Address) (uint64, error) {
	return l.state.GetBalance(addr)
}

// Balance returns the asset balance held by holder.
func (l *Ledger) Balance(asset, holder edge.Address) (uint64, error) {
	var bal amount
	if err := l.state.GetStorage(asset, holderKey(holder), &bal); err != nil {
		return 0, err
	}
	return uint64(bal), nil
}

// SetNativeBalance endows an address with native value, bypassing the
// authority check. Used by genesis allocation only.
func (l *Ledger) SetNativeBalance(addr edge.Address, balance uint64) error {
	return l.state.SetBalance(addr, balance)
}

// TransferNative moves native value from one address to another.
// The whole move applies or none of it does.
func (l *Ledger) TransferNative(from, to edge.Address, value uint64, auth Authority) error {
	if auth.Address() != from {
		return errcode.ErrUnauthorized
	}
	fromBal, err := l.state.GetBalance(from)
	if err != nil {
		return err
	}
	if fromBal < value {
		return errcode.ErrInsufficientFunds
	}
	toBal, err := l.state.GetBalance(to)
	if err != nil {
		return err
	}
	newToBal, ok := bn.Add(toBal, value)
	if !ok {
		return errcode.ErrOverflow
	}
	if from == to {
		return nil
	}
	if err := l.state.SetBalance(from, fromBal-value); err != nil {
		return err
	}
	return l.state.SetBalance(to, newToBal)
}

// Transfer moves asset value from one address to another.
func (l *Ledger) Transfer(asset, from, to edge.Address, value uint64, auth Authority) error {
	if auth.Address() != from {
		return errcode.ErrUnauthorized
	}
	var info AssetInfo
	if err := l.state.GetRecord(asset, &info); err != nil {
		return err
	}
	if info.IsEmpty() {
		return errcode.ErrInvalidAsset
	}
	fromBal, err := l.Balance(asset, from)
	if err != nil {
		return err
	}
	if fromBal < value {
		return errcode.ErrInsufficientFunds
	}
	toBal, err := l.Balance(asset, to)
	if err != nil {
		return err
	}
	newToBal, ok := bn.Add(toBal, value)
	if !ok {
		return errcode.ErrOverflow
	}
	if from == to {
		return nil
	}
	newFromBal := amount(fromBal - value)
	if err := l.state.SetStorage(asset, holderKey(from), &newFromBal); err != nil {
		return err
	}
	v := amount(newToBal)
	return l.state.SetStorage(asset, holderKey(to), &v)
}

// RegisterAsset creates a new asset under the given identity.
// Registering twice fails, so an asset's issuer binding is immutable.
func (l *Ledger) RegisterAsset(asset, issuer edge.Address, decimals uint8) error {
	var info AssetInfo
	if err := l.state.GetRecord(asset, &info); err != nil {
		return err
	}
	if !info.IsEmpty() {
		return errcode.ErrAlreadyExists
	}
	return l.state.SetRecord(asset, &AssetInfo{Issuer: issuer, Decimals: decimals})
}

// Issue creates new units of a registered asset. Only the issuer
// authority bound at registration may issue.
func (l *Ledger) Issue(asset, to edge.Address, value uint64, auth Authority) error {
	var info AssetInfo
	if err := l.state.GetRecord(asset, &info); err != nil {
		return err
	}
	if info.IsEmpty() {
		return errcode.ErrInvalidAsset
	}
	if auth.Address() != info.Issuer {
		return errcode.ErrUnauthorized
	}
	supply, err := l.Supply(asset)
	if err != nil {
		return err
	}
	newSupply, ok := bn.Add(supply, value)
	if !ok {
		return errcode.ErrOverflow
	}
	toBal, err := l.Balance(asset, to)
	if err != nil {
		return err
	}
	newToBal, ok := bn.Add(toBal, value)
	if !ok {
		return errcode.ErrOverflow
	}
	s := amount(newSupply)
	if err := l.state.SetStorage(asset, supplyKey, &s); err != nil {
		return err
	}
	v := amount(newToBal)
	return l.state.SetStorage(asset, holderKey(to), &v)
}

// Supply returns the total issued units of an asset.
func (l *Ledger) Supply(asset edge.Address) (uint64, error) {
	var supply amount
	if err := l.state.GetStorage(asset, supplyKey, &supply); err != nil {
		return 0, err
	}
	return uint64(supply), nil
}

// Asset returns the registration info of an asset.
func (l *Ledger) Asset(asset edge.Address) (*AssetInfo, error) {
	var info AssetInfo
	if err := l.state.GetRecord(asset, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
