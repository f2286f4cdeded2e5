// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package state manages the address-keyed world state of the module.
//
// All reads and writes go through a revisioned overlay, so a caller can
// take a checkpoint before running an instruction and revert every
// mutation if any step of it fails. Nothing reaches the backing store
// until Commit.
package state

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/edgeai-labs/edgeledger/edge"
	"github.com/edgeai-labs/edgeledger/kv"
	"github.com/edgeai-labs/edgeledger/stackedmap"
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

// key planes of the overlay. Distinct types keep balances, record
// bodies and structured storage from colliding in the stacked map.
type (
	balanceKey edge.Address
	recordKey  edge.Address
	storageKey struct {
		addr edge.Address
		key  edge.Bytes32
	}
)

const (
	balancePrefix = 'b'
	recordPrefix  = 'r'
	storagePrefix = 's'
)

// State manages the world state.
type State struct {
	store kv.GetPutter
	sm    *stackedmap.StackedMap
}

// New creates a state object backed by the given store.
func New(store kv.GetPutter) *State {
	st := &State{store: store}
	st.sm = stackedmap.New(func(key any) (any, bool, error) {
		raw, err := st.load(key)
		if err != nil {
			return nil, false, err
		}
		return raw, true, nil
	})
	// base level holding uncommitted changes
	st.sm.Push()
	return st
}

func (s *State) load(key any) (rlp.RawValue, error) {
	var storeKey []byte
	switch k := key.(type) {
	case balanceKey:
		storeKey = append([]byte{balancePrefix}, k[:]...)
	case recordKey:
		storeKey = append([]byte{recordPrefix}, k[:]...)
	case storageKey:
		storeKey = append(append([]byte{storagePrefix}, k.addr[:]...), k.key[:]...)
	default:
		panic(fmt.Errorf("unexpected key type %+v", key))
	}
	raw, err := s.store.Get(storeKey)
	if err != nil {
		if s.store.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

func (s *State) getRaw(key any) (rlp.RawValue, error) {
	v, _, err := s.sm.Get(key)
	if err != nil {
		return nil, &Error{err}
	}
	return v.(rlp.RawValue), nil
}

// GetBalance returns the native balance of the given address.
func (s *State) GetBalance(addr edge.Address) (uint64, error) {
	raw, err := s.getRaw(balanceKey(addr))
	if err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return 0, nil
	}
	var balance uint64
	if err := rlp.DecodeBytes(raw, &balance); err != nil {
		return 0, &Error{err}
	}
	return balance, nil
}

// SetBalance sets the native balance of the given address.
// Zero balance reclaims the entry.
func (s *State) SetBalance(addr edge.Address, balance uint64) error {
	var raw rlp.RawValue
	if balance != 0 {
		enc, err := rlp.EncodeToBytes(balance)
		if err != nil {
			return &Error{err}
		}
		raw = enc
	}
	s.sm.Put(balanceKey(addr), raw)
	return nil
}

// GetRecord loads and decodes the record body stored at addr.
// A missing record decodes from empty data.
func (s *State) GetRecord(addr edge.Address, dec StorageDecoder) error {
	raw, err := s.getRaw(recordKey(addr))
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return &Error{err}
	}
	return nil
}

// SetRecord encodes and stores the record body at addr.
// An encoder yielding empty data reclaims the entry.
func (s *State) SetRecord(addr edge.Address, enc StorageEncoder) error {
	raw, err := enc.Encode()
	if err != nil {
		return &Error{err}
	}
	s.sm.Put(recordKey(addr), rlp.RawValue(raw))
	return nil
}

// HasRecord returns whether a record body is populated at addr.
func (s *State) HasRecord(addr edge.Address) (bool, error) {
	raw, err := s.getRaw(recordKey(addr))
	if err != nil {
		return false, err
	}
	return len(raw) > 0, nil
}

// GetStorage loads and decodes the structured storage value for the
// given address and key.
func (s *State) GetStorage(addr edge.Address, key edge.Bytes32, dec StorageDecoder) error {
	raw, err := s.getRaw(storageKey{addr, key})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return &Error{err}
	}
	return nil
}

// SetStorage encodes and stores the structured storage value for the
// given address and key.
func (s *State) SetStorage(addr edge.Address, key edge.Bytes32, enc StorageEncoder) error {
	raw, err := enc.Encode()
	if err != nil {
		return &Error{err}
	}
	s.sm.Put(storageKey{addr, key}, rlp.RawValue(raw))
	return nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo reverts to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
}

// Merge collapses all levels above the checkpoint specified by revision,
// keeping their mutations. The checkpoint is consumed either way; Merge
// is RevertTo's keep-the-changes counterpart.
func (s *State) Merge(revision int) {
	s.sm.SquashTo(revision)
}

// Commit writes all accumulated changes into the backing store in one
// batch.
func (s *State) Commit() error {
	batch := s.store.NewBatch()
	var err error
	s.sm.Journal(func(key, value any) bool {
		var storeKey []byte
		switch k := key.(type) {
		case balanceKey:
			storeKey = append([]byte{balancePrefix}, k[:]...)
		case recordKey:
			storeKey = append([]byte{recordPrefix}, k[:]...)
		case storageKey:
			storeKey = append(append([]byte{storagePrefix}, k.addr[:]...), k.key[:]...)
		default:
			panic(fmt.Errorf("unexpected key type %+v", key))
		}
		raw := value.(rlp.RawValue)
		if len(raw) == 0 {
			err = batch.Delete(storeKey)
		} else {
			err = batch.Put(storeKey, raw)
		}
		return err == nil
	})
	if err != nil {
		return &Error{err}
	}
	if err := batch.Write(); err != nil {
		return &Error{err}
	}
	return nil
}
