// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package appconfig binds the singleton Config record: governance
// parameter storage, admin-gated updates, and issuance of the module's
// value unit under the Config record's derived authority.
package appconfig

import (
	"github.com/edgeai-labs/edgeledger/edge"
	"github.com/edgeai-labs/edgeledger/errcode"
	"github.com/edgeai-labs/edgeledger/gateway"
	"github.com/edgeai-labs/edgeledger/log"
	"github.com/edgeai-labs/edgeledger/state"
)

var logger = log.WithContext("pkg", "appconfig")

// Store is the Config record binder.
type Store struct {
	state *state.State
	addr  edge.Address
	proof uint8
}

// New creates a binder over the given state.
func New(st *state.State) *Store {
	addr, proof := edge.DeriveAddress(edge.SeedConfig)
	return &Store{st, addr, proof}
}

// Address returns the canonical derived address of the Config record.
func (s *Store) Address() edge.Address {
	return s.addr
}

// Authority returns the Config record's transfer authority,
// reconstructed from the seed material of its derived address.
func (s *Store) Authority() gateway.Authority {
	return gateway.Derived(edge.SeedConfig)
}

// Initialize creates the Config record. It fails when the record is
// already populated, or when duration or fee share is out of range.
func (s *Store) Initialize(
	admin edge.Address,
	feeWallet edge.Address,
	priceNative uint64,
	priceStable uint64,
	duration uint64,
	feeShareBps uint16,
) error {
	if duration == 0 {
		return errcode.ErrInvalidDuration
	}
	if feeShareBps > edge.MaxFeeShareBps {
		return errcode.ErrInvalidAmount
	}
	populated, err := s.state.HasRecord(s.addr)
	if err != nil {
		return err
	}
	if populated {
		return errcode.ErrAlreadyExists
	}
	cfg := &Config{
		Admin:       admin,
		FeeWallet:   feeWallet,
		PriceNative: priceNative,
		PriceStable: priceStable,
		Duration:    duration,
		FeeShareBps: feeShareBps,
		Proof:       s.proof,
	}
	if err := s.state.SetRecord(s.addr, cfg); err != nil {
		return err
	}
	logger.Debug("config initialized", "admin", admin, "feeWallet", feeWallet)
	return nil
}

// Get loads the Config record, authenticating it against its derived
// address.
func (s *Store) Get() (*Config, error) {
	var cfg Config
	if err := s.state.GetRecord(s.addr, &cfg); err != nil {
		return nil, err
	}
	if cfg.IsEmpty() {
		return nil, errcode.ErrNotInitialized
	}
	if cfg.Proof != s.proof {
		return nil, errcode.ErrRecordMismatch
	}
	return &cfg, nil
}

// RequireAdmin loads the Config record and verifies the caller is the
// admin.
func (s *Store) RequireAdmin(caller edge.Address) (*Config, error) {
	cfg, err := s.Get()
	if err != nil {
		return nil, err
	}
	if cfg.Admin != caller {
		return nil, errcode.ErrUnauthorized
	}
	return cfg, nil
}

// Update contains the optional governance fields of an update. Each
// present field is validated and written independently; absent fields
// are left untouched.
type Update struct {
	PriceNative *uint64
	PriceStable *uint64
	Duration    *uint64
	FeeShareBps *uint16
	FeeWallet   *edge.Address
}

// ApplyUpdate performs an admin-gated partial update of the Config
// record.
func (s *Store) ApplyUpdate(caller edge.Address, u *Update) error {
	cfg, err := s.RequireAdmin(caller)
	if err != nil {
		return err
	}
	if u.PriceNative != nil {
		cfg.PriceNative = *u.PriceNative
	}
	if u.PriceStable != nil {
		cfg.PriceStable = *u.PriceStable
	}
	if u.Duration != nil {
		if *u.Duration == 0 {
			return errcode.ErrInvalidDuration
		}
		cfg.Duration = *u.Duration
	}
	if u.FeeShareBps != nil {
		if *u.FeeShareBps > edge.MaxFeeShareBps {
			return errcode.ErrInvalidAmount
		}
		cfg.FeeShareBps = *u.FeeShareBps
	}
	if u.FeeWallet != nil {
		cfg.FeeWallet = *u.FeeWallet
	}
	if err := s.state.SetRecord(s.addr, cfg); err != nil {
		return err
	}
	logger.Debug("config updated", "admin", cfg.Admin)
	return nil
}

// BindValueUnit registers the module's value-unit asset at its derived
// address, with the Config record as issuing authority, and records the
// asset identity into Config. The registration is one-shot: a second
// call fails because the asset already exists.
func (s *Store) BindValueUnit(caller edge.Address, gw gateway.Gateway) (edge.Address, error) {
	cfg, err := s.RequireAdmin(caller)
	if err != nil {
		return edge.Address{}, err
	}
	unit, _ := edge.DeriveAddress(edge.SeedValueUnit)
	if err := gw.RegisterAsset(unit, s.addr, edge.ValueUnitDecimals); err != nil {
		return edge.Address{}, err
	}
	cfg.ValueUnit = unit
	if err := s.state.SetRecord(s.addr, cfg); err != nil {
		return edge.Address{}, err
	}
	logger.Debug("value unit created", "asset", unit)
	return unit, nil
}

// Mint issues new units of the value-unit asset to the destination,
// proving authority with the Config record's seed material.
func (s *Store) Mint(caller, asset, destination edge.Address, value uint64, gw gateway.Gateway) error {
	cfg, err := s.RequireAdmin(caller)
	if err != nil {
		return err
	}
	if value == 0 {
		return errcode.ErrInvalidAmount
	}
	if cfg.ValueUnit.IsZero() || asset != cfg.ValueUnit {
		return errcode.ErrInvalidAsset
	}
	if err := gw.Issue(asset, destination, value, s.Authority()); err != nil {
		return err
	}
	logger.Debug("value units minted", "to", destination, "amount", value)
	return nil
}
