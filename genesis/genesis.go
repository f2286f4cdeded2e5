// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis builds the initial world state from a YAML document:
// governance parameters plus devnet balance allocations.
package genesis

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/edgeai-labs/edgeledger/builtin"
	"github.com/edgeai-labs/edgeledger/edge"
	"github.com/edgeai-labs/edgeledger/gateway"
	"github.com/edgeai-labs/edgeledger/log"
	"github.com/edgeai-labs/edgeledger/state"
)

var logger = log.WithContext("pkg", "genesis")

// Allocation endows one address at genesis.
type Allocation struct {
	Address string `yaml:"address"`
	Native  uint64 `yaml:"native"`
	Stable  uint64 `yaml:"stable"`
}

// Document is the genesis specification.
type Document struct {
	Admin       string       `yaml:"admin"`
	FeeWallet   string       `yaml:"feeWallet"`
	PriceNative uint64       `yaml:"priceNative"`
	PriceStable uint64       `yaml:"priceStable"`
	Duration    int64        `yaml:"durationSeconds"`
	FeeShareBps uint16       `yaml:"feeShareBps"`
	Allocations []Allocation `yaml:"allocations"`
}

// Parse decodes and validates a genesis document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse genesis")
	}
	if _, err := edge.ParseAddress(doc.Admin); err != nil {
		return nil, errors.Wrap(err, "genesis: admin")
	}
	if _, err := edge.ParseAddress(doc.FeeWallet); err != nil {
		return nil, errors.Wrap(err, "genesis: feeWallet")
	}
	if doc.Duration <= 0 {
		return nil, errors.New("genesis: durationSeconds must be positive")
	}
	if doc.FeeShareBps > edge.MaxFeeShareBps {
		return nil, errors.New("genesis: feeShareBps out of range")
	}
	for _, alloc := range doc.Allocations {
		if _, err := edge.ParseAddress(alloc.Address); err != nil {
			return nil, errors.Wrap(err, "genesis: allocation")
		}
	}
	return &doc, nil
}

// Build applies the document to a fresh state: credits the allocations,
// registers the stable asset under the admin, and initializes Config.
// The caller commits the state.
func (d *Document) Build(st *state.State) error {
	admin := edge.MustParseAddress(d.Admin)
	feeWallet := edge.MustParseAddress(d.FeeWallet)
	ledger := gateway.New(st)

	if err := ledger.RegisterAsset(edge.StableAsset, admin, 6); err != nil {
		return errors.Wrap(err, "genesis: stable asset")
	}
	for _, alloc := range d.Allocations {
		addr := edge.MustParseAddress(alloc.Address)
		if alloc.Native > 0 {
			if err := ledger.SetNativeBalance(addr, alloc.Native); err != nil {
				return errors.Wrap(err, "genesis: native allocation")
			}
		}
		if alloc.Stable > 0 {
			if err := ledger.Issue(edge.StableAsset, addr, alloc.Stable, gateway.Signer(admin)); err != nil {
				return errors.Wrap(err, "genesis: stable allocation")
			}
		}
	}

	cfgStore := builtin.Config.WithState(st)
	if err := cfgStore.Initialize(
		admin, feeWallet,
		d.PriceNative, d.PriceStable,
		uint64(d.Duration), d.FeeShareBps,
	); err != nil {
		return errors.Wrap(err, "genesis: config")
	}
	logger.Info("genesis state built",
		"admin", admin, "allocations", len(d.Allocations))
	return nil
}
