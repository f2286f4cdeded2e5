// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package gateway moves fungible value between addressed balances.
//
// The accounting module treats a Gateway as an opaque, all-or-nothing
// collaborator: it computes amounts and invokes it, nothing more. The
// Ledger implementation in this package keeps native balances on the
// state's account plane and asset balances in structured storage under
// the asset's address.
package gateway

import "github.com/edgeai-labs/edgeledger/edge"

// Gateway is the atomic value-transfer interface.
type Gateway interface {
	// NativeBalance returns the native balance held by addr.
	NativeBalance(addr edge.Address) (uint64, error)
	// Balance returns the asset balance held by holder.
	Balance(asset, holder edge.Address) (uint64, error)

	// TransferNative moves native value from one address to another.
	TransferNative(from, to edge.Address, amount uint64, auth Authority) error
	// Transfer moves asset value from one address to another.
	Transfer(asset, from, to edge.Address, amount uint64, auth Authority) error

	// RegisterAsset creates a new asset under the given identity,
	// issuable only by the issuer authority.
	RegisterAsset(asset, issuer edge.Address, decimals uint8) error
	// Issue creates new units of a registered asset.
	Issue(asset, to edge.Address, amount uint64, auth Authority) error
}
