// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package edge

// Constants of the accounting module.
const (
	// BpsDenominator integer units of a whole, used for the staker fee share.
	BpsDenominator uint64 = 10000
	// MaxFeeShareBps upper bound of the staker fee share.
	MaxFeeShareBps uint16 = 10000

	// ValueUnitDecimals decimal places of the module's native value unit.
	ValueUnitDecimals uint8 = 9

	// RecordEndowment native balance a caller must leave aside to keep a
	// newly created record storage-funded.
	RecordEndowment uint64 = 890_880
)

// Domain tags of derived record addresses.
const (
	SeedConfig       = "config"
	SeedSubscription = "subscription"
	SeedStakingVault = "staking_vault"
	SeedValueUnit    = "token_mint"
)

// ModuleID the identity of this module, mixed into every derived address.
var ModuleID = BytesToAddress([]byte("edgeledger"))

// StableAsset the well-known identity of the stable asset accepted for
// subscription payments.
var StableAsset = MustParseAddress("0x51ab1e00000000000000000000000000000000a1")
