// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package subscription binds the per-subscriber Subscription records:
// issuance, renewal with re-entry protection, and time-based expiry.
package subscription

import (
	"github.com/edgeai-labs/edgeledger/bn"
	"github.com/edgeai-labs/edgeledger/builtin/appconfig"
	"github.com/edgeai-labs/edgeledger/edge"
	"github.com/edgeai-labs/edgeledger/errcode"
	"github.com/edgeai-labs/edgeledger/gateway"
	"github.com/edgeai-labs/edgeledger/log"
	"github.com/edgeai-labs/edgeledger/metrics"
	"github.com/edgeai-labs/edgeledger/state"
)

var (
	logger      = log.WithContext("pkg", "subscription")
	issuedCount = metrics.LazyLoadCounter("subscription_issued_count")
)

// Ledger is the Subscription record binder.
type Ledger struct {
	state *state.State
}

// New creates a binder over the given state.
func New(st *state.State) *Ledger {
	return &Ledger{st}
}

// AddressOf returns the canonical derived address and proof byte of a
// subscriber's record.
func (l *Ledger) AddressOf(user edge.Address) (edge.Address, uint8) {
	return edge.DeriveAddress(edge.SeedSubscription, user.Bytes())
}

// Get loads a subscriber's record, authenticating a populated record
// against its derived address and owner.
func (l *Ledger) Get(user edge.Address) (*Subscription, error) {
	addr, proof := l.AddressOf(user)
	var sub Subscription
	if err := l.state.GetRecord(addr, &sub); err != nil {
		return nil, err
	}
	if !sub.IsEmpty() {
		if sub.Proof != proof || sub.User != user {
			return nil, errcode.ErrRecordMismatch
		}
	}
	return &sub, nil
}

// Subscribe issues or renews the caller's subscription, paying with the
// chosen method.
//
// Both payment paths guard re-entry before charging: a subscriber who
// already holds an active term is rejected without being charged.
func (l *Ledger) Subscribe(
	user edge.Address,
	method PaymentMethod,
	now uint64,
	cfg *appconfig.Config,
	gw gateway.Gateway,
) (*Subscription, error) {
	sub, err := l.Get(user)
	if err != nil {
		return nil, err
	}
	if sub.ExpiresAt != 0 && sub.IsActive(now) {
		return nil, errcode.ErrSubscriptionActive
	}

	switch method {
	case PayNative:
		// the caller must cover the price and keep the record
		// storage-funded
		required, ok := bn.Add(cfg.PriceNative, edge.RecordEndowment)
		if !ok {
			return nil, errcode.ErrOverflow
		}
		balance, err := gw.NativeBalance(user)
		if err != nil {
			return nil, err
		}
		if balance < required {
			return nil, errcode.ErrInsufficientFunds
		}
		if err := gw.TransferNative(user, cfg.FeeWallet, cfg.PriceNative, gateway.Signer(user)); err != nil {
			return nil, err
		}
	case PayStable:
		balance, err := gw.Balance(edge.StableAsset, user)
		if err != nil {
			return nil, err
		}
		if balance < cfg.PriceStable {
			return nil, errcode.ErrInsufficientFunds
		}
		if err := gw.Transfer(edge.StableAsset, user, cfg.FeeWallet, cfg.PriceStable, gateway.Signer(user)); err != nil {
			return nil, err
		}
	default:
		return nil, errcode.ErrInvalidAsset
	}

	expiresAt, ok := bn.Add(now, cfg.Duration)
	if !ok {
		return nil, errcode.ErrOverflow
	}

	addr, proof := l.AddressOf(user)
	sub.User = user
	sub.ExpiresAt = expiresAt
	sub.Method = method
	sub.Proof = proof
	if err := l.state.SetRecord(addr, sub); err != nil {
		return nil, err
	}
	issuedCount().Add(1)
	logger.Debug("subscription issued",
		"user", user, "method", method, "expiresAt", expiresAt)
	return sub, nil
}
