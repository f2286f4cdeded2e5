// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package builtin exposes bindings of the module's record binders.
package builtin

import (
	"github.com/edgeai-labs/edgeledger/builtin/appconfig"
	"github.com/edgeai-labs/edgeledger/builtin/staking"
	"github.com/edgeai-labs/edgeledger/builtin/subscription"
	"github.com/edgeai-labs/edgeledger/state"
)

// Bindings of the singleton binders.
var (
	Config       = &configBinding{}
	Subscription = &subscriptionBinding{}
	Staking      = &stakingBinding{}
)

type (
	configBinding       struct{}
	subscriptionBinding struct{}
	stakingBinding      struct{}
)

func (b *configBinding) WithState(st *state.State) *appconfig.Store {
	return appconfig.New(st)
}

func (b *subscriptionBinding) WithState(st *state.State) *subscription.Ledger {
	return subscription.New(st)
}

func (b *stakingBinding) WithState(st *state.State) *staking.Staking {
	return staking.New(st)
}
