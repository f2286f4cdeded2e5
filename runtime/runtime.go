// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package runtime executes instructions against the world state.
//
// Every instruction runs as a single synchronous computation between a
// state checkpoint and either a commit of all its mutations or a full
// revert. The host environment supplies the caller identity (signature
// already verified) and the logical clock; the module never reads a
// local timer.
package runtime

import (
	"github.com/pkg/errors"

	"github.com/edgeai-labs/edgeledger/builtin"
	"github.com/edgeai-labs/edgeledger/builtin/appconfig"
	"github.com/edgeai-labs/edgeledger/builtin/subscription"
	"github.com/edgeai-labs/edgeledger/edge"
	"github.com/edgeai-labs/edgeledger/errcode"
	"github.com/edgeai-labs/edgeledger/gateway"
	"github.com/edgeai-labs/edgeledger/log"
	"github.com/edgeai-labs/edgeledger/metrics"
	"github.com/edgeai-labs/edgeledger/state"
)

var (
	logger             = log.WithContext("pkg", "runtime")
	instructionCounter = metrics.LazyLoadCounterVec("instruction_count", []string{"kind", "status"})
)

// BlockContext carries the ambient values supplied by the host
// environment, most importantly the clock oracle's timestamp.
type BlockContext struct {
	Number uint32
	Time   uint64
}

// Runtime executes instructions.
type Runtime struct {
	state    *state.State
	gw       gateway.Gateway
	blockCtx BlockContext
}

// New creates a runtime over the given state and gateway.
func New(st *state.State, gw gateway.Gateway, blockCtx BlockContext) *Runtime {
	return &Runtime{st, gw, blockCtx}
}

// State returns the underlying state.
func (rt *Runtime) State() *state.State { return rt.state }

// Gateway returns the value-transfer gateway.
func (rt *Runtime) Gateway() gateway.Gateway { return rt.gw }

// BlockContext returns the ambient block values.
func (rt *Runtime) BlockContext() BlockContext { return rt.blockCtx }

// Execute runs one instruction for the given caller. On any error the
// whole instruction is reverted; callers never observe a partially
// applied transition.
func (rt *Runtime) Execute(caller edge.Address, instr Instruction) error {
	checkpoint := rt.state.NewCheckpoint()
	if err := rt.dispatch(caller, instr); err != nil {
		rt.state.RevertTo(checkpoint)
		instructionCounter().AddWithLabel(1, map[string]string{
			"kind":   instr.Kind().String(),
			"status": "reverted",
		})
		logger.Debug("instruction reverted",
			"kind", instr.Kind(), "caller", caller,
			"code", errcode.CodeOf(err), "err", err)
		return err
	}
	// fold the checkpoint level away so levels don't pile up over a
	// long run of instructions
	rt.state.Merge(checkpoint)
	instructionCounter().AddWithLabel(1, map[string]string{
		"kind":   instr.Kind().String(),
		"status": "committed",
	})
	return nil
}

// ExecuteRaw decodes and runs one serialized instruction.
func (rt *Runtime) ExecuteRaw(caller edge.Address, data []byte) error {
	instr, err := Decode(data)
	if err != nil {
		return err
	}
	return rt.Execute(caller, instr)
}

func (rt *Runtime) dispatch(caller edge.Address, instr Instruction) error {
	cfgStore := builtin.Config.WithState(rt.state)
	now := rt.blockCtx.Time

	switch in := instr.(type) {
	case *InitializeConfig:
		return cfgStore.Initialize(
			caller, in.FeeWallet,
			in.PriceNative, in.PriceStable,
			in.Duration, in.FeeShareBps)

	case *CreateValueUnit:
		_, err := cfgStore.BindValueUnit(caller, rt.gw)
		return err

	case *SubscribeNative:
		cfg, err := cfgStore.Get()
		if err != nil {
			return err
		}
		subs := builtin.Subscription.WithState(rt.state)
		_, err = subs.Subscribe(caller, subscription.PayNative, now, cfg, rt.gw)
		return err

	case *SubscribeStable:
		cfg, err := cfgStore.Get()
		if err != nil {
			return err
		}
		subs := builtin.Subscription.WithState(rt.state)
		_, err = subs.Subscribe(caller, subscription.PayStable, now, cfg, rt.gw)
		return err

	case *Stake:
		cfg, err := cfgStore.Get()
		if err != nil {
			return err
		}
		return builtin.Staking.WithState(rt.state).
			Stake(caller, in.Amount, now, cfg, rt.gw)

	case *Unstake:
		cfg, err := cfgStore.Get()
		if err != nil {
			return err
		}
		return builtin.Staking.WithState(rt.state).
			Unstake(caller, in.Amount, cfg, rt.gw)

	case *UpdateConfig:
		return cfgStore.ApplyUpdate(caller, &appconfig.Update{
			PriceNative: in.PriceNative,
			PriceStable: in.PriceStable,
			Duration:    in.Duration,
			FeeShareBps: in.FeeShareBps,
			FeeWallet:   in.FeeWallet,
		})

	case *DistributeFees:
		cfg, err := cfgStore.Get()
		if err != nil {
			return err
		}
		_, err = builtin.Staking.WithState(rt.state).
			DistributeFees(caller, in.Amount, now, cfg, rt.gw)
		return err

	case *MintValueUnit:
		return cfgStore.Mint(caller, in.Asset, in.Destination, in.Amount, rt.gw)

	default:
		return errors.Errorf("unknown instruction kind %d", instr.Kind())
	}
}
