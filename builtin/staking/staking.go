// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package staking binds the StakingVault and UserStake records:
// deposits, withdrawals and proportional fee distribution into the
// pool.
package staking

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
	logger           = log.WithContext("pkg", "staking")
	totalStakedGauge = metrics.LazyLoadGauge("staking_total_staked")
)

// Staking is the vault and user-stake binder.
type Staking struct {
	state      *state.State
	vaultAddr  edge.Address
	vaultProof uint8
}

// New creates a binder over the given state.
func New(st *state.State) *Staking {
	addr, proof := edge.DeriveAddress(edge.SeedStakingVault)
	return &Staking{st, addr, proof}
}

// VaultAddress returns the canonical derived address of the vault.
func (s *Staking) VaultAddress() edge.Address {
	return s.vaultAddr
}

// Authority returns the vault's transfer authority, reconstructed from
// the seed material of its derived address.
func (s *Staking) Authority() gateway.Authority {
	return gateway.Derived(edge.SeedStakingVault)
}

// Vault loads the pool record, authenticating a populated record
// against its derived address. A never-created vault reads as zeroes.
func (s *Staking) Vault() (*Vault, error) {
	var vault Vault
	if err := s.state.GetRecord(s.vaultAddr, &vault); err != nil {
		return nil, err
	}
	if vault.Proof != 0 && vault.Proof != s.vaultProof {
		return nil, errcode.ErrRecordMismatch
	}
	return &vault, nil
}

// StakeOf loads a staker's record, authenticating a populated record
// against its derived address and owner. A never-created stake reads
// as zeroes, so first-time and repeat staking share one code path.
func (s *Staking) StakeOf(owner edge.Address) (*UserStake, error) {
	addr, proof := s.stakeAddressOf(owner)
	var stake UserStake
	if err := s.state.GetRecord(addr, &stake); err != nil {
		return nil, err
	}
	if !stake.IsEmpty() {
		if stake.Proof != proof || stake.Owner != owner {
			return nil, errcode.ErrRecordMismatch
		}
	}
	return &stake, nil
}

func (s *Staking) stakeAddressOf(owner edge.Address) (edge.Address, uint8) {
	return edge.DeriveAddress(edge.SeedStakingVault, owner.Bytes())
}

// Stake moves value units from the caller into the vault and updates
// the pool and per-user totals.
func (s *Staking) Stake(
	owner edge.Address,
	value uint64,
	now uint64,
	cfg *appconfig.Config,
	gw gateway.Gateway,
) error {
	if value == 0 {
		return errcode.ErrInvalidAmount
	}
	if cfg.ValueUnit.IsZero() {
		return errcode.ErrInvalidAsset
	}
	balance, err := gw.Balance(cfg.ValueUnit, owner)
	if err != nil {
		return err
	}
	if balance < value {
		return errcode.ErrInsufficientFunds
	}
	// deposit is caller-signed; no derived authority needed
	if err := gw.Transfer(cfg.ValueUnit, owner, s.vaultAddr, value, gateway.Signer(owner)); err != nil {
		return err
	}

	vault, err := s.Vault()
	if err != nil {
		return err
	}
	totalStaked, ok := bn.Add(vault.TotalStaked, value)
	if !ok {
		return errcode.ErrOverflow
	}
	vault.TotalStaked = totalStaked
	vault.Proof = s.vaultProof

	stake, err := s.StakeOf(owner)
	if err != nil {
		return err
	}
	amount, ok := bn.Add(stake.Amount, value)
	if !ok {
		return errcode.ErrOverflow
	}
	stakeAddr, stakeProof := s.stakeAddressOf(owner)
	stake.Owner = owner
	stake.Amount = amount
	stake.StakedAt = now
	stake.Proof = stakeProof

	if err := s.state.SetRecord(s.vaultAddr, vault); err != nil {
		return err
	}
	if err := s.state.SetRecord(stakeAddr, stake); err != nil {
		return err
	}
	totalStakedGauge().Set(int64(vault.TotalStaked))
	logger.Debug("staked",
		"owner", owner, "amount", value, "totalStaked", vault.TotalStaked)
	return nil
}

// Unstake moves value units from the vault back to the caller, signed
// by the vault's derived authority, and updates the totals.
func (s *Staking) Unstake(
	owner edge.Address,
	value uint64,
	cfg *appconfig.Config,
	gw gateway.Gateway,
) error {
	if value == 0 {
		return errcode.ErrInvalidAmount
	}
	stake, err := s.StakeOf(owner)
	if err != nil {
		return err
	}
	if stake.Amount < value {
		return errcode.ErrInsufficientFunds
	}
	if err := gw.Transfer(cfg.ValueUnit, s.vaultAddr, owner, value, s.Authority()); err != nil {
		return err
	}

	vault, err := s.Vault()
	if err != nil {
		return err
	}
	totalStaked, ok := bn.Sub(vault.TotalStaked, value)
	if !ok {
		return errcode.ErrOverflow
	}
	vault.TotalStaked = totalStaked
	amount, ok := bn.Sub(stake.Amount, value)
	if !ok {
		return errcode.ErrOverflow
	}
	stake.Amount = amount

	if err := s.state.SetRecord(s.vaultAddr, vault); err != nil {
		return err
	}
	stakeAddr, _ := s.stakeAddressOf(owner)
	if err := s.state.SetRecord(stakeAddr, stake); err != nil {
		return err
	}
	totalStakedGauge().Set(int64(vault.TotalStaked))
	logger.Debug("unstaked",
		"owner", owner, "amount", value, "remaining", stake.Amount)
	return nil
}

// DistributeFees routes the stakers' share of an incoming fee payment
// into the vault. The share is floor(value * feeShareBps / 10000),
// computed wide so the multiply cannot overflow before the divide.
// It returns the routed share.
func (s *Staking) DistributeFees(
	caller edge.Address,
	value uint64,
	now uint64,
	cfg *appconfig.Config,
	gw gateway.Gateway,
) (uint64, error) {
	if cfg.Admin != caller {
		return 0, errcode.ErrUnauthorized
	}
	if value == 0 {
		return 0, errcode.ErrInvalidAmount
	}
	vault, err := s.Vault()
	if err != nil {
		return 0, err
	}
	if vault.TotalStaked == 0 {
		// no stakers to receive a share; rewards must not strand
		return 0, errcode.ErrVaultNotInitialized
	}
	share, ok := bn.MulDiv(value, uint64(cfg.FeeShareBps), edge.BpsDenominator)
	if !ok {
		return 0, errcode.ErrOverflow
	}
	// the fee float is held by the admin, who signs the move
	if err := gw.Transfer(cfg.ValueUnit, caller, s.vaultAddr, share, gateway.Signer(caller)); err != nil {
		return 0, err
	}
	totalRewards, ok := bn.Add(vault.TotalRewards, share)
	if !ok {
		return 0, errcode.ErrOverflow
	}
	vault.TotalRewards = totalRewards
	vault.LastDistribution = now
	vault.Proof = s.vaultProof
	if err := s.state.SetRecord(s.vaultAddr, vault); err != nil {
		return 0, err
	}
	logger.Debug("fees distributed",
		"share", share, "totalRewards", vault.TotalRewards)
	return share, nil
}
