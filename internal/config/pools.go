package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Urban-Blazer/srm-front-end-sub001/internal/pools"
	"github.com/Urban-Blazer/srm-front-end-sub001/pkg/amm"
)

// FeeConfig is the four configurable fees of a pool in basis points.
type FeeConfig struct {
	LpBuilderBp      int `mapstructure:"lp_builder_bp"`
	BurnBp           int `mapstructure:"burn_bp"`
	CreatorRoyaltyBp int `mapstructure:"creator_royalty_bp"`
	RewardsBp        int `mapstructure:"rewards_bp"`
}

func (f FeeConfig) Schedule() (amm.FeeSchedule, error) {
	return amm.NewFeeSchedule(f.LpBuilderBp, f.BurnBp, f.CreatorRoyaltyBp, f.RewardsBp)
}

// PoolConfig describes one pool. An entry with reserves is served from
// config as-is. An entry with only an address attaches its fees to the
// on-chain pair at that address.
type PoolConfig struct {
	ID        string    `mapstructure:"id"`
	Address   string    `mapstructure:"address"`
	TokenA    string    `mapstructure:"token_a"`
	TokenB    string    `mapstructure:"token_b"`
	ReserveA  string    `mapstructure:"reserve_a"`
	ReserveB  string    `mapstructure:"reserve_b"`
	DecimalsA uint8     `mapstructure:"decimals_a"`
	DecimalsB uint8     `mapstructure:"decimals_b"`
	LPSupply  string    `mapstructure:"lp_supply"`
	Fees      FeeConfig `mapstructure:"fees"`
}

func (p PoolConfig) IsStatic() bool {
	return p.ReserveA != "" || p.ReserveB != ""
}

func (p PoolConfig) validate() error {
	if _, err := p.Fees.Schedule(); err != nil {
		return err
	}
	if p.IsStatic() {
		_, err := p.Snapshot()
		return err
	}
	if !common.IsHexAddress(p.Address) {
		return fmt.Errorf("%w: chain pool needs a hex address, got %q", ErrInvalidPoolConfig, p.Address)
	}
	return nil
}

// Snapshot builds the static snapshot of a pool entry with reserves.
func (p PoolConfig) Snapshot() (pools.Snapshot, error) {
	if p.ID == "" || p.TokenA == "" || p.TokenB == "" {
		return pools.Snapshot{}, fmt.Errorf("%w: static pool needs id, token_a and token_b", ErrInvalidPoolConfig)
	}
	fees, err := p.Fees.Schedule()
	if err != nil {
		return pools.Snapshot{}, fmt.Errorf("pool %s: %w", p.ID, err)
	}
	reserveA, err := amm.ParseRaw(p.ReserveA)
	if err != nil {
		return pools.Snapshot{}, fmt.Errorf("pool %s reserve_a: %w", p.ID, err)
	}
	reserveB, err := amm.ParseRaw(p.ReserveB)
	if err != nil {
		return pools.Snapshot{}, fmt.Errorf("pool %s reserve_b: %w", p.ID, err)
	}
	pool, err := amm.NewPool(reserveA, reserveB, p.DecimalsA, p.DecimalsB, fees)
	if err != nil {
		return pools.Snapshot{}, fmt.Errorf("pool %s: %w", p.ID, err)
	}

	snap := pools.Snapshot{ID: p.ID, TokenA: p.TokenA, TokenB: p.TokenB, Pool: pool}
	if p.LPSupply != "" {
		if snap.LPSupply, err = amm.ParseRaw(p.LPSupply); err != nil {
			return pools.Snapshot{}, fmt.Errorf("pool %s lp_supply: %w", p.ID, err)
		}
	}
	return snap, nil
}

// StaticSnapshots returns the snapshots of every static pool entry.
func (c *Config) StaticSnapshots() ([]pools.Snapshot, error) {
	var out []pools.Snapshot
	for _, p := range c.Pools {
		if !p.IsStatic() {
			continue
		}
		snap, err := p.Snapshot()
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

// ChainFees returns the fee schedule of every chain pool entry by address.
func (c *Config) ChainFees() (map[common.Address]amm.FeeSchedule, error) {
	out := make(map[common.Address]amm.FeeSchedule)
	for _, p := range c.Pools {
		if p.IsStatic() {
			continue
		}
		fees, err := p.Fees.Schedule()
		if err != nil {
			return nil, fmt.Errorf("pool %s: %w", p.Address, err)
		}
		out[common.HexToAddress(p.Address)] = fees
	}
	return out, nil
}
