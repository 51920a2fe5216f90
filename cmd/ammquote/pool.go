package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Urban-Blazer/srm-front-end-sub001/internal/config"
	"github.com/Urban-Blazer/srm-front-end-sub001/internal/logging"
	"github.com/Urban-Blazer/srm-front-end-sub001/internal/pools"
	"github.com/Urban-Blazer/srm-front-end-sub001/internal/service"
	"github.com/Urban-Blazer/srm-front-end-sub001/pkg/amm"
)

// flagPoolID names the snapshot assembled from command-line flags.
const flagPoolID = "flags"

func addPoolFlags(fs *pflag.FlagSet) {
	fs.String("pool", "", "id of a static pool from the config file; overrides the reserve flags")
	fs.String("reserve-a", "", "raw reserve of token A")
	fs.String("reserve-b", "", "raw reserve of token B")
	fs.Uint8("decimals-a", 0, "decimals of token A")
	fs.Uint8("decimals-b", 0, "decimals of token B")
	fs.String("lp-supply", "0", "raw LP token supply")
	fs.Int("lp-fee-bp", 0, "LP builder fee in basis points")
	fs.Int("burn-fee-bp", 0, "burn fee in basis points")
	fs.Int("royalty-fee-bp", 0, "creator royalty fee in basis points")
	fs.Int("rewards-fee-bp", 0, "rewards fee in basis points")
}

// quoteEnv is what every subcommand needs: the service and the snapshot it
// quotes against.
type quoteEnv struct {
	svc      *service.QuoteService
	snapshot pools.Snapshot
}

func setup(cmd *cobra.Command) (*quoteEnv, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	snapshots, err := cfg.StaticSnapshots()
	if err != nil {
		return nil, err
	}

	poolID, _ := cmd.Flags().GetString("pool")
	if poolID == "" {
		snap, err := snapshotFromFlags(cmd.Flags(), cfg.DefaultFees)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
		poolID = flagPoolID
	}

	static, err := pools.NewStatic(snapshots...)
	if err != nil {
		return nil, err
	}
	snap, err := static.Snapshot(context.Background(), poolID)
	if err != nil {
		return nil, fmt.Errorf("pool %q: %w", poolID, err)
	}

	return &quoteEnv{
		svc:      service.NewQuoteService(logger, static, cfg.SlippageBp),
		snapshot: snap,
	}, nil
}

// snapshotFromFlags builds a pool from the reserve and fee flags. Fee flags
// left unset fall back to the configured default schedule.
func snapshotFromFlags(fs *pflag.FlagSet, defaults config.FeeConfig) (pools.Snapshot, error) {
	rawA, _ := fs.GetString("reserve-a")
	rawB, _ := fs.GetString("reserve-b")
	if rawA == "" || rawB == "" {
		return pools.Snapshot{}, fmt.Errorf("--reserve-a and --reserve-b are required without --pool")
	}
	reserveA, err := amm.ParseRaw(rawA)
	if err != nil {
		return pools.Snapshot{}, fmt.Errorf("reserve-a: %w", err)
	}
	reserveB, err := amm.ParseRaw(rawB)
	if err != nil {
		return pools.Snapshot{}, fmt.Errorf("reserve-b: %w", err)
	}
	rawSupply, _ := fs.GetString("lp-supply")
	lpSupply, err := amm.ParseRaw(rawSupply)
	if err != nil {
		return pools.Snapshot{}, fmt.Errorf("lp-supply: %w", err)
	}
	decA, _ := fs.GetUint8("decimals-a")
	decB, _ := fs.GetUint8("decimals-b")

	fees := defaults
	for name, dst := range map[string]*int{
		"lp-fee-bp":      &fees.LpBuilderBp,
		"burn-fee-bp":    &fees.BurnBp,
		"royalty-fee-bp": &fees.CreatorRoyaltyBp,
		"rewards-fee-bp": &fees.RewardsBp,
	} {
		if fs.Changed(name) {
			*dst, _ = fs.GetInt(name)
		}
	}
	schedule, err := fees.Schedule()
	if err != nil {
		return pools.Snapshot{}, err
	}

	pool, err := amm.NewPool(reserveA, reserveB, decA, decB, schedule)
	if err != nil {
		return pools.Snapshot{}, err
	}
	return pools.Snapshot{ID: flagPoolID, TokenA: "A", TokenB: "B", Pool: pool, LPSupply: lpSupply}, nil
}

// tokens returns the (src, dst) identifiers of the snapshot for dir.
func (e *quoteEnv) tokens(dir amm.Direction) (string, string) {
	if dir == amm.BToA {
		return e.snapshot.TokenB, e.snapshot.TokenA
	}
	return e.snapshot.TokenA, e.snapshot.TokenB
}
