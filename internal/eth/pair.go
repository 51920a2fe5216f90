package eth

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"

	"github.com/Urban-Blazer/srm-front-end-sub001/internal/pools"
	"github.com/Urban-Blazer/srm-front-end-sub001/pkg/amm"
)

// Storage layout of a Uniswap V2 pair:
//
//	slot 0: totalSupply (UniswapV2ERC20)
//	slot 6: token0
//	slot 7: token1
//	slot 8: reserve0 (uint112) | reserve1 (uint112) | blockTimestampLast (uint32)
const (
	slotTotalSupply = 0
	slotToken0      = 6
	slotToken1      = 7
	slotReserves    = 8
)

// PairReader is a pools.Source that reads Uniswap-V2-layout pairs directly
// from contract storage at the latest block. Pool IDs are pair addresses.
// Fees are not on chain; they come from the configured schedules.
type PairReader struct {
	logger      *slog.Logger
	client      *ethclient.Client
	defaultFees amm.FeeSchedule
	fees        map[common.Address]amm.FeeSchedule
	decimals    *decimalsCache
}

// NewPairReader returns a reader that applies fees[pair] when present and
// defaultFees otherwise.
func NewPairReader(logger *slog.Logger, client *ethclient.Client, defaultFees amm.FeeSchedule, fees map[common.Address]amm.FeeSchedule) *PairReader {
	if fees == nil {
		fees = make(map[common.Address]amm.FeeSchedule)
	}
	return &PairReader{
		logger:      logger,
		client:      client,
		defaultFees: defaultFees,
		fees:        fees,
		decimals:    newDecimalsCache(),
	}
}

func (r *PairReader) Snapshot(ctx context.Context, id string) (pools.Snapshot, error) {
	if !common.IsHexAddress(id) {
		return pools.Snapshot{}, pools.ErrUnknownPool
	}
	pair := common.HexToAddress(id)

	bn, err := r.client.BlockNumber(ctx)
	if err != nil {
		return pools.Snapshot{}, fmt.Errorf("block number: %w", err)
	}
	blockNum := new(big.Int).SetUint64(bn)

	token0, token1, err := r.loadTokens(ctx, pair, blockNum)
	if err != nil {
		return pools.Snapshot{}, err
	}
	if token0 == (common.Address{}) || token1 == (common.Address{}) {
		return pools.Snapshot{}, fmt.Errorf("%w: %s is not a pair", pools.ErrUnknownPool, pair.Hex())
	}

	br, err := r.readSlot(ctx, pair, blockNum, slotReserves)
	if err != nil {
		return pools.Snapshot{}, err
	}
	reserve0, reserve1 := parseReserves(br)

	bs, err := r.readSlot(ctx, pair, blockNum, slotTotalSupply)
	if err != nil {
		return pools.Snapshot{}, err
	}
	var supply uint256.Int
	supply.SetBytes(bs)

	dec0, err := r.tokenDecimals(ctx, token0, blockNum)
	if err != nil {
		return pools.Snapshot{}, err
	}
	dec1, err := r.tokenDecimals(ctx, token1, blockNum)
	if err != nil {
		return pools.Snapshot{}, err
	}

	fees, ok := r.fees[pair]
	if !ok {
		fees = r.defaultFees
	}

	pool, err := amm.NewPool(reserve0, reserve1, dec0, dec1, fees)
	if err != nil {
		return pools.Snapshot{}, fmt.Errorf("pair %s: %w", pair.Hex(), err)
	}

	r.logger.Debug("pair snapshot read",
		"pair", pair.Hex(), "block", bn,
		"reserve0", reserve0.Dec(), "reserve1", reserve1.Dec(), "lp_supply", supply.Dec())

	return pools.Snapshot{
		ID:       pair.Hex(),
		TokenA:   token0.Hex(),
		TokenB:   token1.Hex(),
		Pool:     pool,
		LPSupply: supply,
	}, nil
}

func (r *PairReader) readSlot(ctx context.Context, pair common.Address, blockNum *big.Int, slot uint64) ([]byte, error) {
	key := common.BigToHash(new(big.Int).SetUint64(slot))
	b, err := r.client.StorageAt(ctx, pair, key, blockNum)
	if err != nil {
		return nil, fmt.Errorf("storageAt slot %d (pair %s, block %s): %w",
			slot, pair.Hex(), blockNum.String(), err)
	}
	return b, nil
}

func (r *PairReader) loadTokens(ctx context.Context, pair common.Address, blockNum *big.Int) (common.Address, common.Address, error) {
	b0, err := r.readSlot(ctx, pair, blockNum, slotToken0)
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	b1, err := r.readSlot(ctx, pair, blockNum, slotToken1)
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	return common.BytesToAddress(b0), common.BytesToAddress(b1), nil
}

func (r *PairReader) tokenDecimals(ctx context.Context, token common.Address, blockNum *big.Int) (uint8, error) {
	if dec, ok := r.decimals.get(token); ok {
		return dec, nil
	}
	dec, err := fetchDecimals(ctx, r.client, token, blockNum)
	if err != nil {
		return 0, err
	}
	r.decimals.set(token, dec)
	return dec, nil
}

var mask112 = new(uint256.Int).SubUint64(new(uint256.Int).Lsh(uint256.NewInt(1), 112), 1)

// parseReserves unpacks the two uint112 reserves from the packed storage
// word. Values are big-endian within the 256-bit word.
func parseReserves(b []byte) (reserve0, reserve1 uint256.Int) {
	var v, tmp uint256.Int
	v.SetBytes(b)
	reserve0.And(&v, mask112)
	tmp.Rsh(&v, 112)
	reserve1.And(&tmp, mask112)
	return
}
