package eth

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

const erc20DecimalsABIJSON = `[
  {"inputs": [], "name": "decimals", "outputs": [{"internalType": "uint8", "name": "", "type": "uint8"}], "stateMutability": "view", "type": "function"}
]`

var (
	decimalsABI     abi.ABI
	decimalsABIOnce sync.Once
	decimalsABIErr  error
)

func getDecimalsABI() (abi.ABI, error) {
	decimalsABIOnce.Do(func() {
		decimalsABI, decimalsABIErr = abi.JSON(strings.NewReader(erc20DecimalsABIJSON))
	})
	return decimalsABI, decimalsABIErr
}

func fetchDecimals(ctx context.Context, client *ethclient.Client, token common.Address, blockNum *big.Int) (uint8, error) {
	parsed, err := getDecimalsABI()
	if err != nil {
		return 0, err
	}
	data, err := parsed.Pack("decimals")
	if err != nil {
		return 0, fmt.Errorf("pack decimals: %w", err)
	}

	resp, err := client.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, blockNum)
	if err != nil {
		return 0, fmt.Errorf("call decimals on %s: %w", token.Hex(), err)
	}
	values, err := parsed.Unpack("decimals", resp)
	if err != nil {
		return 0, fmt.Errorf("unpack decimals on %s: %w", token.Hex(), err)
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("decimals return size %d", len(values))
	}
	dec, ok := values[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("decimals unexpected type %T", values[0])
	}
	return dec, nil
}

// decimalsCache caches token decimals by address; they never change.
type decimalsCache struct {
	mu   sync.RWMutex
	data map[common.Address]uint8
}

func newDecimalsCache() *decimalsCache {
	return &decimalsCache{data: make(map[common.Address]uint8)}
}

func (c *decimalsCache) get(token common.Address) (uint8, bool) {
	c.mu.RLock()
	dec, ok := c.data[token]
	c.mu.RUnlock()
	return dec, ok
}

func (c *decimalsCache) set(token common.Address, dec uint8) {
	c.mu.Lock()
	c.data[token] = dec
	c.mu.Unlock()
}
