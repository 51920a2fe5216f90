package handler

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Urban-Blazer/srm-front-end-sub001/internal/eth"
	"github.com/Urban-Blazer/srm-front-end-sub001/internal/service"
	"github.com/Urban-Blazer/srm-front-end-sub001/pkg/amm"
)

type fakeEth struct {
	blockNumber uint64
	// storage[address][positionHash] = 32-byte value
	storage map[common.Address]map[common.Hash][]byte
}

func (f *fakeEth) BlockNumber(ctx context.Context) (hexutil.Uint64, error) {
	return hexutil.Uint64(f.blockNumber), nil
}

func (f *fakeEth) GetStorageAt(ctx context.Context, addr common.Address, position common.Hash, _ gethrpc.BlockNumberOrHash) (hexutil.Bytes, error) {
	if m, ok := f.storage[addr]; ok {
		if v, ok2 := m[position]; ok2 {
			return hexutil.Bytes(v), nil
		}
	}
	// default empty 32 bytes
	return hexutil.Bytes(make([]byte, 32)), nil
}

// Call reports 6 decimals for every token.
func (f *fakeEth) Call(ctx context.Context, _ map[string]interface{}, _ gethrpc.BlockNumberOrHash) (hexutil.Bytes, error) {
	return hexutil.Bytes(u256Bytes(big.NewInt(6))), nil
}

func newInprocEthClient(t *testing.T, fe *fakeEth) *ethclient.Client {
	t.Helper()
	srv := gethrpc.NewServer()
	// Register under the standard "eth" namespace so methods map to eth_*
	if err := srv.RegisterName("eth", fe); err != nil {
		t.Fatalf("register rpc service: %v", err)
	}
	c := gethrpc.DialInProc(srv)
	ec := ethclient.NewClient(c)
	t.Cleanup(ec.Close)
	return ec
}

func u256Bytes(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) > 32 {
		panic("value does not fit in 32 bytes")
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

func packReserves(r0, r1 uint64, ts uint32) []byte {
	v := new(big.Int).SetUint64(uint64(ts))
	v.Lsh(v, 112)
	v.Or(v, new(big.Int).SetUint64(r1))
	v.Lsh(v, 112)
	v.Or(v, new(big.Int).SetUint64(r0))
	return u256Bytes(v)
}

func rightPadAddress(addr common.Address) []byte {
	// Address is right-aligned in 32 bytes when read from storage
	out := make([]byte, 32)
	copy(out[12:], addr.Bytes())
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newChainEstimateApp(t *testing.T, fe *fakeEth) *fiber.App {
	t.Helper()
	logger := discardLogger()
	reader := eth.NewPairReader(logger, newInprocEthClient(t, fe), amm.MustFeeSchedule(50, 30, 20, 0), nil)
	svc := service.NewQuoteService(logger, reader, 50)
	h := NewEstimateHandler(logger, svc)

	app := fiber.New()
	app.Get("/estimate", h.Handle())
	return app
}

func TestEstimateHandler_OK(t *testing.T) {
	token0 := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	token1 := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	pool := common.HexToAddress("0x0000000000000000000000000000000000000abc")

	fe := &fakeEth{blockNumber: 42, storage: map[common.Address]map[common.Hash][]byte{pool: {common.BigToHash(new(big.Int).SetUint64(6)): rightPadAddress(token0), common.BigToHash(new(big.Int).SetUint64(7)): rightPadAddress(token1), common.BigToHash(new(big.Int).SetUint64(8)): packReserves(1_000_000, 2_000_000, 0)}}}
	app := newChainEstimateApp(t, fe)

	req := httptest.NewRequest(http.MethodGet, "/estimate?pool="+pool.Hex()+"&src="+token0.Hex()+"&dst="+token1.Hex()+"&src_amount=1000", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// 1000 in, 980 after 200 bp of fees, 980 * 2e6 / (1e6 + 980)
	assert.Equal(t, "1958", string(body))
}

func TestEstimateHandler_UnknownPool(t *testing.T) {
	fe := &fakeEth{blockNumber: 1, storage: map[common.Address]map[common.Hash][]byte{}}
	app := newChainEstimateApp(t, fe)

	pool := common.HexToAddress("0x0000000000000000000000000000000000000def").Hex()
	req := httptest.NewRequest(http.MethodGet, "/estimate?pool="+pool+"&src=0xaa&dst=0xbb&src_amount=1000", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEstimateHandler_Validation(t *testing.T) {
	fe := &fakeEth{blockNumber: 1, storage: map[common.Address]map[common.Hash][]byte{}}
	app := newChainEstimateApp(t, fe)

	cases := []struct {
		name  string
		query string
	}{
		{"missing params", ""},
		{"missing dst", "?pool=p&src=a&src_amount=1"},
		{"same tokens", "?pool=p&src=0xAA&dst=0xaa&src_amount=1"},
		{"missing amount", "?pool=p&src=a&dst=b"},
		{"bad amount", "?pool=p&src=a&dst=b&src_amount=1.5"},
		{"negative amount", "?pool=p&src=a&dst=b&src_amount=-3"},
		{"zero amount", "?pool=p&src=a&dst=b&src_amount=0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/estimate"+tc.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
