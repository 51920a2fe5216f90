package config

import "errors"

// ErrNoPoolSource indicates that neither an RPC endpoint (ETH_RPC_URL) nor any
// static pool is configured, so there is nothing to quote against.
var ErrNoPoolSource = errors.New("no pool source: set ETH_RPC_URL or configure static pools")

// ErrInvalidPoolConfig indicates a malformed entry in the pools list.
var ErrInvalidPoolConfig = errors.New("invalid pool config")
