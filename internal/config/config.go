// Package config loads service and CLI settings from a config file, the
// environment (including a .env file) and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds settings shared by the API server and the CLI. SlippageBp is
// the tolerance applied when a request does not name one.
type Config struct {
	Addr        string
	RPCEndpoint string
	LogLevel    string
	LogFormat   string
	SlippageBp  uint64
	DefaultFees FeeConfig
	Pools       []PoolConfig
}

// Load merges, from lowest to highest precedence, defaults, the config file,
// environment variables and flags. Environment variables use the AMM_ prefix;
// ADDR, ETH_RPC_URL and LOG_LEVEL are also honoured.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("AMM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":1337")
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")
	v.SetDefault("slippage-bp", uint64(50))

	for key, legacy := range map[string]string{
		"addr":      "ADDR",
		"rpc-url":   "ETH_RPC_URL",
		"log-level": "LOG_LEVEL",
	} {
		if err := v.BindEnv(key, "AMM_"+envKey(key), legacy); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("ammquote")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Addr:        v.GetString("addr"),
		RPCEndpoint: v.GetString("rpc-url"),
		LogLevel:    v.GetString("log-level"),
		LogFormat:   v.GetString("log-format"),
		SlippageBp:  v.GetUint64("slippage-bp"),
	}
	if err := v.UnmarshalKey("default-fees", &cfg.DefaultFees); err != nil {
		return nil, fmt.Errorf("decode default-fees: %w", err)
	}
	if err := v.UnmarshalKey("pools", &cfg.Pools); err != nil {
		return nil, fmt.Errorf("decode pools: %w", err)
	}

	return cfg, nil
}

// Validate checks that a pool source is configured and that every pool entry
// is well formed.
func (c *Config) Validate() error {
	if _, err := c.DefaultFees.Schedule(); err != nil {
		return fmt.Errorf("default-fees: %w", err)
	}
	static := 0
	for i, p := range c.Pools {
		if err := p.validate(); err != nil {
			return fmt.Errorf("pools[%d]: %w", i, err)
		}
		if p.IsStatic() {
			static++
		}
	}
	if c.RPCEndpoint == "" && static == 0 {
		return ErrNoPoolSource
	}
	return nil
}

func envKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
