package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ammquote",
		Short:        "Offline constant-product pool quotes",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "log format (text, json)")
	root.PersistentFlags().Uint64("slippage-bp", 50, "slippage tolerance in basis points")
	addPoolFlags(root.PersistentFlags())

	swapCmd := &cobra.Command{
		Use:   "swap",
		Short: "Quote a swap",
		RunE:  runSwap,
	}
	swapCmd.Flags().String("dir", "a-to-b", "swap direction (a-to-b, b-to-a)")
	swapCmd.Flags().String("amount", "", "human-readable amount of the input token")
	swapCmd.Flags().Bool("exact-out", false, "treat --amount as the desired output and quote the input")
	root.AddCommand(swapCmd)

	depositCmd := &cobra.Command{
		Use:   "deposit",
		Short: "Quote a proportional liquidity deposit",
		RunE:  runDeposit,
	}
	depositCmd.Flags().String("dir", "a-to-b", "side entered: a-to-b deposits token A, b-to-a token B")
	depositCmd.Flags().String("amount", "", "human-readable amount of the entered token")
	root.AddCommand(depositCmd)

	withdrawCmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Quote burning LP tokens",
		RunE:  runWithdraw,
	}
	withdrawCmd.Flags().String("lp-amount", "", "raw LP token amount to burn")
	root.AddCommand(withdrawCmd)

	return root
}
