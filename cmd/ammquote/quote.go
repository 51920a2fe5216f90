package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Urban-Blazer/srm-front-end-sub001/internal/service"
	"github.com/Urban-Blazer/srm-front-end-sub001/pkg/amm"
)

func runSwap(cmd *cobra.Command, _ []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	dir, err := directionFlag(cmd)
	if err != nil {
		return err
	}
	exactOut, _ := cmd.Flags().GetBool("exact-out")

	amountDecimals := env.snapshot.InputDecimals(dir)
	if exactOut {
		amountDecimals = env.snapshot.OutputDecimals(dir)
	}
	amount, err := amountFlag(cmd, "amount", amountDecimals)
	if err != nil {
		return err
	}

	amountIn := amount.Raw
	if exactOut {
		q, err := amm.QuoteSwapExactOut(env.snapshot.Pool, dir, amount.Raw)
		if err != nil {
			return err
		}
		amountIn = q.AmountIn
	}

	src, dst := env.tokens(dir)
	res, err := env.svc.QuoteSwap(context.Background(), service.SwapParams{
		Pool:     env.snapshot.ID,
		Src:      src,
		Dst:      dst,
		AmountIn: amountIn,
	})
	if err != nil {
		return err
	}

	decIn, decOut := env.snapshot.InputDecimals(dir), env.snapshot.OutputDecimals(dir)
	q := res.Quote
	return printTable(cmd.OutOrStdout(), [][2]string{
		{"pool", res.Snapshot.ID},
		{"direction", fmt.Sprintf("%s (%s -> %s)", dir, src, dst)},
		{"fees", res.Snapshot.Pool.Fees.String()},
		{"amount in", formatAmount(q.AmountIn, decIn)},
		{"effective in", formatAmount(q.EffectiveAmountIn, decIn)},
		{"amount out", formatAmount(q.AmountOut, decOut)},
		{"min amount out", fmt.Sprintf("%s (slippage %d bp)", formatAmount(res.MinAmountOut, decOut), res.SlippageBp)},
		{"price impact", q.PriceImpact.StringFixed(4) + "%"},
		{"impact level", res.Impact.String()},
	})
}

func runDeposit(cmd *cobra.Command, _ []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	dir, err := directionFlag(cmd)
	if err != nil {
		return err
	}
	amount, err := amountFlag(cmd, "amount", env.snapshot.InputDecimals(dir))
	if err != nil {
		return err
	}

	src, _ := env.tokens(dir)
	res, err := env.svc.QuoteDeposit(context.Background(), service.DepositParams{
		Pool:   env.snapshot.ID,
		Src:    src,
		Amount: amount.Raw,
	})
	if err != nil {
		return err
	}

	q := res.Quote
	rows := [][2]string{
		{"pool", res.Snapshot.ID},
		{"deposit", formatAmount(q.DepositIn, env.snapshot.InputDecimals(dir))},
		{"paired amount", formatAmount(q.PairedAmount, env.snapshot.OutputDecimals(dir))},
	}
	if res.FirstDeposit {
		rows = append(rows, [2]string{"min lp out", "0 (first deposit sets the price)"})
	} else {
		rows = append(rows,
			[2]string{"expected lp", q.ExpectedLp.Dec()},
			[2]string{"min lp out", fmt.Sprintf("%s (slippage %d bp)", q.MinLpOut.Dec(), res.SlippageBp)},
		)
	}
	return printTable(cmd.OutOrStdout(), rows)
}

func runWithdraw(cmd *cobra.Command, _ []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	raw, _ := cmd.Flags().GetString("lp-amount")
	if raw == "" {
		return fmt.Errorf("--lp-amount is required")
	}
	lpAmount, err := amm.ParseRaw(raw)
	if err != nil {
		return err
	}

	res, err := env.svc.QuoteWithdraw(context.Background(), service.WithdrawParams{
		Pool:     env.snapshot.ID,
		LpAmount: lpAmount,
	})
	if err != nil {
		return err
	}

	q := res.Quote
	p := res.Snapshot.Pool
	return printTable(cmd.OutOrStdout(), [][2]string{
		{"pool", res.Snapshot.ID},
		{"lp burned", q.LpAmount.Dec()},
		{"amount " + res.Snapshot.TokenA, formatAmount(q.AmountA, p.DecimalsA)},
		{"amount " + res.Snapshot.TokenB, formatAmount(q.AmountB, p.DecimalsB)},
		{"min amount " + res.Snapshot.TokenA, formatAmount(q.MinAmountA, p.DecimalsA)},
		{"min amount " + res.Snapshot.TokenB, formatAmount(q.MinAmountB, p.DecimalsB)},
		{"slippage", fmt.Sprintf("%d bp", res.SlippageBp)},
	})
}

func directionFlag(cmd *cobra.Command) (amm.Direction, error) {
	raw, _ := cmd.Flags().GetString("dir")
	return amm.ParseDirection(raw)
}

func amountFlag(cmd *cobra.Command, name string, decimals uint8) (amm.Amount, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return amm.Amount{}, fmt.Errorf("--%s is required", name)
	}
	return amm.ParseAmount(raw, decimals)
}
