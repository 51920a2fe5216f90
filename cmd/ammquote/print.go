package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/holiman/uint256"

	"github.com/Urban-Blazer/srm-front-end-sub001/pkg/amm"
)

func printTable(w io.Writer, rows [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}

// formatAmount renders a raw amount as "human (raw)".
func formatAmount(raw uint256.Int, decimals uint8) string {
	return fmt.Sprintf("%s (%s)", amm.Amount{Raw: raw, Decimals: decimals}, raw.Dec())
}
