package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amortizeMax int

func init() {
	cmd := newAmortizeCmd()
	cmd.Flags().IntVar(&amortizeMax, "max", 1_000_000, "Largest append count to measure")
	rootCmd.AddCommand(cmd)
}

func newAmortizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Report relocations per append for growing N",
		Long: `The amortize command appends N elements for N = 10, 100, ... up to --max
and reports how many element relocations growth cost per append. With
doubling growth the ratio stays below 2 regardless of N.

Example:
  seqctl amortize
  seqctl amortize --max 10000000 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAmortize(amortizeMax)
		},
	}
	return cmd
}

// AmortizeRow is the cost measured for one N.
type AmortizeRow struct {
	N             int     `json:"n"`
	Moves         int     `json:"moves"`
	Allocations   int     `json:"allocations"`
	MovesPerPush  float64 `json:"moves_per_append"`
	FinalCapacity int     `json:"final_capacity"`
}

func runAmortize(maxN int) error {
	rows, err := amortize(maxN)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(rows)
	}
	pr := message.NewPrinter(language.English)
	printInfo("%s", pr.Sprintf("%12s %14s %8s %10s %12s\n", "N", "relocations", "allocs", "per append", "capacity"))
	for _, r := range rows {
		printInfo("%s", pr.Sprintf("%12d %14d %8d %10.3f %12d\n",
			r.N, r.Moves, r.Allocations, r.MovesPerPush, r.FinalCapacity))
	}
	return nil
}

func amortize(maxN int) ([]AmortizeRow, error) {
	var rows []AmortizeRow
	for n := 10; n <= maxN; n *= 10 {
		p, release, err := openProvider()
		if err != nil {
			return nil, err
		}
		res, err := trace(p, n)
		release()
		if err != nil {
			return nil, err
		}
		final := 0
		if k := len(res.Transitions); k > 0 {
			final = res.Transitions[k-1].NewCap
		}
		rows = append(rows, AmortizeRow{
			N:             n,
			Moves:         res.Moves,
			Allocations:   res.Allocations,
			MovesPerPush:  float64(res.Moves) / float64(n),
			FinalCapacity: final,
		})
	}
	return rows, nil
}
