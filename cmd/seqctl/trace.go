package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/seqkit/seq"
)

var traceN int

func init() {
	cmd := newTraceCmd()
	cmd.Flags().IntVarP(&traceN, "n", "n", 1000, "Number of elements to append")
	rootCmd.AddCommand(cmd)
}

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Append 1..N and print every capacity change",
		Long: `The trace command appends the integers 1..N to an empty vector and prints
each reallocation together with the number of elements relocated so far.

Example:
  seqctl trace -n 1000
  seqctl trace -n 100000 --provider arena --arena-slots 262144
  seqctl trace -n 64 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(traceN)
		},
	}
	return cmd
}

// Transition is one capacity change observed during a trace.
type Transition struct {
	Len    int `json:"len"`
	OldCap int `json:"old_cap"`
	NewCap int `json:"new_cap"`
	Moves  int `json:"moves"`
}

// TraceResult is the full output of a trace run.
type TraceResult struct {
	Provider    string       `json:"provider"`
	N           int          `json:"n"`
	Transitions []Transition `json:"transitions"`
	Constructs  int          `json:"constructs"`
	Moves       int          `json:"moves"`
	Allocations int          `json:"allocations"`
}

func runTrace(n int) error {
	p, release, err := openProvider()
	if err != nil {
		return err
	}
	defer release()

	res, err := trace(p, n)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(res)
	}

	pr := message.NewPrinter(language.English)
	for _, tr := range res.Transitions {
		printInfo("%s", pr.Sprintf("len %8d  cap %8d -> %8d  relocated %10d\n",
			tr.Len, tr.OldCap, tr.NewCap, tr.Moves))
	}
	printInfo("%s", pr.Sprintf("\n%d appends: %d constructions, %d relocations, %d allocations\n",
		res.N, res.Constructs, res.Moves, res.Allocations))
	return nil
}

func trace(p providerStats, n int) (*TraceResult, error) {
	v := seq.New[element](p)
	defer v.Release()

	res := &TraceResult{Provider: providerName(), N: n, Transitions: []Transition{}}
	for i := 1; i <= n; i++ {
		before := v.Cap()
		if err := v.Append(element(i)); err != nil {
			return nil, err
		}
		if v.Cap() != before {
			res.Transitions = append(res.Transitions, Transition{
				Len: v.Len(), OldCap: before, NewCap: v.Cap(), Moves: p.Stats().Moves,
			})
			printVerbose("grow at %d: %d -> %d\n", v.Len(), before, v.Cap())
		}
	}
	s := p.Stats()
	res.Constructs, res.Moves, res.Allocations = s.Constructs, s.Moves, s.Allocations
	return res, nil
}
