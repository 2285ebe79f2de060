package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/seqkit/internal/fault"
	"github.com/joshuapare/seqkit/pkg/types"
	"github.com/joshuapare/seqkit/seq"
)

func init() {
	rootCmd.AddCommand(newReplayCmd())
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Apply a scripted sequence of operations to a vector",
		Long: `The replay command reads a YAML script of vector operations, applies them
in order and prints the vector after each step. Failing operations are printed
and the run continues, so a script can show that a failed call leaves the
vector exactly as it was.

Script format:
  ops:
    - {op: append, value: 1}
    - {op: insert, pos: 0, value: 7}
    - {op: insert_n, pos: 1, n: 3, value: 9}
    - {op: fail_construct, n: 2}    # the 2nd construction from here fails
    - {op: insert_n, pos: 0, n: 4, value: 5}
    - {op: erase, pos: 0}
    - {op: erase_range, first: 0, last: 2}
    - {op: reserve, n: 32}
    - {op: shrink}
    - {op: resize, n: 6, value: 0}
    - {op: pop}
    - {op: clear}

Example:
  seqctl replay script.yaml
  seqctl replay script.yaml --provider arena --arena-slots 16 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args[0])
		},
	}
	return cmd
}

// Script is a replay file.
type Script struct {
	Ops []Op `yaml:"ops"`
}

// Op is one scripted operation. Fields not used by an op are ignored.
type Op struct {
	Op    string  `yaml:"op"`
	Pos   int     `yaml:"pos"`
	N     int     `yaml:"n"`
	First int     `yaml:"first"`
	Last  int     `yaml:"last"`
	Value element `yaml:"value"`
}

// Step is the vector state after one op.
type Step struct {
	Op    string    `json:"op"`
	Err   string    `json:"error,omitempty"`
	Kind  string    `json:"kind,omitempty"`
	Len   int       `json:"len"`
	Cap   int       `json:"cap"`
	Items []element `json:"items"`
}

func loadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &s, nil
}

func runReplay(path string) error {
	script, err := loadScript(path)
	if err != nil {
		return err
	}
	p, release, err := openProvider()
	if err != nil {
		return err
	}
	defer release()

	steps, err := replay(newFaulty(p), script)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(steps)
	}
	for i, s := range steps {
		status := "ok"
		if s.Err != "" {
			status = "FAILED (" + s.Kind + "): " + s.Err
		}
		printInfo("%3d %-12s len=%-4d cap=%-4d %v  %s\n", i+1, s.Op, s.Len, s.Cap, s.Items, status)
	}
	return nil
}

// newFaulty wraps p so scripts can arm construction and allocation faults.
func newFaulty(p providerStats) *fault.Provider[element] {
	return fault.New[element](p)
}

func replay(f *fault.Provider[element], script *Script) ([]Step, error) {
	v := seq.New[element](f)
	defer v.Release()

	steps := make([]Step, 0, len(script.Ops))
	for _, op := range script.Ops {
		err := apply(v, f, op)
		if errors.Is(err, errUnknownOp) {
			return nil, err
		}
		step := Step{Op: op.Op, Len: v.Len(), Cap: v.Cap(), Items: append([]element{}, v.Data()...)}
		if err != nil {
			step.Err = err.Error()
			if k, ok := types.KindOf(err); ok {
				step.Kind = k.String()
			}
			printVerbose("%s failed: %v\n", op.Op, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

var errUnknownOp = errors.New("unknown op")

func apply(v *seq.Vector[element], f *fault.Provider[element], op Op) error {
	var err error
	switch op.Op {
	case "append":
		err = v.Append(op.Value)
	case "insert":
		_, err = v.Insert(op.Pos, op.Value)
	case "insert_n":
		_, err = v.InsertN(op.Pos, op.N, op.Value)
	case "erase":
		_, err = v.Erase(op.Pos)
	case "erase_range":
		_, err = v.EraseRange(op.First, op.Last)
	case "reserve":
		err = v.Reserve(op.N)
	case "shrink":
		err = v.ShrinkToFit()
	case "resize":
		err = v.ResizeWith(op.N, op.Value)
	case "clear":
		v.Clear()
	case "pop":
		err = v.PopBack()
	case "fail_construct":
		f.FailConstructAt(op.N)
	case "fail_alloc":
		f.FailAllocAt(op.N)
	default:
		return fmt.Errorf("%w %q", errUnknownOp, op.Op)
	}
	return err
}
