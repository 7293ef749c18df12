package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pavanmanishd/rawvec"
)

// sample is a pointer-free element that counts its drops,
// so it works with every allocator backend.
type sample struct {
	Seq   int64
	Value float64
}

var droppedSamples int

func (s sample) Drop() { droppedSamples++ }

// Report is the outcome of one traced run.
type Report struct {
	Name    string
	Elem    string
	Metrics rawvec.Metrics // taken before release
	Drops   int
}

func newTraceCmd(a *app) *cobra.Command {
	var run Run

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "push values into a vec and log every growth",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run.validate(); err != nil {
				return err
			}
			rep, err := runTrace(a.logger, run)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), []Report{rep})
		},
	}
	cmd.Flags().StringVar(&run.Name, "name", "trace", "run name")
	cmd.Flags().IntVar(&run.Count, "count", 100, "number of values to push")
	cmd.Flags().StringVar(&run.Elem, "elem", ElemInt64, "element type (int64|float64|sample)")
	return cmd
}

// runTrace executes r against a fresh vec.
func runTrace(lg *zap.Logger, r Run) (Report, error) {
	lg = lg.With(zap.String("run", r.Name), zap.String("elem", r.Elem), zap.String("backend", rawvec.Backend()))

	switch r.Elem {
	case ElemInt64:
		return trace(lg, r, func(i int) int64 { return int64(i) * 3 })
	case ElemFloat64:
		return trace(lg, r, func(i int) float64 { return float64(i) / 2 })
	case ElemSample:
		droppedSamples = 0
		rep, err := trace(lg, r, func(i int) sample { return sample{Seq: int64(i), Value: float64(i) * 1.5} })
		rep.Drops = droppedSamples
		return rep, err
	default:
		return Report{}, fmt.Errorf("unknown element type %q", r.Elem)
	}
}

func trace[T comparable](lg *zap.Logger, r Run, gen func(int) T) (Report, error) {
	v := rawvec.New[T]()
	defer v.Release()

	for i := 0; i < r.Count; i++ {
		before := v.Cap()
		v.Push(gen(i))
		if v.Cap() != before {
			m := v.Metrics()
			lg.Info("vec grew",
				zap.Int("len", m.Len),
				zap.Int("from", before),
				zap.Int("cap", m.Cap),
				zap.Int("bytes", m.BytesReserved),
			)
		}
	}

	for i := 0; i < r.Count; i++ {
		p, ok := v.Get(i)
		if !ok {
			return Report{}, fmt.Errorf("run %s: element %d missing (len %d)", r.Name, i, v.Len())
		}
		if want := gen(i); *p != want {
			return Report{}, fmt.Errorf("run %s: element %d = %v, want %v", r.Name, i, *p, want)
		}
	}
	if _, ok := v.Get(r.Count); ok {
		return Report{}, fmt.Errorf("run %s: element %d present past the end", r.Name, r.Count)
	}

	rep := Report{Name: r.Name, Elem: r.Elem, Metrics: v.Metrics()}
	lg.Debug("run verified", zap.Stringer("metrics", rep.Metrics))
	return rep, nil
}

func writeReports(w io.Writer, reps []Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tELEM\tLEN\tCAP\tIN USE\tRESERVED\tGROWS\tDROPS")
	for _, r := range reps {
		m := r.Metrics
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.Name, r.Elem, m.Len, m.Cap, m.BytesInUse, m.BytesReserved, m.Grows, r.Drops)
	}
	return tw.Flush()
}
