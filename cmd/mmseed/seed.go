package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmseed/builder"
	"github.com/katalvlaran/mmseed/dataset"
	"github.com/katalvlaran/mmseed/partition"
	"github.com/katalvlaran/mmseed/seed"
	"github.com/katalvlaran/mmseed/store"
)

// errDisconnectedPlan rejects input plans whose districts are not each one
// connected piece; contraction assumes contiguous districts.
var errDisconnectedPlan = errors.New("input plan has disconnected districts")

type seedFlags struct {
	input       string
	grid        string
	popMin      float64
	popMax      float64
	sizes       string
	target      float64
	randSeed    int64
	runs        int
	workers     int
	maxTries    int
	maxAttempts int
	out         string
}

func newSeedCmd(s *settings) *cobra.Command {
	f := &seedFlags{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Merge districts into connected groups of the given sizes",
		Long: `Merge the districts of a plan into connected multi-member districts.

The plan comes from a dataset file (--input) or a synthetic grid of
single-unit districts (--grid RxC). Group sizes are given as a list whose
sum must equal the number of districts.`,
		Example: `  mmseed seed --grid 4x6 --sizes 4,4,4,4,4,4 --target 4000
  mmseed seed --input plan.json --sizes 3,3,2 --target 250000 --runs 20 --db runs.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := intFromEnv(cmd, "max-tries", envMaxTries, &f.maxTries); err != nil {
				return err
			}
			if err := intFromEnv(cmd, "max-attempts", envMaxAttempts, &f.maxAttempts); err != nil {
				return err
			}
			return runSeed(cmd.Context(), cmd.OutOrStdout(), s, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "Dataset JSON file")
	fl.StringVar(&f.grid, "grid", "", "Synthetic RxC grid instead of --input")
	fl.Float64Var(&f.popMin, "pop-min", 1000, "Grid unit population (lower bound)")
	fl.Float64Var(&f.popMax, "pop-max", 1000, "Grid unit population upper bound; above --pop-min draws at random")
	fl.StringVar(&f.sizes, "sizes", "", "Comma separated group sizes")
	fl.Float64Var(&f.target, "target", 0, "Population per seat")
	fl.Int64Var(&f.randSeed, "seed", seed.DefaultSeed, "Random seed (first seed with --runs)")
	fl.IntVar(&f.runs, "runs", 1, "Independent runs with seeds seed..seed+runs-1")
	fl.IntVar(&f.workers, "workers", runtime.GOMAXPROCS(0), "Concurrent runs")
	fl.IntVar(&f.maxTries, "max-tries", seed.DefaultMaxTries, "Iterations per contraction attempt ($"+envMaxTries+")")
	fl.IntVar(&f.maxAttempts, "max-attempts", seed.DefaultMaxAttempts, "Contraction attempts per run ($"+envMaxAttempts+")")
	fl.StringVarP(&f.out, "out", "o", "", "Write the first seeded plan as a dataset file")
	_ = cmd.MarkFlagRequired("sizes")
	_ = cmd.MarkFlagRequired("target")
	cmd.MarkFlagsMutuallyExclusive("input", "grid")
	cmd.MarkFlagsOneRequired("input", "grid")

	return cmd
}

func runSeed(ctx context.Context, w io.Writer, s *settings, f *seedFlags) error {
	if f.runs < 1 {
		return fmt.Errorf("--runs must be ≥ 1")
	}
	if f.maxTries < 1 || f.maxAttempts < 1 {
		return fmt.Errorf("--max-tries and --max-attempts must be ≥ 1")
	}
	sizes, err := parseSizes(f.sizes)
	if err != nil {
		return err
	}
	p, source, err := loadPlan(f)
	if err != nil {
		return err
	}
	bad, err := p.Disconnected(ctx)
	if err != nil {
		return err
	}
	if len(bad) > 0 {
		return fmt.Errorf("%s: districts %v: %w", source, bad, errDisconnectedPlan)
	}
	s.logger.Info("plan loaded",
		slog.String("source", source),
		slog.Int("units", p.Graph().VertexCount()),
		slog.Int("districts", p.Len()),
	)

	reg := prometheus.NewRegistry()
	metrics, err := seed.NewMetrics(reg)
	if err != nil {
		return err
	}

	seeds := make([]int64, f.runs)
	for i := range seeds {
		seeds[i] = f.randSeed + int64(i)
	}
	results, err := seed.Batch(ctx, p, partition.PopulationKey, sizes, f.target, seeds, f.workers,
		seed.WithMaxTries(f.maxTries),
		seed.WithMaxAttempts(f.maxAttempts),
		seed.WithLogger(s.logger),
		seed.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}

	var db *store.DB
	if s.dbPath != "" {
		if db, err = s.openStore(); err != nil {
			return err
		}
		defer db.Close()
	}

	var first *seed.Result
	found := 0
	for _, br := range results {
		if br.Err != nil {
			fmt.Fprintf(w, "run seed=%d: no valid seed found\n", br.RandSeed)
			continue
		}
		found++
		if first == nil {
			first = br.Result
		}
		if err := printResult(w, br); err != nil {
			return err
		}
		if db != nil {
			id, err := db.SaveRun(ctx, toRun(source, sizes, f.target, br))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "saved as run %d\n", id)
		}
	}
	logMetrics(s.logger, reg)

	if first == nil {
		return fmt.Errorf("%d runs: %w", f.runs, seed.ErrSeedingExhausted)
	}
	if f.out != "" {
		if err := writePlan(f.out, first.Partition); err != nil {
			return err
		}
	}
	s.logger.Info("seeding done", slog.Int("runs", f.runs), slog.Int("found", found))

	return nil
}

// loadPlan returns the input partition and a short description of it.
func loadPlan(f *seedFlags) (*partition.Partition, string, error) {
	if f.input != "" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, "", err
		}
		defer file.Close()
		p, err := dataset.Load(file)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", f.input, err)
		}
		return p, f.input, nil
	}

	rows, cols, err := parseGrid(f.grid)
	if err != nil {
		return nil, "", err
	}
	bopts := []builder.BuilderOption{builder.WithUniformAttr(partition.PopulationKey, f.popMin)}
	if f.popMax > f.popMin {
		bopts = []builder.BuilderOption{
			builder.WithSeed(f.randSeed),
			builder.WithRandomAttr(partition.PopulationKey, f.popMin, f.popMax),
		}
	}
	g, err := builder.BuildGraph(nil, bopts, builder.Grid(rows, cols))
	if err != nil {
		return nil, "", err
	}
	p, err := partition.New(g, partition.Singletons(g), map[string]partition.Updater{
		partition.PopulationKey: partition.Tally(partition.PopulationKey),
	})
	if err != nil {
		return nil, "", err
	}

	return p, "grid:" + f.grid, nil
}

func printResult(w io.Writer, br seed.BatchResult) error {
	pops, err := br.Result.Partition.Aggregate(partition.PopulationKey)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "run seed=%d attempts=%d\n", br.RandSeed, br.Result.Attempts)
	fmt.Fprintf(w, "  %-8s %6s %14s %6s\n", "district", "units", "population", "seats")
	for _, part := range br.Result.Partition.Parts() {
		fmt.Fprintf(w, "  %-8d %6d %14.0f %6d\n",
			part, len(br.Result.Partition.Members(part)), pops[part], br.Result.Seats[part])
	}

	return nil
}

func toRun(source string, sizes []int, target float64, br seed.BatchResult) store.Run {
	pops, _ := br.Result.Partition.Aggregate(partition.PopulationKey)
	return store.Run{
		Source:     source,
		RandSeed:   br.RandSeed,
		Sizes:      sizes,
		SeatTarget: target,
		Attempts:   br.Result.Attempts,
		Population: pops,
		Seats:      br.Result.Seats,
		Assignment: br.Result.Partition.Assignment(),
	}
}

func writePlan(path string, p *partition.Partition) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dataset.Write(file, p, partition.PopulationKey); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// logMetrics emits every counter and histogram count of reg at debug level.
func logMetrics(l *slog.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		l.Warn("gathering metrics", slog.Any("err", err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{slog.String("metric", mf.GetName())}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, slog.String(lp.GetName(), lp.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, slog.Float64("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				attrs = append(attrs,
					slog.Uint64("count", m.GetHistogram().GetSampleCount()),
					slog.Float64("sum", m.GetHistogram().GetSampleSum()))
			}
			l.Debug("metric", attrs...)
		}
	}
}
