package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ajroetker/go-solver/internal/logger"
	"github.com/ajroetker/go-solver/solver"
	"github.com/ajroetker/go-solver/solver/contrib/lu"
	"github.com/ajroetker/go-solver/solver/contrib/workerpool"
)

var (
	size       int64
	cols       int64
	lanes      int64
	warmupRuns int64
	benchRuns  int64
	seed       int64
	dtype      string
	check      bool
)

func benchCmd() *cli.Command {
	flags := append([]cli.Flag{}, commonLogFlags()...)
	flags = append(flags,
		&cli.Int64Flag{
			Name:        "size",
			Aliases:     []string{"m"},
			Usage:       "matrix row count",
			Value:       256,
			Destination: &size,
		},
		&cli.Int64Flag{
			Name:        "cols",
			Aliases:     []string{"n"},
			Usage:       "matrix column count (0 = square)",
			Value:       0,
			Destination: &cols,
		},
		&cli.Int64Flag{
			Name:        "lanes",
			Aliases:     []string{"l"},
			Usage:       "parallel lane count (0 = one per CPU)",
			Value:       0,
			Destination: &lanes,
		},
		&cli.Int64Flag{
			Name:        "runs",
			Usage:       "number of timed runs",
			Value:       5,
			Destination: &benchRuns,
		},
		&cli.Int64Flag{
			Name:        "warmup",
			Usage:       "number of warmup runs",
			Value:       1,
			Destination: &warmupRuns,
		},
		&cli.Int64Flag{
			Name:        "seed",
			Usage:       "random seed for matrix generation",
			Value:       1,
			Destination: &seed,
		},
		&cli.StringFlag{
			Name:        "dtype",
			Usage:       "element type (float64, float32)",
			Value:       "float64",
			Destination: &dtype,
		},
		&cli.BoolFlag{
			Name:        "check",
			Usage:       "verify the factorization by reconstructing L*U",
			Value:       true,
			Destination: &check,
		},
	)

	return &cli.Command{
		Name:  "bench",
		Usage: "Benchmark the LU factorization kernel",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyBenchConfig(cmd, loadConfig())
			log := newLogger()

			m := int(size)
			n := int(cols)
			if n == 0 {
				n = m
			}
			laneCount := int(lanes)
			if laneCount == 0 {
				laneCount = runtime.GOMAXPROCS(0)
			}
			if m <= 0 || n < m {
				return cli.Exit("error: need 0 < rows <= cols", 1)
			}

			fmt.Println("=== go-solver Benchmark ===")
			fmt.Printf("CPU:       %s (%d cores, dispatch %s)\n",
				runtime.GOARCH, runtime.NumCPU(), solver.CurrentName())
			fmt.Printf("Matrix:    %dx%d %s\n", m, n, dtype)
			fmt.Printf("Lanes:     %d\n\n", laneCount)

			switch dtype {
			case "float64":
				return runBench[float64](log, m, n, laneCount)
			case "float32":
				return runBench[float32](log, m, n, laneCount)
			default:
				return cli.Exit(fmt.Sprintf("error: unknown dtype %q", dtype), 1)
			}
		},
	}
}

func runBench[T solver.Floats](log logger.Logger, m, n, laneCount int) error {
	src := diagDominant[T](m, n, seed)
	a := make([]T, len(src))

	pool := workerpool.New(laneCount)
	defer pool.Close()

	factor := func() time.Duration {
		copy(a, src)
		start := time.Now()
		if laneCount == 1 {
			lu.Getrf(a, m, n, n, 1)
		} else {
			lu.GetrfWithPool(pool, a, m, n, n)
		}
		return time.Since(start)
	}

	for i := range int(warmupRuns) {
		d := factor()
		log.Info("warmup", "run", i, "elapsed", d)
	}

	// Unblocked LU does about m^2 (n - m/3) multiply-subtract pairs.
	flops := float64(m) * float64(m) * (float64(n) - float64(m)/3)

	best := time.Duration(math.MaxInt64)
	var total time.Duration
	for i := range int(benchRuns) {
		d := factor()
		total += d
		best = min(best, d)
		fmt.Printf("run %2d: %10v  %7.2f GFLOP/s\n", i+1, d, flops/d.Seconds()/1e9)
	}

	avg := total / time.Duration(benchRuns)
	fmt.Printf("\nbest:   %10v  %7.2f GFLOP/s\n", best, flops/best.Seconds()/1e9)
	fmt.Printf("avg:    %10v  %7.2f GFLOP/s\n", avg, flops/avg.Seconds()/1e9)

	if check {
		rel := residual(src, a, m, n)
		fmt.Printf("residual: %.3g (max |L*U - A| / |A|)\n", rel)
		log.Info("verified factorization", "residual", rel)
	}
	return nil
}

// diagDominant builds a row-major m x n matrix with a dominant diagonal so
// the no-pivot factorization is well defined.
func diagDominant[T solver.Floats](m, n int, seed int64) []T {
	rng := rand.New(rand.NewSource(seed))
	a := make([]T, m*n)
	for i := range m {
		for j := range n {
			a[i*n+j] = T(2*rng.Float64() - 1)
		}
		a[i*n+i] = T(float64(n) + rng.Float64())
	}
	return a
}

// residual reconstructs L*U from the combined factors f and returns the
// max elementwise error relative to the max magnitude of the original.
func residual[T solver.Floats](orig, f []T, m, n int) float64 {
	var maxErr, norm float64
	for i := range m {
		for j := range n {
			var sum float64
			for k := 0; k < min(i, j+1); k++ {
				sum += float64(f[i*n+k]) * float64(f[k*n+j])
			}
			if i <= j {
				sum += float64(f[i*n+j])
			}
			norm = max(norm, math.Abs(float64(orig[i*n+j])))
			maxErr = max(maxErr, math.Abs(sum-float64(orig[i*n+j])))
		}
	}
	if norm == 0 {
		return maxErr
	}
	return maxErr / norm
}
