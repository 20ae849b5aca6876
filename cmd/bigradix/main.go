// Command bigradix is the CLI front end named as an external
// collaborator in spec.md §1: alphabet validation, option parsing and
// the operator surface live here, outside the core. Structured as a
// cobra root command with per-concern subcommands, the same shape as
// the teacher's cmd/z80opt (root command, one RunE per subcommand, a
// flag set per subcommand rather than one global flag bag).
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/oisee/bigradix/internal/config"
	"github.com/oisee/bigradix/internal/logger"
	zapadapter "github.com/oisee/bigradix/internal/logger/zap"
	"github.com/oisee/bigradix/internal/validate"
	"github.com/oisee/bigradix/pkg/arithop"
	"github.com/oisee/bigradix/pkg/diffcheck"
	"github.com/oisee/bigradix/pkg/fuzz"
	"github.com/oisee/bigradix/pkg/harness"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigradix",
		Short: "Exact arbitrary-precision arithmetic in any integer radix",
	}

	rootCmd.AddCommand(
		newComputeCmd(),
		newVerifyCmd(),
		newFuzzCmd(),
		newBenchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildLogger constructs the internal/logger.Logger the rest of the
// CLI shares, falling back to a NopLogger when zap construction fails
// (e.g. an unwritable output path) rather than aborting a compute.
func buildLogger(level string) logger.Logger {
	z, err := zapadapter.New(zapadapter.Config{Level: level, Encoding: "console", OutputPath: "stderr"})
	if err != nil {
		return logger.NopLogger{}
	}
	return zapadapter.NewZapAdapter(z)
}

// newComputeCmd implements the single-operation entry point: validate
// the caller-supplied (base, alphabet, z1, z2, op) via internal/validate,
// then run it through pkg/arithop.Compute exactly as spec.md §6 names it.
func newComputeCmd() *cobra.Command {
	var base int
	var alph string
	var op string
	var useSIMD bool
	var useNaive bool
	var logLevel string

	cmd := &cobra.Command{
		Use:   "compute Z1 Z2",
		Short: "Compute Z1 <op> Z2 in the given radix and alphabet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(op) != 1 {
				return fmt.Errorf("--op must be exactly one of +, -, *")
			}
			alphabet, err := validate.Alphabet(base, alph)
			if err != nil {
				return err
			}
			z1, z1Neg := validate.StripSign(base, args[0])
			z2, z2Neg := validate.StripSign(base, args[1])
			if err := validate.Digits(alphabet, z1, z1Neg); err != nil {
				return fmt.Errorf("z1: %w", err)
			}
			if err := validate.Digits(alphabet, z2, z2Neg); err != nil {
				return fmt.Errorf("z2: %w", err)
			}
			if err := validate.Op(op[0]); err != nil {
				return err
			}

			lg := buildLogger(logLevel)
			result := arithop.Compute(base, alphabet, args[0], args[1], op[0], useSIMD, lg)
			fmt.Println(result)

			if useNaive {
				agree, binOut, naiveOut, err := diffcheck.CoresAgreeWithAlphabet(base, alphabet, args[0], args[1], op[0])
				if err != nil {
					return err
				}
				if !agree {
					return fmt.Errorf("naive oracle disagrees: binary core=%q naive core=%q", binOut, naiveOut)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&base, "base", 10, "radix, signed, |base| >= 2")
	cmd.Flags().StringVar(&alph, "alphabet", "0123456789", "ordered alphabet of |base| distinct printable characters")
	cmd.Flags().StringVar(&op, "op", "+", "operator: + - *")
	cmd.Flags().BoolVar(&useSIMD, "simd", true, "use the chunked SIMD-tier arithmetic path")
	cmd.Flags().BoolVar(&useNaive, "check-naive", false, "cross-check against the digit-wise naive oracle")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, error")
	return cmd
}

// newVerifyCmd runs the fixed regression suite: diffcheck.FixedCases
// (which include end-to-end scenarios 1, 3 and 4 of SPEC_FULL.md §8;
// scenarios 2, 5 and 6 are not run) and the boundary-behavior matrix
// across the named bases and byte-span tiers. Every case is checked for
// agreement between the binary and naive cores (and, for the matrix,
// SIMD and sequential paths), not against a literal expected output.
func newVerifyCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the fixed regression suite (literal scenarios + boundary matrix)",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			mismatches, err := diffcheck.QuickCheck(nil)
			if err != nil {
				return err
			}
			for _, m := range mismatches {
				fmt.Println("FAIL (fixed case):", m)
			}

			boundary := boundaryTrials()
			wp := harness.NewWorkerPool(runtime.NumCPU())
			wp.RunTrials(boundary, verbose)
			for _, f := range wp.Findings.Findings() {
				fmt.Printf("FAIL (boundary, kind=%s): base=%d %s %c %s -> %s\n",
					f.Kind, f.Trial.Base, f.Trial.Z1, f.Trial.Op, f.Trial.Z2, describeFindingOutputs(f))
			}

			total := len(mismatches) + wp.Findings.Len()
			elapsed := time.Since(start).Round(time.Millisecond)
			if total == 0 {
				fmt.Printf("verify: all checks passed in %s\n", elapsed)
				return nil
			}
			return fmt.Errorf("verify: %d disagreement(s) found in %s", total, elapsed)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each finding and each skipped trial")
	return cmd
}

func describeFindingOutputs(f harness.Finding) string {
	if f.Kind == "cores" {
		return fmt.Sprintf("binary=%q naive=%q", f.BinOut, f.NaiveOut)
	}
	return fmt.Sprintf("simd=%q seq=%q", f.BinOut, f.SeqOut)
}

// boundaryTrials builds the boundary-behavior matrix named in
// SPEC_FULL.md §8: operands spanning exactly 1, 7, 15 and 30 bytes,
// across the named bases -2,-3,2,3,8,10,16,75,128, plus the
// 0xFF...FF-1 collision case in decimal and hex.
func boundaryTrials() []harness.Trial {
	named := []struct {
		base  int
		chars string
	}{
		{2, "01"}, {-2, "01"},
		{3, "012"}, {-3, "012"},
		{8, "01234567"},
		{10, "0123456789"},
		{16, "0123456789abcdef"},
		{75, alphabetOfLen(75)},
		{128, alphabetOfLen(128)},
	}

	var trials []harness.Trial
	for _, n := range named {
		for _, spanBytes := range []int{1, 7, 15, 30} {
			z1 := repeatingDigits(n.chars, spanBytes)
			z2 := repeatingDigits(n.chars, spanBytes/2+1)
			for _, op := range []byte{'+', '-', '*'} {
				trials = append(trials, harness.Trial{Base: n.base, Alph: n.chars, Z1: z1, Z2: z2, Op: op})
			}
		}
	}

	// 0xFF...FF - 1 collision case at the byte boundary, decimal and hex.
	trials = append(trials,
		harness.Trial{Base: 16, Alph: "0123456789abcdef", Z1: "ffffffffffffffff", Z2: "1", Op: '-'},
		harness.Trial{Base: 16, Alph: "0123456789abcdef", Z1: "ffffffffffffffff", Z2: "1", Op: '+'},
		harness.Trial{Base: 10, Alph: "0123456789", Z1: "18446744073709551615", Z2: "1", Op: '-'},
		harness.Trial{Base: 10, Alph: "0123456789", Z1: "18446744073709551615", Z2: "1", Op: '+'},
	)
	return trials
}

// alphabetOfLen synthesizes an n-character printable alphabet for the
// boundary matrix's 75- and 128-wide bases out of the printable ASCII
// range, skipping '-' (reserved as the positive-base sign prefix).
func alphabetOfLen(n int) string {
	var b strings.Builder
	for c := 0x21; c < 0x7F && b.Len() < n; c++ {
		if c == '-' {
			continue
		}
		b.WriteByte(byte(c))
	}
	return b.String()[:n]
}

// repeatingDigits builds a canonical (no leading-zero) digit string
// whose length, under the alphabet's bits-per-digit, lands in the
// requested byte span.
func repeatingDigits(alph string, spanBytes int) string {
	bitsPerDigit := 1
	for (1 << bitsPerDigit) < len(alph) {
		bitsPerDigit++
	}
	n := (spanBytes*8 + bitsPerDigit - 1) / bitsPerDigit
	if n < 1 {
		n = 1
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = alph[(i+1)%len(alph)]
	}
	if out[0] == alph[0] {
		out[0] = alph[len(alph)-1]
	}
	return string(out)
}

// newFuzzCmd runs the stochastic differential-fuzzing search (pkg/fuzz,
// a structural descendant of the teacher's pkg/stoke MCMC search) for
// a configured budget, looking for the class of disagreement named in
// SPEC_FULL.md's Differential fuzzing glossary entry.
func newFuzzCmd() *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Stochastically search for a binary/naive or SIMD/sequential disagreement",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var bases []fuzz.BaseSpec
			for _, a := range cfg.Alphabets {
				bases = append(bases, fuzz.BaseSpec{Base: a.Base, Alph: a.Chars})
			}

			findings := fuzz.Run(fuzz.Config{
				Bases:      bases,
				Chains:     cfg.Chains,
				Iterations: cfg.Iterations,
				Decay:      cfg.Decay,
				Verbose:    verbose || cfg.Verbose,
			})

			if len(findings) == 0 {
				fmt.Println("fuzz: no disagreements found")
				return nil
			}
			for _, f := range findings {
				fmt.Printf("DISAGREEMENT kind=%s base=%d %s %c %s\n",
					f.Kind, f.Trial.Base, f.Trial.Z1, f.Trial.Op, f.Trial.Z2)
			}
			return fmt.Errorf("fuzz: %d disagreement(s) found", len(findings))
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "harness YAML config path (defaults built in)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress every 10s")
	return cmd
}

// newBenchCmd runs a fixed batch of trials through pkg/harness's worker
// pool purely to measure throughput — the teacher's pkg/search.WorkerPool
// ETA/throughput ticker, retargeted at arithmetic trials instead of
// instruction-sequence candidates.
func newBenchCmd() *cobra.Command {
	var configPath string
	var count int
	var workers int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark worker-pool throughput over a generated trial batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var trials []harness.Trial
			for i := 0; i < count; i++ {
				preset := cfg.Alphabets[i%len(cfg.Alphabets)]
				span := 1 + i%30
				z1 := repeatingDigits(preset.Chars, span)
				z2 := repeatingDigits(preset.Chars, span/2+1)
				ops := []byte{'+', '-', '*'}
				trials = append(trials, harness.Trial{
					Base: preset.Base, Alph: preset.Chars, Z1: z1, Z2: z2, Op: ops[i%3],
				})
			}

			nw := workers
			if nw <= 0 {
				nw = cfg.Workers
			}
			wp := harness.NewWorkerPool(nw)
			start := time.Now()
			wp.RunTrials(trials, verbose)
			elapsed := time.Since(start)

			checked, found := wp.Stats()
			fmt.Printf("bench: %d trials, %d checked, %d found, %s elapsed (%.0f checks/s)\n",
				len(trials), checked, found, elapsed.Round(time.Millisecond),
				float64(checked)/elapsed.Seconds())
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "harness YAML config path (defaults built in)")
	cmd.Flags().IntVar(&count, "count", 10_000, "number of trials to generate")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = config default, which itself 0 = NumCPU)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each finding and each skipped trial")
	return cmd
}
