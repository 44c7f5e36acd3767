// Command cdclsat reads a DIMACS CNF file and reports whether it is
// satisfiable, adapted from cespare-saturday's cmd/saturday but built on
// cobra/pflag for argument parsing rather than the standard flag package,
// per the rest of the retrieved corpus's CLI convention.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solverkit/cdclsat"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		kind    string
		deadlin time.Duration
		verify  bool
		seed    int64
		hasSeed bool
	)

	cmd := &cobra.Command{
		Use:   "cdclsat [input.cnf]",
		Short: "Decide a DIMACS CNF formula's satisfiability",
		Long: `cdclsat reads a single problem specification in the DIMACS CNF format
and reports whether it is satisfiable.

It writes the output in the conventional DIMACS way: either the first
line is "s UNSATISFIABLE", or else the first line is "s SATISFIABLE"
and a second line gives the assignment as "v <lit> <lit> ... 0". When
--deadline expires first, the only line is "s TIMEOUT".

If no input file is given, cdclsat reads from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			cnf, err := cdclsat.ParseDIMACS(r)
			if err != nil {
				return fmt.Errorf("reading DIMACS input: %w", err)
			}

			logger := zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			}
			defer logger.Sync()

			cfg := cdclsat.Config{
				Kind:   solverKindFromFlag(kind),
				Verify: verify,
				Logger: logger,
			}
			if deadlin > 0 {
				cfg.Deadline = deadlin
			}
			if hasSeed {
				cfg.RandomSeed = &seed
			}

			result, err := cdclsat.Solve(cnf, cfg)
			if err != nil {
				return err
			}

			if verbose {
				fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(result.Stats))
			}

			switch result.Verdict {
			case cdclsat.Satisfiable:
				fmt.Println("s SATISFIABLE")
				printModel(result.Model)
			case cdclsat.TimedOut:
				fmt.Println("s TIMEOUT")
			default:
				fmt.Println("s UNSATISFIABLE")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print solver statistics and trace logging")
	flags.StringVar(&kind, "engine", "auto", "engine to use: auto, cdcl, 2sat, horn, exhaustive")
	flags.DurationVar(&deadlin, "deadline", 0, "abort and report TIMEOUT after this long (0 disables)")
	flags.BoolVar(&verify, "verify", false, "re-check a SATISFIABLE verdict against the input before reporting it")
	flags.Int64Var(&seed, "seed", 0, "fix the CDCL engine's decision-polarity random seed")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		hasSeed = cmd.Flags().Changed("seed")
	}

	return cmd
}

func solverKindFromFlag(s string) cdclsat.SolverKind {
	switch s {
	case "cdcl":
		return cdclsat.CDCL
	case "2sat":
		return cdclsat.TwoSAT
	case "horn":
		return cdclsat.Horn
	case "exhaustive":
		return cdclsat.Exhaustive
	default:
		return cdclsat.Auto
	}
}

func printModel(model cdclsat.Model) {
	fmt.Print("v")
	for i, v := range model {
		if v {
			fmt.Print(" ", i+1)
		} else {
			fmt.Print(" ", -(i + 1))
		}
	}
	fmt.Println(" 0")
}
