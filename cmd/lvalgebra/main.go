// SPDX-License-Identifier: MIT

// Command lvalgebra is an interactive matrix calculator over arbitrary
// precision reals.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalgebra/config"
	"github.com/katalvlaran/lvalgebra/literal"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/repl"
)

var (
	configFile string
	preset     string
	verbose    bool
	noColor    bool

	plot     bool
	plotFrom float64
	plotTo   float64
	plotW    int

	check bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lvalgebra",
		Short: "matrix calculator: reduction, determinants, nullspaces and eigenpairs",
		RunE:  runRepl,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "numeric preset: default, exact or loose")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "plain output")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "interactive session (default)",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [command...]",
		Short: "evaluate commands in one session and print each result",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runEval,
	}

	eigenCmd := &cobra.Command{
		Use:   "eigen [literal]",
		Short: "eigenvalues and eigenvectors of a matrix literal",
		Args:  cobra.ExactArgs(1),
		RunE:  runEigen,
	}
	eigenCmd.Flags().BoolVar(&check, "check", false, "also print float64 eigenvalues from gonum")

	charpolyCmd := &cobra.Command{
		Use:   "charpoly [literal]",
		Short: "characteristic polynomial of a matrix literal",
		Args:  cobra.ExactArgs(1),
		RunE:  runCharpoly,
	}
	charpolyCmd.Flags().BoolVar(&plot, "plot", false, "plot |p(x)| on the real axis")
	charpolyCmd.Flags().Float64Var(&plotFrom, "from", -5, "plot range start")
	charpolyCmd.Flags().Float64Var(&plotTo, "to", 5, "plot range end")
	charpolyCmd.Flags().IntVar(&plotW, "width", 80, "plot width in samples")

	rootCmd.AddCommand(replCmd, evalCmd, eigenCmd, charpolyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves --config, then --preset, then the defaults.
func loadConfig(log *slog.Logger) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configFile, err)
		}
		cfg = c
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
	default:
		cfg = config.DefaultConfig()
	}
	if noColor {
		cfg.Color = false
	}
	log.Debug("config resolved",
		"file", configFile, "preset", preset,
		"precision", cfg.Precision, "epsilon", cfg.Epsilon,
		"root_places", cfg.RootPlaces, "max_iterations", cfg.MaxIterations)

	return cfg, nil
}

func newSession() (*repl.Session, *config.Config, *slog.Logger, error) {
	log := newLogger()
	cfg, err := loadConfig(log)
	if err != nil {
		return nil, nil, log, err
	}
	s, err := repl.NewSession(cfg)
	if err != nil {
		return nil, nil, log, err
	}

	return s, cfg, log, nil
}

func runRepl(cmd *cobra.Command, _ []string) error {
	s, _, log, err := newSession()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Debug("session started")
	fmt.Fprintln(cmd.OutOrStdout(), "type 'help' for commands, an empty line to quit")
	err = s.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	log.Debug("session ended", "vars", len(s.Vars()), "err", err)

	return err
}

func runEval(cmd *cobra.Command, args []string) error {
	s, _, log, err := newSession()
	if err != nil {
		return err
	}
	for _, line := range args {
		res, err := s.Eval(line)
		if err != nil {
			log.Debug("eval failed", "command", line, "err", err)
			return fmt.Errorf("%s: %w", line, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
	}

	return nil
}

func runEigen(cmd *cobra.Command, args []string) error {
	_, cfg, log, err := newSession()
	if err != nil {
		return err
	}
	m, err := literal.Parse(args[0], cfg.Precision, cfg.MatrixOptions()...)
	if err != nil {
		return err
	}
	pairs, err := matrix.EigenMap(m, cfg.MatrixOptions()...)
	if err != nil {
		return err
	}
	log.Debug("eigen decomposition", "rows", m.Rows(), "distinct", len(pairs))
	writeEigenTable(cmd.OutOrStdout(), pairs)
	if !check {
		return nil
	}
	approx, err := matrix.GonumEigenvalues(m)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "gonum:", formatValues(approx))

	return nil
}

func runCharpoly(cmd *cobra.Command, args []string) error {
	_, cfg, _, err := newSession()
	if err != nil {
		return err
	}
	m, err := literal.Parse(args[0], cfg.Precision, cfg.MatrixOptions()...)
	if err != nil {
		return err
	}
	p, err := matrix.CharacteristicPolynomial(m)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), p)
	if !plot {
		return nil
	}
	graph, err := plotMagnitude(p, plotFrom, plotTo, plotW)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), graph)

	return nil
}
