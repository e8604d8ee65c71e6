package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rothcalc/rothcalc/internal/calculation"
	"github.com/rothcalc/rothcalc/internal/config"
	"github.com/rothcalc/rothcalc/internal/domain"
	"github.com/rothcalc/rothcalc/internal/logging"
	"github.com/rothcalc/rothcalc/internal/output"
	"github.com/rothcalc/rothcalc/internal/server"
)

var (
	configFile string
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rothcalc",
		Short: "Roth vs Traditional retirement comparison calculator",
		Long: "rothcalc projects retirement account growth under Roth and Traditional\n" +
			"tax treatments and finds the monthly contribution that equalizes their\n" +
			"after-tax outcomes.",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to scenario configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newCalculateCmd())
	rootCmd.AddCommand(newEquivalentCmd())
	rootCmd.AddCommand(newExampleCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newEngine wires a calculation engine with a zap-backed logger honoring the
// debug flag.
func newEngine() (*calculation.CalculationEngine, error) {
	level := "info"
	if debug {
		level = "debug"
	}
	logger, err := logging.NewLogger(level, "console")
	if err != nil {
		return nil, err
	}

	engine := calculation.NewCalculationEngine()
	engine.Debug = debug
	engine.SetLogger(logging.NewEngineLogger(logger))
	return engine, nil
}

func loadScenarios() (*domain.Configuration, error) {
	if configFile == "" {
		return nil, fmt.Errorf("a configuration file is required (use --config, or 'rothcalc example' to generate one)")
	}
	return config.NewInputParser().LoadFromFile(configFile)
}

func newCalculateCmd() *cobra.Command {
	var format string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Evaluate every configured scenario and render a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScenarios()
			if err != nil {
				return err
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}

			results, err := engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			// Console formats print directly; file formats report their path.
			name := output.NormalizeFormatName(format)
			if f := output.GetFormatterByName(name); f != nil && strings.HasPrefix(f.Name(), "console") {
				data, err := f.Format(results)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := output.GenerateReport(results, name, outputDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console",
		fmt.Sprintf("output format: %s, or all", strings.Join(output.AvailableFormatterNames(), ", ")))
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory for file-based reports")
	return cmd
}

func newEquivalentCmd() *cobra.Command {
	var scenarioName string
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "equivalent",
		Short: "Find the Roth monthly contribution matching each Traditional outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScenarios()
			if err != nil {
				return err
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}

			tol := decimal.NewFromFloat(tolerance)
			if tol.LessThanOrEqual(decimal.Zero) {
				tol = cfg.Solver.Tolerance
			}

			var results []*domain.EquivalenceResult
			for i := range cfg.Scenarios {
				a := &cfg.Scenarios[i]
				if scenarioName != "" && a.Name != scenarioName {
					continue
				}
				results = append(results, engine.SolveEquivalence(a, tol))
			}
			if len(results) == 0 {
				return fmt.Errorf("no scenario named %q in %s", scenarioName, configFile)
			}

			_, err = cmd.OutOrStdout().Write(output.FormatEquivalence(results))
			return err
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "solve only the named scenario")
	cmd.Flags().Float64VarP(&tolerance, "tolerance", "t", 0, "acceptable after-tax gap in dollars (0 = config/solver default)")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write a starter scenario configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			example := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(example, outputFile); err != nil {
				return fmt.Errorf("writing example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "example configuration written to %s\n", outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "example_config.yaml", "destination file")
	return cmd
}

func newServeCmd() *cobra.Command {
	var serverConfigFile string
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluator and solver as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(serverConfigFile)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			level := cfg.LogLevel
			if debug {
				level = "debug"
			}

			logger, err := logging.NewLogger(level, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			engine := calculation.NewCalculationEngine()
			engine.Debug = debug
			engine.SetLogger(logging.NewEngineLogger(logger))

			srv := server.New(engine, logger, decimal.NewFromFloat(cfg.Tolerance))
			return srv.ListenAndServe(cfg.Listen)
		},
	}

	cmd.Flags().StringVar(&serverConfigFile, "server-config", "", "path to server configuration file")
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address override (e.g. :8080)")
	return cmd
}
