package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-replay/internal/datasource"
	"github.com/rxtech-lab/argo-replay/internal/engine"
	"github.com/rxtech-lab/argo-replay/internal/logger"
	"github.com/rxtech-lab/argo-replay/internal/strategy"
	"github.com/rxtech-lab/argo-replay/internal/types"
	"github.com/rxtech-lab/argo-replay/internal/version"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func newLogger(verbose bool) (*logger.Logger, error) {
	if verbose {
		return logger.NewDebugLogger()
	}

	return logger.NewLogger()
}

// runAction loads the data and configuration, evaluates the chosen strategy
// over the series, and writes or prints the run result.
func runAction(ctx context.Context, cmd *cli.Command) error {
	dataPath := cmd.String("data")
	strategyName := cmd.String("strategy")
	configPath := cmd.String("config")
	symbol := cmd.String("symbol")
	outputPath := cmd.String("output")

	log, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return err
	}
	defer log.Sync()

	configContent := ""

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		configContent = string(content)
	}

	config, err := engine.ParseConfig(configContent)
	if err != nil {
		return err
	}

	registry := strategy.NewBuiltinRegistry()

	strat, err := registry.Get(strategyName)
	if err != nil {
		return err
	}

	// The same configuration file carries both the engine keys and the
	// strategy's own parameter block.
	if err := strat.Initialize(configContent); err != nil {
		return fmt.Errorf("failed to initialize strategy: %w", err)
	}

	if symbol == "" {
		symbol = filepath.Base(dataPath)
	}

	data, err := datasource.ReadCSV(dataPath, symbol)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(data.Len()), "replaying")

	onBar := engine.OnBarCallback(func(current, total int) {
		_ = bar.Set(current)
	})

	result, err := engine.New(config, log).Run(strat, data, optional.Some(onBar))
	if err != nil {
		return err
	}

	log.Info("run finished",
		zap.String("strategy", strat.Name()),
		zap.String("symbol", symbol),
		zap.Int("trade_count", result.TradeCount),
		zap.Float64("win_rate", result.WinRate),
	)

	if outputPath != "" {
		if err := types.WriteRunResult(outputPath, result); err != nil {
			return err
		}

		log.Info("result written", zap.String("path", outputPath))

		return nil
	}

	fmt.Printf("returns: %v\nequity_curve: %v\nwin_rate: %.4f\ntrade_count: %d\n",
		result.Returns, result.EquityCurve, result.WinRate, result.TradeCount)

	return nil
}

// listAction prints the available strategies and their optimization spaces.
func listAction(ctx context.Context, cmd *cli.Command) error {
	registry := strategy.NewBuiltinRegistry()

	for _, name := range registry.List() {
		strat, err := registry.Get(name)
		if err != nil {
			return err
		}

		fmt.Println(name)

		for param, bounds := range strat.OptimizationSpace() {
			fmt.Printf("  %s: [%g, %g]\n", param, bounds.Min, bounds.Max)
		}
	}

	return nil
}

// schemaAction prints the JSON schema for the engine configuration.
func schemaAction(ctx context.Context, cmd *cli.Command) error {
	config := engine.EmptyConfig()

	schema, err := config.GenerateSchemaJSON()
	if err != nil {
		return err
	}

	fmt.Println(schema)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "replay",
		Usage:   "Evaluate a trading strategy over a historical bar series",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run one strategy over one CSV bar series",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Usage:    "Path to the CSV data file (time,open,high,low,close,volume)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "strategy",
						Usage: "Strategy name (see 'replay list')",
						Value: "sma_crossover",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to the YAML configuration file",
					},
					&cli.StringFlag{
						Name:  "symbol",
						Usage: "Symbol label for the series (defaults to the data file name)",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "Write the run result to this YAML file instead of stdout",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug logging",
					},
				},
				Action: runAction,
			},
			{
				Name:   "list",
				Usage:  "List available strategies and their optimization spaces",
				Action: listAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema for the engine configuration",
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
