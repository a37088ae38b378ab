package types

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunResult is the sole output of one engine run, produced from the trade log
// after the final bar. Two runs over identical series and parameters yield
// bit-identical RunResults.
type RunResult struct {
	// Returns holds per-trade realized returns in close order.
	Returns []float64 `yaml:"returns" json:"returns"`
	// EquityCurve holds cumulative compounded growth, one point per closed
	// trade; a run with no trades yields [1.0].
	EquityCurve []float64 `yaml:"equity_curve" json:"equity_curve"`
	// WinRate is the fraction of trades with strictly positive return,
	// 0 when there are no trades.
	WinRate float64 `yaml:"win_rate" json:"win_rate"`
	// TradeCount is the number of completed trades.
	TradeCount int `yaml:"trade_count" json:"trade_count"`
}

// WriteRunResult writes a run result to the given path as YAML.
func WriteRunResult(path string, result RunResult) error {
	// Marshal the struct to YAML
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal run result to YAML: %w", err)
	}

	// Write the YAML data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run result to file: %w", err)
	}

	return nil
}
