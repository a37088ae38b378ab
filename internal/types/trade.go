package types

// Trade records one completed open/close cycle. Trades are immutable once
// recorded and appended to the trade log in close order.
type Trade struct {
	EntryPrice float64 `yaml:"entry_price"`
	ExitPrice  float64 `yaml:"exit_price"`
	EntryIndex int     `yaml:"entry_index"`
	ExitIndex  int     `yaml:"exit_index"`
	// ReturnPct is (exit - entry) / entry. Size is carried for reporting but
	// does not scale the realized return (full-unit account model).
	ReturnPct float64 `yaml:"return_pct"`
	Size      float64 `yaml:"size"`
}
