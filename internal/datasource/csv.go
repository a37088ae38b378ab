// Package datasource loads market series from disk for the CLI. The engine
// itself never touches storage; it receives a fully built MarketSeries.
package datasource

import (
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rxtech-lab/argo-replay/internal/types"
	"github.com/rxtech-lab/argo-replay/pkg/errors"
)

type barRecord struct {
	Time   int64   `csv:"time"`
	Open   float64 `csv:"open"`
	High   float64 `csv:"high"`
	Low    float64 `csv:"low"`
	Close  float64 `csv:"close"`
	Volume int64   `csv:"volume"`
}

// ReadCSV loads a bar series from a CSV file with columns
// time,open,high,low,close,volume (time in unix seconds) into column form.
func ReadCSV(path string, symbol string) (types.MarketSeries, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.MarketSeries{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to open data file %s", path)
	}
	defer file.Close()

	var records []*barRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return types.MarketSeries{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to parse data file %s", path)
	}

	data := types.MarketSeries{
		Symbol:     symbol,
		Timestamps: make([]int64, len(records)),
		Open:       make([]float64, len(records)),
		High:       make([]float64, len(records)),
		Low:        make([]float64, len(records)),
		Close:      make([]float64, len(records)),
		Volume:     make([]int64, len(records)),
	}

	for i, record := range records {
		data.Timestamps[i] = record.Time
		data.Open[i] = record.Open
		data.High[i] = record.High
		data.Low[i] = record.Low
		data.Close[i] = record.Close
		data.Volume[i] = record.Volume
	}

	if err := data.Validate(); err != nil {
		return types.MarketSeries{}, err
	}

	return data, nil
}
