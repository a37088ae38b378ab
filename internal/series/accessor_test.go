package series

import (
	"testing"

	"github.com/rxtech-lab/argo-replay/internal/types"
	"github.com/rxtech-lab/argo-replay/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type AccessorTestSuite struct {
	suite.Suite
	cursor   *Cursor
	accessor *Accessor
}

func TestAccessorSuite(t *testing.T) {
	suite.Run(t, new(AccessorTestSuite))
}

func (suite *AccessorTestSuite) SetupTest() {
	suite.cursor = NewCursor()
	suite.Require().NoError(suite.cursor.SetLength(3))

	suite.accessor = NewAccessor(types.MarketSeries{
		Symbol:     "AAPL",
		Timestamps: []int64{1000, 1060, 1120},
		Open:       []float64{10, 11, 12},
		High:       []float64{10.5, 11.5, 12.5},
		Low:        []float64{9.5, 10.5, 11.5},
		Close:      []float64{10.2, 11.2, 12.2},
		Volume:     []int64{100, 200, 300},
	}, suite.cursor)
}

func (suite *AccessorTestSuite) TestColumnsShareCursor() {
	suite.Same(suite.cursor, suite.accessor.Cursor())

	suite.Require().NoError(suite.cursor.Advance(0))
	suite.Require().NoError(suite.cursor.Advance(1))

	// For a fixed cursor value every column's [-1] refers to the same bar.
	open, err := suite.accessor.Open.At(-1)
	suite.NoError(err)
	suite.Equal(11.0, open)

	closePrice, err := suite.accessor.Close.At(-1)
	suite.NoError(err)
	suite.Equal(11.2, closePrice)

	volume, err := suite.accessor.Volume.At(-1)
	suite.NoError(err)
	suite.Equal(200.0, volume)

	ts, err := suite.accessor.Time.At(-1)
	suite.NoError(err)
	suite.Equal(1060.0, ts)
}

func (suite *AccessorTestSuite) TestLookAheadBlockedOnAllColumns() {
	suite.Require().NoError(suite.cursor.Advance(0))

	_, err := suite.accessor.Close.At(1)
	suite.True(errors.IsLookAheadError(err))

	_, err = suite.accessor.High.At(2)
	suite.True(errors.IsLookAheadError(err))
}

func (suite *AccessorTestSuite) TestCurrentBar() {
	suite.Require().NoError(suite.cursor.Advance(0))

	bar, err := suite.accessor.CurrentBar()
	suite.NoError(err)
	suite.Equal(types.Bar{
		Timestamp: 1000,
		Open:      10,
		High:      10.5,
		Low:       9.5,
		Close:     10.2,
		Volume:    100,
	}, bar)
}

func (suite *AccessorTestSuite) TestCurrentBarBeforeStartFails() {
	_, err := suite.accessor.CurrentBar()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidState))
}

func (suite *AccessorTestSuite) TestSymbol() {
	suite.Equal("AAPL", suite.accessor.Symbol)
}
