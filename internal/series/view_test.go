package series

import (
	"math"
	"testing"

	"github.com/rxtech-lab/argo-replay/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ViewTestSuite struct {
	suite.Suite
	cursor *Cursor
	view   *View
}

func TestViewSuite(t *testing.T) {
	suite.Run(t, new(ViewTestSuite))
}

func (suite *ViewTestSuite) SetupTest() {
	suite.cursor = NewCursor()
	suite.Require().NoError(suite.cursor.SetLength(5))
	suite.view = NewView([]float64{10, 11, 9, 12, 13}, suite.cursor)
}

func (suite *ViewTestSuite) advanceTo(i int) {
	for j := 0; j <= i; j++ {
		suite.Require().NoError(suite.cursor.Advance(j))
	}
}

func (suite *ViewTestSuite) TestNegativeOneIsCurrentBar() {
	for i := 0; i < 5; i++ {
		suite.Require().NoError(suite.cursor.Advance(i))

		value, err := suite.view.At(-1)
		suite.NoError(err)
		suite.Equal([]float64{10, 11, 9, 12, 13}[i], value)
	}
}

func (suite *ViewTestSuite) TestNegativeIndexingLooksBack() {
	suite.advanceTo(3)

	value, err := suite.view.At(-2)
	suite.NoError(err)
	suite.Equal(9.0, value)

	value, err = suite.view.At(-4)
	suite.NoError(err)
	suite.Equal(10.0, value)
}

func (suite *ViewTestSuite) TestAbsoluteIndexing() {
	suite.advanceTo(2)

	value, err := suite.view.At(0)
	suite.NoError(err)
	suite.Equal(10.0, value)

	value, err = suite.view.At(2)
	suite.NoError(err)
	suite.Equal(9.0, value)
}

func (suite *ViewTestSuite) TestFutureAbsoluteIndexFails() {
	suite.advanceTo(0)

	_, err := suite.view.At(1)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeLookAheadViolation))

	var lookAhead *errors.LookAheadError
	suite.Require().True(errors.As(err, &lookAhead))
	suite.Equal(1, lookAhead.Index)
	suite.Equal(1, lookAhead.Resolved)
	suite.Equal(0, lookAhead.Cursor)
}

func (suite *ViewTestSuite) TestNegativePastStartFails() {
	suite.advanceTo(1)

	_, err := suite.view.At(-3)
	suite.Error(err)

	var lookAhead *errors.LookAheadError
	suite.Require().True(errors.As(err, &lookAhead))
	suite.Equal(-3, lookAhead.Index)
	suite.Equal(-1, lookAhead.Resolved)
	suite.Equal(1, lookAhead.Cursor)
}

func (suite *ViewTestSuite) TestReadBeforeFirstAdvanceFails() {
	_, err := suite.view.At(-1)
	suite.Error(err)
	suite.True(errors.IsLookAheadError(err))
}

func (suite *ViewTestSuite) TestLen() {
	suite.Equal(0, suite.view.Len())

	suite.advanceTo(2)
	suite.Equal(3, suite.view.Len())

	suite.Require().NoError(suite.cursor.Advance(3))
	suite.Require().NoError(suite.cursor.Advance(4))
	suite.Equal(5, suite.view.Len())
}

func (suite *ViewTestSuite) TestValuesReturnsBoundedCopy() {
	suite.advanceTo(2)

	values := suite.view.Values()
	suite.Equal([]float64{10, 11, 9}, values)

	// Mutating the copy must not affect the underlying series.
	values[0] = 999

	again, err := suite.view.At(0)
	suite.NoError(err)
	suite.Equal(10.0, again)
}

func (suite *ViewTestSuite) TestSliceTruncatesPastCursor() {
	suite.advanceTo(2)

	// Stop past the cursor truncates to the visible range instead of failing.
	suite.Equal([]float64{10, 11, 9}, suite.view.Slice(0, 5))
	suite.Equal([]float64{11, 9}, suite.view.Slice(1, 100))
	suite.Equal([]float64{}, suite.view.Slice(3, 5))
}

func (suite *ViewTestSuite) TestSliceClampsStart() {
	suite.advanceTo(1)

	suite.Equal([]float64{10, 11}, suite.view.Slice(-2, 2))
}

func (suite *ViewTestSuite) TestNaNValuesPassThrough() {
	cursor := NewCursor()
	suite.Require().NoError(cursor.SetLength(5))

	// A 3-period moving average over [1..5]: warmup bars are NaN.
	view := NewView([]float64{math.NaN(), math.NaN(), 2, 3, 4}, cursor)

	for i := 0; i < 5; i++ {
		suite.Require().NoError(cursor.Advance(i))
	}

	value, err := view.At(-1)
	suite.NoError(err)
	suite.Equal(4.0, value)

	warmup, err := view.At(0)
	suite.NoError(err)
	suite.True(math.IsNaN(warmup))
}
