package indicator

import (
	"math"
	"testing"

	"github.com/rxtech-lab/argo-replay/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type CoreTestSuite struct {
	suite.Suite
}

func TestCoreSuite(t *testing.T) {
	suite.Run(t, new(CoreTestSuite))
}

func (suite *CoreTestSuite) single(values Values, err error) []float64 {
	suite.Require().NoError(err)

	data, err := values.SingleValues()
	suite.Require().NoError(err)

	return data
}

func (suite *CoreTestSuite) TestSMA() {
	out := suite.single(SMA([]float64{1, 2, 3, 4, 5}, 3))

	suite.Require().Len(out, 5)
	suite.True(math.IsNaN(out[0]))
	suite.True(math.IsNaN(out[1]))
	suite.Equal(2.0, out[2])
	suite.Equal(3.0, out[3])
	suite.Equal(4.0, out[4])
}

func (suite *CoreTestSuite) TestSMAPeriodOne() {
	out := suite.single(SMA([]float64{1, 2, 3}, 1))
	suite.Equal([]float64{1, 2, 3}, out)
}

func (suite *CoreTestSuite) TestSMAPeriodLongerThanSeries() {
	out := suite.single(SMA([]float64{1, 2}, 5))

	for _, v := range out {
		suite.True(math.IsNaN(v))
	}
}

func (suite *CoreTestSuite) TestSMAMissingParams() {
	_, err := SMA([]float64{1, 2, 3})
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))

	_, err = SMA()
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))
}

func (suite *CoreTestSuite) TestSMAWrongTypes() {
	_, err := SMA("not a slice", 3)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidType))

	_, err = SMA([]float64{1, 2, 3}, "three")
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidType))
}

func (suite *CoreTestSuite) TestSMAInvalidPeriod() {
	_, err := SMA([]float64{1, 2, 3}, 0)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}

func (suite *CoreTestSuite) TestEMASeedsAtFirstValue() {
	out := suite.single(EMA([]float64{10, 10, 10, 10}, 3))

	// A constant series yields a constant EMA.
	for _, v := range out {
		suite.InDelta(10.0, v, 1e-12)
	}

	out = suite.single(EMA([]float64{10, 16}, 3))
	suite.Equal(10.0, out[0])
	// alpha = 2/(3+1) = 0.5
	suite.InDelta(13.0, out[1], 1e-12)
}

func (suite *CoreTestSuite) TestATR() {
	high := []float64{11, 12, 13, 14}
	low := []float64{9, 10, 11, 12}
	closes := []float64{10, 11, 12, 13}

	out := suite.single(ATR(high, low, closes, 2))

	suite.Require().Len(out, 4)
	suite.True(math.IsNaN(out[0]))
	// TR is 2 everywhere for this series, so ATR settles at 2.
	suite.InDelta(2.0, out[1], 1e-12)
	suite.InDelta(2.0, out[2], 1e-12)
	suite.InDelta(2.0, out[3], 1e-12)
}

func (suite *CoreTestSuite) TestRollingStd() {
	out := suite.single(RollingStd([]float64{2, 2, 2, 4}, 2))

	suite.Require().Len(out, 4)
	suite.True(math.IsNaN(out[0]))
	suite.InDelta(0.0, out[1], 1e-12)
	suite.InDelta(0.0, out[2], 1e-12)
	// Population std of {2, 4} is 1.
	suite.InDelta(1.0, out[3], 1e-12)
}

func (suite *CoreTestSuite) TestOutputLengthMatchesInput() {
	data := make([]float64, 37)
	for i := range data {
		data[i] = float64(i)
	}

	suite.Len(suite.single(SMA(data, 5)), len(data))
	suite.Len(suite.single(EMA(data, 5)), len(data))
	suite.Len(suite.single(RollingStd(data, 5)), len(data))
}
