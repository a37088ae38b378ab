package series

import (
	"testing"

	"github.com/rxtech-lab/argo-replay/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type CursorTestSuite struct {
	suite.Suite
	cursor *Cursor
}

func TestCursorSuite(t *testing.T) {
	suite.Run(t, new(CursorTestSuite))
}

func (suite *CursorTestSuite) SetupTest() {
	suite.cursor = NewCursor()
}

func (suite *CursorTestSuite) TestInitialState() {
	suite.Equal(CursorUnbound, suite.cursor.State())
	suite.Equal(-1, suite.cursor.Current())
	suite.Equal(0, suite.cursor.Length())
	suite.False(suite.cursor.Started())
}

func (suite *CursorTestSuite) TestSetLength() {
	err := suite.cursor.SetLength(5)
	suite.NoError(err)
	suite.Equal(CursorBound, suite.cursor.State())
	suite.Equal(5, suite.cursor.Length())
	suite.False(suite.cursor.Started())
}

func (suite *CursorTestSuite) TestSetLengthRejectsZero() {
	err := suite.cursor.SetLength(0)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *CursorTestSuite) TestSetLengthRejectsNegative() {
	err := suite.cursor.SetLength(-3)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *CursorTestSuite) TestSetLengthTwiceFails() {
	suite.NoError(suite.cursor.SetLength(5))

	err := suite.cursor.SetLength(5)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidState))
}

func (suite *CursorTestSuite) TestSetLengthAfterRunStartFails() {
	suite.NoError(suite.cursor.SetLength(5))
	suite.NoError(suite.cursor.Advance(0))

	err := suite.cursor.SetLength(10)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidState))
}

func (suite *CursorTestSuite) TestAdvanceUnboundFails() {
	err := suite.cursor.Advance(0)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidState))
}

func (suite *CursorTestSuite) TestAdvanceOutOfRange() {
	suite.NoError(suite.cursor.SetLength(3))

	err := suite.cursor.Advance(3)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeOutOfRange))

	err = suite.cursor.Advance(-1)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeOutOfRange))
}

func (suite *CursorTestSuite) TestAdvanceWalksStates() {
	suite.NoError(suite.cursor.SetLength(3))

	suite.NoError(suite.cursor.Advance(0))
	suite.Equal(CursorRunning, suite.cursor.State())
	suite.True(suite.cursor.Started())
	suite.Equal(0, suite.cursor.Current())

	suite.NoError(suite.cursor.Advance(1))
	suite.Equal(CursorRunning, suite.cursor.State())

	suite.NoError(suite.cursor.Advance(2))
	suite.Equal(CursorDone, suite.cursor.State())
	suite.Equal(2, suite.cursor.Current())
}

func (suite *CursorTestSuite) TestAdvanceAfterDoneFails() {
	suite.NoError(suite.cursor.SetLength(1))
	suite.NoError(suite.cursor.Advance(0))
	suite.Equal(CursorDone, suite.cursor.State())

	err := suite.cursor.Advance(0)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidState))
}

func (suite *CursorTestSuite) TestFullWalkVisitsEveryBarOnce() {
	const n = 100

	suite.NoError(suite.cursor.SetLength(n))

	visited := make([]int, 0, n)
	for i := 0; i < n; i++ {
		suite.Require().NoError(suite.cursor.Advance(i))
		visited = append(visited, suite.cursor.Current())
	}

	suite.Len(visited, n)

	for i, v := range visited {
		suite.Equal(i, v)
	}
}
