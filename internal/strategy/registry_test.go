package strategy

import (
	"testing"

	"github.com/rxtech-lab/argo-replay/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) TestRegisterAndGet() {
	registry := NewRegistry()

	err := registry.Register("sma_crossover", func() Strategy { return NewSMACrossover() })
	suite.Require().NoError(err)

	strat, err := registry.Get("sma_crossover")
	suite.Require().NoError(err)
	suite.Equal("sma_crossover_5_20", strat.Name())
}

func (suite *RegistryTestSuite) TestGetReturnsFreshInstances() {
	registry := NewBuiltinRegistry()

	first, err := registry.Get("rsi_reversal")
	suite.Require().NoError(err)

	second, err := registry.Get("rsi_reversal")
	suite.Require().NoError(err)

	suite.NotSame(first, second)
}

func (suite *RegistryTestSuite) TestDuplicateRegistration() {
	registry := NewRegistry()

	suite.Require().NoError(registry.Register("dup", func() Strategy { return NewSMACrossover() }))

	err := registry.Register("dup", func() Strategy { return NewSMACrossover() })
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *RegistryTestSuite) TestGetUnknown() {
	registry := NewRegistry()

	_, err := registry.Get("missing")
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *RegistryTestSuite) TestListSorted() {
	registry := NewBuiltinRegistry()

	suite.Equal([]string{"bollinger_reversion", "rsi_reversal", "sma_crossover"}, registry.List())
}
