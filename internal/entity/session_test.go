package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionRateEmptyPopulation(t *testing.T) {
	assert.Equal(t, 0, ConversionRate(nil, StepSalesPage))
	assert.Equal(t, 0, ConversionRate([]Session{}, StepSalesPage))
}

func TestConversionRateOneOfFour(t *testing.T) {
	sessions := []Session{
		{ID: "s1", StepsReached: []FunnelStep{StepWelcome, StepSalesPage}},
		{ID: "s2", StepsReached: []FunnelStep{StepWelcome}},
		{ID: "s3", StepsReached: []FunnelStep{StepWelcome, StepHistoria}},
		{ID: "s4"},
	}

	assert.Equal(t, 25, ConversionRate(sessions, StepSalesPage))
	assert.Equal(t, 75, ConversionRate(sessions, StepWelcome))
	assert.Equal(t, 0, ConversionRate(sessions, StepFeed))
}

func TestConversionRateRounds(t *testing.T) {
	sessions := []Session{
		{ID: "s1", StepsReached: []FunnelStep{StepFeed}},
		{ID: "s2", StepsReached: []FunnelStep{StepFeed}},
		{ID: "s3"},
	}

	// 2/3 = 66.67 → 67
	assert.Equal(t, 67, ConversionRate(sessions, StepFeed))
}

func TestSessionReached(t *testing.T) {
	s := Session{StepsReached: []FunnelStep{StepWelcome, StepFeed}}

	assert.True(t, s.Reached(StepFeed))
	assert.False(t, s.Reached(StepSalesPage))
}
