//go:build !js

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer()
	require.NoError(t, err)

	short := m.Measure("do", 24)
	long := m.Measure("comfortable", 24)
	assert.Greater(t, short, 0.0)
	assert.Greater(t, long, short)
	assert.InDelta(t, 2*m.Measure("do", 12), m.Measure("do", 24), 2.0, "width scales with font size")
	assert.Equal(t, 0.0, m.Measure("", 24))
}
