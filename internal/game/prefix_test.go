package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneIndexCoversAllZones(t *testing.T) {
	const width = 600.0
	count := len(Buckets)
	seen := make(map[int]bool)
	prev := 0
	for x := 0.0; x < width; x += 0.5 {
		idx := ZoneIndex(x, width, count)
		assert.GreaterOrEqual(t, idx, prev, "zone index must be monotonic at x=%v", x)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, count)
		seen[idx] = true
		prev = idx
	}
	assert.Len(t, seen, count)
}

func TestZoneIndexClamps(t *testing.T) {
	assert.Equal(t, 0, ZoneIndex(-50, 600, 6))
	assert.Equal(t, 5, ZoneIndex(600, 600, 6))
	assert.Equal(t, 5, ZoneIndex(10_000, 600, 6))
	assert.Equal(t, 0, ZoneIndex(300, 0, 6))
}

func TestZoneIndexBoundaries(t *testing.T) {
	cases := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{99.99, 0},
		{100, 1},
		{250, 2},
		{599.9, 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ZoneIndex(c.x, 600, 6), "x=%v", c.x)
	}
}

func TestBucketAt(t *testing.T) {
	idx, p := BucketAt(ZoneCenter(4, 600, 6), 600)
	assert.Equal(t, 4, idx)
	assert.Equal(t, PrefixIr, p)
}

func TestPrefixValid(t *testing.T) {
	for _, b := range Buckets {
		assert.True(t, b.Valid())
	}
	assert.False(t, Prefix("non-").Valid())
	assert.False(t, Prefix("").Valid())
}
