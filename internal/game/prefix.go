package game

import "math"

// Prefix is a negation morpheme that turns a root word into its opposite.
type Prefix string

const (
	PrefixUn  Prefix = "un-"
	PrefixIn  Prefix = "in-"
	PrefixIm  Prefix = "im-"
	PrefixIl  Prefix = "il-"
	PrefixIr  Prefix = "ir-"
	PrefixDis Prefix = "dis-"
)

// Buckets lists the drop targets left to right. Zone i of the canvas maps to Buckets[i].
var Buckets = []Prefix{PrefixUn, PrefixIn, PrefixIm, PrefixIl, PrefixIr, PrefixDis}

func (p Prefix) String() string {
	return string(p)
}

// Valid reports whether p is one of the bucket prefixes.
func (p Prefix) Valid() bool {
	for _, b := range Buckets {
		if b == p {
			return true
		}
	}
	return false
}

// ZoneIndex returns the bucket zone that contains centerX on a canvas of the
// given width split into count equal zones. Out-of-range positions clamp to
// the first or last zone.
func ZoneIndex(centerX, width float64, count int) int {
	if count <= 1 || width <= 0 {
		return 0
	}
	zoneWidth := width / float64(count)
	idx := int(math.Floor(centerX / zoneWidth))
	return max(0, min(count-1, idx))
}

// BucketAt returns the prefix of the zone containing centerX.
func BucketAt(centerX, width float64) (int, Prefix) {
	idx := ZoneIndex(centerX, width, len(Buckets))
	return idx, Buckets[idx]
}

// ZoneCenter returns the horizontal midpoint of zone idx.
func ZoneCenter(idx int, width float64, count int) float64 {
	zoneWidth := width / float64(count)
	return zoneWidth*float64(idx) + zoneWidth/2
}
