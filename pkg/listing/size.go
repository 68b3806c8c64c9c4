package listing

import (
	"math"
	"strconv"
)

// Binary unit multipliers for the suffixes ls -h prints.
const (
	kib int64 = 1 << (10 * (iota + 1))
	mib
	gib
	tib
)

// ParseSize converts a size column such as "1536", "4.0K" or "1.2G" to bytes.
// The leading decimal number is scaled by the unit letter right after it,
// case-insensitively; any other suffix leaves it unscaled. The result is
// truncated toward zero and saturates at math.MaxInt64. Text without a
// leading number is 0.
func ParseSize(s string) int64 {
	end, dot := 0, false
	for ; end < len(s); end++ {
		c := s[end]
		if c == '.' && !dot {
			dot = true
			continue
		}
		if c < '0' || c > '9' {
			break
		}
	}
	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}

	multiplier := int64(1)
	if end < len(s) {
		switch s[end] {
		case 'K', 'k':
			multiplier = kib
		case 'M', 'm':
			multiplier = mib
		case 'G', 'g':
			multiplier = gib
		case 'T', 't':
			multiplier = tib
		}
	}
	bytes := value * float64(multiplier)
	if bytes >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(bytes)
}
