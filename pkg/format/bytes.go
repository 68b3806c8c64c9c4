package format

import "fmt"

var byteUnits = [...]string{"K", "M", "G", "T"}

// HumanBytes formats n with one decimal and a binary unit suffix:
// 512 -> "512B", 1536 -> "1.5K", 1<<30 -> "1.0G". Values of a thousand
// terabytes and up stay in T.
func HumanBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%dB", n)
	}

	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f%s", value, byteUnits[unit])
}
