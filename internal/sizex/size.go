// Package sizex formats byte counts for user-facing messages.
package sizex

import (
	"math"
	"strconv"
)

var units = []string{"Bytes", "KB", "MB", "GB"}

// Format renders bytes using 1024-based units up to GB with at most two
// decimals, dropping trailing zeros: 1536 -> "1.5 KB", 2<<30 -> "2 GB".
// Negative values are treated as zero.
func Format(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := 0
	value := float64(bytes)
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}

	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + units[i]
}
