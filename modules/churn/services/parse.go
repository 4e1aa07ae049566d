package services

import (
	"math"
	"strconv"
)

// CSV exports from the upstream pipeline encode booleans as the Python
// literals "True"/"False". Only the exact string "True" counts as true.
func parseCSVBool(v string) bool {
	return v == "True"
}

func parseIntDefault(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func parseFloat(v string) (float64, bool) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// roundHalfUp rounds to the nearest integer with halves toward positive
// infinity: -87.5 becomes -87, not -88. Derived values keep the rounding
// of the dashboard's previous pipeline, which differs from math.Round for
// negative halves.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
