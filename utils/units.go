package utils

import (
	"strconv"
	"strings"
)

const bytesPerGB = 1 << 30

// BytesToGB converts bytes to GB (2^30) with two decimals.
func BytesToGB(b int64) string {
	return strconv.FormatFloat(float64(b)/bytesPerGB, 'f', 2, 64)
}

// MBToGB converts MB to GB with two decimals.
func MBToGB(mb int64) string {
	return strconv.FormatFloat(float64(mb)/1024, 'f', 2, 64)
}

// KBToGB converts KB to GB with two decimals.
func KBToGB(kb int64) string {
	return strconv.FormatFloat(float64(kb)/(1<<20), 'f', 2, 64)
}

// Percent returns part/whole as a percentage with no decimals. A zero whole is 0.
func Percent(part, whole float64) string {
	if whole == 0 {
		return "0"
	}
	return FormatPercent(part / whole * 100)
}

// FormatPercent formats a value that is already a percentage with no decimals.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 0, 64)
}

// JoinList joins the values of a multi-valued cell.
func JoinList(values []string) string {
	return strings.Join(values, ";")
}
