package diskcheck

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	_         = iota
	KB uint64 = 1 << (10 * iota)
	MB
	GB
	TB
)

// ParseSize parses a human-readable size string into bytes.
// Supports: B, K/KB, M/MB, G/GB, T/TB (case-insensitive)
// Examples: "500M", "2G", "1.5GB", "1024"
func ParseSize(s string) (uint64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	multiplier := uint64(1)
	trim := 0
	switch {
	case strings.HasSuffix(s, "TB"):
		multiplier, trim = TB, 2
	case strings.HasSuffix(s, "T"):
		multiplier, trim = TB, 1
	case strings.HasSuffix(s, "GB"):
		multiplier, trim = GB, 2
	case strings.HasSuffix(s, "G"):
		multiplier, trim = GB, 1
	case strings.HasSuffix(s, "MB"):
		multiplier, trim = MB, 2
	case strings.HasSuffix(s, "M"):
		multiplier, trim = MB, 1
	case strings.HasSuffix(s, "KB"):
		multiplier, trim = KB, 2
	case strings.HasSuffix(s, "K"):
		multiplier, trim = KB, 1
	case strings.HasSuffix(s, "B"):
		trim = 1
	}

	num, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-trim]), 64)
	if err != nil || num < 0 {
		return 0, fmt.Errorf("invalid size format: %q", s)
	}

	return uint64(num * float64(multiplier)), nil
}

// FormatSize formats bytes into a human-readable string.
func FormatSize(bytes uint64) string {
	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.1fTB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.1fGB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fKB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
