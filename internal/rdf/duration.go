package rdf

import (
	"fmt"
	"strconv"
	"strings"
)

// Duration is a decoded track length. The graph never stores this type
// directly - it stores the "M:SS" literal text - but aggregation and
// projection go through it.
type Duration struct {
	Minutes int
	Seconds int
}

// ParseDuration decodes "M:SS" text: minutes are one or more digits
// with no upper bound, seconds are in [0,59]. Anything else (missing
// colon, non-numeric parts, negative values, out-of-range seconds)
// fails with a *FormatError.
func ParseDuration(text string) (Duration, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return Duration{}, &FormatError{Text: text, Reason: "expected exactly one ':' separator"}
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil || minutes < 0 {
		return Duration{}, &FormatError{Text: text, Reason: "minutes must be a non-negative integer"}
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil || seconds < 0 {
		return Duration{}, &FormatError{Text: text, Reason: "seconds must be a non-negative integer"}
	}
	if seconds > 59 {
		return Duration{}, &FormatError{Text: text, Reason: "seconds out of range [0,59]"}
	}
	return Duration{Minutes: minutes, Seconds: seconds}, nil
}

// FromMillis converts a catalog duration in milliseconds. Both
// divisions floor, so a 4:02.9 track projects as "4:02".
func FromMillis(ms int) Duration {
	return Duration{
		Minutes: ms / 60000,
		Seconds: (ms % 60000) / 1000,
	}
}

// FromSeconds decomposes a total second count into minutes and seconds.
// Used to report aggregate sums; the result may exceed 59 minutes.
func FromSeconds(total int) Duration {
	return Duration{Minutes: total / 60, Seconds: total % 60}
}

// TotalSeconds returns minutes*60 + seconds. Only the total-duration
// aggregate calls this; row-level ordering never does (package doc).
func (d Duration) TotalSeconds() int {
	return d.Minutes*60 + d.Seconds
}

// String renders "M:SS": minutes unpadded, seconds zero-padded to two
// digits. ParseDuration(d.String()) round-trips for any valid Duration.
func (d Duration) String() string {
	return fmt.Sprintf("%d:%02d", d.Minutes, d.Seconds)
}
