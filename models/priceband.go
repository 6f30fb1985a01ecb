// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// bandSpan pairs a band label with its inclusive $k boundaries.
type bandSpan struct {
	label  string
	lo, hi int
}

var bandSpans = []bandSpan{
	{BandHigh, 601, 700},
	{BandMid, 501, 600},
	{BandLow, 401, 500},
}

// subRangeWidth is the step between sub-range lower bounds, in $k.
const subRangeWidth = 20

// SubRanges partitions a band into contiguous $20k sub-ranges starting at
// the band's lower bound, the last one clipped to the upper bound. Band
// matching tolerates formatting drift in stored strings: an exact label
// match wins, otherwise a case-insensitive containment test on both
// boundary numbers. Unrecognized bands yield the default band's sub-ranges.
func SubRanges(band string) []string {
	span := matchSpan(band)

	subs := make([]string, 0, 5)
	for start := span.lo; start <= span.hi-subRangeWidth+1; start += subRangeWidth {
		end := start + subRangeWidth - 1
		if end > span.hi {
			end = span.hi
		}
		subs = append(subs, fmt.Sprintf("$%dk–$%dk", start, end))
	}
	return subs
}

// IsSubRange reports whether candidate is one of the sub-ranges offered for
// band. Step 3 uses this to reject prices that were never on the form.
func IsSubRange(band, candidate string) bool {
	for _, s := range SubRanges(band) {
		if candidate == s {
			return true
		}
	}
	return false
}

func matchSpan(band string) bandSpan {
	trimmed := strings.TrimSpace(band)
	for _, s := range bandSpans {
		if trimmed == s.label {
			return s
		}
	}

	// Loose match: stored ranges occasionally drift in punctuation, but the
	// boundary numbers survive any reformatting.
	lower := strings.ToLower(trimmed)
	for _, s := range bandSpans {
		if strings.Contains(lower, strconv.Itoa(s.lo)) && strings.Contains(lower, strconv.Itoa(s.hi)) {
			return s
		}
	}

	for _, s := range bandSpans {
		if s.label == DefaultBand {
			return s
		}
	}
	// Unreachable: DefaultBand is one of the three spans.
	return bandSpans[0]
}
