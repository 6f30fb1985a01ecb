// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"sort"
	"strings"
	"time"
	_ "time/tzdata" // Phoenix must resolve on zoneless hosts

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/pricepoll/models"
)

// themeKeywords are the stemmed keywords scanned for in improvement notes.
// The list is part of the analytics contract.
var themeKeywords = []string{
	"kitchen", "bathroom", "paint", "floor", "roof", "yard", "landscape",
	"update", "renovate", "clean", "repair", "modern", "curb", "appeal",
}

// topThemeCount caps the keyword summary at the five most frequent themes.
const topThemeCount = 5

// phoenixTimeLayout renders the long-form wall-clock format, e.g.
// "January 5, 2025, 3:04 PM".
const phoenixTimeLayout = "January 2, 2006, 3:04 PM"

// invalidDateMarker is shown in place of a timestamp that cannot be rendered.
const invalidDateMarker = "Invalid date"

var phoenix = loadPhoenix()

func loadPhoenix() *time.Location {
	loc, err := time.LoadLocation("America/Phoenix")
	if err != nil {
		// Phoenix observes no DST, so a fixed MST offset is exact year-round.
		return time.FixedZone("MST", -7*60*60)
	}
	return loc
}

// PriceRangeDistribution counts responses per fixed price band, in band
// display order. Responses whose band matches none of the three exactly are
// excluded, not bucketed as "other".
func PriceRangeDistribution(responses []models.SurveyResponse) []models.LabelCount {
	counts := make(map[string]int, len(models.PriceBands))
	for _, band := range models.PriceBands {
		counts[band] = 0
	}

	for _, r := range responses {
		if _, known := counts[r.InitialRange]; known {
			counts[r.InitialRange]++
		}
	}

	dist := make([]models.LabelCount, 0, len(models.PriceBands))
	for _, band := range models.PriceBands {
		dist = append(dist, models.LabelCount{Label: band, Count: counts[band]})
	}
	return dist
}

// BestFeatureDistribution counts each distinct stored feature value. The set
// is open: any non-empty string counts, not just the five offered options.
// Sorted by count descending, label ascending on ties.
func BestFeatureDistribution(responses []models.SurveyResponse) []models.LabelCount {
	counts := make(map[string]int)
	for _, r := range responses {
		if r.BestFeature != nil && *r.BestFeature != "" {
			counts[*r.BestFeature]++
		}
	}

	return sortedCounts(counts, 0)
}

// ImprovementThemes scans every non-blank note for the fixed keyword list.
// A note increments a keyword at most once regardless of repetition (the
// test is substring containment per note, not per occurrence). Returns the
// top five keywords, labels capitalized.
func ImprovementThemes(responses []models.SurveyResponse) []models.LabelCount {
	counts := make(map[string]int)
	for _, r := range responses {
		if r.ImprovementNote == nil || strings.TrimSpace(*r.ImprovementNote) == "" {
			continue
		}
		note := strings.ToLower(*r.ImprovementNote)
		for _, word := range themeKeywords {
			if strings.Contains(note, word) {
				counts[word]++
			}
		}
	}

	themes := sortedCounts(counts, topThemeCount)
	for i := range themes {
		themes[i].Label = capitalize(themes[i].Label)
	}
	return themes
}

// ImprovementComments collects every non-blank note with display-ready
// metadata, preserving the input (most recent first) order.
func ImprovementComments(responses []models.SurveyResponse) []models.Comment {
	comments := []models.Comment{}
	for _, r := range responses {
		if r.ImprovementNote == nil || strings.TrimSpace(*r.ImprovementNote) == "" {
			continue
		}
		c := models.Comment{
			ResponseID:  r.ID,
			Note:        *r.ImprovementNote,
			SubmittedAt: FormatPhoenix(r.CreatedAt),
		}
		if r.AgentEmail != nil {
			c.AgentEmail = *r.AgentEmail
		}
		if !r.CreatedAt.IsZero() {
			c.SubmittedAgo = humanize.Time(r.CreatedAt)
		}
		comments = append(comments, c)
	}
	return comments
}

// ResponseRows flattens records into the raw listing, timestamps localized.
func ResponseRows(responses []models.SurveyResponse) []models.ResponseRow {
	rows := make([]models.ResponseRow, 0, len(responses))
	for _, r := range responses {
		row := models.ResponseRow{
			ID:           r.ID,
			InitialRange: r.InitialRange,
			SubmittedAt:  FormatPhoenix(r.CreatedAt),
		}
		if r.AgentEmail != nil {
			row.AgentEmail = *r.AgentEmail
		}
		if r.SpecificPrice != nil {
			row.SpecificPrice = *r.SpecificPrice
		}
		if r.BestFeature != nil {
			row.BestFeature = *r.BestFeature
		}
		if r.ImprovementNote != nil {
			row.ImprovementNote = *r.ImprovementNote
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatPhoenix renders a timestamp as Arizona wall-clock time. Phoenix has
// no daylight saving, so the offset holds year-round. A zero time renders
// the invalid-date marker instead of a bogus 1-AD date.
func FormatPhoenix(t time.Time) string {
	if t.IsZero() {
		return invalidDateMarker
	}
	return t.In(phoenix).Format(phoenixTimeLayout)
}

// sortedCounts orders a count map by count descending, label ascending on
// ties, optionally truncated to the top n (n <= 0 keeps all).
func sortedCounts(counts map[string]int, n int) []models.LabelCount {
	out := make([]models.LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, models.LabelCount{Label: label, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
