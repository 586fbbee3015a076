package model

import (
	"fmt"
	"math"
)

// NoRatingsLabel is shown for an entity nobody has reviewed yet.
const NoRatingsLabel = "No ratings yet"

// RatingSummary is the average rating of one product or service, computed
// on read. Average is nil when Count is zero.
type RatingSummary struct {
	Target     ReviewTarget `json:"target"`
	Count      int          `json:"count"`
	Average    *float64     `json:"average"`
	HasRatings bool         `json:"hasRatings"`
	Display    string       `json:"display"`
}

// SummarizeRatings averages ratings as sum/count.
func SummarizeRatings(target ReviewTarget, ratings []int) RatingSummary {
	summary := RatingSummary{
		Target:  target,
		Count:   len(ratings),
		Display: NoRatingsLabel,
	}
	if len(ratings) == 0 {
		return summary
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))

	summary.Average = &avg
	summary.HasRatings = true
	summary.Display = fmt.Sprintf("%.1f", math.Round(avg*10)/10)
	return summary
}
