package players

import (
	"fmt"
	"math"
	"sort"
)

// RatingGroup collects the feedback entries that share a rating.
type RatingGroup struct {
	Rating    int        `json:"rating"`
	Count     int        `json:"count"`
	Feedbacks []Feedback `json:"feedbacks"`
}

// GroupByRating buckets feedback by rating, highest rating first.
// Only ratings that occur produce a group; entry order inside a group is preserved.
func GroupByRating(feedbacks []Feedback) []RatingGroup {
	index := make(map[int]int)
	groups := make([]RatingGroup, 0)
	for _, fb := range feedbacks {
		i, ok := index[fb.Rating]
		if !ok {
			i = len(groups)
			index[fb.Rating] = i
			groups = append(groups, RatingGroup{Rating: fb.Rating})
		}
		groups[i].Feedbacks = append(groups[i].Feedbacks, fb)
		groups[i].Count++
	}
	sort.Slice(groups, func(a, b int) bool {
		return groups[a].Rating > groups[b].Rating
	})
	return groups
}

// AverageRating is the arithmetic mean of all ratings, 0 when there are none.
func AverageRating(feedbacks []Feedback) float64 {
	if len(feedbacks) == 0 {
		return 0
	}
	sum := 0
	for _, fb := range feedbacks {
		sum += fb.Rating
	}
	return float64(sum) / float64(len(feedbacks))
}

// FormatAverage renders an average rating with one decimal place.
func FormatAverage(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}

// RoundRating rounds half up to the nearest whole star.
func RoundRating(avg float64) int {
	return int(math.Floor(avg + 0.5))
}
