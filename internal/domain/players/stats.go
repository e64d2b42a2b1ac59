package players

import (
	"fmt"
	"strings"
	"time"
)

const maxRating = 5

var positionCodes = map[string]string{
	"Forward":    "FW",
	"Midfielder": "MF",
	"Defender":   "DF",
	"Goalkeeper": "GK",
}

// Age returns the player's age in whole years as of now.
// Missing or impossible birth years yield 0.
func (p Player) Age(now time.Time) int {
	year := now.Year()
	if p.YoB <= 0 || p.YoB > year {
		return 0
	}
	return year - p.YoB
}

// FormatMinutes renders minutes as "<h>h <m>m".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatPassingAccuracy renders a [0,1] ratio as a percentage with one decimal.
func FormatPassingAccuracy(accuracy float64) string {
	return fmt.Sprintf("%.1f%%", accuracy*100)
}

// PositionCode abbreviates well-known positions and passes others through.
func PositionCode(position string) string {
	if code, ok := positionCodes[position]; ok {
		return code
	}
	return position
}

// RatingStars renders a rating as filled and empty stars out of five.
func RatingStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > maxRating {
		rating = maxRating
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", maxRating-rating)
}
