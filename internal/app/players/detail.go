package players

import (
	"time"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

// Detail is the player detail view model.
type Detail struct {
	Player          players.Player        `json:"player"`
	Age             int                   `json:"age"`
	MinutesPlayed   string                `json:"minutesPlayed"`
	PassingAccuracy string                `json:"passingAccuracy"`
	PositionCode    string                `json:"positionCode"`
	FeedbackCount   int                   `json:"feedbackCount"`
	AverageRating   string                `json:"averageRating"`
	Stars           string                `json:"stars"`
	RatingGroups    []players.RatingGroup `json:"ratingGroups"`
	IsFavorite      bool                  `json:"isFavorite"`
}

// BuildDetail derives display fields for p as of now.
func BuildDetail(p players.Player, now time.Time) Detail {
	avg := players.AverageRating(p.Feedbacks)
	return Detail{
		Player:          p,
		Age:             p.Age(now),
		MinutesPlayed:   players.FormatMinutes(p.MinutesPlayed),
		PassingAccuracy: players.FormatPassingAccuracy(p.PassingAccuracy),
		PositionCode:    players.PositionCode(p.Position),
		FeedbackCount:   len(p.Feedbacks),
		AverageRating:   players.FormatAverage(avg),
		Stars:           players.RatingStars(players.RoundRating(avg)),
		RatingGroups:    players.GroupByRating(p.Feedbacks),
	}
}
