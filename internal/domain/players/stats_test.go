package players

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAge(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 27, Player{YoB: 1998}.Age(now))
	assert.Equal(t, 0, Player{}.Age(now), "missing birth year degrades to 0")
	assert.Equal(t, 0, Player{YoB: -5}.Age(now))
	assert.Equal(t, 0, Player{YoB: 2030}.Age(now), "future birth year degrades to 0")
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "20h 34m", FormatMinutes(1234))
	assert.Equal(t, "0h 0m", FormatMinutes(-3))
	assert.Equal(t, "87.5%", FormatPassingAccuracy(0.875))
	assert.Equal(t, "0.0%", FormatPassingAccuracy(0))
}

func TestPositionCode(t *testing.T) {
	assert.Equal(t, "FW", PositionCode("Forward"))
	assert.Equal(t, "GK", PositionCode("Goalkeeper"))
	assert.Equal(t, "Winger", PositionCode("Winger"))
}

func TestRatingStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆", RatingStars(3))
	assert.Equal(t, "☆☆☆☆☆", RatingStars(-1))
	assert.Equal(t, "★★★★★", RatingStars(9))
}
