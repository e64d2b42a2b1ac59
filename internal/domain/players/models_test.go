package players

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerJSONTags(t *testing.T) {
	playerType := reflect.TypeOf(Player{})
	fields := map[string]string{
		"ID":              "id",
		"PlayerName":      "playerName",
		"Team":            "team",
		"Position":        "position",
		"YoB":             "YoB",
		"MinutesPlayed":   "MinutesPlayed",
		"PassingAccuracy": "PassingAccuracy",
		"IsCaptain":       "isCaptain",
		"Image":           "image",
		"Feedbacks":       "feedbacks",
	}
	for name, tag := range fields {
		f, ok := playerType.FieldByName(name)
		require.True(t, ok, "missing field %s", name)
		assert.Equal(t, tag, f.Tag.Get("json"), name)
	}
}

func TestPlayerDecodesUpstreamPayload(t *testing.T) {
	raw := `{"id":"7","playerName":"Alice","team":"Red","position":"Forward","YoB":1998,
		"MinutesPlayed":1234,"PassingAccuracy":0.875,"isCaptain":true,"image":"http://img",
		"feedbacks":[{"rating":5,"comment":"great","author":"bob","date":"2024-01-01"}]}`

	var p Player
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, "7", p.ID)
	assert.Equal(t, 1998, p.YoB)
	assert.True(t, p.IsCaptain)
	require.Len(t, p.Feedbacks, 1)
	assert.Equal(t, "bob", p.Feedbacks[0].Author)
}

func TestCloneDoesNotShareFeedbacks(t *testing.T) {
	orig := Player{ID: "1", Feedbacks: []Feedback{{Rating: 3}}}
	dup := orig.Clone()
	dup.Feedbacks[0].Rating = 1

	assert.Equal(t, 3, orig.Feedbacks[0].Rating)
	assert.Nil(t, CloneAll(nil))
}
