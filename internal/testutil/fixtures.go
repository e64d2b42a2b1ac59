package testutil

import "github.com/preston-bernstein/football-players-service/internal/domain/players"

// SamplePlayer returns a minimal player fixture with the provided id.
func SamplePlayer(id string) players.Player {
	return players.Player{
		ID:              id,
		PlayerName:      "Player " + id,
		Team:            "Test FC",
		Position:        "Midfielder",
		YoB:             1995,
		MinutesPlayed:   900,
		PassingAccuracy: 0.8,
		Image:           "https://example.com/" + id + ".png",
		Feedbacks: []players.Feedback{
			{Rating: 4, Comment: "solid", Author: "coach", Date: "2024-01-01"},
		},
	}
}

// AliceAndBob returns two players on different teams and positions.
func AliceAndBob() []players.Player {
	return []players.Player{
		{ID: "alice", PlayerName: "Alice", Team: "Red", Position: "FW"},
		{ID: "bob", PlayerName: "Bob", Team: "Blue", Position: "MF"},
	}
}
