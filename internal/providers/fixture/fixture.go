package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/providers"
)

// Provider returns a static set of players useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchPlayers returns a deterministic set of players across three teams.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return p.roster(), nil
}

// FetchPlayer returns the fixture player with id or ErrPlayerNotFound.
func (p *Provider) FetchPlayer(ctx context.Context, id string) (players.Player, error) {
	_ = ctx
	for _, item := range p.roster() {
		if item.ID == id {
			return item, nil
		}
	}
	return players.Player{}, fmt.Errorf("fixture: %w", providers.ErrPlayerNotFound)
}

func (p *Provider) roster() []players.Player {
	day := p.now().UTC().Truncate(24 * time.Hour)
	date := func(daysAgo int) string {
		return day.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}

	return []players.Player{
		{
			ID:              "1",
			PlayerName:      "Marcus Reed",
			Team:            "Arsenal",
			Position:        "Forward",
			YoB:             1997,
			MinutesPlayed:   2430,
			PassingAccuracy: 0.81,
			IsCaptain:       true,
			Image:           "https://images.example.com/players/1.png",
			Feedbacks: []players.Feedback{
				{Rating: 5, Comment: "Clinical finisher", Author: "coach", Date: date(3)},
				{Rating: 4, Comment: "Strong hold-up play", Author: "analyst", Date: date(10)},
			},
		},
		{
			ID:              "2",
			PlayerName:      "Tomás Silva",
			Team:            "Arsenal",
			Position:        "Midfielder",
			YoB:             2000,
			MinutesPlayed:   1980,
			PassingAccuracy: 0.89,
			Image:           "https://images.example.com/players/2.png",
			Feedbacks: []players.Feedback{
				{Rating: 4, Comment: "Keeps the ball moving", Author: "coach", Date: date(2)},
			},
		},
		{
			ID:              "3",
			PlayerName:      "Luca Bianchi",
			Team:            "Chelsea",
			Position:        "Defender",
			YoB:             1994,
			MinutesPlayed:   2700,
			PassingAccuracy: 0.76,
			IsCaptain:       true,
			Image:           "https://images.example.com/players/3.png",
			Feedbacks: []players.Feedback{
				{Rating: 5, Comment: "Reads the game well", Author: "analyst", Date: date(1)},
				{Rating: 3, Comment: "Slow on the turn", Author: "scout", Date: date(14)},
				{Rating: 5, Comment: "Organises the line", Author: "coach", Date: date(21)},
			},
		},
		{
			ID:              "4",
			PlayerName:      "Sam Okafor",
			Team:            "Chelsea",
			Position:        "Goalkeeper",
			YoB:             1999,
			MinutesPlayed:   2610,
			PassingAccuracy: 0.68,
			Image:           "https://images.example.com/players/4.png",
		},
		{
			ID:              "5",
			PlayerName:      "Kenji Mori",
			Team:            "Liverpool",
			Position:        "Midfielder",
			YoB:             2002,
			MinutesPlayed:   1045,
			PassingAccuracy: 0.84,
			Image:           "https://images.example.com/players/5.png",
			Feedbacks: []players.Feedback{
				{Rating: 2, Comment: "Needs more minutes", Author: "scout", Date: date(5)},
			},
		},
		{
			ID:              "6",
			PlayerName:      "Ada Novak",
			Team:            "Liverpool",
			Position:        "Forward",
			YoB:             1996,
			MinutesPlayed:   2215,
			PassingAccuracy: 0.79,
			IsCaptain:       true,
			Image:           "https://images.example.com/players/6.png",
			Feedbacks: []players.Feedback{
				{Rating: 5, Comment: "Relentless pressing", Author: "coach", Date: date(4)},
				{Rating: 4, Comment: "Good movement", Author: "analyst", Date: date(9)},
			},
		},
	}
}
