package players

// Player mirrors the remote players API shape; JSON names match upstream exactly.
type Player struct {
	ID              string     `json:"id"`
	PlayerName      string     `json:"playerName"`
	Team            string     `json:"team"`
	Position        string     `json:"position"`
	YoB             int        `json:"YoB"`
	MinutesPlayed   int        `json:"MinutesPlayed"`
	PassingAccuracy float64    `json:"PassingAccuracy"`
	IsCaptain       bool       `json:"isCaptain"`
	Image           string     `json:"image"`
	Feedbacks       []Feedback `json:"feedbacks"`
}

// Feedback is a single review left on a player.
type Feedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// Clone returns a copy that shares no slices with p.
func (p Player) Clone() Player {
	if p.Feedbacks != nil {
		p.Feedbacks = append([]Feedback(nil), p.Feedbacks...)
	}
	return p
}

// CloneAll copies a player slice, including nested feedback slices.
func CloneAll(items []Player) []Player {
	if items == nil {
		return nil
	}
	out := make([]Player, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}
	return out
}
