package gateway

import "github.com/kundankarn/football-battle-bot/internal/card"

// ClientMessage is one inbound frame from a connected participant.
//
// Challenge: opponent set. Accept: no extra fields. Say: text is interpreted
// contextually as a draft or round response while a step is outstanding.
// Card: name looks up a card detail.
type ClientMessage struct {
	Type     string `json:"type"` // "Challenge" | "Accept" | "Say" | "Card"
	Opponent string `json:"opponent,omitempty"`
	Name     string `json:"name,omitempty"`
	Text     string `json:"text,omitempty"`
}

// ServerMessage is one outbound frame to a participant.
type ServerMessage struct {
	Type  string     `json:"type"` // "Text" | "Card" | "Announce" | "Error"
	Text  string     `json:"text,omitempty"`
	Card  *card.Card `json:"card,omitempty"`
	Error string     `json:"error,omitempty"`
}
