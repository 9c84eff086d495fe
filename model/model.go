package model

import (
	"github.com/rummy-online/client/consts"
)

// Card is a single playing card as it travels on the wire. A joker always
// has suit "joker" and face value "?".
type Card struct {
	Suit    string `json:"suit"`
	FaceVal string `json:"faceval"`
}

func NewCard(suit, faceVal string) Card {
	return Card{Suit: suit, FaceVal: faceVal}
}

func Joker() Card {
	return Card{Suit: consts.SuitJoker, FaceVal: consts.JokerFaceVal}
}

func (c Card) Equal(other Card) bool {
	return c.Suit == other.Suit && c.FaceVal == other.FaceVal
}

func (c Card) IsJoker() bool {
	return c.Suit == consts.SuitJoker
}

// MeldCard is a card placed on the game board, stamped with the name of
// the player who played it. The owner never changes once set.
type MeldCard struct {
	Player  string `json:"player"`
	Suit    string `json:"suit"`
	FaceVal string `json:"faceval"`
}

func NewMeldCard(player string, card Card) MeldCard {
	return MeldCard{Player: player, Suit: card.Suit, FaceVal: card.FaceVal}
}

func (m MeldCard) Card() Card {
	return Card{Suit: m.Suit, FaceVal: m.FaceVal}
}

// MeldGroup is one labeled grouping of played cards on the board, e.g. a
// run or a book. Card order within the group is significant.
type MeldGroup struct {
	Type      string     `json:"type"`
	MeldCards []MeldCard `json:"meld_cards"`
}

// GameSnapshot is the full authoritative game state pushed by the server.
// Players, CardCounts are parallel slices in turn order.
type GameSnapshot struct {
	PlayerCards  []Card      `json:"player_cards"`
	DeckCards    []Card      `json:"deck_cards"`
	Discards     []Card      `json:"discards"`
	Players      []string    `json:"players"`
	ActivePlayer string      `json:"active_player"`
	CardCounts   []int       `json:"card_counts"`
	Dealer       string      `json:"dealer"`
	WildCard     string      `json:"wild_card"`
	GameBoard    []MeldGroup `json:"gameboard"`
}

// TurnPayload carries everything the client sends back to the server when
// the player completes a turn.
type TurnPayload struct {
	Deck     []Card
	Hand     []Card
	Discards []Card
	Board    []MeldGroup
}

// PlayerStat is one row of the turn-order roster shown beside the table.
type PlayerStat struct {
	Name      string
	CardCount int
	Active    bool
}
