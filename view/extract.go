package view

import (
	"github.com/rummy-online/client/model"
)

// ExtractHand rebuilds the hand collection from the rendered hand cards
// in display order.
func (d *Document) ExtractHand() []model.Card {
	hand := make([]model.Card, 0, len(d.hand))
	for _, elem := range d.hand {
		hand = append(hand, elem.Card())
	}
	return hand
}

// ExtractDiscards rebuilds the discard pile collection. The last card is
// the most recently discarded one.
func (d *Document) ExtractDiscards() []model.Card {
	discards := make([]model.Card, 0, len(d.discards))
	for _, elem := range d.discards {
		discards = append(discards, elem.Card())
	}
	return discards
}

// ExtractBoard rebuilds the board collection, grouping cards under their
// meld headings. Cards played by the local player get the ownership class
// so the renderer can color their border.
func (d *Document) ExtractBoard() []model.MeldGroup {
	board := make([]model.MeldGroup, 0, len(d.board))
	for _, div := range d.board {
		group := model.MeldGroup{Type: div.TypeText()}
		for _, elem := range div.cards {
			player := elem.Attr(AttrPlayer)
			if player == d.UserName {
				elem.AddClass(ClassMyPlayedCard)
			}
			group.MeldCards = append(group.MeldCards, model.MeldCard{
				Player:  player,
				Suit:    elem.Suit(),
				FaceVal: elem.Text(),
			})
		}
		board = append(board, group)
	}
	return board
}
