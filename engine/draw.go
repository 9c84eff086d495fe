package engine

import (
	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/view"
)

// DrawFromStock moves the top stock card into the hand. Drawing from an
// empty stock is a no-op; the server keeps players from reaching an
// exhausted stock.
func (t *Table) DrawFromStock() {
	deck := t.DeckCards()
	if len(deck) == 0 {
		return
	}
	top := deck[0]
	t.storeDeck(deck[1:])
	t.maxZIndex++
	t.doc.AppendHandCard(top, t.maxZIndex)
	t.Initialize()
}

// DrawFromDiscard moves the most recently discarded card into the hand.
func (t *Table) DrawFromDiscard() error {
	if len(t.discards) == 0 {
		return t.fail(consts.ErrorsDiscardPileEmpty)
	}
	top := t.discards[len(t.discards)-1]
	t.maxZIndex++
	t.doc.AppendHandCard(top, t.maxZIndex)
	t.doc.RemoveDiscardMatches(top)
	t.Initialize()
	return nil
}

// DiscardSelected moves the hand card marked for discard onto the top of
// the discard pile.
func (t *Table) DiscardSelected() error {
	var chosen *view.CardElem
	for _, elem := range t.doc.HandCards() {
		if elem.HasClass(view.ClassDiscard) {
			chosen = elem
			break
		}
	}
	if chosen == nil {
		return t.fail(consts.ErrorsNoDiscardSelected)
	}
	card := chosen.Card()
	t.doc.RemoveHandCard(chosen)
	t.doc.AppendDiscard(card)
	t.Initialize()
	return nil
}
