package engine

import (
	"strconv"

	"github.com/rummy-online/client/view"
)

// BeginSelection opens a fresh selection session for one of the action
// panels. Any in-flight marks from a previous panel are dropped and the
// selection order restarts.
func (t *Table) BeginSelection() {
	t.ResetSelections()
	t.meldOrder = 0
}

// ResetSelections clears discard marks, meld marks and their order tags
// from the hand, and anchor highlights from the board.
func (t *Table) ResetSelections() {
	for _, elem := range t.doc.HandCards() {
		elem.RemoveClass(view.ClassDiscard)
		elem.RemoveClass(view.ClassMeldCard)
		elem.RemoveAttr(view.AttrMeldOrder)
	}
	for _, div := range t.doc.Board() {
		for _, elem := range div.Cards() {
			elem.RemoveClass(view.ClassCardSelected)
		}
	}
}

// ToggleMeldCard marks the hand card at index for the open play
// selection, tagging it with the next selection-order value. A second
// toggle unmarks the card and discards its tag.
func (t *Table) ToggleMeldCard(index int) {
	elem := t.doc.HandCard(index)
	if elem == nil {
		return
	}
	if elem.HasClass(view.ClassMeldCard) {
		elem.RemoveClass(view.ClassMeldCard)
		elem.RemoveAttr(view.AttrMeldOrder)
		return
	}
	t.meldOrder++
	elem.AddClass(view.ClassMeldCard)
	elem.SetAttr(view.AttrMeldOrder, strconv.Itoa(t.meldOrder))
}

// SelectDiscardCard marks one hand card for discard. Any previous mark
// moves to the newly clicked card.
func (t *Table) SelectDiscardCard(index int) {
	elem := t.doc.HandCard(index)
	if elem == nil {
		return
	}
	for _, e := range t.doc.HandCards() {
		e.RemoveClass(view.ClassDiscard)
	}
	elem.AddClass(view.ClassDiscard)
}

// SelectAnchor highlights the board group at groupIndex as the insertion
// anchor. At most one group is ever highlighted; clicking the highlighted
// group clears the selection instead.
func (t *Table) SelectAnchor(groupIndex int) {
	board := t.doc.Board()
	if groupIndex < 0 || groupIndex >= len(board) {
		return
	}
	clicked := board[groupIndex]
	alreadySelected := false
	for _, elem := range clicked.Cards() {
		if elem.HasClass(view.ClassCardSelected) {
			alreadySelected = true
			break
		}
	}
	for _, div := range board {
		for _, elem := range div.Cards() {
			elem.RemoveClass(view.ClassCardSelected)
		}
	}
	if !alreadySelected {
		for _, elem := range clicked.Cards() {
			elem.AddClass(view.ClassCardSelected)
		}
	}
}
