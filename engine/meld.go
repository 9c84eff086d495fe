package engine

import (
	"sort"
	"strconv"

	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/view"
)

// selectedMeldCards returns the hand cards marked for play, ascending by
// their selection-order tag.
func (t *Table) selectedMeldCards() []*view.CardElem {
	var selected []*view.CardElem
	for _, elem := range t.doc.HandCards() {
		if elem.HasClass(view.ClassMeldCard) {
			selected = append(selected, elem)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return meldOrderOf(selected[i]) < meldOrderOf(selected[j])
	})
	return selected
}

func meldOrderOf(elem *view.CardElem) int {
	order, _ := strconv.Atoi(elem.Attr(view.AttrMeldOrder))
	return order
}

// PlayNew moves the selected hand cards onto the board as a new meld
// group with the given label, in the order the player selected them.
func (t *Table) PlayNew(meldType string) error {
	selected := t.selectedMeldCards()
	if len(selected) == 0 {
		return t.fail(consts.ErrorsNoCardsSelected)
	}
	div := view.NewMeldDiv(meldType)
	for _, elem := range selected {
		played := elem.Clone()
		played.RemoveClass(view.ClassMeldCard)
		played.RemoveAttr(view.AttrMeldOrder)
		played.AddClass(view.ClassMyPlayedCard)
		played.SetAttr(view.AttrPlayer, t.doc.UserName)
		div.AppendCard(played)
	}
	t.doc.AppendMeldDiv(div)
	for _, elem := range selected {
		t.doc.RemoveHandCard(elem)
	}
	t.Initialize()
	return nil
}

// PlayAdd splices the selected hand cards into the anchored board group,
// before its first highlighted card or after its last one. A missing hand
// selection is reported ahead of a missing anchor.
func (t *Table) PlayAdd(side string) error {
	selected := t.selectedMeldCards()
	anchor := t.anchorGroup()
	if len(selected) == 0 {
		return t.fail(consts.ErrorsNoCardsSelected)
	}
	if anchor == nil {
		return t.fail(consts.ErrorsNoBoardSelected)
	}

	first, last := -1, -1
	for i, elem := range anchor.Cards() {
		if elem.HasClass(view.ClassCardSelected) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	moved := make([]*view.CardElem, 0, len(selected))
	for _, elem := range selected {
		elem.RemoveClass(view.ClassMeldCard)
		elem.RemoveAttr(view.AttrMeldOrder)
		elem.AddClass(view.ClassMyPlayedCard)
		elem.SetAttr(view.AttrPlayer, t.doc.UserName)
		moved = append(moved, elem)
	}
	if side == consts.PlayBefore {
		anchor.InsertCards(first, moved)
	} else {
		anchor.InsertCards(last+1, moved)
	}
	for _, elem := range selected {
		t.doc.RemoveHandCard(elem)
	}
	for _, elem := range anchor.Cards() {
		elem.RemoveClass(view.ClassCardSelected)
	}
	t.board = t.doc.ExtractBoard()
	t.Initialize()
	return nil
}

func (t *Table) anchorGroup() *view.MeldDiv {
	for _, div := range t.doc.Board() {
		for _, elem := range div.Cards() {
			if elem.HasClass(view.ClassCardSelected) {
				return div
			}
		}
	}
	return nil
}
