package engine

// DropHandCard ends a drag gesture on the hand card at dragIndex, with
// the card's left edge released at dropLeft. The card is reinserted
// before the first hand card lying at or beyond the drop position, or
// appended to the end of the hand when no such card exists. A card with
// the dragged card's exact suit and face value is never treated as the
// successor, so duplicates can be relocated past each other.
func (t *Table) DropHandCard(dragIndex int, dropLeft float64) {
	drag := t.doc.HandCard(dragIndex)
	if drag == nil {
		return
	}
	t.maxZIndex++
	drag.SetZIndex(t.maxZIndex)
	drag.SetLeft(dropLeft)
	dragCard := drag.Card()

	dropped := false
	for _, elem := range t.doc.HandCards() {
		if elem.Left() < dropLeft {
			continue
		}
		if elem.Card().Equal(dragCard) {
			continue
		}
		t.doc.MoveHandCardBefore(drag, elem)
		dropped = true
		break
	}
	if !dropped {
		t.doc.MoveHandCardToEnd(drag)
	}
	t.hand = t.doc.ExtractHand()
}
