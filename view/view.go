package view

import (
	"strings"

	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/model"
)

// Class and attribute names mirrored from the rendered page. The cached
// collections are always rebuilt from these markers, never the other way
// around.
const (
	ClassMeldCard     = "meld_card"
	ClassDiscard      = "discard"
	ClassCardSelected = "card-selected"
	ClassMyPlayedCard = "my_played_card"

	AttrMeldOrder = "meld_order"
	AttrPlayer    = "player"
	AttrCardValue = "card_value"

	suitClassPrefix = "suit"
)

// CardStride is the horizontal distance between two adjacent hand cards
// in their resting layout.
const CardStride = 40.0

// CardElem is one rendered card: a suit class, a face value text and a
// bag of classes and attributes, plus its horizontal position.
type CardElem struct {
	suitClass string
	text      string
	classes   map[string]bool
	attrs     map[string]string
	left      float64
	zIndex    int
}

func NewCardElem(card model.Card) *CardElem {
	return &CardElem{
		suitClass: suitClassPrefix + card.Suit,
		text:      card.FaceVal,
		classes:   map[string]bool{},
		attrs:     map[string]string{},
	}
}

// Suit resolves the card's suit from its suit class. An element without
// one of the four known suit classes is a joker.
func (e *CardElem) Suit() string {
	switch e.suitClass {
	case suitClassPrefix + consts.SuitHearts:
		return consts.SuitHearts
	case suitClassPrefix + consts.SuitClubs:
		return consts.SuitClubs
	case suitClassPrefix + consts.SuitSpades:
		return consts.SuitSpades
	case suitClassPrefix + consts.SuitDiamonds:
		return consts.SuitDiamonds
	}
	return consts.SuitJoker
}

func (e *CardElem) Text() string {
	return strings.TrimSpace(e.text)
}

func (e *CardElem) Card() model.Card {
	return model.NewCard(e.Suit(), e.Text())
}

func (e *CardElem) HasClass(class string) bool {
	return e.classes[class]
}

func (e *CardElem) AddClass(class string) {
	e.classes[class] = true
}

func (e *CardElem) RemoveClass(class string) {
	delete(e.classes, class)
}

func (e *CardElem) Attr(name string) string {
	return e.attrs[name]
}

func (e *CardElem) SetAttr(name, value string) {
	e.attrs[name] = value
}

func (e *CardElem) RemoveAttr(name string) {
	delete(e.attrs, name)
}

func (e *CardElem) Left() float64 {
	return e.left
}

func (e *CardElem) SetLeft(left float64) {
	e.left = left
}

func (e *CardElem) ZIndex() int {
	return e.zIndex
}

func (e *CardElem) SetZIndex(z int) {
	e.zIndex = z
}

// Clone copies the element the way the page clones a hand card onto the
// board. Position and z-index stay behind.
func (e *CardElem) Clone() *CardElem {
	clone := &CardElem{
		suitClass: e.suitClass,
		text:      e.text,
		classes:   map[string]bool{},
		attrs:     map[string]string{},
	}
	for class := range e.classes {
		clone.classes[class] = true
	}
	for name, value := range e.attrs {
		clone.attrs[name] = value
	}
	return clone
}

// MeldDiv is one meld grouping on the board: a type heading followed by
// its card elements in play order.
type MeldDiv struct {
	typeText string
	cards    []*CardElem
}

func NewMeldDiv(typeText string) *MeldDiv {
	return &MeldDiv{typeText: typeText}
}

func (m *MeldDiv) TypeText() string {
	return strings.TrimSpace(m.typeText)
}

func (m *MeldDiv) Cards() []*CardElem {
	cards := make([]*CardElem, len(m.cards))
	copy(cards, m.cards)
	return cards
}

func (m *MeldDiv) AppendCard(elem *CardElem) {
	m.cards = append(m.cards, elem)
}

// InsertCards splices elems into the group immediately before index at.
func (m *MeldDiv) InsertCards(at int, elems []*CardElem) {
	if at < 0 {
		at = 0
	}
	if at > len(m.cards) {
		at = len(m.cards)
	}
	rest := make([]*CardElem, len(m.cards[at:]))
	copy(rest, m.cards[at:])
	m.cards = append(m.cards[:at], append(elems, rest...)...)
}

// Document is the rendered game page: the player's hand, the discard
// pile, the board and the side panel values the engine reads. It is the
// source of truth for what is on screen; cached collections are derived
// from it on demand.
type Document struct {
	UserName  string
	GameID    string
	CSRFToken string

	// WildCardText holds the side panel label, e.g. "Wild Card 5".
	WildCardText string
	DealerText   string
	StatusMsg    string

	// DeckText is the hidden serialized draw stock carried by the page.
	DeckText string

	hand     []*CardElem
	discards []*CardElem
	board    []*MeldDiv
	roster   []model.PlayerStat
}

func NewDocument(userName, gameID string) *Document {
	return &Document{UserName: userName, GameID: gameID}
}

func (d *Document) HandCards() []*CardElem {
	cards := make([]*CardElem, len(d.hand))
	copy(cards, d.hand)
	return cards
}

func (d *Document) HandCard(index int) *CardElem {
	if index < 0 || index >= len(d.hand) {
		return nil
	}
	return d.hand[index]
}

// Relayout assigns resting positions to the hand cards, left to right in
// display order.
func (d *Document) Relayout() {
	for i, elem := range d.hand {
		elem.SetLeft(float64(i) * CardStride)
	}
}

func (d *Document) AppendHandCard(card model.Card, zIndex int) *CardElem {
	elem := NewCardElem(card)
	elem.SetZIndex(zIndex)
	d.hand = append(d.hand, elem)
	d.Relayout()
	return elem
}

// MoveHandCardBefore reinserts elem immediately before target, keeping
// the order of everything else.
func (d *Document) MoveHandCardBefore(elem, target *CardElem) {
	if elem == target {
		return
	}
	d.removeFromHand(elem)
	for i, e := range d.hand {
		if e == target {
			d.hand = append(d.hand[:i], append([]*CardElem{elem}, d.hand[i:]...)...)
			d.Relayout()
			return
		}
	}
	d.hand = append(d.hand, elem)
	d.Relayout()
}

func (d *Document) MoveHandCardToEnd(elem *CardElem) {
	d.removeFromHand(elem)
	d.hand = append(d.hand, elem)
	d.Relayout()
}

func (d *Document) RemoveHandCard(elem *CardElem) {
	d.removeFromHand(elem)
	d.Relayout()
}

func (d *Document) removeFromHand(elem *CardElem) {
	for i, e := range d.hand {
		if e == elem {
			d.hand = append(d.hand[:i], d.hand[i+1:]...)
			return
		}
	}
}

func (d *Document) DiscardCards() []*CardElem {
	cards := make([]*CardElem, len(d.discards))
	copy(cards, d.discards)
	return cards
}

func (d *Document) AppendDiscard(card model.Card) {
	d.discards = append(d.discards, NewCardElem(card))
}

// RemoveDiscardMatches drops every displayed discard card with the given
// suit and face value, the way the page removes a drawn discard.
func (d *Document) RemoveDiscardMatches(card model.Card) {
	kept := d.discards[:0]
	for _, elem := range d.discards {
		if !elem.Card().Equal(card) {
			kept = append(kept, elem)
		}
	}
	d.discards = kept
}

func (d *Document) ClearDiscards() {
	d.discards = nil
}

func (d *Document) Board() []*MeldDiv {
	board := make([]*MeldDiv, len(d.board))
	copy(board, d.board)
	return board
}

func (d *Document) AppendMeldDiv(div *MeldDiv) {
	d.board = append(d.board, div)
}

// SetPlayerCards replaces every card in the rendered hand.
func (d *Document) SetPlayerCards(cards []model.Card) {
	d.hand = nil
	for _, card := range cards {
		elem := NewCardElem(card)
		d.hand = append(d.hand, elem)
	}
	d.Relayout()
}

// SetGameBoard replaces the rendered board with server-provided melds.
func (d *Document) SetGameBoard(groups []model.MeldGroup) {
	d.board = nil
	for _, group := range groups {
		div := NewMeldDiv(group.Type)
		for _, meldCard := range group.MeldCards {
			elem := NewCardElem(meldCard.Card())
			elem.SetAttr(AttrPlayer, meldCard.Player)
			elem.SetAttr(AttrCardValue, meldCard.FaceVal)
			div.AppendCard(elem)
		}
		d.board = append(d.board, div)
	}
}

// SetRoster replaces the turn-order roster and the wild card label.
func (d *Document) SetRoster(players []string, activePlayer string, cardCounts []int, wildCard string) {
	d.WildCardText = "Wild Card " + wildCard
	d.roster = nil
	for i, name := range players {
		count := 0
		if i < len(cardCounts) {
			count = cardCounts[i]
		}
		d.roster = append(d.roster, model.PlayerStat{
			Name:      name,
			CardCount: count,
			Active:    name == activePlayer,
		})
	}
}

func (d *Document) Roster() []model.PlayerStat {
	roster := make([]model.PlayerStat, len(d.roster))
	copy(roster, d.roster)
	return roster
}

func (d *Document) SetCardCount(name string, count int) {
	for i := range d.roster {
		if d.roster[i].Name == name {
			d.roster[i].CardCount = count
		}
	}
}

// StampCardValues sets the corner-value attribute on every rendered card
// except jokers.
func (d *Document) StampCardValues() {
	for _, elem := range d.hand {
		stampCardValue(elem)
	}
	for _, elem := range d.discards {
		stampCardValue(elem)
	}
	for _, div := range d.board {
		for _, elem := range div.cards {
			stampCardValue(elem)
		}
	}
}

func stampCardValue(elem *CardElem) {
	if elem.Text() != consts.JokerFaceVal {
		elem.SetAttr(AttrCardValue, elem.Text())
	}
}
