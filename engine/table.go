package engine

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/log"
	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/model"
	"github.com/rummy-online/client/view"
)

// Table is the local game state: the rendered document plus the cached
// collections derived from it. The document is the source of truth; the
// caches are rebuilt by Initialize after every mutation and never trusted
// across a mutation boundary.
type Table struct {
	doc *view.Document

	hand     []model.Card
	discards []model.Card
	board    []model.MeldGroup
	wildCard string

	// maxZIndex grows for the whole session, meldOrder restarts with
	// every selection session.
	maxZIndex int
	meldOrder int

	status string
}

func NewTable(doc *view.Document) *Table {
	table := &Table{doc: doc}
	table.Initialize()
	return table
}

// Initialize clears the status message and rebuilds every cached
// collection from the rendered document.
func (t *Table) Initialize() {
	t.status = ""
	t.doc.StatusMsg = ""
	t.hand = t.doc.ExtractHand()
	t.discards = t.doc.ExtractDiscards()
	t.board = t.doc.ExtractBoard()
	t.doc.StampCardValues()
	t.doc.SetCardCount(t.doc.UserName, len(t.hand))
	t.wildCard = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t.doc.WildCardText), "Wild Card"))
}

func (t *Table) Doc() *view.Document {
	return t.doc
}

func (t *Table) Hand() []model.Card {
	hand := make([]model.Card, len(t.hand))
	copy(hand, t.hand)
	return hand
}

func (t *Table) Discards() []model.Card {
	discards := make([]model.Card, len(t.discards))
	copy(discards, t.discards)
	return discards
}

func (t *Table) Board() []model.MeldGroup {
	board := make([]model.MeldGroup, len(t.board))
	copy(board, t.board)
	return board
}

func (t *Table) WildCard() string {
	return t.wildCard
}

func (t *Table) Status() string {
	return t.status
}

// MyTurn reports whether the roster marks the local player active.
func (t *Table) MyTurn() bool {
	for _, stat := range t.doc.Roster() {
		if stat.Active && stat.Name == t.doc.UserName {
			return true
		}
	}
	return false
}

// DeckCards parses the remaining draw stock out of the page storage.
func (t *Table) DeckCards() []model.Card {
	var deck []model.Card
	if t.doc.DeckText == "" {
		return deck
	}
	if err := jsoniter.UnmarshalFromString(t.doc.DeckText, &deck); err != nil {
		log.Error(err)
	}
	return deck
}

func (t *Table) storeDeck(deck []model.Card) {
	if deck == nil {
		deck = []model.Card{}
	}
	text, err := jsoniter.MarshalToString(deck)
	if err != nil {
		log.Error(err)
		return
	}
	t.doc.DeckText = text
}

// ApplySnapshot replaces all local state with a server push, wholesale.
// Last pushed wins, nothing is merged.
func (t *Table) ApplySnapshot(snapshot *model.GameSnapshot) {
	t.doc.SetPlayerCards(snapshot.PlayerCards)
	t.storeDeck(snapshot.DeckCards)
	t.doc.ClearDiscards()
	for _, card := range snapshot.Discards {
		t.doc.AppendDiscard(card)
	}
	t.doc.SetRoster(snapshot.Players, snapshot.ActivePlayer, snapshot.CardCounts, snapshot.WildCard)
	t.doc.DealerText = "Dealer: " + snapshot.Dealer
	t.doc.SetGameBoard(snapshot.GameBoard)
	t.Initialize()
}

// TurnPayload packs the current stock, hand, discard pile and board for
// submission to the server.
func (t *Table) TurnPayload() *model.TurnPayload {
	return &model.TurnPayload{
		Deck:     t.DeckCards(),
		Hand:     t.Hand(),
		Discards: t.Discards(),
		Board:    t.Board(),
	}
}

func (t *Table) fail(err consts.Error) error {
	t.status = err.Msg
	t.doc.StatusMsg = err.Msg
	return err
}
