package view_test

import (
	"testing"

	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/model"
	"github.com/rummy-online/client/view"
	"github.com/stretchr/testify/require"
)

func TestSuitResolution(t *testing.T) {
	for _, suit := range consts.AllSuits {
		elem := view.NewCardElem(model.NewCard(suit, "5"))
		require.Equal(t, suit, elem.Suit())
	}
	require.Equal(t, consts.SuitJoker, view.NewCardElem(model.Joker()).Suit())
}

func TestExtractHandKeepsDisplayOrder(t *testing.T) {
	doc := view.NewDocument("alice", "g1")
	cards := []model.Card{
		model.NewCard(consts.SuitSpades, "2"),
		model.NewCard(consts.SuitHearts, "5"),
		model.NewCard(consts.SuitClubs, "5"),
	}
	doc.SetPlayerCards(cards)
	require.Equal(t, cards, doc.ExtractHand())
}

func TestExtractIsIdempotent(t *testing.T) {
	doc := view.NewDocument("alice", "g1")
	doc.SetPlayerCards([]model.Card{model.NewCard(consts.SuitSpades, "2")})
	doc.AppendDiscard(model.NewCard(consts.SuitDiamonds, "9"))
	doc.SetGameBoard([]model.MeldGroup{
		{Type: consts.MeldRun, MeldCards: []model.MeldCard{
			model.NewMeldCard("bob", model.NewCard(consts.SuitClubs, "4")),
		}},
	})
	require.Equal(t, doc.ExtractHand(), doc.ExtractHand())
	require.Equal(t, doc.ExtractDiscards(), doc.ExtractDiscards())
	require.Equal(t, doc.ExtractBoard(), doc.ExtractBoard())
}

func TestExtractBoardStampsOwnership(t *testing.T) {
	doc := view.NewDocument("alice", "g1")
	doc.SetGameBoard([]model.MeldGroup{
		{Type: consts.MeldBook, MeldCards: []model.MeldCard{
			model.NewMeldCard("alice", model.NewCard(consts.SuitHearts, "Q")),
			model.NewMeldCard("bob", model.NewCard(consts.SuitSpades, "Q")),
		}},
	})
	board := doc.ExtractBoard()
	require.Len(t, board, 1)
	require.Equal(t, "alice", board[0].MeldCards[0].Player)

	cards := doc.Board()[0].Cards()
	require.True(t, cards[0].HasClass(view.ClassMyPlayedCard))
	require.False(t, cards[1].HasClass(view.ClassMyPlayedCard))
}

func TestRemoveDiscardMatches(t *testing.T) {
	doc := view.NewDocument("alice", "g1")
	nine := model.NewCard(consts.SuitDiamonds, "9")
	doc.AppendDiscard(model.NewCard(consts.SuitClubs, "3"))
	doc.AppendDiscard(nine)
	doc.AppendDiscard(nine)
	doc.RemoveDiscardMatches(nine)
	require.Equal(t, []model.Card{model.NewCard(consts.SuitClubs, "3")}, doc.ExtractDiscards())
}

func TestRelayoutAssignsIncreasingPositions(t *testing.T) {
	doc := view.NewDocument("alice", "g1")
	doc.SetPlayerCards([]model.Card{
		model.NewCard(consts.SuitSpades, "2"),
		model.NewCard(consts.SuitSpades, "3"),
		model.NewCard(consts.SuitSpades, "4"),
	})
	cards := doc.HandCards()
	require.Equal(t, 0.0, cards[0].Left())
	require.Equal(t, view.CardStride, cards[1].Left())
	require.Equal(t, 2*view.CardStride, cards[2].Left())
}

func TestStampCardValuesSkipsJokers(t *testing.T) {
	doc := view.NewDocument("alice", "g1")
	doc.SetPlayerCards([]model.Card{model.NewCard(consts.SuitHearts, "K"), model.Joker()})
	doc.StampCardValues()
	cards := doc.HandCards()
	require.Equal(t, "K", cards[0].Attr(view.AttrCardValue))
	require.Equal(t, "", cards[1].Attr(view.AttrCardValue))
}
