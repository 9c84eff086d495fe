package engine_test

import (
	"testing"

	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/model"
	"github.com/rummy-online/client/view"
	"github.com/stretchr/testify/require"
)

func TestDropHandCardBeforeSuccessor(t *testing.T) {
	table := newTable([]model.Card{
		card(consts.SuitSpades, "2"),
		card(consts.SuitHearts, "5"),
		card(consts.SuitClubs, "8"),
		card(consts.SuitDiamonds, "J"),
	}, nil, nil)

	// Drop the last card just left of the second one.
	table.DropHandCard(3, view.CardStride-5)
	require.Equal(t, []model.Card{
		card(consts.SuitSpades, "2"),
		card(consts.SuitDiamonds, "J"),
		card(consts.SuitHearts, "5"),
		card(consts.SuitClubs, "8"),
	}, table.Hand())
}

func TestDropHandCardPastEnd(t *testing.T) {
	table := newTable([]model.Card{
		card(consts.SuitSpades, "2"),
		card(consts.SuitHearts, "5"),
		card(consts.SuitClubs, "8"),
	}, nil, nil)

	table.DropHandCard(0, 10*view.CardStride)
	require.Equal(t, []model.Card{
		card(consts.SuitHearts, "5"),
		card(consts.SuitClubs, "8"),
		card(consts.SuitSpades, "2"),
	}, table.Hand())
}

func TestDropHandCardSkipsDuplicate(t *testing.T) {
	// The dragged five of hearts never docks against its own duplicate,
	// so it lands past the other copy.
	table := newTable([]model.Card{
		card(consts.SuitHearts, "5"),
		card(consts.SuitDiamonds, "A"),
		card(consts.SuitHearts, "5"),
		card(consts.SuitSpades, "K"),
	}, nil, nil)

	table.DropHandCard(0, view.CardStride+5)
	require.Equal(t, []model.Card{
		card(consts.SuitDiamonds, "A"),
		card(consts.SuitHearts, "5"),
		card(consts.SuitHearts, "5"),
		card(consts.SuitSpades, "K"),
	}, table.Hand())
}

func TestDropHandCardResetsOffsets(t *testing.T) {
	table := newTable([]model.Card{
		card(consts.SuitSpades, "2"),
		card(consts.SuitHearts, "5"),
	}, nil, nil)

	table.DropHandCard(1, -20)
	cards := table.Doc().HandCards()
	require.Equal(t, 0.0, cards[0].Left())
	require.Equal(t, view.CardStride, cards[1].Left())
	require.Equal(t, []model.Card{
		card(consts.SuitHearts, "5"),
		card(consts.SuitSpades, "2"),
	}, table.Hand())
}

func TestDropHandCardRaisesZOrder(t *testing.T) {
	table := newTable([]model.Card{
		card(consts.SuitSpades, "2"),
		card(consts.SuitHearts, "5"),
	}, nil, nil)

	table.DropHandCard(0, 0)
	first := table.Doc().HandCards()[0].ZIndex()
	table.DropHandCard(0, 0)
	require.Greater(t, table.Doc().HandCards()[0].ZIndex(), first)
}

func TestDropHandCardInvalidIndex(t *testing.T) {
	table := newTable([]model.Card{card(consts.SuitSpades, "2")}, nil, nil)
	table.DropHandCard(5, 0)
	require.Equal(t, []model.Card{card(consts.SuitSpades, "2")}, table.Hand())
}
