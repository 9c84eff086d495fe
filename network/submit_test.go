package network_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/model"
	"github.com/rummy-online/client/network"
	"github.com/stretchr/testify/require"
)

func turnPayload() *model.TurnPayload {
	return &model.TurnPayload{
		Deck:     []model.Card{model.NewCard(consts.SuitClubs, "8")},
		Hand:     []model.Card{model.NewCard(consts.SuitSpades, "2"), model.Joker()},
		Discards: []model.Card{model.NewCard(consts.SuitDiamonds, "9")},
		Board: []model.MeldGroup{{Type: consts.MeldBook, MeldCards: []model.MeldCard{
			model.NewMeldCard("alice", model.NewCard(consts.SuitHearts, "Q")),
		}}},
	}
}

func TestSubmitTurn(t *testing.T) {
	payload := turnPayload()
	var gotPath string
	form := map[string]string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		for field := range r.PostForm {
			form[field] = r.PostFormValue(field)
		}
	}))
	defer server.Close()

	submitter := network.NewSubmitter(server.URL, "g1", "alice", "token123")
	require.NoError(t, submitter.SubmitTurn(payload))
	require.Equal(t, "/game-page/g1/alice/turn_complete_post/", gotPath)
	require.Equal(t, "token123", form["csrfmiddlewaretoken"])

	var hand []model.Card
	require.NoError(t, jsoniter.UnmarshalFromString(form["updated_players_hand"], &hand))
	require.Equal(t, payload.Hand, hand)

	var deck []model.Card
	require.NoError(t, jsoniter.UnmarshalFromString(form["updated_deck"], &deck))
	require.Equal(t, payload.Deck, deck)

	var discards []model.Card
	require.NoError(t, jsoniter.UnmarshalFromString(form["discards"], &discards))
	require.Equal(t, payload.Discards, discards)

	var board []model.MeldGroup
	require.NoError(t, jsoniter.UnmarshalFromString(form["game_board"], &board))
	require.Equal(t, payload.Board, board)
}

func TestSubmitTurnRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	submitter := network.NewSubmitter(server.URL, "g1", "alice", "token123")
	err := submitter.SubmitTurn(turnPayload())
	require.Equal(t, consts.ErrorsTurnSubmitRejected, err)
}

func TestSubmitTurnTransportError(t *testing.T) {
	submitter := network.NewSubmitter("http://127.0.0.1:1", "g1", "alice", "token123")
	require.Error(t, submitter.SubmitTurn(turnPayload()))
}
