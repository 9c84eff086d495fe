package network

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/log"
	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/model"
)

// Submitter posts completed turns back to the game server.
type Submitter struct {
	client    *http.Client
	baseURL   string
	gameID    string
	userName  string
	csrfToken string
}

func NewSubmitter(baseURL, gameID, userName, csrfToken string) *Submitter {
	return &Submitter{
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   baseURL,
		gameID:    gameID,
		userName:  userName,
		csrfToken: csrfToken,
	}
}

// SubmitTurn sends the stock, hand, discard pile and board in one update.
// Local state is untouched either way; the caller reloads on success and
// may retry after a failure.
func (s *Submitter) SubmitTurn(payload *model.TurnPayload) error {
	form := url.Values{}
	if err := setJSONField(form, "updated_deck", payload.Deck); err != nil {
		return err
	}
	if err := setJSONField(form, "updated_players_hand", payload.Hand); err != nil {
		return err
	}
	if err := setJSONField(form, "discards", payload.Discards); err != nil {
		return err
	}
	if err := setJSONField(form, "game_board", payload.Board); err != nil {
		return err
	}
	form.Set("csrfmiddlewaretoken", s.csrfToken)

	endpoint := fmt.Sprintf("%s/game-page/%s/%s/turn_complete_post/", s.baseURL, s.gameID, s.userName)
	resp, err := s.client.PostForm(endpoint, form)
	if err != nil {
		log.Error(err)
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Errorf("turn submit rejected, status %d\n", resp.StatusCode)
		return consts.ErrorsTurnSubmitRejected
	}
	return nil
}

func setJSONField(form url.Values, field string, value interface{}) error {
	text, err := jsoniter.MarshalToString(value)
	if err != nil {
		return err
	}
	form.Set(field, text)
	return nil
}
