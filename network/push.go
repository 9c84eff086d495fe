package network

import (
	"fmt"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/log"
	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/model"
)

// Handler consumes authoritative game snapshots pushed by the server.
type Handler func(*model.GameSnapshot)

type envelope struct {
	Type string `json:"type"`
}

// Listener is the client end of the push notification stream for one
// game session.
type Listener struct {
	conn    *websocket.Conn
	handler Handler
}

// DialStream connects the push stream for the given game and player.
func DialStream(baseURL, gameID, userName string, handler Handler) (*Listener, error) {
	streamURL := fmt.Sprintf("%s/stream/%s/%s", baseURL, gameID, userName)
	conn, _, err := websocket.DefaultDialer.Dial(streamURL, nil)
	if err != nil {
		return nil, err
	}
	log.Infof("push stream connected, %s\n", streamURL)
	return &Listener{conn: conn, handler: handler}, nil
}

// Listen consumes push messages until the stream closes. Each message is
// handled to completion before the next one is read.
func (l *Listener) Listen() error {
	defer func() {
		if err := l.conn.Close(); err != nil {
			log.Error(err)
		}
	}()
	for {
		_, data, err := l.conn.ReadMessage()
		if err != nil {
			log.Error(err)
			return err
		}
		Dispatch(data, l.handler)
	}
}

// Dispatch decodes one push message and hands game updates to the
// handler. Messages carrying any other type are ignored.
func Dispatch(data []byte, handler Handler) {
	env := envelope{}
	if err := jsoniter.Unmarshal(data, &env); err != nil {
		log.Error(err)
		return
	}
	if env.Type != consts.MessageUpdateGame {
		return
	}
	snapshot := &model.GameSnapshot{}
	if err := jsoniter.Unmarshal(data, snapshot); err != nil {
		log.Error(err)
		return
	}
	handler(snapshot)
}
