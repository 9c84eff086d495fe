package service

import (
	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/rummy-online/client/engine"
	"github.com/rummy-online/client/network"
	"github.com/rummy-online/client/view"
)

var sessions = hashmap.New()

// Config carries the page-supplied values a session needs: where the
// server lives, which game this is, who the player is and the
// anti-forgery token rendered into the page.
type Config struct {
	BaseURL   string
	StreamURL string
	GameID    string
	UserName  string
	CSRFToken string
}

// Connect registers a session and attaches the push stream. A stream
// dial failure is not fatal: the session degrades to manual reloads.
func Connect(config Config) *Session {
	doc := view.NewDocument(config.UserName, config.GameID)
	doc.CSRFToken = config.CSRFToken
	session := &Session{
		GameID:    config.GameID,
		UserName:  config.UserName,
		table:     engine.NewTable(doc),
		submitter: network.NewSubmitter(config.BaseURL, config.GameID, config.UserName, config.CSRFToken),
		commands:  make(chan string, 16),
	}
	sessions.Set(sessionKey(config.GameID, config.UserName), session)

	listener, err := network.DialStream(config.StreamURL, config.GameID, config.UserName, session.ApplySnapshot)
	if err != nil {
		log.Error(err)
		return session
	}
	session.listener = listener
	async.Async(func() {
		_ = listener.Listen()
	})
	return session
}

func GetSession(gameID, userName string) *Session {
	if v, ok := sessions.Get(sessionKey(gameID, userName)); ok {
		return v.(*Session)
	}
	return nil
}

func Disconnect(session *Session) {
	if session == nil {
		return
	}
	sessions.Del(sessionKey(session.GameID, session.UserName))
	close(session.commands)
}

func sessionKey(gameID, userName string) string {
	return gameID + "/" + userName
}
