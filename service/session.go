package service

import (
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/engine"
	"github.com/rummy-online/client/model"
	"github.com/rummy-online/client/network"
)

// Session ties one player's table to the server side of a game: the push
// stream feeding reconciliation and the submitter carrying turn updates.
type Session struct {
	sync.Mutex

	GameID   string
	UserName string

	table     *engine.Table
	submitter *network.Submitter
	listener  *network.Listener

	commands chan string
	state    consts.StateID

	lastSnapshot *model.GameSnapshot
}

func (s *Session) Table() *engine.Table {
	return s.table
}

// WithTable runs fn with the table held under the session lock. Reads
// outside the lock race with the push goroutine.
func (s *Session) WithTable(fn func(*engine.Table)) {
	s.Lock()
	defer s.Unlock()
	fn(s.table)
}

func (s *Session) State(id consts.StateID) {
	s.state = id
}

func (s *Session) GetState() consts.StateID {
	return s.state
}

// Input feeds one user command into the session. Commands are dropped
// when nobody is consuming them fast enough.
func (s *Session) Input(command string) {
	select {
	case s.commands <- command:
	default:
	}
}

// AskForCommand waits for the next user command.
func (s *Session) AskForCommand(timeout ...time.Duration) (string, error) {
	if len(timeout) > 0 {
		select {
		case command, ok := <-s.commands:
			if !ok {
				return "", consts.ErrorsChanClosed
			}
			return command, nil
		case <-time.After(timeout[0]):
			return "", consts.ErrorsTimeout
		}
	}
	command, ok := <-s.commands
	if !ok {
		return "", consts.ErrorsChanClosed
	}
	return command, nil
}

// ApplySnapshot replaces all local state with a pushed server snapshot.
// Runs on the push goroutine; one message is absorbed completely before
// the next is read.
func (s *Session) ApplySnapshot(snapshot *model.GameSnapshot) {
	s.Lock()
	defer s.Unlock()
	s.lastSnapshot = snapshot
	s.table.ApplySnapshot(snapshot)
	log.Infof("game %s updated from server push\n", s.GameID)
}

// Reload abandons local changes by reapplying the last authoritative
// snapshot, the client-side stand-in for reloading the page.
func (s *Session) Reload() {
	s.Lock()
	defer s.Unlock()
	if s.lastSnapshot == nil {
		return
	}
	s.table.ApplySnapshot(s.lastSnapshot)
}

// CompleteTurn submits the current table to the server. On failure the
// table is left untouched and the player may retry; on success the next
// push rebuilds everything from the server's view.
func (s *Session) CompleteTurn() error {
	s.Lock()
	payload := s.table.TurnPayload()
	s.Unlock()
	if err := s.submitter.SubmitTurn(payload); err != nil {
		return err
	}
	log.Infof("turn for game %s submitted\n", s.GameID)
	return nil
}
