package state

import (
	"strings"
	"time"

	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/engine"
	"github.com/rummy-online/client/render"
	"github.com/rummy-online/client/service"
)

type idle struct{}

func (s *idle) Next(session *service.Session) (consts.StateID, error) {
	session.WithTable(render.Waiting)
	for {
		myTurn := false
		session.WithTable(func(table *engine.Table) {
			myTurn = table.MyTurn()
		})
		if myTurn {
			return consts.StateActing, nil
		}
		command, err := session.AskForCommand(time.Second)
		if err != nil {
			if err == consts.ErrorsTimeout {
				continue
			}
			return 0, err
		}
		switch strings.ToLower(strings.TrimSpace(command)) {
		case "":
		case "v", "view":
			session.WithTable(render.Game)
		case "e", "exit":
			return s.Exit(session), consts.ErrorsExist
		}
	}
}

func (*idle) Exit(session *service.Session) consts.StateID {
	return 0
}
