package state

import (
	"strconv"
	"strings"

	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/render"
	"github.com/rummy-online/client/service"
)

type acting struct{}

func (s *acting) Next(session *service.Session) (consts.StateID, error) {
	session.WithTable(render.Game)
	render.Help()
	for {
		command, err := session.AskForCommand()
		if err != nil {
			return 0, err
		}
		fields := strings.Fields(strings.ToLower(command))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v", "view":
			session.WithTable(render.Game)
		case "mode":
			apply(session, func() error {
				session.Table().BeginSelection()
				return nil
			})
		case "draw":
			apply(session, func() error {
				session.Table().DrawFromStock()
				return nil
			})
		case "take":
			apply(session, session.Table().DrawFromDiscard)
		case "pick":
			index, ok := argIndex(fields)
			if !ok {
				render.Error(consts.ErrorsInputInvalid)
				continue
			}
			apply(session, func() error {
				session.Table().SelectDiscardCard(index)
				return nil
			})
		case "discard":
			apply(session, session.Table().DiscardSelected)
		case "sel":
			index, ok := argIndex(fields)
			if !ok {
				render.Error(consts.ErrorsInputInvalid)
				continue
			}
			apply(session, func() error {
				session.Table().ToggleMeldCard(index)
				return nil
			})
		case "anchor":
			index, ok := argIndex(fields)
			if !ok {
				render.Error(consts.ErrorsInputInvalid)
				continue
			}
			apply(session, func() error {
				session.Table().SelectAnchor(index)
				return nil
			})
		case "run":
			apply(session, func() error {
				return session.Table().PlayNew(consts.MeldRun)
			})
		case "book":
			apply(session, func() error {
				return session.Table().PlayNew(consts.MeldBook)
			})
		case "before":
			apply(session, func() error {
				return session.Table().PlayAdd(consts.PlayBefore)
			})
		case "after":
			apply(session, func() error {
				return session.Table().PlayAdd(consts.PlayAfter)
			})
		case "move":
			if len(fields) < 3 {
				render.Error(consts.ErrorsInputInvalid)
				continue
			}
			index, err1 := strconv.Atoi(fields[1])
			left, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				render.Error(consts.ErrorsInputInvalid)
				continue
			}
			apply(session, func() error {
				session.Table().DropHandCard(index, left)
				return nil
			})
		case "undo":
			session.Reload()
			session.WithTable(render.Game)
		case "done":
			return consts.StateSubmitting, nil
		case "e", "exit":
			return s.Exit(session), consts.ErrorsExist
		default:
			render.Error(consts.ErrorsInputInvalid)
		}
	}
}

func (*acting) Exit(session *service.Session) consts.StateID {
	return 0
}

// apply runs one table mutation under the session lock and surfaces any
// status message it produced.
func apply(session *service.Session, mutate func() error) {
	session.Lock()
	err := mutate()
	session.Unlock()
	if err != nil {
		render.Error(err)
	}
}

func argIndex(fields []string) (int, bool) {
	if len(fields) < 2 {
		return 0, false
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	return index, true
}
