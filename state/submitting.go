package state

import (
	"github.com/ratel-online/core/log"
	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/render"
	"github.com/rummy-online/client/service"
)

type submitting struct{}

// Next submits the turn. A failed submission leaves local state as it
// was and returns the player to the acting phase for a retry; a
// successful one hands authority back to the server, whose next push
// rebuilds the table.
func (s *submitting) Next(session *service.Session) (consts.StateID, error) {
	if err := session.CompleteTurn(); err != nil {
		log.Error(err)
		render.Error(err)
		return consts.StateActing, nil
	}
	return consts.StateIdle, nil
}

func (*submitting) Exit(session *service.Session) consts.StateID {
	return 0
}
