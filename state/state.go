package state

import (
	"github.com/ratel-online/core/log"
	"github.com/rummy-online/client/consts"
	"github.com/rummy-online/client/service"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateIdle, &idle{})
	register(consts.StateActing, &acting{})
	register(consts.StateSubmitting, &submitting{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// State is one phase of the per-turn cycle. Next blocks until the phase
// is over and names the phase that follows.
type State interface {
	Next(session *service.Session) (consts.StateID, error)
	Exit(session *service.Session) consts.StateID
}

func Root() consts.StateID {
	return consts.StateIdle
}

// Run drives the session through the turn cycle until a fatal error or
// an explicit exit.
func Run(session *service.Session) error {
	session.State(Root())
	var err error
	for {
		state := states[session.GetState()]
		var stateID consts.StateID
		stateID, err = state.Next(session)
		if err != nil {
			log.Error(err)
			break
		}
		if stateID > 0 {
			session.State(stateID)
		}
	}
	return err
}
