// Package lifecycle holds the bid negotiation state machine: pure transition
// logic with no knowledge of storage, sessions or HTTP.
package lifecycle

import (
	"fmt"

	"marketbids/internal/biderrors"
	"marketbids/internal/models"
)

// Action is a negotiation move attempted against a bid.
type Action string

const (
	ActionAccept  Action = "accept"
	ActionReject  Action = "reject"
	ActionCounter Action = "counter"
)

// Role identifies which party to the negotiation is acting.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

type edge struct {
	to    models.Status
	actor Role
}

// transitions is the complete edge set. A pending bid is answered by the
// seller; an open counter-offer is answered by the buyer. Terminal statuses
// have no outgoing edges, and a seller cannot revise a counter-offer once
// made (no counter edge out of counter_offered).
var transitions = map[models.Status]map[Action]edge{
	models.StatusPending: {
		ActionAccept:  {to: models.StatusAccepted, actor: RoleSeller},
		ActionReject:  {to: models.StatusRejected, actor: RoleSeller},
		ActionCounter: {to: models.StatusCounterOffered, actor: RoleSeller},
	},
	models.StatusCounterOffered: {
		ActionAccept: {to: models.StatusCounterAccepted, actor: RoleBuyer},
		ActionReject: {to: models.StatusCounterRejected, actor: RoleBuyer},
	},
}

// Next computes the status a bid moves to when actor performs action from
// the given status. It fails with ErrInvalidTransition when no edge exists,
// or when the edge belongs to the other party - the latter means the bid has
// already moved past the phase the actor's command applies to, since callers
// verify identity against the bid before asking for a transition.
func Next(from models.Status, action Action, actor Role) (models.Status, error) {
	e, ok := transitions[from][action]
	if !ok {
		return "", fmt.Errorf("lifecycle: %s from status %q: %w", action, from, biderrors.ErrInvalidTransition)
	}
	if e.actor != actor {
		return "", fmt.Errorf("lifecycle: the %s may not %s from status %q: %w", actor, action, from, biderrors.ErrInvalidTransition)
	}
	return e.to, nil
}

// ActorFor returns the party entitled to act on a bid in the given status,
// and false when the status is terminal.
func ActorFor(from models.Status) (Role, bool) {
	edges, ok := transitions[from]
	if !ok {
		return "", false
	}
	for _, e := range edges {
		return e.actor, true
	}
	return "", false
}
