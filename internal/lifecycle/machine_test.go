package lifecycle

import (
	"testing"

	"marketbids/internal/biderrors"
	"marketbids/internal/models"

	"github.com/stretchr/testify/require"
)

// Tests Next over the complete transition table
func TestNext_TransitionTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		from   models.Status
		action Action
		actor  Role
		want   models.Status
	}{
		{name: "seller_accepts_pending", from: models.StatusPending, action: ActionAccept, actor: RoleSeller, want: models.StatusAccepted},
		{name: "seller_rejects_pending", from: models.StatusPending, action: ActionReject, actor: RoleSeller, want: models.StatusRejected},
		{name: "seller_counters_pending", from: models.StatusPending, action: ActionCounter, actor: RoleSeller, want: models.StatusCounterOffered},
		{name: "buyer_accepts_counter", from: models.StatusCounterOffered, action: ActionAccept, actor: RoleBuyer, want: models.StatusCounterAccepted},
		{name: "buyer_rejects_counter", from: models.StatusCounterOffered, action: ActionReject, actor: RoleBuyer, want: models.StatusCounterRejected},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Next(tc.from, tc.action, tc.actor)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// Tests that terminal statuses reject every action from both parties
func TestNext_TerminalStatuses(t *testing.T) {
	t.Parallel()

	terminals := []models.Status{
		models.StatusAccepted,
		models.StatusRejected,
		models.StatusCounterAccepted,
		models.StatusCounterRejected,
	}
	actions := []Action{ActionAccept, ActionReject, ActionCounter}
	actors := []Role{RoleBuyer, RoleSeller}

	for _, from := range terminals {
		require.True(t, from.Terminal())
		for _, action := range actions {
			for _, actor := range actors {
				_, err := Next(from, action, actor)
				require.ErrorIs(t, err, biderrors.ErrInvalidTransition,
					"%s by %s from %s must be invalid", action, actor, from)
			}
		}
	}
}

// Tests that the other party's edge is an invalid transition: by the time
// Next runs, identity has been checked, so a role mismatch means the bid is
// in the wrong phase for this command.
func TestNext_WrongActor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		from   models.Status
		action Action
		actor  Role
	}{
		{name: "buyer_accepts_pending", from: models.StatusPending, action: ActionAccept, actor: RoleBuyer},
		{name: "buyer_rejects_pending", from: models.StatusPending, action: ActionReject, actor: RoleBuyer},
		{name: "buyer_counters_pending", from: models.StatusPending, action: ActionCounter, actor: RoleBuyer},
		{name: "seller_accepts_counter", from: models.StatusCounterOffered, action: ActionAccept, actor: RoleSeller},
		{name: "seller_rejects_counter", from: models.StatusCounterOffered, action: ActionReject, actor: RoleSeller},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Next(tc.from, tc.action, tc.actor)
			require.ErrorIs(t, err, biderrors.ErrInvalidTransition)
		})
	}
}

// Tests that a seller cannot revise an open counter-offer
func TestNext_NoCounterRevision(t *testing.T) {
	t.Parallel()

	_, err := Next(models.StatusCounterOffered, ActionCounter, RoleSeller)
	require.ErrorIs(t, err, biderrors.ErrInvalidTransition)
}

// Tests ActorFor across all statuses
func TestActorFor(t *testing.T) {
	t.Parallel()

	actor, ok := ActorFor(models.StatusPending)
	require.True(t, ok)
	require.Equal(t, RoleSeller, actor)

	actor, ok = ActorFor(models.StatusCounterOffered)
	require.True(t, ok)
	require.Equal(t, RoleBuyer, actor)

	for _, terminal := range []models.Status{
		models.StatusAccepted, models.StatusRejected,
		models.StatusCounterAccepted, models.StatusCounterRejected,
	} {
		_, ok := ActorFor(terminal)
		require.False(t, ok, "terminal status %s has no actor", terminal)
	}
}

// Tests that only table statuses are reachable from pending
func TestNext_ReachableStatuses(t *testing.T) {
	t.Parallel()

	reachable := map[models.Status]bool{models.StatusPending: true}
	frontier := []models.Status{models.StatusPending}
	actions := []Action{ActionAccept, ActionReject, ActionCounter}
	actors := []Role{RoleBuyer, RoleSeller}

	for len(frontier) > 0 {
		from := frontier[0]
		frontier = frontier[1:]
		for _, action := range actions {
			for _, actor := range actors {
				next, err := Next(from, action, actor)
				if err != nil {
					continue
				}
				require.True(t, next.Valid())
				if !reachable[next] {
					reachable[next] = true
					frontier = append(frontier, next)
				}
			}
		}
	}

	require.Len(t, reachable, 6, "every status must be reachable from pending, and nothing else")
}
