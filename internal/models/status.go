package models

// Status is the closed set of bid negotiation states. New statuses must be
// added here, to the lifecycle transition table, and to Group.
type Status string

const (
	StatusPending         Status = "pending"
	StatusAccepted        Status = "accepted"
	StatusRejected        Status = "rejected"
	StatusCounterOffered  Status = "counter_offered"
	StatusCounterAccepted Status = "counter_accepted"
	StatusCounterRejected Status = "counter_rejected"
)

// Group is the display bucket a status belongs to. The four groups
// partition the six statuses exactly.
type Group string

const (
	GroupPending        Group = "pending"
	GroupCounterOffered Group = "counter_offered"
	GroupAccepted       Group = "accepted"
	GroupRejected       Group = "rejected"
)

// Valid reports whether s is one of the six known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected,
		StatusCounterOffered, StatusCounterAccepted, StatusCounterRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s Status) Terminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusCounterAccepted, StatusCounterRejected:
		return true
	}
	return false
}

// Group maps a status to its display bucket. Recomputed on every read,
// never stored.
func (s Status) Group() Group {
	switch s {
	case StatusPending:
		return GroupPending
	case StatusCounterOffered:
		return GroupCounterOffered
	case StatusAccepted, StatusCounterAccepted:
		return GroupAccepted
	case StatusRejected, StatusCounterRejected:
		return GroupRejected
	}
	// Unreachable for statuses constructed through this package.
	return GroupPending
}
