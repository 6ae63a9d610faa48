package matching

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusAccepted, StatusCompleted, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal statuses never change again.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusExpired
}

// IsOpen statuses accept responses from visitors.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusActive
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Action string

const (
	ActionActivate Action = "activate"
	ActionEdit     Action = "edit"
	ActionRespond  Action = "respond"
	ActionAccept   Action = "accept"
	ActionExtend   Action = "extend"
	ActionCancel   Action = "cancel"
	ActionClose    Action = "close"
	ActionExpire   Action = "expire"
)

type transitionKey struct {
	from   Status
	action Action
}

// transitions is the complete lifecycle. Any pair missing here is illegal.
var transitions = map[transitionKey]Status{
	{StatusPending, ActionActivate}: StatusActive,

	{StatusPending, ActionEdit}: StatusPending,
	{StatusActive, ActionEdit}:  StatusActive,

	{StatusPending, ActionRespond}: StatusPending,
	{StatusActive, ActionRespond}:  StatusActive,

	{StatusPending, ActionAccept}: StatusAccepted,
	{StatusActive, ActionAccept}:  StatusAccepted,

	{StatusPending, ActionExtend}:  StatusPending,
	{StatusActive, ActionExtend}:   StatusActive,
	{StatusAccepted, ActionExtend}: StatusAccepted,

	{StatusPending, ActionCancel}:  StatusCancelled,
	{StatusActive, ActionCancel}:   StatusCancelled,
	{StatusAccepted, ActionCancel}: StatusCancelled,

	{StatusAccepted, ActionClose}: StatusCompleted,

	{StatusPending, ActionExpire}:  StatusExpired,
	{StatusActive, ActionExpire}:   StatusExpired,
	{StatusAccepted, ActionExpire}: StatusExpired,
}

// Next returns the status reached by applying action to from.
func Next(from Status, action Action) (Status, error) {
	to, ok := transitions[transitionKey{from: from, action: action}]
	if !ok {
		return from, ErrInvalidTransition
	}
	return to, nil
}

// Allows reports whether action is legal from s.
func (s Status) Allows(action Action) bool {
	_, ok := transitions[transitionKey{from: s, action: action}]
	return ok
}
