package session

// State is a state of the session state machine.
//
//	AwaitingChoice -> Sending -> AwaitingReply -> AwaitingChoice
//	any            -> Terminated
//
// The blocking operator prompt, socket write and socket read each happen in
// exactly one state, so they are the only points where the engine waits.
type State int

const (
	StateAwaitingChoice State = iota
	StateSending
	StateAwaitingReply
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting-choice"
	case StateSending:
		return "sending"
	case StateAwaitingReply:
		return "awaiting-reply"
	case StateTerminated:
		return "terminated"
	default:
		return "invalid"
	}
}
