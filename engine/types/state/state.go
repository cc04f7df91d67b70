package state

var (
	Running    = State{"running"}
	Terminated = State{"terminated"}
)

type State struct {
	state string
}

func (s State) String() string {
	return s.state
}

func (s State) Equal(other State) bool {
	return s.state == other.state
}

func (s State) IsRunning() bool {
	return s.state == Running.state
}

func (s State) IsTerminated() bool {
	return s.state == Terminated.state
}
