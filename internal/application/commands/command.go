package commands

// Result is the outcome of executing or undoing a command
type Result int

const (
	// Applied means the transition was performed
	Applied Result = iota
	// Rejected means nothing changed; the page is in the same state as before
	Rejected
	// UnknownState means the page can no longer be trusted to match the
	// recorded history
	UnknownState
)

func (r Result) String() string {
	switch r {
	case Applied:
		return "applied"
	case Rejected:
		return "rejected"
	case UnknownState:
		return "unknown state"
	default:
		return "unknown"
	}
}

// Command is a reversible user operation on a page.
//
// A command captures the state it needs to revert itself when it is
// constructed, so it must be created right before being handed to a Stack.
type Command interface {
	// Execute performs the operation (forward execute or redo)
	Execute() Result

	// Undo reverts the operation
	Undo() Result

	// Type identifies the kind of command, used to decide merge eligibility
	Type() string

	// MaybeMergeWith checks whether previous is similar enough to absorb this
	// command. If so it modifies previous in place and returns true, and the
	// caller drops this command instead of recording it.
	MaybeMergeWith(previous Command) bool
}

// NoMerge provides the default MaybeMergeWith for commands that never merge
type NoMerge struct{}

// MaybeMergeWith always returns false
func (NoMerge) MaybeMergeWith(Command) bool { return false }
