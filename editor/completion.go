package editor

// CompletionFlags selects what a field completes.
type CompletionFlags uint16

const (
	CompleteFilenames CompletionFlags = 1 << iota
	CompleteHostnames
	CompleteCommands
	CompleteVariables
	CompleteUsernames
	// CompleteCD completes directories relative to a cd target.
	CompleteCD
	// CompleteShellEscape backslash-escapes shell metacharacters in results.
	CompleteShellEscape
)

// CompleteDefault is what a plain file-oriented field completes.
const CompleteDefault = CompleteFilenames | CompleteHostnames | CompleteVariables | CompleteUsernames

// CompletionRequest is the line state handed to a Completer.
type CompletionRequest struct {
	Text  string
	Point int
	Flags CompletionFlags
}

// CompletionResult tells the input line how to apply a completion.
//
// Text in [Start, End) is replaced by Replacement. When Unique is set the
// completion is final and a space follows it. Candidates lists every match
// for hosts that show a choice.
type CompletionResult struct {
	Start, End  int
	Replacement string
	Unique      bool
	Candidates  []string
}

// Completer is the completion engine behind the Complete command.
type Completer interface {
	Complete(req CompletionRequest) (CompletionResult, bool)
	// Invalidate drops any state kept from the last Complete call.
	Invalidate()
}
