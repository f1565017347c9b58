package lexer

// OptionID names a lexer option in the numeric Set/Get interface.
type OptionID int

const (
	OptionComments   OptionID = 1
	OptionWhitespace OptionID = 2
)

// Options controls which trivia the lexer materializes as tokens.
// The zero value discards all trivia.
type Options struct {
	Comments   bool
	Whitespace bool
}

// Set enables the option when v is non-zero and disables it otherwise.
// Unknown IDs are ignored.
func (o *Options) Set(id OptionID, v int) {
	switch id {
	case OptionComments:
		o.Comments = v != 0
	case OptionWhitespace:
		o.Whitespace = v != 0
	}
}

// Get returns 1 for an enabled option and 0 otherwise.
func (o Options) Get(id OptionID) int {
	var on bool
	switch id {
	case OptionComments:
		on = o.Comments
	case OptionWhitespace:
		on = o.Whitespace
	}
	if on {
		return 1
	}
	return 0
}
