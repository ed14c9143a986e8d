package parser

import "errors"

// Host misuse surfaces as ordinary errors; everything a player can
// trigger comes back as a Result value instead.
var (
	ErrNilResolver  = errors.New("parser: resolver must not be nil")
	ErrInputTooLong = errors.New("parser: input exceeds maximum length")
)

// Role marks which argument position an ambiguous phrase was filling.
type Role string

const (
	RoleSubject Role = "subject"
	RoleObject  Role = "object"
)

// ResolvedEntity is one candidate returned by the caller's resolver. The
// parser reads only ID; Attrs are forwarded untouched so a game can show
// them when asking the player to disambiguate.
type ResolvedEntity struct {
	ID    string
	Attrs map[string]any
}

// Entity is a resolved noun phrase inside a Command.
type Entity struct {
	ID         string
	Noun       string
	Adjectives []string
}

// Result is the outcome of a single Parse call. Exactly one of Command,
// Ambiguous, UnknownVerb, UnknownNoun or BadCommand is returned, so a
// game loop can switch exhaustively on the concrete type.
type Result interface {
	isResult()
}

// Command is a fully parsed player command. Only the fields relevant to
// the verb's pattern are set; Raw always holds the original input.
type Command struct {
	Verb        string
	Subject     *Entity
	Object      *Entity
	Preposition string
	Direction   string
	Text        string
	Raw         string
}

// Ambiguous reports that a noun phrase matched more than one entity.
// Original is the phrase as the player wrote it (articles dropped).
type Ambiguous struct {
	Candidates []ResolvedEntity
	Original   string
	Role       Role
}

// UnknownVerb reports an unrecognised first word. Suggestion, when
// non-empty, is the canonical verb with the closest synonym by edit
// distance.
type UnknownVerb struct {
	Verb       string
	Suggestion string
}

// UnknownNoun reports a noun phrase the resolver could not match.
// Position is the byte offset of the phrase's first word.
type UnknownNoun struct {
	Noun     string
	Position int
}

// BadCommand reports a structurally invalid command, such as a missing
// preposition or a dangling verb. Position is a byte offset into the
// input.
type BadCommand struct {
	Message  string
	Position int
}

func (Command) isResult()     {}
func (Ambiguous) isResult()   {}
func (UnknownVerb) isResult() {}
func (UnknownNoun) isResult() {}
func (BadCommand) isResult()  {}
