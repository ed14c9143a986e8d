// Package parser turns free-form player input into structured commands
// for an interactive-fiction engine. The caller supplies a vocabulary
// and an entity resolver; the parser supplies tokenization, grammar
// dispatch, noun-phrase extraction, ambiguity detection and pronoun
// tracking. It owns no game world state.
package parser

import (
	"fmt"
	"strings"
)

// DefaultMaxInputLen bounds Parse input so tokenizer work stays O(n) on
// sane sizes and oversized inputs are rejected in O(1).
const DefaultMaxInputLen = 1_000_000

const defaultMinPartialLength = 3

// Scope is caller-supplied context passed through to the resolver
// untouched. Room is the only field the parser itself looks at: when its
// identity changes between Parse calls the pronoun referent is cleared.
// Room values must be comparable (a room ID string is typical).
type Scope struct {
	Room any
	Data map[string]any
}

// ResolverFunc maps a noun phrase to candidate entities in the current
// scope. Returning an error or no candidates both surface to the player
// as an unknown noun; two or more candidates surface as ambiguity. It is
// called synchronously and must not block.
type ResolverFunc func(noun string, adjectives []string, scope Scope) ([]ResolvedEntity, error)

// Options configures a new parser. Resolver is mandatory; the zero value
// of everything else selects the defaults (built-in vocabulary, partial
// verb matching at minimum length 3, 1 MB input ceiling).
type Options struct {
	Resolver         ResolverFunc
	Vocabulary       *VocabConfig
	PartialMatch     *bool
	MinPartialLength int
	MaxInputLen      int
}

// Parser holds one conversation's parsing state. Instances are cheap and
// fully isolated; a single instance is not safe for concurrent use.
type Parser struct {
	resolver   ResolverFunc
	vocab      Vocabulary
	partial    bool
	minPartial int
	maxInput   int

	lastReferent *Entity
	lastRoom     any
}

// New builds a parser. It fails only on host misconfiguration: a nil
// resolver.
func New(opts Options) (*Parser, error) {
	if opts.Resolver == nil {
		return nil, ErrNilResolver
	}
	p := &Parser{
		resolver:   opts.Resolver,
		vocab:      buildVocabulary(opts.Vocabulary),
		partial:    true,
		minPartial: defaultMinPartialLength,
		maxInput:   DefaultMaxInputLen,
	}
	if opts.PartialMatch != nil {
		p.partial = *opts.PartialMatch
	}
	if opts.MinPartialLength > 0 {
		p.minPartial = opts.MinPartialLength
	}
	if opts.MaxInputLen > 0 {
		p.maxInput = opts.MaxInputLen
	}
	return p, nil
}

// AddVerb appends a verb to this parser's vocabulary. It takes effect on
// the next Parse call and never affects other instances or the defaults.
func (p *Parser) AddVerb(def VerbDef) {
	p.vocab.Verbs = append(p.vocab.Verbs, def)
}

// AddDirection appends a direction to this parser's vocabulary.
func (p *Parser) AddDirection(def DirectionDef) {
	p.vocab.Directions = append(p.vocab.Directions, def)
}

// ClearPronoun drops the current "it" referent. The stored room identity
// is untouched.
func (p *Parser) ClearPronoun() {
	p.lastReferent = nil
}

// Parse turns one line of input into exactly one Result. The error
// return is reserved for host misuse (input beyond the length ceiling);
// every player-triggerable outcome is a Result value.
func (p *Parser) Parse(input string, scope Scope) (Result, error) {
	if len(input) > p.maxInput {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLong, len(input), p.maxInput)
	}

	// A room change invalidates "it" before anything else happens, even
	// when the rest of the parse fails.
	if scope.Room != nil && scope.Room != p.lastRoom {
		p.lastReferent = nil
		p.lastRoom = scope.Room
	}

	tokens := Tokenize(input)
	if len(tokens) == 0 {
		return BadCommand{Message: "Empty input", Position: 0}, nil
	}

	// A bare direction is shorthand for GO, bypassing verb lookup.
	if d := p.findDirection(tokens[0].Value); d != nil {
		return Command{Verb: "GO", Direction: d.Direction, Raw: input}, nil
	}

	verb := p.findVerb(tokens[0].Value)
	if verb == nil {
		return UnknownVerb{Verb: tokens[0].Value, Suggestion: p.suggestVerb(tokens[0].Value)}, nil
	}

	switch verb.Pattern {
	case PatternNone:
		// Trailing tokens are ignored.
		return Command{Verb: verb.Verb, Raw: input}, nil
	case PatternDirection:
		return p.parseDirectionCommand(tokens, verb, input), nil
	case PatternText:
		return p.parseTextCommand(tokens, verb, input), nil
	case PatternSubject:
		return p.parseSubjectCommand(tokens, verb, input, scope), nil
	case PatternSubjectObject:
		return p.parseSubjectObjectCommand(tokens, verb, input, scope), nil
	}
	return UnknownVerb{Verb: tokens[0].Value}, nil
}

func (p *Parser) parseDirectionCommand(tokens []Token, verb *VerbDef, input string) Result {
	if len(tokens) < 2 {
		return BadCommand{
			Message:  fmt.Sprintf("Expected direction after %q", verb.Verb),
			Position: tokens[len(tokens)-1].End,
		}
	}
	d := p.findDirection(tokens[1].Value)
	if d == nil {
		return BadCommand{
			Message:  fmt.Sprintf("Expected direction, got %q", tokens[1].Value),
			Position: tokens[1].Start,
		}
	}
	return Command{Verb: verb.Verb, Direction: d.Direction, Raw: input}
}

func (p *Parser) parseTextCommand(tokens []Token, verb *VerbDef, input string) Result {
	if len(tokens) < 2 {
		return BadCommand{
			Message:  fmt.Sprintf("Expected text after %q", verb.Verb),
			Position: tokens[0].End,
		}
	}
	// The text is the untouched tail of the raw input, not re-joined
	// token values, so casing and punctuation survive.
	text := strings.TrimSpace(input[tokens[1].Start:])
	return Command{Verb: verb.Verb, Text: text, Raw: input}
}

func (p *Parser) parseSubjectCommand(tokens []Token, verb *VerbDef, input string, scope Scope) Result {
	np := p.parseNounPhrase(tokens, 1, scope)
	if np.fail != nil {
		return np.fail
	}
	if np.entity == nil {
		return BadCommand{
			Message:  fmt.Sprintf("Expected noun after %q", verb.Verb),
			Position: tokens[0].End,
		}
	}
	p.lastReferent = np.entity

	cmd := Command{Verb: verb.Verb, Subject: np.entity, Raw: input}

	// Subject verbs accept an optional trailing "preposition object",
	// so "unlock door with key" works without declaring UNLOCK as
	// subject_object.
	next := 1 + np.consumed
	if next < len(tokens) && p.isPreposition(tokens[next].Value) {
		prep := tokens[next].Value
		obj := p.parseNounPhrase(tokens, next+1, scope)
		if obj.fail != nil {
			return retagObject(obj.fail)
		}
		if obj.entity == nil {
			return BadCommand{
				Message:  fmt.Sprintf("Expected noun after %q", prep),
				Position: tokens[next].End,
			}
		}
		cmd.Preposition = prep
		cmd.Object = obj.entity
	}
	return cmd
}

func (p *Parser) parseSubjectObjectCommand(tokens []Token, verb *VerbDef, input string, scope Scope) Result {
	np := p.parseNounPhrase(tokens, 1, scope)
	if np.fail != nil {
		return np.fail
	}
	if np.entity == nil {
		return BadCommand{
			Message:  fmt.Sprintf("Expected noun after %q", verb.Verb),
			Position: tokens[0].End,
		}
	}
	p.lastReferent = np.entity

	next := 1 + np.consumed
	if next >= len(tokens) {
		return BadCommand{
			Message:  "Expected preposition and target",
			Position: tokens[len(tokens)-1].End,
		}
	}
	if !p.isPreposition(tokens[next].Value) {
		return BadCommand{
			Message:  fmt.Sprintf("Expected preposition, got %q", tokens[next].Value),
			Position: tokens[next].Start,
		}
	}
	prep := tokens[next].Value

	obj := p.parseNounPhrase(tokens, next+1, scope)
	if obj.fail != nil {
		return retagObject(obj.fail)
	}
	if obj.entity == nil {
		return BadCommand{
			Message:  fmt.Sprintf("Expected noun after %q", prep),
			Position: tokens[next].End,
		}
	}
	return Command{
		Verb:        verb.Verb,
		Subject:     np.entity,
		Object:      obj.entity,
		Preposition: prep,
		Raw:         input,
	}
}

// retagObject rewrites ambiguity raised while parsing the object phrase;
// the noun-phrase resolver always tags it as subject.
func retagObject(r Result) Result {
	if a, ok := r.(Ambiguous); ok {
		a.Role = RoleObject
		return a
	}
	return r
}
