package parser

// Pattern is the argument shape a verb accepts.
type Pattern string

const (
	PatternNone          Pattern = "none"
	PatternSubject       Pattern = "subject"
	PatternSubjectObject Pattern = "subject_object"
	PatternDirection     Pattern = "direction"
	PatternText          Pattern = "text"
)

// VerbDef declares a verb: its canonical name (upper-case by convention),
// its lower-case synonyms including the base form, and its pattern.
// Declaration order matters: earlier verbs win exact and prefix matches.
type VerbDef struct {
	Verb     string
	Synonyms []string
	Pattern  Pattern
}

// DirectionDef declares a direction and its lower-case aliases.
type DirectionDef struct {
	Direction string
	Aliases   []string
}

// Vocabulary holds everything the matcher consults. Each parser owns its
// own copy, so runtime additions never leak between instances.
type Vocabulary struct {
	Verbs        []VerbDef
	Directions   []DirectionDef
	Prepositions map[string]bool
	Articles     map[string]bool
}

// VocabConfig customises a parser's vocabulary. With Extend set the
// entries are appended to the built-in defaults; otherwise they replace
// them outright.
type VocabConfig struct {
	Verbs        []VerbDef
	Directions   []DirectionDef
	Prepositions []string
	Articles     []string
	Extend       bool
}

var defaultVerbs = []VerbDef{
	// LOOK stays ahead of LOCK so the "lo" prefix keeps resolving to it.
	{Verb: "LOOK", Synonyms: []string{"look", "l"}, Pattern: PatternNone},
	{Verb: "INVENTORY", Synonyms: []string{"inventory", "inv", "i"}, Pattern: PatternNone},
	{Verb: "WAIT", Synonyms: []string{"wait", "z"}, Pattern: PatternNone},
	{Verb: "HELP", Synonyms: []string{"help"}, Pattern: PatternNone},
	{Verb: "GO", Synonyms: []string{"go", "walk", "move", "head", "travel"}, Pattern: PatternDirection},
	{Verb: "GET", Synonyms: []string{"get", "take", "grab", "pick"}, Pattern: PatternSubject},
	{Verb: "DROP", Synonyms: []string{"drop", "discard", "leave"}, Pattern: PatternSubject},
	{Verb: "EXAMINE", Synonyms: []string{"examine", "inspect", "x"}, Pattern: PatternSubject},
	{Verb: "OPEN", Synonyms: []string{"open"}, Pattern: PatternSubject},
	{Verb: "CLOSE", Synonyms: []string{"close", "shut"}, Pattern: PatternSubject},
	{Verb: "UNLOCK", Synonyms: []string{"unlock"}, Pattern: PatternSubject},
	{Verb: "LOCK", Synonyms: []string{"lock"}, Pattern: PatternSubject},
	{Verb: "USE", Synonyms: []string{"use", "apply"}, Pattern: PatternSubject},
	{Verb: "READ", Synonyms: []string{"read"}, Pattern: PatternSubject},
	{Verb: "PUT", Synonyms: []string{"put", "place", "insert"}, Pattern: PatternSubjectObject},
	{Verb: "GIVE", Synonyms: []string{"give"}, Pattern: PatternSubjectObject},
	{Verb: "SAY", Synonyms: []string{"say", "shout", "yell"}, Pattern: PatternText},
}

var defaultDirections = []DirectionDef{
	{Direction: "NORTH", Aliases: []string{"north", "n"}},
	{Direction: "SOUTH", Aliases: []string{"south", "s"}},
	{Direction: "EAST", Aliases: []string{"east", "e"}},
	{Direction: "WEST", Aliases: []string{"west", "w"}},
	{Direction: "NORTHEAST", Aliases: []string{"northeast", "ne"}},
	{Direction: "NORTHWEST", Aliases: []string{"northwest", "nw"}},
	{Direction: "SOUTHEAST", Aliases: []string{"southeast", "se"}},
	{Direction: "SOUTHWEST", Aliases: []string{"southwest", "sw"}},
	{Direction: "UP", Aliases: []string{"up", "u"}},
	{Direction: "DOWN", Aliases: []string{"down", "d"}},
}

var defaultPrepositions = []string{
	"in", "on", "at", "with", "under", "behind", "into", "onto", "to", "from", "about",
}

var defaultArticles = []string{"a", "an", "the"}

// DefaultVocabulary returns a fresh mutable copy of the built-in
// vocabulary. Callers may modify the result freely.
func DefaultVocabulary() Vocabulary {
	v := Vocabulary{
		Verbs:        make([]VerbDef, 0, len(defaultVerbs)),
		Directions:   make([]DirectionDef, 0, len(defaultDirections)),
		Prepositions: make(map[string]bool, len(defaultPrepositions)),
		Articles:     make(map[string]bool, len(defaultArticles)),
	}
	for _, d := range defaultVerbs {
		v.Verbs = append(v.Verbs, VerbDef{
			Verb:     d.Verb,
			Synonyms: append([]string(nil), d.Synonyms...),
			Pattern:  d.Pattern,
		})
	}
	for _, d := range defaultDirections {
		v.Directions = append(v.Directions, DirectionDef{
			Direction: d.Direction,
			Aliases:   append([]string(nil), d.Aliases...),
		})
	}
	for _, w := range defaultPrepositions {
		v.Prepositions[w] = true
	}
	for _, w := range defaultArticles {
		v.Articles[w] = true
	}
	return v
}

func buildVocabulary(cfg *VocabConfig) Vocabulary {
	if cfg == nil {
		return DefaultVocabulary()
	}
	var v Vocabulary
	if cfg.Extend {
		v = DefaultVocabulary()
	} else {
		v = Vocabulary{
			Prepositions: make(map[string]bool),
			Articles:     make(map[string]bool),
		}
	}
	v.Verbs = append(v.Verbs, cfg.Verbs...)
	v.Directions = append(v.Directions, cfg.Directions...)
	for _, w := range cfg.Prepositions {
		v.Prepositions[w] = true
	}
	for _, w := range cfg.Articles {
		v.Articles[w] = true
	}
	return v
}
