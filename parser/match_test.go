package parser

import "testing"

func newTestParser(t *testing.T, opts Options) *Parser {
	t.Helper()
	if opts.Resolver == nil {
		opts.Resolver = func(noun string, adjectives []string, scope Scope) ([]ResolvedEntity, error) {
			return []ResolvedEntity{{ID: noun}}, nil
		}
	}
	p, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestFindVerbExactBeatsPrefix(t *testing.T) {
	p := newTestParser(t, Options{})
	def := p.findVerb("lock")
	if def == nil || def.Verb != "LOCK" {
		t.Fatalf("expected exact match LOCK, got %+v", def)
	}
}

func TestFindVerbPrefix(t *testing.T) {
	p := newTestParser(t, Options{})
	tests := []struct {
		word string
		want string
	}{
		{word: "exam", want: "EXAMINE"},
		{word: "inven", want: "INVENTORY"},
		{word: "unl", want: "UNLOCK"},
	}
	for _, tc := range tests {
		def := p.findVerb(tc.word)
		if def == nil || def.Verb != tc.want {
			t.Fatalf("findVerb(%q) = %+v, want %s", tc.word, def, tc.want)
		}
	}
}

func TestFindVerbPrefixBelowMinLength(t *testing.T) {
	p := newTestParser(t, Options{})
	if def := p.findVerb("op"); def != nil {
		t.Fatalf("2-char prefix should not match, got %+v", def)
	}
}

func TestFindVerbPrefixDisabled(t *testing.T) {
	off := false
	p := newTestParser(t, Options{PartialMatch: &off})
	if def := p.findVerb("exam"); def != nil {
		t.Fatalf("partial matching disabled, got %+v", def)
	}
}

// Declaration order decides prefix collisions. With the minimum lowered
// to 2, "lo" hits LOOK because it is declared before LOCK.
func TestFindVerbPrefixOrderSensitive(t *testing.T) {
	p := newTestParser(t, Options{MinPartialLength: 2})
	def := p.findVerb("lo")
	if def == nil || def.Verb != "LOOK" {
		t.Fatalf(`findVerb("lo") = %+v, want LOOK`, def)
	}
}

func TestFindDirectionExactOnly(t *testing.T) {
	p := newTestParser(t, Options{})
	if d := p.findDirection("north"); d == nil || d.Direction != "NORTH" {
		t.Fatalf(`findDirection("north") = %+v, want NORTH`, d)
	}
	if d := p.findDirection("n"); d == nil || d.Direction != "NORTH" {
		t.Fatalf(`findDirection("n") = %+v, want NORTH`, d)
	}
	if d := p.findDirection("nort"); d != nil {
		t.Fatalf("directions must not partially match, got %+v", d)
	}
}

func TestSuggestVerbTypo(t *testing.T) {
	p := newTestParser(t, Options{})
	if got := p.suggestVerb("exmine"); got != "EXAMINE" {
		t.Fatalf(`suggestVerb("exmine") = %q, want EXAMINE`, got)
	}
	if got := p.suggestVerb("qqqqqqqq"); got != "" {
		t.Fatalf(`suggestVerb("qqqqqqqq") = %q, want ""`, got)
	}
}

func TestDefaultVocabularyIsolated(t *testing.T) {
	a := DefaultVocabulary()
	a.Verbs[0].Synonyms[0] = "mutated"
	a.Prepositions["mutated"] = true

	b := DefaultVocabulary()
	if b.Verbs[0].Synonyms[0] == "mutated" {
		t.Fatal("DefaultVocabulary shares synonym slices between calls")
	}
	if b.Prepositions["mutated"] {
		t.Fatal("DefaultVocabulary shares preposition sets between calls")
	}
}

func TestAddVerbIsolatedPerInstance(t *testing.T) {
	p1 := newTestParser(t, Options{})
	p2 := newTestParser(t, Options{})
	p1.AddVerb(VerbDef{Verb: "XYZZY", Synonyms: []string{"xyzzy"}, Pattern: PatternNone})

	if def := p1.findVerb("xyzzy"); def == nil || def.Verb != "XYZZY" {
		t.Fatalf("added verb not found on p1: %+v", def)
	}
	if def := p2.findVerb("xyzzy"); def != nil {
		t.Fatalf("added verb leaked to p2: %+v", def)
	}
}

func TestReplaceVocabulary(t *testing.T) {
	p := newTestParser(t, Options{
		Vocabulary: &VocabConfig{
			Verbs:        []VerbDef{{Verb: "SING", Synonyms: []string{"sing"}, Pattern: PatternNone}},
			Prepositions: []string{"with"},
			Articles:     []string{"the"},
		},
	})
	if def := p.findVerb("look"); def != nil {
		t.Fatalf("replaced vocabulary still knows defaults: %+v", def)
	}
	if def := p.findVerb("sing"); def == nil || def.Verb != "SING" {
		t.Fatalf("replacement verb missing: %+v", def)
	}
}

func TestExtendVocabulary(t *testing.T) {
	p := newTestParser(t, Options{
		Vocabulary: &VocabConfig{
			Extend: true,
			Verbs:  []VerbDef{{Verb: "CAST", Synonyms: []string{"cast"}, Pattern: PatternSubject}},
		},
	})
	if def := p.findVerb("look"); def == nil || def.Verb != "LOOK" {
		t.Fatalf("extend lost the defaults: %+v", def)
	}
	if def := p.findVerb("cast"); def == nil || def.Verb != "CAST" {
		t.Fatalf("extension verb missing: %+v", def)
	}
}
