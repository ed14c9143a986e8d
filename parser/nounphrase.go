package parser

import "strings"

// nounPhrase is the outcome of consuming one noun phrase. entity is nil
// with consumed == 0 when no phrase was found at all; fail is non-nil
// when the phrase was present but could not be resolved.
type nounPhrase struct {
	entity   *Entity
	consumed int
	fail     Result
}

// parseNounPhrase consumes tokens from start: leading articles, then
// either the pronoun "it" or a run of words up to the next preposition,
// direction or end of input. The last word is the noun, the rest are
// adjectives. The external resolver is only invoked for real phrases,
// never for "it".
func (p *Parser) parseNounPhrase(tokens []Token, start int, scope Scope) nounPhrase {
	i := start
	for i < len(tokens) && p.isArticle(tokens[i].Value) {
		i++
	}
	if i >= len(tokens) {
		return nounPhrase{}
	}

	if tokens[i].Value == "it" {
		if p.lastReferent == nil {
			return nounPhrase{fail: BadCommand{
				Message:  `Cannot use "it" without a previous referent`,
				Position: tokens[i].Start,
			}}
		}
		ref := Entity{
			ID:         p.lastReferent.ID,
			Noun:       p.lastReferent.Noun,
			Adjectives: append([]string(nil), p.lastReferent.Adjectives...),
		}
		return nounPhrase{entity: &ref, consumed: i - start + 1}
	}

	var words []string
	firstWord := -1
	for ; i < len(tokens); i++ {
		t := tokens[i]
		if p.isPreposition(t.Value) || p.findDirection(t.Value) != nil {
			break
		}
		if p.isArticle(t.Value) {
			continue
		}
		if firstWord == -1 {
			firstWord = i
		}
		words = append(words, t.Value)
	}
	if len(words) == 0 {
		return nounPhrase{}
	}
	consumed := i - start
	noun := words[len(words)-1]
	adjectives := append([]string(nil), words[:len(words)-1]...)

	matches, err := p.resolver(noun, adjectives, scope)
	if err != nil || len(matches) == 0 {
		return nounPhrase{consumed: consumed, fail: UnknownNoun{
			Noun:     noun,
			Position: tokens[firstWord].Start,
		}}
	}
	if len(matches) > 1 {
		return nounPhrase{consumed: consumed, fail: Ambiguous{
			Candidates: matches,
			Original:   strings.Join(words, " "),
			Role:       RoleSubject,
		}}
	}
	return nounPhrase{
		entity:   &Entity{ID: matches[0].ID, Noun: noun, Adjectives: adjectives},
		consumed: consumed,
	}
}
