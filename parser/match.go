package parser

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// findVerb resolves a lowercased word to a verb definition. Exact synonym
// matches are tried first across the whole vocabulary, then prefix
// matches when enabled and the word is long enough. Both passes are
// first-match-wins in declaration order.
func (p *Parser) findVerb(word string) *VerbDef {
	for i := range p.vocab.Verbs {
		for _, syn := range p.vocab.Verbs[i].Synonyms {
			if syn == word {
				return &p.vocab.Verbs[i]
			}
		}
	}
	if !p.partial || len(word) < p.minPartial {
		return nil
	}
	for i := range p.vocab.Verbs {
		for _, syn := range p.vocab.Verbs[i].Synonyms {
			if strings.HasPrefix(syn, word) {
				return &p.vocab.Verbs[i]
			}
		}
	}
	return nil
}

// findDirection resolves a word to a direction. Directions are never
// partially matched; aliases must hit exactly.
func (p *Parser) findDirection(word string) *DirectionDef {
	for i := range p.vocab.Directions {
		for _, alias := range p.vocab.Directions[i].Aliases {
			if alias == word {
				return &p.vocab.Directions[i]
			}
		}
	}
	return nil
}

func (p *Parser) isArticle(word string) bool {
	return p.vocab.Articles[word]
}

func (p *Parser) isPreposition(word string) bool {
	return p.vocab.Prepositions[word]
}

// suggestVerb finds the canonical verb whose synonym is closest to word
// by edit distance, for "did you mean" hints on unknown verbs. Returns
// "" when nothing is within the distance limit.
func (p *Parser) suggestVerb(word string) string {
	if len(word) < 2 {
		return ""
	}
	best := ""
	bestDist := -1
	for i := range p.vocab.Verbs {
		for _, syn := range p.vocab.Verbs[i].Synonyms {
			limit := levenshteinLimit(len(syn))
			if diff := len(word) - len(syn); diff > limit || -diff > limit {
				continue
			}
			dist := levenshtein.ComputeDistance(word, syn)
			if dist > limit {
				continue
			}
			if bestDist == -1 || dist < bestDist {
				best = p.vocab.Verbs[i].Verb
				bestDist = dist
			}
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
