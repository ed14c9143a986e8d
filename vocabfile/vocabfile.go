// Package vocabfile loads parser vocabularies from YAML documents, so a
// game can ship its verb table as data and designers can edit it without
// rebuilding. It can also watch a vocabulary file and deliver reloads.
package vocabfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/appengine-ltd/storyparse/parser"
)

type verbDoc struct {
	Verb     string   `yaml:"verb"`
	Synonyms []string `yaml:"synonyms"`
	Pattern  string   `yaml:"pattern"`
}

type directionDoc struct {
	Direction string   `yaml:"direction"`
	Aliases   []string `yaml:"aliases"`
}

type document struct {
	Extend       bool           `yaml:"extend"`
	Verbs        []verbDoc      `yaml:"verbs"`
	Directions   []directionDoc `yaml:"directions"`
	Prepositions []string       `yaml:"prepositions"`
	Articles     []string       `yaml:"articles"`
}

var patterns = map[string]parser.Pattern{
	"none":           parser.PatternNone,
	"subject":        parser.PatternSubject,
	"subject_object": parser.PatternSubjectObject,
	"direction":      parser.PatternDirection,
	"text":           parser.PatternText,
}

// Parse decodes a YAML vocabulary document into a parser.VocabConfig.
func Parse(data []byte) (parser.VocabConfig, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return parser.VocabConfig{}, fmt.Errorf("decode vocabulary: %w", err)
	}

	cfg := parser.VocabConfig{
		Extend:       doc.Extend,
		Prepositions: doc.Prepositions,
		Articles:     doc.Articles,
	}
	for _, v := range doc.Verbs {
		if v.Verb == "" {
			return parser.VocabConfig{}, fmt.Errorf("verb entry missing a canonical name")
		}
		pattern, ok := patterns[v.Pattern]
		if !ok {
			return parser.VocabConfig{}, fmt.Errorf("unknown pattern %q for verb %q", v.Pattern, v.Verb)
		}
		cfg.Verbs = append(cfg.Verbs, parser.VerbDef{
			Verb:     v.Verb,
			Synonyms: v.Synonyms,
			Pattern:  pattern,
		})
	}
	for _, d := range doc.Directions {
		if d.Direction == "" {
			return parser.VocabConfig{}, fmt.Errorf("direction entry missing a canonical name")
		}
		cfg.Directions = append(cfg.Directions, parser.DirectionDef{
			Direction: d.Direction,
			Aliases:   d.Aliases,
		})
	}
	return cfg, nil
}

// Load reads and decodes a vocabulary file.
func Load(path string) (parser.VocabConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return parser.VocabConfig{}, fmt.Errorf("read vocabulary: %w", err)
	}
	return Parse(data)
}
