package vocabfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/storyparse/parser"
)

const sampleDoc = `
extend: true
verbs:
  - verb: CAST
    synonyms: [cast, invoke]
    pattern: subject
  - verb: SING
    synonyms: [sing]
    pattern: none
directions:
  - direction: PORTAL
    aliases: [portal, p]
prepositions: [through]
articles: [yon]
`

func TestParseDocument(t *testing.T) {
	cfg, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	assert.True(t, cfg.Extend)
	require.Len(t, cfg.Verbs, 2)
	assert.Equal(t, "CAST", cfg.Verbs[0].Verb)
	assert.Equal(t, []string{"cast", "invoke"}, cfg.Verbs[0].Synonyms)
	assert.Equal(t, parser.PatternSubject, cfg.Verbs[0].Pattern)
	assert.Equal(t, parser.PatternNone, cfg.Verbs[1].Pattern)
	require.Len(t, cfg.Directions, 1)
	assert.Equal(t, "PORTAL", cfg.Directions[0].Direction)
	assert.Equal(t, []string{"through"}, cfg.Prepositions)
	assert.Equal(t, []string{"yon"}, cfg.Articles)
}

func TestParseRejectsUnknownPattern(t *testing.T) {
	_, err := Parse([]byte("verbs:\n  - verb: FLY\n    pattern: soaring\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"soaring"`)
}

func TestParseRejectsMissingVerbName(t *testing.T) {
	_, err := Parse([]byte("verbs:\n  - pattern: none\n"))
	require.Error(t, err)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("verbz: []\n"))
	require.Error(t, err)
}

func TestLoadFeedsParser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	p, err := parser.New(parser.Options{
		Resolver: func(noun string, adjectives []string, scope parser.Scope) ([]parser.ResolvedEntity, error) {
			return []parser.ResolvedEntity{{ID: noun}}, nil
		},
		Vocabulary: &cfg,
	})
	require.NoError(t, err)

	res, err := p.Parse("cast fireball", parser.Scope{})
	require.NoError(t, err)
	cmd, ok := res.(parser.Command)
	require.True(t, ok, "got %+v", res)
	assert.Equal(t, "CAST", cmd.Verb)
	require.NotNil(t, cmd.Subject)
	assert.Equal(t, "fireball", cmd.Subject.Noun)

	// Extend kept the built-ins available too.
	res, err = p.Parse("look", parser.Scope{})
	require.NoError(t, err)
	cmd, ok = res.(parser.Command)
	require.True(t, ok, "got %+v", res)
	assert.Equal(t, "LOOK", cmd.Verb)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestWatchDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan parser.VocabConfig, 4)
	go func() {
		Watch(ctx, path, func(cfg parser.VocabConfig) { reloads <- cfg }, nil)
	}()

	time.Sleep(200 * time.Millisecond)
	doc := `
verbs:
  - verb: DANCE
    synonyms: [dance]
    pattern: none
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	select {
	case cfg := <-reloads:
		require.Len(t, cfg.Verbs, 1)
		assert.Equal(t, "DANCE", cfg.Verbs[0].Verb)
	case <-time.After(5 * time.Second):
		t.Fatal("expected a reload after writing the file")
	}
}

func TestWatchReportsBadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 4)
	go func() {
		Watch(ctx, path, func(parser.VocabConfig) {}, func(err error) { errs <- err })
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("verbs:\n  - verb: X\n    pattern: bogus\n"), 0o644))

	select {
	case err := <-errs:
		assert.Contains(t, err.Error(), "bogus")
	case <-time.After(5 * time.Second):
		t.Fatal("expected an error report for the bad document")
	}
}
