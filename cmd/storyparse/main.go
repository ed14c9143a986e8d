// Command storyparse is a two-room demo world for exercising the parser:
// tokenization, noun phrases, ambiguity, pronouns and vocabulary files.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/appengine-ltd/storyparse/parser"
	"github.com/appengine-ltd/storyparse/vocabfile"
)

type item struct {
	id         string
	noun       string
	adjectives []string
}

func (it item) name() string {
	if len(it.adjectives) == 0 {
		return it.noun
	}
	return strings.Join(it.adjectives, " ") + " " + it.noun
}

type room struct {
	id    string
	desc  string
	exits map[string]string // canonical direction -> room id
}

type world struct {
	rooms     map[string]*room
	items     map[string][]item // room id -> items on the floor
	inventory []item
	current   string
}

func newWorld() *world {
	return &world{
		rooms: map[string]*room{
			"meadow": {
				id:    "meadow",
				desc:  "A sunny meadow. A path leads north to a cottage.",
				exits: map[string]string{"NORTH": "cottage"},
			},
			"cottage": {
				id:    "cottage",
				desc:  "A dusty one-room cottage. The meadow lies south.",
				exits: map[string]string{"SOUTH": "meadow"},
			},
		},
		items: map[string][]item{
			"meadow": {
				{id: "lamp-1", noun: "lamp", adjectives: []string{"brass"}},
				{id: "ball-red", noun: "ball", adjectives: []string{"red"}},
				{id: "ball-blue", noun: "ball", adjectives: []string{"blue"}},
			},
			"cottage": {
				{id: "chest-1", noun: "chest", adjectives: []string{"old"}},
				{id: "key-1", noun: "key", adjectives: []string{"rusty"}},
			},
		},
		current: "meadow",
	}
}

// resolve matches a noun phrase against the current room's items plus the
// inventory. Every given adjective must appear on the item.
func (w *world) resolve(noun string, adjectives []string, _ parser.Scope) ([]parser.ResolvedEntity, error) {
	var out []parser.ResolvedEntity
	pool := append(append([]item(nil), w.items[w.current]...), w.inventory...)
	for _, it := range pool {
		if it.noun != noun {
			continue
		}
		if !hasAll(it.adjectives, adjectives) {
			continue
		}
		out = append(out, parser.ResolvedEntity{
			ID:    it.id,
			Attrs: map[string]any{"name": it.name()},
		})
	}
	return out, nil
}

func hasAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (w *world) takeItem(id string) bool {
	floor := w.items[w.current]
	for i, it := range floor {
		if it.id == id {
			w.inventory = append(w.inventory, it)
			w.items[w.current] = append(floor[:i:i], floor[i+1:]...)
			return true
		}
	}
	return false
}

func (w *world) dropItem(id string) bool {
	for i, it := range w.inventory {
		if it.id == id {
			w.items[w.current] = append(w.items[w.current], it)
			w.inventory = append(w.inventory[:i:i], w.inventory[i+1:]...)
			return true
		}
	}
	return false
}

func (w *world) describe() {
	r := w.rooms[w.current]
	fmt.Println(r.desc)
	for _, it := range w.items[w.current] {
		fmt.Printf("There is a %s here.\n", it.name())
	}
}

func main() {
	var (
		vocabPath  string
		watchVocab bool
	)
	flag.StringVar(&vocabPath, "vocab", "", "YAML vocabulary file to merge with the defaults")
	flag.BoolVar(&watchVocab, "watch", false, "reload the vocabulary file when it changes")
	flag.Parse()

	w := newWorld()

	var cfg *parser.VocabConfig
	if vocabPath != "" {
		loaded, err := vocabfile.Load(vocabPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "storyparse: %v\n", err)
			os.Exit(1)
		}
		cfg = &loaded
	}

	p, err := parser.New(parser.Options{Resolver: w.resolve, Vocabulary: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "storyparse: %v\n", err)
		os.Exit(1)
	}

	reloads := make(chan parser.VocabConfig, 1)
	if watchVocab && vocabPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			err := vocabfile.Watch(ctx, vocabPath, func(c parser.VocabConfig) {
				select {
				case reloads <- c:
				default:
				}
			}, func(err error) {
				fmt.Fprintf(os.Stderr, "vocab reload: %v\n", err)
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "vocab watch: %v\n", err)
			}
		}()
	}

	w.describe()
	in := bufio.NewScanner(os.Stdin)
	for {
		// Pick up a pending vocabulary reload between prompts; the
		// parser itself is single-threaded.
		select {
		case c := <-reloads:
			if np, err := parser.New(parser.Options{Resolver: w.resolve, Vocabulary: &c}); err == nil {
				p = np
				fmt.Println("(vocabulary reloaded)")
			}
		default:
		}

		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "quit" || line == "exit" {
			return
		}

		res, err := p.Parse(line, parser.Scope{Room: w.current})
		if err != nil {
			fmt.Fprintf(os.Stderr, "storyparse: %v\n", err)
			continue
		}
		handle(w, res)
	}
}

func handle(w *world, res parser.Result) {
	switch r := res.(type) {
	case parser.Command:
		runCommand(w, r)
	case parser.Ambiguous:
		fmt.Printf("Which %s do you mean?\n", r.Original)
		for _, c := range r.Candidates {
			if name, ok := c.Attrs["name"]; ok {
				fmt.Printf("  - the %v\n", name)
			} else {
				fmt.Printf("  - %s\n", c.ID)
			}
		}
	case parser.UnknownVerb:
		if r.Suggestion != "" {
			fmt.Printf("I don't know the verb %q. Did you mean %s?\n", r.Verb, strings.ToLower(r.Suggestion))
		} else {
			fmt.Printf("I don't know the verb %q.\n", r.Verb)
		}
	case parser.UnknownNoun:
		fmt.Printf("I don't see any %q here.\n", r.Noun)
	case parser.BadCommand:
		fmt.Println(r.Message)
	}
}

func runCommand(w *world, cmd parser.Command) {
	switch cmd.Verb {
	case "LOOK":
		w.describe()
	case "GO":
		next, ok := w.rooms[w.current].exits[cmd.Direction]
		if !ok {
			fmt.Printf("You can't go %s from here.\n", strings.ToLower(cmd.Direction))
			return
		}
		w.current = next
		w.describe()
	case "INVENTORY":
		if len(w.inventory) == 0 {
			fmt.Println("You are carrying nothing.")
			return
		}
		fmt.Println("You are carrying:")
		for _, it := range w.inventory {
			fmt.Printf("  - a %s\n", it.name())
		}
	case "GET":
		if w.takeItem(cmd.Subject.ID) {
			fmt.Printf("You take the %s.\n", cmd.Subject.Noun)
		} else {
			fmt.Printf("You already have the %s.\n", cmd.Subject.Noun)
		}
	case "DROP":
		if w.dropItem(cmd.Subject.ID) {
			fmt.Printf("You drop the %s.\n", cmd.Subject.Noun)
		} else {
			fmt.Printf("You aren't carrying the %s.\n", cmd.Subject.Noun)
		}
	case "EXAMINE":
		fmt.Printf("It looks like a perfectly ordinary %s.\n", cmd.Subject.Noun)
	case "SAY":
		fmt.Printf("You say: %s\n", cmd.Text)
	default:
		describeParsed(cmd)
	}
}

func describeParsed(cmd parser.Command) {
	out := cmd.Verb
	if cmd.Subject != nil {
		out += " <" + cmd.Subject.ID + ">"
	}
	if cmd.Preposition != "" {
		out += " " + cmd.Preposition
	}
	if cmd.Object != nil {
		out += " <" + cmd.Object.ID + ">"
	}
	if cmd.Direction != "" {
		out += " " + cmd.Direction
	}
	fmt.Printf("(parsed: %s)\n", out)
}
