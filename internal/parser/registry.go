package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// phrase is one typed form of a command: its canonical name or an alias.
type phrase struct {
	canonical string
	text      string
	tokens    []string
}

// Registry maps typed phrases onto the idle-game commands: activity
// shortcuts, quest completion and screen switches. Matching tries exact
// phrases, then single-word prefixes, then a bounded edit distance.
type Registry struct {
	commands map[string]CommandDef
	phrases  []phrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

// RegisterCommand adds c and its aliases. A later command with the same
// canonical name replaces the definition but keeps the earlier phrases.
func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if c.HandlerKey == "" {
		c.HandlerKey = c.Canonical
	}
	r.commands[c.Canonical] = c
	r.addPhrase(c.Canonical, c.Canonical)
	for _, alias := range c.Aliases {
		r.addPhrase(c.Canonical, normaliseInput(alias))
	}
}

func (r *Registry) addPhrase(canonical, text string) {
	if text == "" {
		return
	}
	r.phrases = append(r.phrases, phrase{canonical: canonical, text: text, tokens: tokenise(text)})
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

type matchSource string

const (
	sourceExact  matchSource = "exact"
	sourceAlias  matchSource = "alias"
	sourcePrefix matchSource = "prefix"
	sourceFuzzy  matchSource = "lev"
)

const (
	scoreExact      = 1.0
	scoreAlias      = 0.97
	scorePrefix     = 0.9
	scoreFuzzy      = 0.72
	fuzzyPerEdit    = 0.08
	maxAlternatives = 4
)

type commandCandidate struct {
	Canonical string
	Alias     string
	Consumed  int
	Score     float64
	Source    matchSource
}

// matchCommand scores every phrase against the leading tokens and returns
// the best candidate plus up to maxAlternatives distinct runners-up.
func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	input := strings.Join(tokens, " ")
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, ph := range r.phrases {
		if len(ph.tokens) == 0 {
			continue
		}
		if c, ok := ph.matchDirect(tokens); ok {
			cands = append(cands, c)
			continue
		}
		if c, ok := ph.matchFuzzy(tokens, input); ok {
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		return commandCandidate{}, nil
	}
	rankCandidates(cands)
	return cands[0], alternatives(cands)
}

// matchDirect handles exact phrase hits and single-word prefixes such as
// "inv" for "inventory".
func (ph phrase) matchDirect(tokens []string) (commandCandidate, bool) {
	consumed := min(len(tokens), len(ph.tokens))
	if consumed == len(ph.tokens) && strings.Join(tokens[:consumed], " ") == ph.text {
		c := commandCandidate{Canonical: ph.canonical, Alias: ph.text, Consumed: consumed, Score: scoreExact, Source: sourceExact}
		if ph.text != ph.canonical {
			c.Score, c.Source = scoreAlias, sourceAlias
		}
		return c, true
	}
	if len(ph.tokens) == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(ph.text, tokens[0]) {
		return commandCandidate{Canonical: ph.canonical, Alias: ph.text, Consumed: 1, Score: scorePrefix, Source: sourcePrefix}, true
	}
	return commandCandidate{}, false
}

// matchFuzzy tolerates typos like "wodcutting" within a length-scaled edit
// budget. Multi-word phrases compare against the same number of tokens.
func (ph phrase) matchFuzzy(tokens []string, input string) (commandCandidate, bool) {
	cut := min(len(tokens), len(ph.tokens))
	if len(ph.tokens) > 1 && len(tokens) >= len(ph.tokens) {
		cut = len(ph.tokens)
	}
	compare := strings.Join(tokens[:cut], " ")
	if len(compare) < 3 {
		return commandCandidate{}, false
	}
	dist := levenshtein.ComputeDistance(compare, ph.text)
	if dist > levenshteinLimit(len(ph.text)) {
		return commandCandidate{}, false
	}
	score := scoreFuzzy - fuzzyPerEdit*float64(dist)
	if strings.Contains(input, ph.text) {
		score += 0.04
	}
	if ph.text != ph.canonical {
		score += 0.03
	}
	return commandCandidate{Canonical: ph.canonical, Alias: ph.text, Consumed: cut, Score: score, Source: sourceFuzzy}, true
}

// rankCandidates orders by score, then by tokens consumed, then by name so
// the result is stable across registration order.
func rankCandidates(cands []commandCandidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Consumed != b.Consumed {
			return a.Consumed > b.Consumed
		}
		return a.Canonical < b.Canonical
	})
}

func alternatives(ranked []commandCandidate) []commandCandidate {
	alts := make([]commandCandidate, 0, maxAlternatives)
	seen := map[string]bool{ranked[0].Canonical: true}
	for _, c := range ranked[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) == maxAlternatives {
			break
		}
	}
	return alts
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

// DefaultRegistry holds the idle-game command table. Activity shortcuts
// such as "chop" resolve to the start handler with the activity implied.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands", "?"}, HandlerKey: "help"},
		{Canonical: "start", Aliases: []string{"do", "begin", "work", "switch to"}, MinArgs: 1, MaxArgs: 3, HandlerKey: "start", Arg: ArgActivity},
		{Canonical: "woodcutting", Aliases: []string{"chop", "chop wood", "cut wood", "cut trees", "lumber"}, HandlerKey: "start", Implied: "woodcutting"},
		{Canonical: "mining", Aliases: []string{"mine", "dig", "quarry"}, HandlerKey: "start", Implied: "mining"},
		{Canonical: "farming", Aliases: []string{"farm", "harvest", "plant"}, HandlerKey: "start", Implied: "farming"},
		{Canonical: "complete", Aliases: []string{"quest", "finish", "claim", "turn in", "hand in"}, MinArgs: 1, MaxArgs: 4, HandlerKey: "complete", Arg: ArgQuest},
		{Canonical: "inventory", Aliases: []string{"inv", "bag", "items", "check bag"}, HandlerKey: "inventory"},
		{Canonical: "quests", Aliases: []string{"journal", "log", "quest log"}, HandlerKey: "quests"},
		{Canonical: "activity", Aliases: []string{"jobs", "status", "home"}, HandlerKey: "activity"},
		{Canonical: "crafting", Aliases: []string{"craft", "workshop"}, HandlerKey: "crafting"},
		{Canonical: "save", HandlerKey: "save"},
		{Canonical: "quit", Aliases: []string{"exit", "q"}, HandlerKey: "quit"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
