package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

// Parse maps free text onto a registered command. When the verb or its
// argument cannot be decided, the returned intent carries a Clarify question
// instead of a verb.
func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if strings.TrimSpace(raw) == "?" {
		intent.Normalised = "help"
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Type help for a list."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try chop, mine, farm, quest <id>, inventory, quests, save, help.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				p.optionFor(raw, cmdMatch),
				p.optionFor(raw, alternates[0]),
			},
		}
		return intent
	}

	def, _ := p.registry.command(cmdMatch.Canonical)
	intent.Verb = def.HandlerKey
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argTokens = tokens[cmdMatch.Consumed:]
	}
	if def.Implied != "" {
		intent.Args = []string{def.Implied}
		return intent
	}

	args, clarify, score := resolveArgs(ctx, def, argTokens)
	if clarify != nil {
		for i := range clarify.Options {
			clarify.Options[i].Raw = raw
			clarify.Options[i].Verb = intent.Verb
			clarify.Options[i].Kind = intent.Kind
		}
		intent.Clarify = clarify
		return intent
	}
	intent.Args = args
	if score > 0 {
		intent.Confidence = minScore(intent.Confidence, score)
	}
	return intent
}

func (p *Parser) optionFor(raw string, c commandCandidate) Intent {
	def, _ := p.registry.command(c.Canonical)
	opt := Intent{
		Raw:        raw,
		Normalised: c.Canonical,
		Kind:       commandKind(def.HandlerKey),
		Verb:       def.HandlerKey,
		Confidence: clampScore(c.Score),
	}
	if def.Implied != "" {
		opt.Args = []string{def.Implied}
	}
	return opt
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "inventory", "quests", "activity", "crafting":
		return Query
	default:
		return Command
	}
}

func resolveArgs(ctx ParseContext, def CommandDef, tokens []string) ([]string, *ClarifyQuestion, float64) {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !isFiller(t) {
			kept = append(kept, t)
		}
	}
	if len(kept) < def.MinArgs {
		return nil, &ClarifyQuestion{
			Prompt:  missingArgPrompt(def.Arg),
			Options: argOptions(ctx, def.Arg),
		}, 0
	}
	if def.MaxArgs > 0 && len(kept) > def.MaxArgs {
		kept = kept[:def.MaxArgs]
	}
	if len(kept) == 0 {
		return nil, nil, 0
	}

	var known []string
	switch def.Arg {
	case ArgActivity:
		known = ctx.Activities
	case ArgQuest:
		if len(kept) == 1 {
			if _, ok := parseNumber(kept[0]); ok {
				return kept, nil, 1
			}
		}
		known = ctx.Quests
	default:
		return kept, nil, 0
	}

	token := strings.Join(kept, " ")
	matches, score, tie := bestMatches(token, known)
	if len(matches) == 0 {
		return nil, &ClarifyQuestion{
			Prompt:  "Unknown " + argNoun(def.Arg) + " \"" + token + "\". Choose one of:",
			Options: argOptions(ctx, def.Arg),
		}, 0
	}
	if tie {
		opts := make([]Intent, 0, len(matches))
		for _, m := range matches {
			opts = append(opts, Intent{Normalised: m, Args: []string{m}, Confidence: score})
		}
		return nil, &ClarifyQuestion{Prompt: "Which " + argNoun(def.Arg) + "?", Options: opts}, 0
	}
	return matches[:1], nil, score
}

func missingArgPrompt(kind ArgKind) string {
	switch kind {
	case ArgActivity:
		return "Which activity should be started?"
	case ArgQuest:
		return "Which quest should be completed?"
	default:
		return "That command needs an argument."
	}
}

func argNoun(kind ArgKind) string {
	if kind == ArgQuest {
		return "quest"
	}
	return "activity"
}

func argOptions(ctx ParseContext, kind ArgKind) []Intent {
	var names []string
	switch kind {
	case ArgActivity:
		names = ctx.Activities
	case ArgQuest:
		names = ctx.Quests
	}
	out := make([]Intent, 0, len(names))
	for _, n := range names {
		out = append(out, Intent{Normalised: normaliseInput(n), Args: []string{n}})
	}
	return out
}

// bestMatches compares token against the normalised form of each candidate
// and returns the original spelling. A near tie returns both leaders.
func bestMatches(token string, all []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		norm := normaliseInput(cand)
		if norm == "" {
			continue
		}
		score := 0.0
		switch {
		case token == norm:
			score = 1.0
		case strings.HasPrefix(norm, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, norm)
			if dist > levenshteinLimit(len(norm)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func minScore(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders a resolved intent back into canonical
// command text, e.g. for echoing what was understood.
func IntentToCommandString(intent Intent) string {
	if intent.Verb == "" {
		return ""
	}
	parts := append([]string{intent.Verb}, intent.Args...)
	return strings.Join(parts, " ")
}
