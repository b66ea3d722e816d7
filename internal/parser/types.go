package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext lists what arguments can currently resolve to. Names are
// matched case-insensitively after normalisation.
type ParseContext struct {
	Activities []string
	Quests     []string
}

type CommandDef struct {
	Canonical  string
	Aliases    []string
	MinArgs    int
	MaxArgs    int
	HandlerKey string
	// Implied is appended as the only argument when the phrase names its
	// target, as "chop" does for woodcutting.
	Implied string
	// Arg selects what the first argument resolves against.
	Arg ArgKind
}

type ArgKind int

const (
	ArgNone ArgKind = iota
	ArgActivity
	ArgQuest
)
