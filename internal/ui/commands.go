package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/idlecraft/internal/game"
	"github.com/appengine-ltd/idlecraft/internal/parser"
	"github.com/appengine-ltd/idlecraft/internal/session"
)

type outcome int

const (
	outcomeNone outcome = iota
	outcomeSave
	outcomeQuit
)

const helpText = "Commands: chop | mine | farm | start <activity> | quest <id or name> | activity | inventory | quests | crafting | save | quit"

func parseContext(s *session.Session) parser.ParseContext {
	data := s.Data()
	ctx := parser.ParseContext{}
	for _, kind := range data.Activities.Kinds() {
		ctx.Activities = append(ctx.Activities, string(kind))
	}
	for _, id := range data.Quests.IDs() {
		ctx.Quests = append(ctx.Quests, data.Quests[id].Name)
	}
	return ctx
}

// execute parses one input line and applies it to the session. Save and
// quit are returned to the caller since they touch the store and program.
func execute(s *session.Session, p *parser.Parser, line string) (outcome, error) {
	if strings.TrimSpace(line) == "" {
		return outcomeNone, nil
	}
	intent := p.Parse(parseContext(s), line)
	if intent.Clarify != nil {
		s.Notify(clarifyText(intent.Clarify))
		return outcomeNone, nil
	}

	switch intent.Verb {
	case "start":
		if len(intent.Args) == 0 {
			return outcomeNone, nil
		}
		if err := s.Apply(session.SelectActivity(resolveActivity(s, intent.Args[0]))); err != nil {
			return outcomeNone, err
		}
		return outcomeNone, s.Apply(session.ChangeScreen(game.ScreenActivity))
	case "complete":
		if len(intent.Args) == 0 {
			return outcomeNone, nil
		}
		return outcomeNone, completeQuest(s, intent.Args[0])
	case "activity":
		return outcomeNone, s.Apply(session.ChangeScreen(game.ScreenActivity))
	case "inventory":
		return outcomeNone, s.Apply(session.ChangeScreen(game.ScreenInventory))
	case "quests":
		return outcomeNone, s.Apply(session.ChangeScreen(game.ScreenQuests))
	case "crafting":
		return outcomeNone, s.Apply(session.ChangeScreen(game.ScreenCrafting))
	case "help":
		s.Notify(helpText)
		return outcomeNone, nil
	case "save":
		return outcomeSave, nil
	case "quit":
		return outcomeQuit, nil
	default:
		s.Notify(fmt.Sprintf("Nothing handles %q yet.", intent.Verb))
		return outcomeNone, nil
	}
}

func completeQuest(s *session.Session, arg string) error {
	id, ok := resolveQuest(s, arg)
	if !ok {
		s.Notify(fmt.Sprintf("There is no quest %q.", arg))
		return nil
	}
	for _, q := range s.Snapshot().Quests {
		if q.ID != id {
			continue
		}
		switch {
		case q.Completed:
			s.Notify(fmt.Sprintf("%s is already complete.", q.Name))
			return nil
		case !q.Ready:
			s.Notify(fmt.Sprintf("%s is not ready: %s %d/%d.", q.Name, q.Objective, q.Current, q.Required))
			return nil
		}
	}
	return s.Apply(session.CompleteQuest(id))
}

// resolveActivity maps a parsed name onto the catalog's spelling.
func resolveActivity(s *session.Session, arg string) game.ActivityKind {
	for _, kind := range s.Data().Activities.Kinds() {
		if strings.EqualFold(string(kind), arg) {
			return kind
		}
	}
	return game.ActivityKind(arg)
}

// resolveQuest accepts a quest id or its display name.
func resolveQuest(s *session.Session, arg string) (game.QuestID, bool) {
	quests := s.Data().Quests
	if n, err := strconv.ParseUint(arg, 10, 64); err == nil {
		id := game.QuestID(n)
		_, err := quests.Lookup(id)
		return id, err == nil
	}
	for _, id := range quests.IDs() {
		if strings.EqualFold(quests[id].Name, arg) {
			return id, true
		}
	}
	return 0, false
}

func clarifyText(c *parser.ClarifyQuestion) string {
	if len(c.Options) == 0 {
		return c.Prompt
	}
	opts := make([]string, 0, len(c.Options))
	for _, o := range c.Options {
		opts = append(opts, parser.IntentToCommandString(o))
	}
	return c.Prompt + " " + strings.Join(opts, ", ")
}
