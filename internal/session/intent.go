package session

import (
	"fmt"

	"github.com/appengine-ltd/idlecraft/internal/game"
)

type IntentKind int

const (
	IntentSelectActivity IntentKind = iota
	IntentCompleteQuest
	IntentChangeScreen
)

// Intent is a player request coming from a presentation client. Only the
// field matching Kind is read.
type Intent struct {
	Kind     IntentKind
	Activity game.ActivityKind
	Quest    game.QuestID
	Screen   game.Screen
}

func SelectActivity(kind game.ActivityKind) Intent {
	return Intent{Kind: IntentSelectActivity, Activity: kind}
}

func CompleteQuest(id game.QuestID) Intent {
	return Intent{Kind: IntentCompleteQuest, Quest: id}
}

func ChangeScreen(screen game.Screen) Intent {
	return Intent{Kind: IntentChangeScreen, Screen: screen}
}

func (i Intent) String() string {
	switch i.Kind {
	case IntentSelectActivity:
		return fmt.Sprintf("select activity %s", i.Activity)
	case IntentCompleteQuest:
		return fmt.Sprintf("complete quest %d", i.Quest)
	case IntentChangeScreen:
		return fmt.Sprintf("change screen %s", i.Screen)
	default:
		return fmt.Sprintf("intent(%d)", int(i.Kind))
	}
}
