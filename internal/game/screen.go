package game

import "fmt"

// Screen is the presentation state persisted with a save.
type Screen string

const (
	ScreenActivity  Screen = "Activity"
	ScreenInventory Screen = "Inventory"
	ScreenQuests    Screen = "Quests"
	ScreenCrafting  Screen = "Crafting"
)

func AllScreens() []Screen {
	return []Screen{ScreenActivity, ScreenInventory, ScreenQuests, ScreenCrafting}
}

func (s Screen) Valid() bool {
	switch s {
	case ScreenActivity, ScreenInventory, ScreenQuests, ScreenCrafting:
		return true
	default:
		return false
	}
}

func (s Screen) String() string {
	return string(s)
}

func ParseScreen(raw string) (Screen, error) {
	for _, s := range AllScreens() {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown screen %q", raw)
}
