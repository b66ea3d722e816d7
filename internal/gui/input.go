package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/idlecraft/internal/game"
	"github.com/appengine-ltd/idlecraft/internal/session"
)

var screenKeys = map[int32]game.Screen{
	rl.KeyOne:   game.ScreenActivity,
	rl.KeyTwo:   game.ScreenInventory,
	rl.KeyThree: game.ScreenQuests,
	rl.KeyFour:  game.ScreenCrafting,
}

// keyCommand maps a pressed key onto a command.
func keyCommand(key int32) (command, bool) {
	if s, ok := screenKeys[key]; ok {
		in := session.ChangeScreen(s)
		return command{intent: &in}, true
	}
	switch key {
	case rl.KeyS:
		return command{save: true}, true
	case rl.KeyEscape:
		return command{quit: true}, true
	}
	return command{}, false
}

func pressedCommands() []command {
	var out []command
	for key := int32(rl.KeyOne); key <= rl.KeyFour; key++ {
		if rl.IsKeyPressed(key) {
			if cmd, ok := keyCommand(key); ok {
				out = append(out, cmd)
			}
		}
	}
	for _, key := range []int32{rl.KeyS, rl.KeyEscape} {
		if rl.IsKeyPressed(key) {
			if cmd, ok := keyCommand(key); ok {
				out = append(out, cmd)
			}
		}
	}
	return out
}
