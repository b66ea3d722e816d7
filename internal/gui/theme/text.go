package theme

import rl "github.com/gen2brain/raylib-go/raylib"

func DrawText(text string, x, y, fontSize int32, clr rl.Color) {
	rl.DrawText(text, x, y, fontSize, clr)
}

func MeasureText(text string, fontSize int32) int32 {
	return rl.MeasureText(text, fontSize)
}
